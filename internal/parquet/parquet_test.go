package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gitbars/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []schema.CommitRecord {
	return []schema.CommitRecord{
		{Hash: "abc1234", Date: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), Author: "alice", Message: "feat: loader"},
		{Hash: "def5678", Date: time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), Author: "bob", Message: "Fix parser"},
	}
}

func TestCommitRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	fileSchema := parquet.SchemaOf(new(CommitRow))
	require.NotNil(t, fileSchema)

	expectedColumns := []string{"hash", "date", "author", "message"}
	for _, colName := range expectedColumns {
		col, ok := fileSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestBuildCommitRows(t *testing.T) {
	rows := BuildCommitRows(testRecords())

	require.Len(t, rows, 2)
	assert.Equal(t, "abc1234", rows[0].Hash)
	assert.Equal(t, "alice", rows[0].Author)
	assert.Equal(t, "feat: loader", rows[0].Message)
	assert.Equal(t, "def5678", rows[1].Hash)
}

func TestWriteCommitsParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "commit_data.parquet")

	err := WriteCommitsParquet(testRecords(), outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	// Verify file was created and is non-empty
	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	// Read it back and compare
	rows, err := parquet.ReadFile[CommitRow](outputPath)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "abc1234", rows[0].Hash)
	assert.Equal(t, "bob", rows[1].Author)
	assert.True(t, rows[0].Date.Equal(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
}

func TestWriteCommitsParquetBadPath(t *testing.T) {
	err := WriteCommitsParquet(testRecords(), filepath.Join("nonexistent", "dir", "out.parquet"))
	assert.Error(t, err)
}
