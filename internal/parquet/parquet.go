// Package parquet provides data structures and functions for exporting
// commit activity to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gitbars/schema"
	"github.com/parquet-go/parquet-go"
)

// CommitRow represents a single commit record in the Parquet export.
type CommitRow struct {
	// Hash is the abbreviated commit hash
	Hash string `parquet:"hash,snappy"`

	// Date is the author timestamp (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	// Author is the author name as reported by git
	Author string `parquet:"author,snappy"`

	// Message is the first line of the commit message
	Message string `parquet:"message,snappy"`
}

// BuildCommitRows converts commit records into their Parquet row form.
func BuildCommitRows(records []schema.CommitRecord) []CommitRow {
	rows := make([]CommitRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, CommitRow{
			Hash:    record.Hash,
			Date:    record.Date,
			Author:  record.Author,
			Message: record.Message,
		})
	}
	return rows
}

// WriteCommitsParquet writes commit records to a Parquet file.
func WriteCommitsParquet(records []schema.CommitRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CommitRow struct tags
	writer := parquet.NewGenericWriter[CommitRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(BuildCommitRows(records)); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
