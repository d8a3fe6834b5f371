package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/huangsam/gitbars/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWriter returns a writer with colors off, ASCII glyphs and a fixed
// width so assertions are stable.
func newTestWriter(buf *bytes.Buffer) *OutWriter {
	cfg := &contract.Config{
		Width:      80,
		UseSymbols: false,
		Colors:     contract.DisabledColorScheme(),
	}
	return New(buf, cfg)
}

func TestWriteBarsEmpty(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteBars(map[string]int{})
	assert.Contains(t, buf.String(), "No commits found")
}

func TestWriteBars(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteBars(map[string]int{
		"2024-03-05": 2,
		"2024-03-06": 4,
		"2024-03-04": 1,
	})
	out := buf.String()

	assert.Contains(t, out, "Activity Summary (7 commits over 3 periods)")

	// Newest period first.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-06"))
	assert.True(t, strings.HasPrefix(lines[2], "2024-03-05"))
	assert.True(t, strings.HasPrefix(lines[3], "2024-03-04"))

	// Bars scale linearly against the max count. Width 80 leaves a 60-wide
	// bar budget, so 4 commits map to 60 glyphs and 2 commits to 30.
	assert.Equal(t, 60, strings.Count(lines[1], "#"))
	assert.Equal(t, 30, strings.Count(lines[2], "#"))
	assert.Equal(t, 15, strings.Count(lines[3], "#"))
}

func TestWriteActivityChart(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteActivityChart(
		[]string{"Monday", "Tuesday"},
		[]int{4, 2},
		"Commits by Day of Week",
	)
	out := buf.String()

	assert.Contains(t, out, "Commits by Day of Week:")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 40, strings.Count(lines[1], "#"))
	assert.Equal(t, 20, strings.Count(lines[2], "#"))
}

func TestWriteActivityChartAllZero(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteActivityChart([]string{"Monday"}, []int{0}, "Silent")
	assert.Empty(t, buf.String())
}

func TestWriteActivityChartPreservesOrder(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteActivityChart(
		[]string{"Sunday", "Monday"},
		[]int{1, 3},
		"Order",
	)
	out := buf.String()
	assert.Less(t, strings.Index(out, "Sunday"), strings.Index(out, "Monday"))
}
