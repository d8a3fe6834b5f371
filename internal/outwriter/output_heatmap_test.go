package outwriter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatBand(t *testing.T) {
	tests := []struct {
		count, maxCount, want int
	}{
		{0, 10, 0},
		{0, 0, 0},
		{5, 0, 0},
		{1, 1, 1},
		{1, 10, 1},
		{3, 5, 2},
		{5, 5, 4},
		{10, 10, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, heatBand(tt.count, tt.maxCount), "count=%d max=%d", tt.count, tt.maxCount)
	}
}

func TestWriteHeatmapEmpty(t *testing.T) {
	var buf bytes.Buffer
	newTestWriter(&buf).WriteHeatmap(map[string]int{}, time.Now())
	assert.Contains(t, buf.String(), "No commits found")
}

func TestWriteHeatmap(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	daily := map[string]int{
		"2024-06-15": 3,
		"2024-06-14": 1,
		"2024-06-01": 2,
	}

	var buf bytes.Buffer
	newTestWriter(&buf).WriteHeatmap(daily, today)
	out := buf.String()

	assert.Contains(t, out, "Commit Heatmap (last 365 days)")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Wed")
	assert.Contains(t, out, "Fri")
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "less")
	assert.Contains(t, out, "more")

	// Seven weekday rows plus title and legend.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)

	// Active days appear as non-zero bands among the zero-band dots:
	// count 1 of max 3 lands in band 1, count 2 in band 2, count 3 in band 3.
	grid := strings.Join(lines[1:8], "\n")
	assert.Contains(t, grid, "-")
	assert.Contains(t, grid, "=")
	assert.Contains(t, grid, "+")
	assert.Contains(t, grid, ".")
	assert.NotContains(t, grid, "#")
}

func TestWriteHeatmapDaysOutsideWindowIgnored(t *testing.T) {
	today := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	daily := map[string]int{
		"2020-01-01": 50, // far outside the window
		"2024-06-15": 1,
	}

	var buf bytes.Buffer
	newTestWriter(&buf).WriteHeatmap(daily, today)
	out := buf.String()

	// The stale count still drives the max, so today's single commit lands
	// in the lowest non-zero band rather than the top one.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	grid := strings.Join(lines[1:8], "\n")
	assert.Contains(t, grid, "-")
	assert.NotContains(t, grid, "#")
}
