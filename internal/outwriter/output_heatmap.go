package outwriter

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/gitbars/schema"
)

// Number of trailing days covered by the calendar heatmap.
const heatmapDays = 365

// Heatmap intensity glyphs, lowest to highest band.
var (
	heatGlyphs      = []string{"·", "░", "▒", "▓", "█"}
	asciiHeatGlyphs = []string{".", "-", "=", "+", "#"}
)

// WriteHeatmap renders a calendar heatmap of daily commit counts for the most
// recent 365 days. Counts are bucketed into five intensity bands; days are
// grouped into week columns starting from the first day's weekday offset.
func (ow *OutWriter) WriteHeatmap(dailyCounts map[string]int, today time.Time) {
	if len(dailyCounts) == 0 {
		ow.noData("No commits found")
		return
	}

	glyphs := heatGlyphs
	if !ow.symbols {
		glyphs = asciiHeatGlyphs
	}

	start := today.AddDate(0, 0, -(heatmapDays - 1))
	offset := schema.WeekdayIndex(int(start.Weekday()))
	weeks := (offset + heatmapDays + 6) / 7

	maxCount := 0
	for _, count := range dailyCounts {
		if count > maxCount {
			maxCount = count
		}
	}

	// grid[row][col] holds the band glyph; -1 marks cells outside the window.
	grid := make([][]int, 7)
	for row := range grid {
		grid[row] = make([]int, weeks)
		for col := range grid[row] {
			grid[row][col] = -1
		}
	}
	for i := 0; i < heatmapDays; i++ {
		day := start.AddDate(0, 0, i)
		cell := offset + i
		grid[cell%7][cell/7] = heatBand(dailyCounts[day.Format(schema.DayKeyLayout)], maxCount)
	}

	ow.title("Commit Heatmap (last %d days)", heatmapDays)
	labels := [7]string{"Mon", "", "Wed", "", "Fri", "", "Sun"}
	for row := 0; row < 7; row++ {
		var b strings.Builder
		for col := 0; col < weeks; col++ {
			band := grid[row][col]
			if band < 0 {
				b.WriteString(" ")
				continue
			}
			b.WriteString(glyphs[band])
		}
		fmt.Fprintf(ow.w, "%-4s %s%s%s\n", labels[row], ow.scheme.Bar, b.String(), ow.scheme.Reset)
	}
	fmt.Fprintf(ow.w, "     less %s more\n", strings.Join(glyphs, ""))
}

// heatBand buckets a daily count into one of five intensity bands.
func heatBand(count, maxCount int) int {
	if count == 0 || maxCount == 0 {
		return 0
	}
	band := 1 + (count-1)*4/maxCount
	if band > 4 {
		band = 4
	}
	return band
}
