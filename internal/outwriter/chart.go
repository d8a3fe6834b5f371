package outwriter

import (
	"fmt"
	"sort"
	"strings"
)

// Glyph ramps for compact distribution summaries.
var (
	sparkLevels  = []rune("▁▂▃▄▅▆▇█")
	densityRamp  = []rune(" ░▒▓█")
	asciiSpark   = []rune(".:-=+*#%")
	asciiDensity = []rune(" .:*#")
)

// boxStats holds the five-number summary plus outliers for a value series.
// Quartiles are picked by simple index-based splitting, not interpolated.
type boxStats struct {
	lo       int // Lowest value within the 1.5xIQR fences
	q1       int
	median   int
	q3       int
	hi       int // Highest value within the 1.5xIQR fences
	outliers []int
}

// computeBoxStats derives the summary from an unsorted, non-empty series.
func computeBoxStats(values []int) boxStats {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	n := len(sorted)
	stats := boxStats{
		q1:     sorted[n/4],
		median: sorted[n/2],
		q3:     sorted[3*n/4],
	}

	iqr := stats.q3 - stats.q1
	loFence := float64(stats.q1) - 1.5*float64(iqr)
	hiFence := float64(stats.q3) + 1.5*float64(iqr)

	stats.lo = stats.q1
	stats.hi = stats.q3
	for _, v := range sorted {
		if float64(v) < loFence || float64(v) > hiFence {
			stats.outliers = append(stats.outliers, v)
			continue
		}
		if v < stats.lo {
			stats.lo = v
		}
		if v > stats.hi {
			stats.hi = v
		}
	}
	return stats
}

// renderSparkline maps a chronological series onto an eight-level glyph run.
func (ow *OutWriter) renderSparkline(values []int) string {
	levels := sparkLevels
	if !ow.symbols {
		levels = asciiSpark
	}
	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		idx := v * (len(levels) - 1) / maxVal
		b.WriteRune(levels[idx])
	}
	return b.String()
}

// renderBoxplot draws a single whisker/box/median glyph row scaled to width.
func renderBoxplot(stats boxStats, width int) string {
	span := stats.hi - stats.lo
	if span == 0 {
		return fmt.Sprintf("[%d]", stats.median)
	}
	scale := func(v int) int {
		pos := (v - stats.lo) * (width - 1) / span
		if pos < 0 {
			pos = 0
		}
		if pos > width-1 {
			pos = width - 1
		}
		return pos
	}

	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	for i := scale(stats.lo); i <= scale(stats.hi); i++ {
		row[i] = '-'
	}
	for i := scale(stats.q1); i <= scale(stats.q3); i++ {
		row[i] = '='
	}
	row[scale(stats.lo)] = '|'
	row[scale(stats.hi)] = '|'
	row[scale(stats.q1)] = '['
	row[scale(stats.q3)] = ']'
	row[scale(stats.median)] = '#'

	return string(row)
}

// renderViolin draws a one-line density profile of the value distribution,
// binning values across their range and mapping bin occupancy to a glyph ramp.
func (ow *OutWriter) renderViolin(values []int, width int) string {
	ramp := densityRamp
	if !ow.symbols {
		ramp = asciiDensity
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	span := maxVal - minVal
	if span == 0 {
		return strings.Repeat(string(ramp[len(ramp)-1]), 1)
	}

	bins := make([]int, width)
	for _, v := range values {
		idx := (v - minVal) * (width - 1) / span
		bins[idx]++
	}
	maxBin := 0
	for _, b := range bins {
		if b > maxBin {
			maxBin = b
		}
	}

	var b strings.Builder
	for _, count := range bins {
		idx := count * (len(ramp) - 1) / maxBin
		b.WriteRune(ramp[idx])
	}
	return b.String()
}

// WriteDistribution summarizes a chronological count series as a sparkline,
// a boxplot row and a violin density row.
func (ow *OutWriter) WriteDistribution(values []int) {
	if len(values) == 0 {
		ow.noData("No data to summarize")
		return
	}

	ow.title("Commit Distribution:")
	width := ow.maxBarWidth(20, 60)

	// The trend line shows the most recent points that fit the display.
	trend := values
	if len(trend) > width {
		trend = trend[len(trend)-width:]
	}
	fmt.Fprintf(ow.w, "Trend:  %s%s%s\n",
		ow.scheme.Bar, ow.renderSparkline(trend), ow.scheme.Reset)

	stats := computeBoxStats(values)
	fmt.Fprintf(ow.w, "Spread: %s%s%s  min=%d q1=%d med=%d q3=%d max=%d",
		ow.scheme.Bar, renderBoxplot(stats, width), ow.scheme.Reset,
		stats.lo, stats.q1, stats.median, stats.q3, stats.hi)
	if len(stats.outliers) > 0 {
		fmt.Fprintf(ow.w, " %s(%d outliers)%s", ow.scheme.Alert, len(stats.outliers), ow.scheme.Reset)
	}
	fmt.Fprintln(ow.w)

	fmt.Fprintf(ow.w, "Shape:  %s%s%s\n",
		ow.scheme.Bar, ow.renderViolin(values, width), ow.scheme.Reset)
}
