package outwriter

import (
	"fmt"
	"sort"
	"strings"
)

// WriteBars renders the grouped-count map as a horizontal bar chart, newest
// period first. Bar widths scale linearly against the maximum count, clamped
// to the available display width.
func (ow *OutWriter) WriteBars(grouped map[string]int) {
	if len(grouped) == 0 {
		ow.noData("No commits found")
		return
	}

	total := 0
	maxCount := 0
	keys := make([]string, 0, len(grouped))
	for key, count := range grouped {
		total += count
		if count > maxCount {
			maxCount = count
		}
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	ow.title("Activity Summary (%d commits over %d periods)", total, len(grouped))

	maxWidth := ow.maxBarWidth(20, 60)
	barUnit := float64(maxWidth) / float64(maxCount)
	glyph := ow.barGlyph()

	for _, key := range keys {
		count := grouped[key]
		bar := strings.Repeat(glyph, int(float64(count)*barUnit))
		fmt.Fprintf(ow.w, "%s%s%s  %s%4d%s  %s%s%s\n",
			ow.scheme.Date, key, ow.scheme.Reset,
			ow.scheme.Number, count, ow.scheme.Reset,
			ow.scheme.Bar, bar, ow.scheme.Reset)
	}
}

// WriteActivityChart renders a labeled horizontal bar chart for histogram
// data, preserving the given label order.
func (ow *OutWriter) WriteActivityChart(labels []string, values []int, chartTitle string) {
	if len(values) == 0 {
		return
	}

	maxValue := 0
	maxLabel := 0
	for i, v := range values {
		if v > maxValue {
			maxValue = v
		}
		if len(labels[i]) > maxLabel {
			maxLabel = len(labels[i])
		}
	}
	if maxValue == 0 {
		return
	}

	ow.title("%s:", chartTitle)
	glyph := ow.blockGlyph()
	for i, v := range values {
		barWidth := v * 40 / maxValue
		fmt.Fprintf(ow.w, "%-*s %s%4d%s %s%s%s\n",
			maxLabel, labels[i],
			ow.scheme.Number, v, ow.scheme.Reset,
			ow.scheme.Bar, strings.Repeat(glyph, barWidth), ow.scheme.Reset)
	}
}
