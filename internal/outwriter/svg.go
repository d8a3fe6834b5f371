package outwriter

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Fixed chart geometry for the SVG export.
const (
	svgWidth     = 800
	svgHeight    = 400
	svgMarginTop = 20
	svgMarginX   = 60
	svgPlotH     = 300
	gridlines    = 5

	// SVGFileName is the fixed output name, written to the working directory.
	SVGFileName = "commit_chart.svg"
)

// RenderSVG produces a fixed-size 800x400 bar chart of the grouped counts
// with hover tooltips, rotated date labels and five evenly spaced value
// gridlines. Empty input yields a chart with a "No data" notice.
func RenderSVG(grouped map[string]int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")

	if len(grouped) == 0 {
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" font-size="16" fill="#666">No data</text>`+"\n",
			svgWidth/2, svgHeight/2)
		b.WriteString("</svg>\n")
		return b.String()
	}

	keys := make([]string, 0, len(grouped))
	maxCount := 0
	for key, count := range grouped {
		keys = append(keys, key)
		if count > maxCount {
			maxCount = count
		}
	}
	sort.Strings(keys)

	plotW := svgWidth - 2*svgMarginX
	baseline := svgMarginTop + svgPlotH

	// Five evenly spaced value gridlines with labels.
	for i := 0; i < gridlines; i++ {
		value := maxCount * i / (gridlines - 1)
		y := baseline - svgPlotH*i/(gridlines-1)
		fmt.Fprintf(&b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="#dddddd" stroke-width="1"/>`+"\n",
			svgMarginX, y, svgMarginX+plotW, y)
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="end" font-size="10" fill="#666">%d</text>`+"\n",
			svgMarginX-6, y+4, value)
	}

	// Proportional bars with a tooltip per bar.
	slot := float64(plotW) / float64(len(keys))
	barW := slot * 0.8
	for i, key := range keys {
		count := grouped[key]
		barH := float64(count) / float64(maxCount) * float64(svgPlotH)
		x := float64(svgMarginX) + slot*float64(i) + slot*0.1
		y := float64(baseline) - barH
		fmt.Fprintf(&b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#4c78a8"><title>%s: %d commits</title></rect>`+"\n",
			x, y, barW, barH, key, count)

		labelX := x + barW/2
		labelY := float64(baseline) + 12
		fmt.Fprintf(&b, `<text x="%.1f" y="%.1f" transform="rotate(45 %.1f,%.1f)" font-size="10" fill="#333">%s</text>`+"\n",
			labelX, labelY, labelX, labelY, key)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// WriteSVGFile renders the chart and writes it to the fixed file name in the
// working directory, returning the written path.
func WriteSVGFile(grouped map[string]int) (string, error) {
	if err := os.WriteFile(SVGFileName, []byte(RenderSVG(grouped)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write SVG chart: %w", err)
	}
	return SVGFileName, nil
}
