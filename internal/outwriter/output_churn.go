package outwriter

import (
	"fmt"
	"strings"

	"github.com/huangsam/gitbars/internal/contract"
	"github.com/huangsam/gitbars/schema"
)

// Maximum characters of a file path shown before left-eliding.
const churnPathBudget = 45

// WriteChurn renders the most frequently changed files with count bars and a
// relative intensity label. Long paths are elided from the left so the file
// name itself stays visible.
func (ow *OutWriter) WriteChurn(entries []schema.ChurnEntry) {
	if len(entries) == 0 {
		ow.noData("No file change data found")
		return
	}

	ow.title("Most Frequently Changed Files (hotspots)")

	maxChanges := entries[0].Count
	glyph := ow.blockGlyph()
	for _, entry := range entries {
		ratio := float64(entry.Count) / float64(maxChanges)
		bar := strings.Repeat(glyph, int(ratio*30))
		fmt.Fprintf(ow.w, "%s%-48s%s %s%4d%s %s%s%s %s\n",
			ow.scheme.Date, contract.TruncatePath(entry.Path, churnPathBudget), ow.scheme.Reset,
			ow.scheme.Number, entry.Count, ow.scheme.Reset,
			ow.scheme.Bar, bar, ow.scheme.Reset,
			contract.GetColorLabel(ratio))
	}
}
