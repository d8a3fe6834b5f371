package outwriter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/huangsam/gitbars/schema"
)

// WriteVelocity renders per-period added/removed line totals as paired bars,
// newest period first.
func (ow *OutWriter) WriteVelocity(velocity map[string]schema.VelocityStat) {
	if len(velocity) == 0 {
		ow.noData("No velocity data found")
		return
	}

	totalAdded := 0
	totalRemoved := 0
	maxVal := 0
	keys := make([]string, 0, len(velocity))
	for key, stat := range velocity {
		totalAdded += stat.Added
		totalRemoved += stat.Removed
		if stat.Added > maxVal {
			maxVal = stat.Added
		}
		if stat.Removed > maxVal {
			maxVal = stat.Removed
		}
		keys = append(keys, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	net := totalAdded - totalRemoved
	netSign := ""
	if net >= 0 {
		netSign = "+"
	}

	ow.title("Code Velocity (lines changed)")
	fmt.Fprintf(ow.w, "Total: %s+%d%s / %s-%d%s / net %s%s%d%s\n\n",
		ow.scheme.Number, totalAdded, ow.scheme.Reset,
		ow.scheme.Alert, totalRemoved, ow.scheme.Reset,
		ow.scheme.Number, netSign, net, ow.scheme.Reset)

	maxWidth := ow.maxBarWidth(40, 60)
	for _, key := range keys {
		stat := velocity[key]
		addedWidth := 0
		removedWidth := 0
		if maxVal > 0 {
			addedWidth = stat.Added * maxWidth / maxVal
			removedWidth = stat.Removed * maxWidth / maxVal
		}
		fmt.Fprintf(ow.w, "%s%s%s  %s%s%s%s%s%s  %s+%d%s/%s-%d%s\n",
			ow.scheme.Date, key, ow.scheme.Reset,
			ow.scheme.Date, strings.Repeat("+", addedWidth), ow.scheme.Reset,
			ow.scheme.Alert, strings.Repeat("-", removedWidth), ow.scheme.Reset,
			ow.scheme.Number, stat.Added, ow.scheme.Reset,
			ow.scheme.Alert, stat.Removed, ow.scheme.Reset)
	}
}
