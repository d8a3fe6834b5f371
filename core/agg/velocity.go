package agg

import (
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/gitbars/schema"
)

// parseStatCount converts a numstat count to an int. Binary files report "-"
// which contributes zero. The second return value is false when the token is
// neither a dash nor a valid number.
func parseStatCount(s string) (int, bool) {
	if s == "-" {
		return 0, true
	}
	val, err := strconv.Atoi(s)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// ParseVelocity aggregates a mixed numstat stream into per-period line totals.
// Date-marker lines (ISO timestamp per commit) set the current period key;
// every following "added<TAB>removed<TAB>path" line is attributed to it.
// Stat lines appearing before any date marker are silently dropped.
func ParseVelocity(out []byte, period schema.GroupPeriod) map[string]schema.VelocityStat {
	velocity := make(map[string]schema.VelocityStat)
	layout := period.KeyLayout()
	currentKey := ""

	for line := range strings.SplitSeq(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Date marker lines start with an ISO date (YYYY-MM-DD...).
		if len(line) > 10 && line[4] == '-' {
			if date, err := time.Parse(time.RFC3339, line); err == nil {
				currentKey = date.Format(layout)
				continue
			}
		}

		if currentKey == "" || !strings.Contains(line, "\t") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		added, okAdded := parseStatCount(parts[0])
		removed, okRemoved := parseStatCount(parts[1])
		if !okAdded || !okRemoved {
			continue
		}
		stat := velocity[currentKey]
		stat.Added += added
		stat.Removed += removed
		velocity[currentKey] = stat
	}

	return velocity
}
