package agg

import (
	"sort"
	"strings"

	"github.com/huangsam/gitbars/internal/contract"
	"github.com/huangsam/gitbars/schema"
)

// CountFileChurn aggregates a file-name-only diff listing into ordered churn
// entries: descending by raw occurrence count, ties broken by the order a
// path was first observed in the stream, truncated to topN when topN > 0.
// Paths matching an exclude pattern are dropped before counting.
func CountFileChurn(out []byte, excludes []string, topN int) []schema.ChurnEntry {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for line := range strings.SplitSeq(strings.TrimSpace(string(out)), "\n") {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if contract.ShouldExclude(path, excludes) {
			continue
		}
		if _, ok := counts[path]; !ok {
			firstSeen[path] = len(firstSeen)
		}
		counts[path]++
	}

	entries := make([]schema.ChurnEntry, 0, len(counts))
	for path, count := range counts {
		entries = append(entries, schema.ChurnEntry{Path: path, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Path] < firstSeen[entries[j].Path]
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
