// Package agg has aggregation logic for commit activity data.
package agg

import (
	"sort"
	"strings"

	"github.com/huangsam/gitbars/schema"
)

// classifyPrefixes maps message prefixes to their classification bucket.
// Checked in this order; the first match wins.
var classifyPrefixes = []struct {
	prefixes []string
	bucket   schema.CommitType
}{
	{[]string{"fix", "bug"}, schema.TypeFixes},
	{[]string{"feat", "add"}, schema.TypeFeatures},
	{[]string{"doc", "readme"}, schema.TypeDocumentation},
	{[]string{"refactor", "style", "clean"}, schema.TypeRefactoring},
	{[]string{"test"}, schema.TypeTests},
}

// ClassifyMessage buckets a commit message by its prefix, case-insensitive.
func ClassifyMessage(message string) schema.CommitType {
	lower := strings.ToLower(message)
	for _, c := range classifyPrefixes {
		for _, p := range c.prefixes {
			if strings.HasPrefix(lower, p) {
				return c.bucket
			}
		}
	}
	return schema.TypeOther
}

// SummarizeCommits derives aggregate statistics from a commit sequence.
// An empty sequence yields a zero-value CommitDetails.
//
// Peak hour and peak weekday ties are broken deterministically: the lowest
// hour value and the lowest Monday-first weekday index win.
func SummarizeCommits(records []schema.CommitRecord) schema.CommitDetails {
	if len(records) == 0 {
		return schema.CommitDetails{}
	}

	details := schema.CommitDetails{
		First: records[0].Date,
		Last:  records[0].Date,
		Total: len(records),
		Types: make(map[string]int),
	}
	authorCounts := make(map[string]int)

	for _, record := range records {
		if record.Date.Before(details.First) {
			details.First = record.Date
		}
		if record.Date.After(details.Last) {
			details.Last = record.Date
		}
		authorCounts[record.Author]++
		details.Hours[record.Date.Hour()]++
		details.Weekdays[schema.WeekdayIndex(int(record.Date.Weekday()))]++
		details.Types[string(ClassifyMessage(record.Message))]++
	}

	// Lowest index wins on ties, scanning with strict greater-than.
	for hour, count := range details.Hours {
		if count > details.PeakHourCount {
			details.PeakHour = hour
			details.PeakHourCount = count
		}
	}
	for i, count := range details.Weekdays {
		if count > details.PeakWeekdayCount {
			details.PeakWeekday = schema.WeekdayNames[i]
			details.PeakWeekdayCount = count
		}
	}

	details.Authors = make([]schema.AuthorCount, 0, len(authorCounts))
	for author, count := range authorCounts {
		details.Authors = append(details.Authors, schema.AuthorCount{Author: author, Count: count})
	}
	sort.Slice(details.Authors, func(i, j int) bool {
		if details.Authors[i].Count != details.Authors[j].Count {
			return details.Authors[i].Count > details.Authors[j].Count
		}
		return details.Authors[i].Author < details.Authors[j].Author
	})

	return details
}
