package agg

import (
	"sort"
	"time"

	"github.com/huangsam/gitbars/schema"
)

// dateOnly reduces a zoned timestamp to its local calendar date, normalized
// to midnight UTC so adjacent dates differ by exactly 24 hours.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CalculateStreaks computes the longest run of consecutive calendar days with
// commits and the current run ending at today. When today itself has no
// activity the current run is counted from yesterday instead, so a streak is
// not considered broken until a full day has elapsed without a commit.
func CalculateStreaks(records []schema.CommitRecord, today time.Time) schema.StreakResult {
	if len(records) == 0 {
		return schema.StreakResult{}
	}

	dateSet := make(map[time.Time]struct{})
	for _, record := range records {
		dateSet[dateOnly(record.Date)] = struct{}{}
	}
	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	result := schema.StreakResult{
		Longest:      1,
		LongestStart: dates[0],
		LongestEnd:   dates[0],
	}
	currentRun := 1
	currentStart := dates[0]

	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			currentRun++
			continue
		}
		if currentRun > result.Longest {
			result.Longest = currentRun
			result.LongestStart = currentStart
			result.LongestEnd = dates[i-1]
		}
		currentRun = 1
		currentStart = dates[i]
	}
	if currentRun > result.Longest {
		result.Longest = currentRun
		result.LongestStart = currentStart
		result.LongestEnd = dates[len(dates)-1]
	}

	result.Current = countBackward(dateSet, dateOnly(today))
	if result.Current == 0 {
		result.Current = countBackward(dateSet, dateOnly(today).AddDate(0, 0, -1))
	}

	return result
}

// countBackward counts consecutive dates present in the set, walking
// backward from the given starting date.
func countBackward(dateSet map[time.Time]struct{}, start time.Time) int {
	count := 0
	for check := start; ; check = check.AddDate(0, 0, -1) {
		if _, ok := dateSet[check]; !ok {
			break
		}
		count++
	}
	return count
}
