package agg

import (
	"testing"
	"time"

	"github.com/huangsam/gitbars/schema"
	"github.com/stretchr/testify/assert"
)

// commitsOnDays builds one commit per listed day at noon UTC.
func commitsOnDays(days ...string) []schema.CommitRecord {
	records := make([]schema.CommitRecord, 0, len(days))
	for _, day := range days {
		date, _ := time.Parse(time.RFC3339, day+"T12:00:00Z")
		records = append(records, schema.CommitRecord{Hash: "abc1234", Date: date, Author: "alice", Message: "feat: x"})
	}
	return records
}

func mustDate(day string) time.Time {
	d, _ := time.Parse(time.DateOnly, day)
	return d
}

func TestCalculateStreaksEmpty(t *testing.T) {
	result := CalculateStreaks(nil, time.Now())
	assert.Equal(t, schema.StreakResult{}, result)
}

func TestCalculateStreaksSingleDay(t *testing.T) {
	today := mustDate("2024-06-15")
	result := CalculateStreaks(commitsOnDays("2024-06-15"), today)

	assert.Equal(t, 1, result.Current)
	assert.Equal(t, 1, result.Longest)
	assert.Equal(t, mustDate("2024-06-15"), result.LongestStart)
	assert.Equal(t, mustDate("2024-06-15"), result.LongestEnd)
}

func TestCalculateStreaksConsecutiveEndingToday(t *testing.T) {
	today := mustDate("2024-06-15")
	result := CalculateStreaks(commitsOnDays("2024-06-13", "2024-06-14", "2024-06-15"), today)

	assert.Equal(t, 3, result.Current)
	assert.Equal(t, 3, result.Longest)
	assert.Equal(t, mustDate("2024-06-13"), result.LongestStart)
	assert.Equal(t, mustDate("2024-06-15"), result.LongestEnd)
}

func TestCalculateStreaksGapSplits(t *testing.T) {
	today := mustDate("2024-06-15")
	result := CalculateStreaks(commitsOnDays(
		"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04",
		"2024-06-10", "2024-06-11",
	), today)

	// The longest run is the earlier four-day span, not the most recent one.
	assert.Equal(t, 4, result.Longest)
	assert.Equal(t, mustDate("2024-06-01"), result.LongestStart)
	assert.Equal(t, mustDate("2024-06-04"), result.LongestEnd)
	assert.Equal(t, 0, result.Current)
}

func TestCalculateStreaksYesterdayFallback(t *testing.T) {
	// No commit today yet: the run ending yesterday still counts.
	today := mustDate("2024-06-15")
	result := CalculateStreaks(commitsOnDays("2024-06-12", "2024-06-13", "2024-06-14"), today)

	assert.Equal(t, 3, result.Current)
	assert.Equal(t, 3, result.Longest)
}

func TestCalculateStreaksBrokenByFullDay(t *testing.T) {
	// Last commit two days ago: the streak is over.
	today := mustDate("2024-06-15")
	result := CalculateStreaks(commitsOnDays("2024-06-12", "2024-06-13"), today)

	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 2, result.Longest)
}

func TestCalculateStreaksDuplicateDays(t *testing.T) {
	// Several commits on the same day count as one streak day.
	today := mustDate("2024-06-15")
	result := CalculateStreaks(commitsOnDays("2024-06-14", "2024-06-14", "2024-06-15"), today)

	assert.Equal(t, 2, result.Current)
	assert.Equal(t, 2, result.Longest)
}

func TestCalculateStreaksZoneNormalization(t *testing.T) {
	// Commits in different zones on adjacent local dates still chain.
	records := []schema.CommitRecord{}
	d1, _ := time.Parse(time.RFC3339, "2024-06-14T23:30:00+02:00")
	d2, _ := time.Parse(time.RFC3339, "2024-06-15T00:30:00+02:00")
	records = append(records,
		schema.CommitRecord{Hash: "abc1234", Date: d1, Author: "alice", Message: "feat: x"},
		schema.CommitRecord{Hash: "abc1235", Date: d2, Author: "alice", Message: "feat: y"},
	)

	result := CalculateStreaks(records, mustDate("2024-06-15"))
	assert.Equal(t, 2, result.Longest)
}
