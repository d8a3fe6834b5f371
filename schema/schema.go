// Package schema has configs, models and constants for all parts of gitbars.
package schema

import "time"

// CommitRecord represents a single parsed commit from the git log output.
// Records are immutable once parsed and live for the duration of one invocation.
type CommitRecord struct {
	Hash    string    // Abbreviated commit hash
	Date    time.Time // Author timestamp with its original zone offset
	Author  string    // Author name as reported by git
	Message string    // First line of the commit message
}

// AuthorCount pairs an author name with their commit count.
type AuthorCount struct {
	Author string `json:"author"`
	Count  int    `json:"count"`
}

// CommitDetails holds the aggregate statistics derived from a commit sequence.
// A zero-value CommitDetails is returned for an empty input sequence.
type CommitDetails struct {
	First            time.Time      // Timestamp of the earliest commit
	Last             time.Time      // Timestamp of the latest commit
	Total            int            // Total number of commits
	PeakHour         int            // Hour of day (0-23) with the most commits
	PeakHourCount    int            // Commit count at the peak hour
	PeakWeekday      string         // Weekday name with the most commits (Monday-first ordering)
	PeakWeekdayCount int            // Commit count at the peak weekday
	Authors          []AuthorCount  // Per-author counts, descending by count
	Types            map[string]int // Message-prefix classification histogram
	Hours            [24]int        // Per-hour commit histogram
	Weekdays         [7]int         // Per-weekday commit histogram, Monday first
}

// StreakResult holds consecutive-day commit streak statistics.
type StreakResult struct {
	Current      int       // Run length ending at today (or yesterday if today is empty)
	Longest      int       // Longest run of consecutive calendar days
	LongestStart time.Time // First date of the longest run
	LongestEnd   time.Time // Last date of the longest run
}

// VelocityStat holds line-change totals for one period.
type VelocityStat struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// ChurnEntry pairs a file path with its raw change count.
type ChurnEntry struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}
