package schema

import "time"

// ExportCommit is the wire form of a commit record in the JSON export.
// Date is rendered as ISO 8601 with the commit's original zone offset so the
// export round-trips without losing information.
type ExportCommit struct {
	Hash    string `json:"hash"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// ActivityExport is the structured export form of one activity run.
type ActivityExport struct {
	GroupedCommits map[string]int `json:"grouped_commits"`
	CommitData     []ExportCommit `json:"commit_data"`
}

// NewActivityExport builds the export model from aggregated results.
func NewActivityExport(grouped map[string]int, records []CommitRecord) ActivityExport {
	data := make([]ExportCommit, 0, len(records))
	for _, r := range records {
		data = append(data, ExportCommit{
			Hash:    r.Hash,
			Date:    r.Date.Format(time.RFC3339),
			Author:  r.Author,
			Message: r.Message,
		})
	}
	return ActivityExport{GroupedCommits: grouped, CommitData: data}
}

// InsightsExport is the wire form of the insights report, used by structured
// consumers such as MCP tool results.
type InsightsExport struct {
	TotalCommits     int            `json:"total_commits"`
	FirstCommit      string         `json:"first_commit"`
	LastCommit       string         `json:"last_commit"`
	PeakHour         int            `json:"peak_hour"`
	PeakHourCount    int            `json:"peak_hour_count"`
	PeakWeekday      string         `json:"peak_weekday"`
	PeakWeekdayCount int            `json:"peak_weekday_count"`
	CurrentStreak    int            `json:"current_streak"`
	LongestStreak    int            `json:"longest_streak"`
	Authors          []AuthorCount  `json:"authors"`
	CommitTypes      map[string]int `json:"commit_types"`
}

// NewInsightsExport builds the export model from the aggregate details and
// streak statistics.
func NewInsightsExport(details CommitDetails, streaks StreakResult) InsightsExport {
	return InsightsExport{
		TotalCommits:     details.Total,
		FirstCommit:      details.First.Format(time.RFC3339),
		LastCommit:       details.Last.Format(time.RFC3339),
		PeakHour:         details.PeakHour,
		PeakHourCount:    details.PeakHourCount,
		PeakWeekday:      details.PeakWeekday,
		PeakWeekdayCount: details.PeakWeekdayCount,
		CurrentStreak:    streaks.Current,
		LongestStreak:    streaks.Longest,
		Authors:          details.Authors,
		CommitTypes:      details.Types,
	}
}

// Records decodes the export back into commit records.
func (e ActivityExport) Records() ([]CommitRecord, error) {
	records := make([]CommitRecord, 0, len(e.CommitData))
	for _, c := range e.CommitData {
		date, err := time.Parse(time.RFC3339, c.Date)
		if err != nil {
			return nil, err
		}
		records = append(records, CommitRecord{
			Hash:    c.Hash,
			Date:    date,
			Author:  c.Author,
			Message: c.Message,
		})
	}
	return records, nil
}
