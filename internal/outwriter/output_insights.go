package outwriter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/gitbars/schema"
	"github.com/olekukonko/tablewriter"
)

// WriteInsights composes the full repository insight report: timeline,
// streaks, activity patterns, commit types, top contributors and the daily
// distribution summary.
func (ow *OutWriter) WriteInsights(details schema.CommitDetails, streaks schema.StreakResult, dailyCounts map[string]int) {
	if details.Total == 0 {
		ow.noData("No commit details to summarize")
		return
	}

	ow.title("=== Repository Insights ===")

	// Timeline
	projectAge := int(details.Last.Sub(details.First).Hours() / 24)
	ageDivisor := projectAge
	if ageDivisor < 1 {
		ageDivisor = 1
	}
	ow.title("Timeline:")
	fmt.Fprintf(ow.w, "First commit: %s%s%s\n",
		ow.scheme.Date, details.First.Format(schema.DayKeyLayout), ow.scheme.Reset)
	fmt.Fprintf(ow.w, "Latest commit: %s%s%s\n",
		ow.scheme.Date, details.Last.Format(schema.DayKeyLayout), ow.scheme.Reset)
	fmt.Fprintf(ow.w, "Project age: %s%d days%s\n", ow.scheme.Number, projectAge, ow.scheme.Reset)
	fmt.Fprintf(ow.w, "Average commits per day: %s%.1f%s\n",
		ow.scheme.Number, float64(details.Total)/float64(ageDivisor), ow.scheme.Reset)

	// Streaks
	ow.title("Streaks:")
	fmt.Fprintf(ow.w, "Current streak: %s%d days%s\n", ow.scheme.Number, streaks.Current, ow.scheme.Reset)
	fmt.Fprintf(ow.w, "Longest streak: %s%d days%s", ow.scheme.Number, streaks.Longest, ow.scheme.Reset)
	if streaks.Longest > 0 {
		fmt.Fprintf(ow.w, " (%s%s → %s%s)",
			ow.scheme.Date,
			streaks.LongestStart.Format(schema.DayKeyLayout),
			streaks.LongestEnd.Format(schema.DayKeyLayout),
			ow.scheme.Reset)
	}
	fmt.Fprintln(ow.w)

	// Activity patterns
	ow.title("Activity Patterns:")
	fmt.Fprintf(ow.w, "Most active hour: %s%02d:00%s (%d commits)\n",
		ow.scheme.Number, details.PeakHour, ow.scheme.Reset, details.PeakHourCount)
	fmt.Fprintf(ow.w, "Most active day: %s%s%s (%d commits)\n",
		ow.scheme.Number, details.PeakWeekday, ow.scheme.Reset, details.PeakWeekdayCount)

	ow.WriteActivityChart(schema.WeekdayNames[:], details.Weekdays[:], "Commits by Day of Week")
	ow.writeHourChart(details.Hours)
	ow.writeCommitTypes(details)
	ow.writeContributors(details)
	ow.writeDailyDistribution(dailyCounts)
}

// writeHourChart renders the per-hour histogram, skipping silent hours.
func (ow *OutWriter) writeHourChart(hours [24]int) {
	var labels []string
	var values []int
	for hour, count := range hours {
		if count == 0 {
			continue
		}
		labels = append(labels, fmt.Sprintf("%02d:00", hour))
		values = append(values, count)
	}
	ow.WriteActivityChart(labels, values, "Commits by Hour")
}

// writeCommitTypes renders the classification histogram with percentage bars.
func (ow *OutWriter) writeCommitTypes(details schema.CommitDetails) {
	ow.title("Commit Types:")
	glyph := ow.blockGlyph()
	for _, bucket := range schema.CommitTypeOrder {
		count := details.Types[string(bucket)]
		if count == 0 {
			continue
		}
		percentage := float64(count) / float64(details.Total) * 100
		bar := strings.Repeat(glyph, int(percentage/2))
		name := strings.ToUpper(string(bucket)[:1]) + string(bucket)[1:]
		fmt.Fprintf(ow.w, "%-15s %s%4d%s %s%s%s (%.1f%%)\n",
			name,
			ow.scheme.Number, count, ow.scheme.Reset,
			ow.scheme.Bar, bar, ow.scheme.Reset,
			percentage)
	}
}

// writeContributors renders the top five authors as a table. Skipped for
// single-author repositories where the ranking carries no signal.
func (ow *OutWriter) writeContributors(details schema.CommitDetails) {
	if len(details.Authors) <= 1 {
		return
	}

	ow.title("Top Contributors:")
	table := tablewriter.NewWriter(ow.w)
	table.Header([]string{"Rank", "Author", "Commits", "Share"})

	var data [][]string
	for i, ac := range details.Authors {
		if i >= 5 {
			break
		}
		share := float64(ac.Count) / float64(details.Total) * 100
		data = append(data, []string{
			strconv.Itoa(i + 1),
			ac.Author,
			strconv.Itoa(ac.Count),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	if err := table.Bulk(data); err != nil {
		ow.noData("Could not render contributor table")
		return
	}
	if err := table.Render(); err != nil {
		ow.noData("Could not render contributor table")
	}
}

// writeDailyDistribution feeds the chronological daily counts into the
// distribution summary.
func (ow *OutWriter) writeDailyDistribution(dailyCounts map[string]int) {
	if len(dailyCounts) == 0 {
		return
	}
	keys := make([]string, 0, len(dailyCounts))
	for key := range dailyCounts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	values := make([]int, 0, len(keys))
	for _, key := range keys {
		values = append(values, dailyCounts[key])
	}
	ow.WriteDistribution(values)
}
