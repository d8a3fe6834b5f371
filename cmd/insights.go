package cmd

import (
	"github.com/huangsam/gitbars/core"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/spf13/cobra"
)

// insightsCmd prints the full repository insights report.
var insightsCmd = &cobra.Command{
	Use:   "insights [repo-path]",
	Short: "Show timeline, streaks, peaks, contributors and commit types.",
	Long: `Summarize the commit history of a Git repository:
- Timeline with first and latest commit and average commits per day
- Current and longest consecutive-day commit streaks
- Peak hour and peak weekday with hour/weekday histograms
- Commit type breakdown from message prefixes
- Top contributors by commit count
- Daily distribution with trend, boxplot and shape rows

Examples:
  gitbars insights
  gitbars insights ~/src/project --since "1 year ago"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteInsights(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run insights analysis", err)
		}
	},
}
