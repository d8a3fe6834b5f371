package cmd

import (
	"github.com/huangsam/gitbars/core"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/spf13/cobra"
)

// activityCmd renders grouped commit counts as a bar chart or structured export.
var activityCmd = &cobra.Command{
	Use:   "activity [repo-path]",
	Short: "Show commit counts grouped by day, month or year.",
	Long: `Count commits in a Git repository and render them as a bar chart,
grouped by calendar period.

Examples:
  # Daily activity for the current directory
  gitbars activity

  # Monthly activity for another repository, one author only
  gitbars activity ~/src/project --period month --author alice

  # Last quarter with the full insights report appended
  gitbars activity --since "3 months ago" --insights

  # Machine-readable exports
  gitbars activity --output json --output-file activity.json
  gitbars activity --output parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run activity analysis", err)
		}
	},
}
