package cmd

import (
	"github.com/huangsam/gitbars/core"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/spf13/cobra"
)

// heatmapCmd renders the calendar heatmap of the most recent year.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [repo-path]",
	Short: "Show a calendar heatmap of the last 365 days.",
	Long: `Render a contribution-style calendar heatmap covering the most
recent 365 days, with one column per week and five intensity bands.

Examples:
  gitbars heatmap
  gitbars heatmap ~/src/project --author alice`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeatmap(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run heatmap analysis", err)
		}
	},
}
