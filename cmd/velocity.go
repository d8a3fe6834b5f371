package cmd

import (
	"github.com/huangsam/gitbars/core"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/spf13/cobra"
)

// velocityCmd reports lines added and removed per period.
var velocityCmd = &cobra.Command{
	Use:   "velocity [repo-path]",
	Short: "Show lines added and removed per period.",
	Long: `Chart code velocity: for each day, month or year, show how many
lines were added and removed along with the running net change.

Examples:
  gitbars velocity --period month
  gitbars velocity --author alice --since "3 months ago"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteVelocity(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run velocity analysis", err)
		}
	},
}
