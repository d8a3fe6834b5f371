package cmd

import (
	"github.com/huangsam/gitbars/core"
	"github.com/huangsam/gitbars/internal/contract"
	"github.com/spf13/cobra"
)

// churnCmd lists the most frequently changed files.
var churnCmd = &cobra.Command{
	Use:   "churn [repo-path]",
	Short: "Show the most frequently changed files.",
	Long: `Rank files by how often they appear in commits, highlighting the
paths that absorb the most change.

Examples:
  gitbars churn --top 20
  gitbars churn --exclude "*.lock,vendor/**" --since "6 months ago"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChurn(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run churn analysis", err)
		}
	},
}
