package cmd

import (
	"github.com/huangsam/gitbars/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the gitbars MCP server",
	Long:  `Launch an MCP server that allows AI agents to query commit activity via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// All human-facing alerts already go to stderr, so stdio stays
		// clean for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
