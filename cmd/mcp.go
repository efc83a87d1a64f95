package cmd

import (
	"github.com/Nemesis2003/smartci-backend/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the SmartCI MCP server",
	Long:  `Launch an MCP server that allows AI agents to estimate CI savings via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout clean in MCP mode; stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, newPipeline())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
