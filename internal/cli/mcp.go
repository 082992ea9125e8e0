package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/amponce/va-design-system-monitor/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server exposing the monitor's operations",
	Long: `Start the Model Context Protocol (MCP) server that lets LLM-powered
assistants query the design system: component lookup, property listing,
example generation, validation, linting, and reporting.

The server communicates via stdio (standard MCP transport); logs go to
stderr.

Example:
  va-design-system-monitor mcp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		server, err := mcp.NewServer(engine, Version, slog.Default())
		if err != nil {
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
