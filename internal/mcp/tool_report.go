package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/amponce/va-design-system-monitor/internal/registry"
)

// AddReportTool registers the report generation tool with an MCP
// server.
func AddReportTool(s *server.MCPServer, engine *registry.Engine) {
	report := mcp.NewTool(
		"generate_report",
		mcp.WithDescription("Generate a summary report of the design system: totals, status and category counts, recommended and caution lists."),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Bypass the cache and refetch the component declaration file")),
	)
	s.AddTool(report, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		force := parseBoolArg(argsMap, "force_refresh", false)
		result, err := engine.GenerateReport(ctx, force)
		if err != nil {
			return nil, err
		}
		return jsonResult(result)
	})
}
