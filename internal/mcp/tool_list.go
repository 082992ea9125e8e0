package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/amponce/va-design-system-monitor/internal/registry"
	"github.com/amponce/va-design-system-monitor/internal/types"
)

// AddListTools registers the table-wide listing tools with an MCP
// server.
func AddListTools(s *server.MCPServer, engine *registry.Engine) {
	listComponents := mcp.NewTool(
		"list_components",
		mcp.WithDescription("List all design system components with their maturity status."),
		mcp.WithBoolean("force_refresh",
			mcp.Description("Bypass the cache and refetch the component declaration file")),
	)
	s.AddTool(listComponents, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		force := parseBoolArg(argsMap, "force_refresh", false)
		table, err := engine.GetComponents(ctx, force)
		if err != nil {
			return nil, err
		}
		return jsonResult(map[string]interface{}{
			"total":      len(table),
			"components": table,
		})
	})

	byStatus := mcp.NewTool(
		"get_components_by_status",
		mcp.WithDescription("List design system components carrying a given status (RECOMMENDED, STABLE, EXPERIMENTAL, AVAILABLE_WITH_ISSUES, USE_WITH_CAUTION, UNKNOWN)."),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("Status value to filter by")),
	)
	s.AddTool(byStatus, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		status, err := parseStringArg(argsMap, "status", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		records, err := engine.GetComponentsByStatus(ctx, types.Status(status))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]interface{}{
			"status":     status,
			"total":      len(records),
			"components": records,
		})
	})
}
