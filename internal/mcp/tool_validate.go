package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/amponce/va-design-system-monitor/internal/registry"
)

// AddValidationTools registers the validation and lint tools with an
// MCP server.
func AddValidationTools(s *server.MCPServer, engine *registry.Engine) {
	validate := mcp.NewTool(
		"validate_components",
		mcp.WithDescription("Check a list of component names against the design system. Glob patterns (e.g., 'va-alert*') are expanded."),
		mcp.WithArray("component_names",
			mcp.Required(),
			mcp.Description("Component names or glob patterns to validate")),
	)
	s.AddTool(validate, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		names := parseArrayArg(argsMap, "component_names")
		if len(names) == 0 {
			return mcp.NewToolResultError("component_names parameter is required"), nil
		}
		result, err := engine.ValidateComponents(ctx, names)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})

	lint := mcp.NewTool(
		"lint_components",
		mcp.WithDescription("Lint a list of component names: unknown components are errors, caution and experimental components are warnings, components with known issues are informational."),
		mcp.WithArray("component_names",
			mcp.Required(),
			mcp.Description("Component names or glob patterns to lint")),
	)
	s.AddTool(lint, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		names := parseArrayArg(argsMap, "component_names")
		if len(names) == 0 {
			return mcp.NewToolResultError("component_names parameter is required"), nil
		}
		result, err := engine.LintComponents(ctx, names)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(result)
	})
}
