package mcp

// Implementation Plan:
// 1. AddComponentTools - composable registration for per-component lookups
// 2. Handler factories capture the engine
// 3. Parse name argument, execute lookup, return JSON text
// 4. Lookup misses return a found:false payload, not an error

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/amponce/va-design-system-monitor/internal/registry"
)

// AddComponentTools registers the per-component lookup tools with an
// MCP server.
func AddComponentTools(s *server.MCPServer, engine *registry.Engine) {
	getComponent := mcp.NewTool(
		"get_component",
		mcp.WithDescription("Get a design system component by name, tag name, or interface name. Matching is case-insensitive with a substring fallback."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name (e.g., 'Button', 'va-alert', 'VaAccordion')")),
	)
	s.AddTool(getComponent, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		name, err := parseStringArg(argsMap, "name", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		record, err := engine.GetComponentByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return notFoundResult(name)
		}
		return jsonResult(record)
	})

	getProperties := mcp.NewTool(
		"get_component_properties",
		mcp.WithDescription("Get the parsed property list of a design system component."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name")),
	)
	s.AddTool(getProperties, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		name, err := parseStringArg(argsMap, "name", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := engine.GetComponentProperties(ctx, name)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return notFoundResult(name)
		}
		return jsonResult(result)
	})

	getExamples := mcp.NewTool(
		"get_component_examples",
		mcp.WithDescription("Generate usage examples for a design system component, including child elements for composite components like radio groups."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name")),
	)
	s.AddTool(getExamples, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		name, err := parseStringArg(argsMap, "name", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := engine.GetComponentExamples(ctx, name)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return notFoundResult(name)
		}
		return jsonResult(result)
	})

	getOfficial := mcp.NewTool(
		"get_official_examples",
		mcp.WithDescription("Fetch official examples from the design system documentation, falling back to generated examples when none exist."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Component name")),
	)
	s.AddTool(getOfficial, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, errResult := parseToolArguments(request)
		if errResult != nil {
			return errResult, nil
		}
		name, err := parseStringArg(argsMap, "name", true)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := engine.GetOfficialExamples(ctx, name)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return notFoundResult(name)
		}
		return jsonResult(result)
	})
}
