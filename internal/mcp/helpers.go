package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// parseToolArguments validates and extracts the arguments map from an
// MCP tool request. Returns the arguments map or an error result if
// validation fails.
func parseToolArguments(request mcp.CallToolRequest) (map[string]interface{}, *mcp.CallToolResult) {
	argsMap, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, mcp.NewToolResultError("invalid arguments format")
	}
	return argsMap, nil
}

// jsonResult marshals v and returns it as a text result, the mcp-go
// convention for structured payloads.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// notFoundResult is the payload returned when a component lookup
// misses. A miss is a result, not an error.
func notFoundResult(name string) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]interface{}{
		"found":   false,
		"message": fmt.Sprintf("component %q not found", name),
	})
}
