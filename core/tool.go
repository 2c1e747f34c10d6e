// Package core defines the contract every tool in the server honors.
package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is one callable operation exposed over MCP. Handle returns the
// static definition (name, description, argument schema); Handler
// services a single invocation. Implementations must be safe for
// concurrent calls, since the agent may issue invocations in parallel.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
