// Package tools provides shared helpers for MCP tool implementations
package tools

import (
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidParams marks caller input that fails schema validation.
// It is wrapped so callers can test with errors.Is.
var ErrInvalidParams = errors.New("invalid parameters")

// NewErrorResult creates a standard error result
func NewErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}
