// Package utils contains argument extraction helpers shared by tools.
package utils

import (
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openfundraise/mcp-server-givebutter/pkg/tools"
)

// StringArg extracts a string argument. The second return reports
// whether the caller supplied the argument at all, so an omitted
// optional field can be kept out of request bodies and query strings.
func StringArg(req mcp.CallToolRequest, key string) (string, bool, error) {
	val, exists := req.Params.Arguments[key]
	if !exists || val == nil {
		return "", false, nil
	}

	str, ok := val.(string)
	if !ok {
		return "", true, fmt.Errorf("%w: parameter '%s' must be a string", tools.ErrInvalidParams, key)
	}

	return str, true, nil
}

// IntArg extracts an integer argument. JSON numbers arrive as float64;
// fractional values are rejected rather than truncated.
func IntArg(req mcp.CallToolRequest, key string) (int64, bool, error) {
	val, exists := req.Params.Arguments[key]
	if !exists || val == nil {
		return 0, false, nil
	}

	f, ok := val.(float64)
	if !ok {
		return 0, true, fmt.Errorf("%w: parameter '%s' must be a number", tools.ErrInvalidParams, key)
	}

	if f != math.Trunc(f) {
		return 0, true, fmt.Errorf("%w: parameter '%s' must be an integer", tools.ErrInvalidParams, key)
	}

	return int64(f), true, nil
}
