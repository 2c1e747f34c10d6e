// Package givebutter exposes the Givebutter REST API as MCP tools.
//
// Every tool is declared as an Operation: a name, an argument schema,
// and a target endpoint. One generic handler services all of them, so
// adding an endpoint is a table entry, not a new handler.
package givebutter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openfundraise/mcp-server-givebutter/core"
	api "github.com/openfundraise/mcp-server-givebutter/pkg/givebutter"
	"github.com/openfundraise/mcp-server-givebutter/pkg/tools"
	"github.com/openfundraise/mcp-server-givebutter/pkg/tools/utils"
)

// ParamKind is the semantic type of an operation argument.
type ParamKind int

const (
	KindString ParamKind = iota
	KindInteger
	KindDate
)

// ParamIn says where a present argument lands on the wire.
type ParamIn int

const (
	InPath ParamIn = iota
	InQuery
	InBody
)

// Param declares one argument of an operation. Optional params that
// the caller omits never appear in the outbound request; omission is
// the only "leave this field alone" signal update operations support.
type Param struct {
	Name        string
	Kind        ParamKind
	In          ParamIn
	Required    bool
	Description string
	Enum        []string
}

// Operation is the static definition of one callable API action. The
// path may contain `{name}` placeholders, matched against path params
// by name and substituted verbatim.
type Operation struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
}

// Tool renders the operation's MCP tool definition.
func (op Operation) Tool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(op.Description)}

	for _, p := range op.Params {
		var propOpts []mcp.PropertyOption

		if p.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		propOpts = append(propOpts, mcp.Description(p.Description))
		if len(p.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(p.Enum...))
		}

		if p.Kind == KindInteger {
			opts = append(opts, mcp.WithNumber(p.Name, propOpts...))
		} else {
			opts = append(opts, mcp.WithString(p.Name, propOpts...))
		}
	}

	return mcp.NewTool(op.Name, opts...)
}

// apiTool binds an Operation to the API client and services its calls.
type apiTool struct {
	handle mcp.Tool
	op     Operation
	client *api.Client
}

// NewTool wraps an operation in a core.Tool backed by the given client.
func NewTool(op Operation, client *api.Client) core.Tool {
	return &apiTool{
		handle: op.Tool(),
		op:     op,
		client: client,
	}
}

func (t *apiTool) Handle() mcp.Tool {
	return t.handle
}

// Handler validates the arguments against the operation's schema,
// assembles the request, and performs it. Validation failures return
// before any network activity. Remote and transport failures surface
// as error results carrying the client's full diagnostic text.
func (t *apiTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := t.op.Path
	query := url.Values{}
	var body map[string]any

	for _, p := range t.op.Params {
		value, present, err := argValue(request, p)
		if err != nil {
			return tools.NewErrorResult(err), nil
		}

		if !present {
			if p.Required {
				return tools.NewErrorResult(fmt.Errorf("%w: missing required parameter: '%s'", tools.ErrInvalidParams, p.Name)), nil
			}
			continue
		}

		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", wireValue(value))
		case InQuery:
			query.Set(p.Name, wireValue(value))
		case InBody:
			if body == nil {
				body = make(map[string]any)
			}
			body[p.Name] = value
		}
	}

	payload, err := t.client.Do(ctx, t.op.Method, path, body, query)
	if err != nil {
		return tools.NewErrorResult(err), nil
	}

	if payload == nil {
		return tools.NewTextResult(`{"success": true}`), nil
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("failed to serialize response: %w", err)), nil
	}

	return tools.NewTextResult(string(text)), nil
}

// argValue extracts and validates one declared parameter.
func argValue(req mcp.CallToolRequest, p Param) (any, bool, error) {
	if p.Kind == KindInteger {
		n, present, err := utils.IntArg(req, p.Name)
		if err != nil || !present {
			return nil, present, err
		}
		return n, true, nil
	}

	s, present, err := utils.StringArg(req, p.Name)
	if err != nil || !present {
		return nil, present, err
	}

	if len(p.Enum) > 0 && !slices.Contains(p.Enum, s) {
		return nil, true, fmt.Errorf("%w: parameter '%s' must be one of: %s", tools.ErrInvalidParams, p.Name, strings.Join(p.Enum, ", "))
	}

	if p.Kind == KindDate && !validDate(s) {
		return nil, true, fmt.Errorf("%w: parameter '%s' must be an ISO-8601 date", tools.ErrInvalidParams, p.Name)
	}

	return s, true, nil
}

// validDate accepts RFC 3339 timestamps and plain dates.
func validDate(s string) bool {
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// wireValue renders a validated argument for a path segment or query
// string. Query values are percent-encoded later by url.Values.
func wireValue(v any) string {
	if n, ok := v.(int64); ok {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprint(v)
}
