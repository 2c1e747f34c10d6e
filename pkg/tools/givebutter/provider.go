package givebutter

import (
	"github.com/openfundraise/mcp-server-givebutter/core"
	api "github.com/openfundraise/mcp-server-givebutter/pkg/givebutter"
)

// Provider bundles every Givebutter tool behind one constructor, all
// sharing a single API client.
type Provider struct {
	Tools map[string]core.Tool
}

func NewProvider(options ...api.Option) *Provider {
	client := api.New(options...)

	tools := make(map[string]core.Tool)
	for _, op := range Operations() {
		tools[op.Name] = NewTool(op, client)
	}

	return &Provider{Tools: tools}
}

// Operations returns every operation descriptor the server exposes.
// Descriptors are built once at startup and never mutated afterwards.
func Operations() []Operation {
	ops := make([]Operation, 0, len(campaignOperations)+len(contactOperations)+len(resourceOperations))
	ops = append(ops, campaignOperations...)
	ops = append(ops, contactOperations...)
	ops = append(ops, resourceOperations...)
	return ops
}
