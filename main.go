package main

import (
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openfundraise/mcp-server-givebutter/core"
	"github.com/openfundraise/mcp-server-givebutter/pkg/config"
	api "github.com/openfundraise/mcp-server-givebutter/pkg/givebutter"
	gbtools "github.com/openfundraise/mcp-server-givebutter/pkg/tools/givebutter"
)

// MultiTool manages all registered tools
type MultiTool struct {
	tools map[string]core.Tool
}

func (mt *MultiTool) addTool(name string, tool core.Tool) {
	mt.tools[name] = tool
	mcpServer.AddTool(tool.Handle(), tool.Handler)
}

var (
	mcpServer *server.MCPServer
	multiTool MultiTool
)

func main() {
	// stdout is the MCP transport; everything we say goes to stderr.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Warn("configuration", "warning", err)
	}

	mcpServer = server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)

	multiTool = MultiTool{
		tools: make(map[string]core.Tool),
	}

	provider := gbtools.NewProvider(api.WithBaseURL(cfg.Givebutter.BaseURL))
	for name, tool := range provider.Tools {
		multiTool.addTool(name, tool)
	}

	log.Info("starting Givebutter MCP server", "tools", len(multiTool.tools))

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatal("server error", "err", err)
	}
}
