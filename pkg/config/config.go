// Package config provides centralized configuration for the Givebutter MCP server.
package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"

	"github.com/openfundraise/mcp-server-givebutter/pkg/givebutter"
)

// Config holds the process-wide settings. The API key itself is
// deliberately absent: it is re-read from the environment on every
// outbound request so a rotated key never goes stale here.
type Config struct {
	// Givebutter API settings
	Givebutter struct {
		BaseURL string
	}

	// Server identity advertised during the MCP handshake
	Server struct {
		Name    string
		Version string
	}
}

var (
	once   sync.Once
	config *Config
)

// Load initializes the configuration from environment variables.
func Load() *Config {
	once.Do(func() {
		v := viper.New()

		v.SetDefault("givebutter.base_url", givebutter.DefaultBaseURL)
		v.SetDefault("server.name", "Givebutter MCP Server")
		v.SetDefault("server.version", "1.0.0")

		v.AutomaticEnv()

		config = &Config{}

		config.Givebutter.BaseURL = os.Getenv("GIVEBUTTER_API_BASE_URL")
		if config.Givebutter.BaseURL == "" {
			config.Givebutter.BaseURL = v.GetString("givebutter.base_url")
		}

		config.Server.Name = v.GetString("server.name")
		config.Server.Version = v.GetString("server.version")
	})

	return config
}

// Validate reports configuration problems without failing the process.
// A missing API key is surfaced per call by the client, so here it is
// only a warning that every tool invocation is going to fail.
func (c *Config) Validate() error {
	if os.Getenv(givebutter.EnvAPIKey) == "" {
		return fmt.Errorf("%s is not set; every tool call will fail until it is", givebutter.EnvAPIKey)
	}

	return nil
}
