// Package mcp parses MCP bridge flags and starts the stdio server.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/sdkgate/sdkgate/internal/platform/cmd"
	"github.com/sdkgate/sdkgate/internal/platform/discovery"
	mcpserver "github.com/sdkgate/sdkgate/internal/services/mcp"
)

// Config holds MCP bridge configuration.
type Config struct {
	Addr string `env:"SDKGATE_COMPAT_ADDR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Addr = discovery.OrDefaultGRPCAddr(cfg.Addr, discovery.ServiceCompat)

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "compat server address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP bridge on stdio.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpserver.Run(ctx, cfg.Addr)
	})
}
