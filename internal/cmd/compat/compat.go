// Package compat parses compat service flags and launches the service.
package compat

import (
	"context"
	"flag"

	entrypoint "github.com/sdkgate/sdkgate/internal/platform/cmd"
	server "github.com/sdkgate/sdkgate/internal/services/compat/app"
)

// Config holds compat command configuration.
type Config struct {
	Port int `env:"SDKGATE_COMPAT_PORT" envDefault:"8082"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The compat gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the compat gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCompat, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
