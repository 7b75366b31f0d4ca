// Package server parses lottery server flags and starts the gRPC host.
package server

import (
	"context"
	"flag"

	lotteryserver "github.com/louisbranch/lotofacil/internal/server"
	entrypoint "github.com/louisbranch/lotofacil/internal/platform/cmd"
)

// Config holds server command configuration.
type Config struct {
	Addr string `env:"LOTOFACIL_GRPC_ADDR" envDefault:"localhost:8090"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The lottery server listen address")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the lottery gRPC service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		return lotteryserver.Run(ctx, cfg.Addr)
	})
}
