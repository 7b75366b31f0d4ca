// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"

	mcpservice "github.com/louisbranch/lotofacil/internal/mcp/service"
	entrypoint "github.com/louisbranch/lotofacil/internal/platform/cmd"
)

// Config holds MCP command configuration.
type Config struct {
	GRPCAddr  string `env:"LOTOFACIL_GRPC_ADDR"`
	HTTPAddr  string `env:"LOTOFACIL_MCP_HTTP_ADDR"  envDefault:"localhost:8091"`
	Transport string `env:"LOTOFACIL_MCP_TRANSPORT"  envDefault:"stdio"`
	Locale    string `env:"LOTOFACIL_LOCALE"         envDefault:"pt-BR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "lottery server address (empty runs in-process)")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Report and error locale: pt-BR or en-US")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			GRPCAddr:  cfg.GRPCAddr,
			Transport: mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:  cfg.HTTPAddr,
			Locale:    cfg.Locale,
		})
	})
}
