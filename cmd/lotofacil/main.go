package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	lotofacilcmd "github.com/louisbranch/lotofacil/internal/cmd/lotofacil"
	"github.com/louisbranch/lotofacil/internal/platform/config"
)

// main prints one balanced batch, or evaluates a ticket.
func main() {
	cfg, err := lotofacilcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exit(config.ExitUsage, "parse flags: %v", err)
	}
	log.SetPrefix("[LOTOFACIL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := lotofacilcmd.Run(ctx, cfg); err != nil {
		config.Exitf("%v", err)
	}
}
