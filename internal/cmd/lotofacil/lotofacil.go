// Package lotofacil parses generator flags and prints a batch or a ticket
// evaluation.
package lotofacil

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/lotofacil/internal/lotofacil/i18n"
	"github.com/louisbranch/lotofacil/internal/lotofacil/service"
	entrypoint "github.com/louisbranch/lotofacil/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/lotofacil/internal/platform/grpc"
	"github.com/louisbranch/lotofacil/internal/platform/timeouts"
	"github.com/louisbranch/lotofacil/internal/random"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds generator command configuration.
type Config struct {
	TicketSize int    `env:"LOTOFACIL_TICKET_SIZE" envDefault:"15"`
	Seed       string `env:"LOTOFACIL_SEED"`
	RollMode   string `env:"LOTOFACIL_ROLL_MODE"`
	Locale     string `env:"LOTOFACIL_LOCALE"      envDefault:"pt-BR"`
	Format     string `env:"LOTOFACIL_FORMAT"      envDefault:"text"`
	GRPCAddr   string `env:"LOTOFACIL_GRPC_ADDR"`
	// Evaluate holds comma-separated numbers; when set the command evaluates
	// that ticket instead of generating a batch.
	Evaluate string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.TicketSize, "size", cfg.TicketSize, "Numbers per ticket (15-20)")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for a reproducible batch")
	fs.StringVar(&cfg.RollMode, "roll-mode", cfg.RollMode, "Roll mode: LIVE or REPLAY")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Report locale: pt-BR or en-US")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text or json")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "Lottery server address (empty generates in-process)")
	fs.StringVar(&cfg.Evaluate, "evaluate", cfg.Evaluate, "Comma-separated ticket to evaluate instead of generating")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return Config{}, fmt.Errorf("format must be %s or %s, got %q", FormatText, FormatJSON, cfg.Format)
	}
	return cfg, nil
}

// Run generates one batch, or evaluates a ticket, and prints it to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGenerate, func(ctx context.Context) error {
		lottery, closeLottery, err := openLottery(ctx, cfg.GRPCAddr)
		if err != nil {
			return err
		}
		defer closeLottery()
		return run(ctx, cfg, lottery, os.Stdout)
	})
}

func openLottery(ctx context.Context, addr string) (service.Lottery, func(), error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return service.New(), func() {}, nil
	}
	conn, err := platformgrpc.DialWithHealth(
		ctx,
		nil,
		addr,
		service.ServiceName,
		timeouts.GRPCDial,
		log.Printf,
		platformgrpc.DefaultClientDialOptions()...,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to lottery server at %s: %w", addr, err)
	}
	return service.NewClient(conn), func() {
		if err := conn.Close(); err != nil {
			log.Printf("close lottery connection: %v", err)
		}
	}, nil
}

func run(ctx context.Context, cfg Config, lottery service.Lottery, out io.Writer) error {
	ctx = service.WithLocale(ctx, cfg.Locale)
	if strings.TrimSpace(cfg.Evaluate) != "" {
		return evaluate(ctx, cfg, lottery, out)
	}

	req := service.GenerateRequest{TicketSize: cfg.TicketSize}
	if cfg.Seed != "" || cfg.RollMode != "" {
		req.Rng = &service.RngRequest{RollMode: cfg.RollMode}
		if cfg.Seed != "" {
			seed, err := strconv.ParseUint(cfg.Seed, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: %q", random.ErrSeedOutOfRange, cfg.Seed)
			}
			req.Rng.Seed = &seed
		}
	}

	resp, err := lottery.Generate(ctx, req)
	if err != nil {
		return errors.New(service.Message(err, cfg.Locale))
	}
	if cfg.Format == FormatJSON {
		return writeJSON(out, newBatchOutput(resp))
	}
	return i18n.WriteReport(out, i18n.ResolveLocale(cfg.Locale), resp.Result, i18n.ReportMeta{
		TicketSize: resp.TicketSize,
		Seed:       int64(resp.Rng.SeedUsed),
		SeedSource: resp.Rng.SeedSource,
		RollMode:   resp.Rng.RollMode,
	})
}

func evaluate(ctx context.Context, cfg Config, lottery service.Lottery, out io.Writer) error {
	numbers, err := parseNumbers(cfg.Evaluate)
	if err != nil {
		return err
	}
	resp, err := lottery.Evaluate(ctx, service.EvaluateRequest{Numbers: numbers})
	if err != nil {
		return errors.New(service.Message(err, cfg.Locale))
	}
	if cfg.Format == FormatJSON {
		return writeJSON(out, newEvaluationOutput(resp))
	}
	return i18n.WriteEvaluation(out, i18n.ResolveLocale(cfg.Locale), resp.Ticket, resp.Evaluation)
}

func parseNumbers(value string) ([]int, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})
	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parse ticket number %q: %w", field, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
