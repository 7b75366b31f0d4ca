package lotofacil

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"slices"
	"strings"
	"testing"

	"github.com/louisbranch/lotofacil/internal/lotofacil/service"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOTOFACIL_TICKET_SIZE", "LOTOFACIL_SEED", "LOTOFACIL_ROLL_MODE",
		"LOTOFACIL_LOCALE", "LOTOFACIL_FORMAT", "LOTOFACIL_GRPC_ADDR",
	} {
		t.Setenv(key, "")
	}
}

func TestParseConfigDefaults(t *testing.T) {
	clearEnv(t)
	fs := flag.NewFlagSet("lotofacil", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{TicketSize: 15, Locale: "pt-BR", Format: FormatText}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOTOFACIL_TICKET_SIZE", "18")
	t.Setenv("LOTOFACIL_LOCALE", "en-US")
	fs := flag.NewFlagSet("lotofacil", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "42", "-format", "json", "-grpc-addr", "127.0.0.1:8090"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	want := Config{TicketSize: 18, Seed: "42", Locale: "en-US", Format: FormatJSON, GRPCAddr: "127.0.0.1:8090"}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigRejectsUnknownFormat(t *testing.T) {
	clearEnv(t)
	fs := flag.NewFlagSet("lotofacil", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-format", "xml"}); err == nil {
		t.Fatal("expected error for xml format")
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOTOFACIL_TICKET_SIZE", "fifteen")
	fs := flag.NewFlagSet("lotofacil", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for non-numeric ticket size")
	}
}

func TestRunTextReport(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{TicketSize: 16, Seed: "42", Locale: "en-US", Format: FormatText}
	if err := run(context.Background(), cfg, service.New(), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"5 tickets of 16 numbers", "Seed 42 (CLIENT, LIVE)", "Ticket #5"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunJSONIsReproducible(t *testing.T) {
	cfg := Config{TicketSize: 15, Seed: "7", RollMode: "REPLAY", Locale: "en-US", Format: FormatJSON}

	decode := func() batchOutput {
		var out bytes.Buffer
		if err := run(context.Background(), cfg, service.New(), &out); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		var batch batchOutput
		if err := json.Unmarshal(out.Bytes(), &batch); err != nil {
			t.Fatalf("decode output: %v", err)
		}
		return batch
	}

	first, second := decode(), decode()
	if len(first.Tickets) != 5 {
		t.Fatalf("tickets = %d, want 5", len(first.Tickets))
	}
	for i := range first.Tickets {
		if !slices.Equal(first.Tickets[i].Numbers, second.Tickets[i].Numbers) {
			t.Fatalf("ticket %d differs: %v vs %v", i+1, first.Tickets[i].Numbers, second.Tickets[i].Numbers)
		}
	}
	if first.Seed != 7 || first.RollMode != "REPLAY" || first.SeedSource != "CLIENT" {
		t.Errorf("rng = seed %d mode %s source %s", first.Seed, first.RollMode, first.SeedSource)
	}
	if first.Statistics.EvenText == "" || strings.Count(first.Statistics.EvenText, ".") != 1 {
		t.Errorf("avg even text = %q, want one decimal", first.Statistics.EvenText)
	}
}

func TestRunLocalizedError(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{TicketSize: 22, Locale: "pt-BR", Format: FormatText}
	err := run(context.Background(), cfg, service.New(), &out)
	if err == nil || !strings.Contains(err.Error(), "entre 15 e 20 dezenas") {
		t.Fatalf("run() error = %v, want localized size error", err)
	}
}

func TestRunRejectsBadSeed(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{TicketSize: 15, Seed: "-1", Format: FormatText}
	if err := run(context.Background(), cfg, service.New(), &out); err == nil {
		t.Fatal("expected error for negative seed")
	}
}

func TestRunEvaluate(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{
		Locale:   "en-US",
		Format:   FormatJSON,
		Evaluate: "1,2,3,4,5,6,7,8,9,10,11,12,13,14,15",
	}
	if err := run(context.Background(), cfg, service.New(), &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	var evaluation evaluationOutput
	if err := json.Unmarshal(out.Bytes(), &evaluation); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if evaluation.Accepted || len(evaluation.Violations) != 1 || evaluation.Violations[0] != "sequence" {
		t.Errorf("evaluation = %+v, want rejection by sequence", evaluation)
	}
}

func TestParseNumbers(t *testing.T) {
	got, err := parseNumbers("1, 2,3 4")
	if err != nil {
		t.Fatalf("parseNumbers() error = %v", err)
	}
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("parseNumbers() = %v", got)
	}
	if _, err := parseNumbers("1,two"); err == nil {
		t.Error("expected error for non-numeric entry")
	}
}
