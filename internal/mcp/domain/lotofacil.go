package domain

import (
	"context"
	"fmt"
	"strings"

	lotofacil "github.com/louisbranch/lotofacil/internal/lotofacil/domain"
	"github.com/louisbranch/lotofacil/internal/lotofacil/i18n"
	"github.com/louisbranch/lotofacil/internal/lotofacil/service"
	"github.com/louisbranch/lotofacil/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RngRequest represents optional RNG configuration for deterministic batches.
type RngRequest struct {
	Seed     *uint64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic batches"`
	RollMode string  `json:"roll_mode,omitempty" jsonschema:"roll mode (LIVE or REPLAY)"`
}

// RngResult represents RNG details used for a batch.
type RngResult struct {
	SeedUsed   uint64 `json:"seed_used" jsonschema:"seed value used by the server"`
	RngAlgo    string `json:"rng_algo" jsonschema:"rng algorithm identifier"`
	SeedSource string `json:"seed_source" jsonschema:"seed source (CLIENT or SERVER)"`
	RollMode   string `json:"roll_mode" jsonschema:"roll mode applied"`
}

// TicketStatistics represents the derived counts of one ticket.
type TicketStatistics struct {
	Even      int `json:"even" jsonschema:"count of even numbers"`
	Odd       int `json:"odd" jsonschema:"count of odd numbers"`
	Fibonacci int `json:"fibonacci" jsonschema:"count of Fibonacci numbers"`
	Frame     int `json:"frame" jsonschema:"count of numbers on the board frame"`
	Sum       int `json:"sum" jsonschema:"sum of all numbers"`
}

// TicketEntry represents one ticket of a batch.
type TicketEntry struct {
	ID         int              `json:"id" jsonschema:"1-based ticket position"`
	Numbers    []int            `json:"numbers" jsonschema:"ascending ticket numbers"`
	Statistics TicketStatistics `json:"statistics" jsonschema:"ticket statistics"`
}

// BatchStatistics represents the batch averages.
type BatchStatistics struct {
	AvgEven      float64 `json:"avg_even" jsonschema:"mean even count, one decimal"`
	AvgOdd       float64 `json:"avg_odd" jsonschema:"mean odd count, one decimal"`
	AvgFibonacci float64 `json:"avg_fibonacci" jsonschema:"mean Fibonacci count, one decimal"`
	AvgFrame     float64 `json:"avg_frame" jsonschema:"mean frame count, one decimal"`
}

// GenerateBatchInput represents the MCP tool input for a batch generation.
type GenerateBatchInput struct {
	TicketSize int         `json:"ticket_size" jsonschema:"numbers per ticket, between 15 and 20"`
	Rng        *RngRequest `json:"rng,omitempty" jsonschema:"optional rng configuration"`
}

// GenerateBatchResult represents the MCP tool output for a batch generation.
type GenerateBatchResult struct {
	TicketSize int             `json:"ticket_size" jsonschema:"numbers per ticket"`
	Tickets    []TicketEntry   `json:"tickets" jsonschema:"the five generated tickets"`
	Statistics BatchStatistics `json:"statistics" jsonschema:"batch averages"`
	Report     string          `json:"report" jsonschema:"human-readable report"`
	Rng        *RngResult      `json:"rng,omitempty" jsonschema:"rng details"`
}

// EvaluateTicketInput represents the MCP tool input for a ticket evaluation.
type EvaluateTicketInput struct {
	Numbers []int `json:"numbers" jsonschema:"15 to 20 distinct numbers between 1 and 25"`
}

// EvaluateTicketResult represents the MCP tool output for a ticket evaluation.
type EvaluateTicketResult struct {
	Numbers    []int            `json:"numbers" jsonschema:"ticket numbers in ascending order"`
	Statistics TicketStatistics `json:"statistics" jsonschema:"ticket statistics"`
	Accepted   bool             `json:"accepted" jsonschema:"whether the ticket passes every criterion"`
	Violations []string         `json:"violations" jsonschema:"criteria the ticket fails"`
}

// RulesInput represents the MCP tool input for the rules listing.
type RulesInput struct{}

// Bounds represents an inclusive range.
type Bounds struct {
	Min int `json:"min" jsonschema:"inclusive lower bound"`
	Max int `json:"max" jsonschema:"inclusive upper bound"`
}

// RulesResult represents the MCP tool output describing the acceptance rules.
type RulesResult struct {
	PoolSize         int    `json:"pool_size" jsonschema:"numbers on the board"`
	MinTicketSize    int    `json:"min_ticket_size" jsonschema:"smallest ticket size"`
	MaxTicketSize    int    `json:"max_ticket_size" jsonschema:"largest ticket size"`
	BatchSize        int    `json:"batch_size" jsonschema:"tickets per batch"`
	MaxAttempts      int    `json:"max_attempts" jsonschema:"candidates drawn per ticket before the last one is kept"`
	Even             Bounds `json:"even" jsonschema:"accepted even count"`
	Odd              Bounds `json:"odd" jsonschema:"accepted odd count"`
	Fibonacci        Bounds `json:"fibonacci" jsonschema:"accepted Fibonacci count"`
	Frame            Bounds `json:"frame" jsonschema:"accepted frame count"`
	MaxRun           int    `json:"max_run" jsonschema:"rejected length of consecutive numbers"`
	FrameNumbers     []int  `json:"frame_numbers" jsonschema:"numbers on the board frame"`
	FibonacciNumbers []int  `json:"fibonacci_numbers" jsonschema:"Fibonacci numbers on the board"`
}

// GenerateBatchTool defines the MCP tool schema for batch generation.
func GenerateBatchTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "lotofacil_generate_batch",
		Description: "Generates five balanced Lotofácil tickets with batch statistics",
	}
}

// EvaluateTicketTool defines the MCP tool schema for ticket evaluation.
func EvaluateTicketTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "lotofacil_evaluate_ticket",
		Description: "Checks a Lotofácil ticket against the balance criteria",
	}
}

// RulesTool defines the MCP tool schema for the rules listing.
func RulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "lotofacil_rules",
		Description: "Lists the balance criteria used to accept tickets",
	}
}

// GenerateBatchHandler executes a batch generation.
func GenerateBatchHandler(lottery service.Lottery, locale string) mcp.ToolHandlerFor[GenerateBatchInput, GenerateBatchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateBatchInput) (*mcp.CallToolResult, GenerateBatchResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		req := service.GenerateRequest{TicketSize: input.TicketSize}
		if input.Rng != nil {
			req.Rng = &service.RngRequest{Seed: input.Rng.Seed, RollMode: input.Rng.RollMode}
		}
		resp, err := lottery.Generate(service.WithLocale(runCtx, locale), req)
		if err != nil {
			return nil, GenerateBatchResult{}, fmt.Errorf("generate batch failed: %s", service.Message(err, locale))
		}

		var report strings.Builder
		if err := i18n.WriteReport(&report, i18n.ResolveLocale(locale), resp.Result, i18n.ReportMeta{
			TicketSize: resp.TicketSize,
			Seed:       int64(resp.Rng.SeedUsed),
			SeedSource: resp.Rng.SeedSource,
			RollMode:   resp.Rng.RollMode,
		}); err != nil {
			return nil, GenerateBatchResult{}, fmt.Errorf("render report: %w", err)
		}

		result := GenerateBatchResult{
			TicketSize: resp.TicketSize,
			Tickets:    make([]TicketEntry, 0, len(resp.Result.Batch)),
			Statistics: BatchStatistics{
				AvgEven:      resp.Result.Statistics.AvgEven,
				AvgOdd:       resp.Result.Statistics.AvgOdd,
				AvgFibonacci: resp.Result.Statistics.AvgFibonacci,
				AvgFrame:     resp.Result.Statistics.AvgFrame,
			},
			Report: report.String(),
			Rng: &RngResult{
				SeedUsed:   resp.Rng.SeedUsed,
				RngAlgo:    resp.Rng.RngAlgo,
				SeedSource: resp.Rng.SeedSource,
				RollMode:   resp.Rng.RollMode,
			},
		}
		for _, entry := range resp.Result.Batch {
			result.Tickets = append(result.Tickets, TicketEntry{
				ID:         entry.ID,
				Numbers:    []int(entry.Ticket),
				Statistics: ticketStatistics(entry.Statistics),
			})
		}
		return nil, result, nil
	}
}

// EvaluateTicketHandler executes a ticket evaluation.
func EvaluateTicketHandler(lottery service.Lottery, locale string) mcp.ToolHandlerFor[EvaluateTicketInput, EvaluateTicketResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EvaluateTicketInput) (*mcp.CallToolResult, EvaluateTicketResult, error) {
		runCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
		defer cancel()

		resp, err := lottery.Evaluate(service.WithLocale(runCtx, locale), service.EvaluateRequest{Numbers: input.Numbers})
		if err != nil {
			return nil, EvaluateTicketResult{}, fmt.Errorf("evaluate ticket failed: %s", service.Message(err, locale))
		}

		violations := make([]string, 0, len(resp.Evaluation.Violations))
		for _, v := range resp.Evaluation.Violations {
			violations = append(violations, string(v))
		}
		return nil, EvaluateTicketResult{
			Numbers:    []int(resp.Ticket),
			Statistics: ticketStatistics(resp.Evaluation.Statistics),
			Accepted:   resp.Evaluation.Accepted,
			Violations: violations,
		}, nil
	}
}

// RulesHandler returns the default acceptance policy.
func RulesHandler() mcp.ToolHandlerFor[RulesInput, RulesResult] {
	return func(context.Context, *mcp.CallToolRequest, RulesInput) (*mcp.CallToolResult, RulesResult, error) {
		policy := lotofacil.DefaultPolicy()
		return nil, RulesResult{
			PoolSize:         lotofacil.PoolSize,
			MinTicketSize:    lotofacil.MinTicketSize,
			MaxTicketSize:    lotofacil.MaxTicketSize,
			BatchSize:        lotofacil.BatchSize,
			MaxAttempts:      lotofacil.MaxAttempts,
			Even:             Bounds(policy.Even),
			Odd:              Bounds(policy.Odd),
			Fibonacci:        Bounds(policy.Fibonacci),
			Frame:            Bounds(policy.Frame),
			MaxRun:           policy.MaxRun,
			FrameNumbers:     lotofacil.FrameNumbers(),
			FibonacciNumbers: lotofacil.FibonacciNumbers(),
		}, nil
	}
}

func ticketStatistics(s lotofacil.TicketStatistics) TicketStatistics {
	return TicketStatistics{
		Even:      s.Even,
		Odd:       s.Odd,
		Fibonacci: s.Fibonacci,
		Frame:     s.Frame,
		Sum:       s.Sum,
	}
}
