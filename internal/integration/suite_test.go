//go:build integration

package integration

import (
	"context"
	"strings"
	"testing"

	mcpdomain "github.com/louisbranch/lotofacil/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestMCPStdioEndToEnd drives the MCP binary against a live lottery server.
func TestMCPStdioEndToEnd(t *testing.T) {
	grpcAddr, stopServer := startGRPCServer(t)
	defer stopServer()

	session, closeClient := startMCPClient(t, grpcAddr, "pt-BR")
	defer closeClient()

	t.Run("generate replay batch", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout())
		defer cancel()

		call := func() mcpdomain.GenerateBatchResult {
			seed := uint64(31337)
			result, err := session.CallTool(ctx, &mcp.CallToolParams{
				Name: "lotofacil_generate_batch",
				Arguments: mcpdomain.GenerateBatchInput{
					TicketSize: 15,
					Rng:        &mcpdomain.RngRequest{Seed: &seed, RollMode: "REPLAY"},
				},
			})
			if err != nil {
				t.Fatalf("call generate: %v", err)
			}
			if result.IsError {
				t.Fatalf("generate returned tool error: %+v", result.Content)
			}
			return decodeStructuredContent[mcpdomain.GenerateBatchResult](t, result.StructuredContent)
		}

		first, second := call(), call()
		if len(first.Tickets) != 5 {
			t.Fatalf("tickets = %d, want 5", len(first.Tickets))
		}
		for i := range first.Tickets {
			if len(first.Tickets[i].Numbers) != 15 {
				t.Errorf("ticket %d length = %d", i+1, len(first.Tickets[i].Numbers))
			}
			for j, n := range first.Tickets[i].Numbers {
				if second.Tickets[i].Numbers[j] != n {
					t.Fatalf("ticket %d differs between replays", i+1)
				}
			}
		}
		if first.Rng == nil || first.Rng.SeedUsed != 31337 || first.Rng.SeedSource != "CLIENT" {
			t.Errorf("rng = %+v", first.Rng)
		}
		if !strings.Contains(first.Report, "Jogo #1") {
			t.Errorf("report not localized: %q", first.Report)
		}
	})

	t.Run("invalid size is localized by the server", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout())
		defer cancel()

		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      "lotofacil_generate_batch",
			Arguments: map[string]any{"ticket_size": 25},
		})
		if err != nil {
			t.Fatalf("call generate: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected tool error")
		}
		text := ""
		for _, content := range result.Content {
			if c, ok := content.(*mcp.TextContent); ok {
				text += c.Text
			}
		}
		if !strings.Contains(text, "recebido: 25") {
			t.Errorf("error text = %q, want pt-BR message", text)
		}
	})

	t.Run("evaluate ticket", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout())
		defer cancel()

		result, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name: "lotofacil_evaluate_ticket",
			Arguments: mcpdomain.EvaluateTicketInput{
				Numbers: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 2, 8},
			},
		})
		if err != nil {
			t.Fatalf("call evaluate: %v", err)
		}
		output := decodeStructuredContent[mcpdomain.EvaluateTicketResult](t, result.StructuredContent)
		if output.Accepted {
			t.Fatal("odd-heavy ticket should be rejected")
		}
		if len(output.Violations) != 2 || output.Violations[0] != "even" || output.Violations[1] != "odd" {
			t.Errorf("violations = %v, want [even odd]", output.Violations)
		}
	})
}
