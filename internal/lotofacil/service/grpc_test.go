package service

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/lotofacil/internal/lotofacil/domain"
	platformerrors "github.com/louisbranch/lotofacil/internal/platform/errors"
	"github.com/louisbranch/lotofacil/internal/random"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func startLotteryServer(t *testing.T, svc *Service) *Client {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := grpc.NewServer()
	RegisterLotteryServiceServer(server, NewGRPCServer(svc))
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return NewClient(conn)
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestClientGenerateBatch(t *testing.T) {
	client := startLotteryServer(t, New())

	seed := uint64(1 << 60)
	resp, err := client.Generate(testContext(t), GenerateRequest{
		TicketSize: 20,
		Rng:        &RngRequest{Seed: &seed},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	want, err := domain.GenerateBatch(random.NewSource(1<<60), 20)
	if err != nil {
		t.Fatalf("domain.GenerateBatch() error = %v", err)
	}
	if diff := cmp.Diff(want, resp.Result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if resp.Rng.SeedUsed != seed {
		t.Errorf("seed used = %d, want %d", resp.Rng.SeedUsed, seed)
	}
	if resp.Rng.SeedSource != "CLIENT" || resp.Rng.RngAlgo != random.RngAlgoMathRandV1 {
		t.Errorf("rng = %+v", resp.Rng)
	}
}

func TestClientGenerateBatchLocalizedError(t *testing.T) {
	client := startLotteryServer(t, New())

	tests := []struct {
		locale string
		want   string
	}{
		{"", "A ticket must have between 15 and 20 numbers (got 30)"},
		{"en-US", "A ticket must have between 15 and 20 numbers (got 30)"},
		{"pt-BR", "O jogo deve ter entre 15 e 20 dezenas (recebido: 30)"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			ctx := WithLocale(testContext(t), tt.locale)
			_, err := client.Generate(ctx, GenerateRequest{TicketSize: 30})
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("status code = %v, want %v", status.Code(err), codes.InvalidArgument)
			}
			if got := UserMessage(err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}

			st, _ := status.FromError(err)
			var reason string
			for _, detail := range st.Details() {
				if info, ok := detail.(*errdetails.ErrorInfo); ok {
					reason = info.GetReason()
				}
			}
			if reason != string(platformerrors.CodeTicketSizeOutOfRange) {
				t.Errorf("error reason = %q, want %q", reason, platformerrors.CodeTicketSizeOutOfRange)
			}
		})
	}
}

func TestClientEvaluateTicket(t *testing.T) {
	client := startLotteryServer(t, New())

	resp, err := client.Evaluate(testContext(t), EvaluateRequest{
		Numbers: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if resp.Evaluation.Accepted {
		t.Fatal("Evaluate() accepted a ticket with a run of 15")
	}
	if diff := cmp.Diff([]domain.Criterion{domain.CriterionSequence}, resp.Evaluation.Violations); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
	if resp.Evaluation.Statistics.Sum != 120 {
		t.Errorf("sum = %d, want 120", resp.Evaluation.Statistics.Sum)
	}
}

func TestGRPCServerRejectsMalformedPayloads(t *testing.T) {
	server := NewGRPCServer(New())
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		reason platformerrors.Code
	}{
		{
			name: "fractional ticket size",
			call: func() error {
				in, _ := structpb.NewStruct(map[string]any{"ticket_size": 15.5})
				_, err := server.GenerateBatch(ctx, in)
				return err
			},
			reason: platformerrors.CodeTicketSizeOutOfRange,
		},
		{
			name: "non numeric seed",
			call: func() error {
				in, _ := structpb.NewStruct(map[string]any{
					"ticket_size": 15,
					"rng":         map[string]any{"seed": "abc"},
				})
				_, err := server.GenerateBatch(ctx, in)
				return err
			},
			reason: platformerrors.CodeSeedOutOfRange,
		},
		{
			name: "text numbers",
			call: func() error {
				in, _ := structpb.NewStruct(map[string]any{"numbers": []any{"one", "two"}})
				_, err := server.EvaluateTicket(ctx, in)
				return err
			},
			reason: platformerrors.CodeTicketNumbersInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("status code = %v, want %v (%v)", status.Code(err), codes.InvalidArgument, err)
			}
			st, _ := status.FromError(err)
			if len(st.Details()) == 0 {
				t.Fatal("expected error details")
			}
			info, ok := st.Details()[0].(*errdetails.ErrorInfo)
			if !ok || info.GetReason() != string(tt.reason) {
				t.Errorf("details[0] = %v, want reason %s", st.Details()[0], tt.reason)
			}
		})
	}
}

func TestGRPCServerNilRequest(t *testing.T) {
	server := NewGRPCServer(New())
	if _, err := server.GenerateBatch(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Errorf("GenerateBatch(nil) code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
	if _, err := server.EvaluateTicket(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Errorf("EvaluateTicket(nil) code = %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(nil); got != "" {
		t.Errorf("UserMessage(nil) = %q, want empty", got)
	}
	plain := status.Error(codes.Unavailable, "connection refused")
	if got := UserMessage(plain); got != "connection refused" {
		t.Errorf("UserMessage() = %q, want %q", got, "connection refused")
	}
	if got := UserMessage(context.DeadlineExceeded); !strings.Contains(got, "deadline") {
		t.Errorf("UserMessage(deadline) = %q", got)
	}
}

func TestMessageLocalizesInProcessErrors(t *testing.T) {
	_, err := New().Generate(context.Background(), GenerateRequest{TicketSize: 21})
	if got := Message(err, "pt-BR"); got != "O jogo deve ter entre 15 e 20 dezenas (recebido: 21)" {
		t.Errorf("Message(pt-BR) = %q", got)
	}
	if got := Message(err, "en-US"); got != "A ticket must have between 15 and 20 numbers (got 21)" {
		t.Errorf("Message(en-US) = %q", got)
	}
	remote := status.Error(codes.Unavailable, "connection refused")
	if got := Message(remote, "pt-BR"); got != "connection refused" {
		t.Errorf("Message(remote) = %q", got)
	}
}
