// Package service exposes batch generation and ticket evaluation to the
// transports.
//
// Service performs the request-level work shared by gRPC and MCP: seed
// resolution, tracing and mapping domain failures to platform error codes.
// The gRPC binding lives in grpc.go and uses well-known protobuf Struct
// messages as payloads.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/louisbranch/lotofacil/internal/lotofacil/domain"
	"github.com/louisbranch/lotofacil/internal/lotofacil/i18n"
	platformerrors "github.com/louisbranch/lotofacil/internal/platform/errors"
	"github.com/louisbranch/lotofacil/internal/platform/otel"
	"github.com/louisbranch/lotofacil/internal/random"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/lotofacil/internal/lotofacil/service"

// RngRequest carries optional caller RNG settings.
type RngRequest struct {
	Seed     *uint64
	RollMode string
}

// RngResult describes the RNG used for a generation.
type RngResult struct {
	SeedUsed   uint64
	RngAlgo    string
	SeedSource string
	RollMode   string
}

// GenerateRequest asks for one batch of tickets.
type GenerateRequest struct {
	TicketSize int
	Rng        *RngRequest
}

// GenerateResponse is a generated batch plus the RNG that produced it.
type GenerateResponse struct {
	TicketSize int
	Result     domain.Result
	Rng        RngResult
}

// EvaluateRequest asks whether a caller-supplied ticket passes the policy.
type EvaluateRequest struct {
	Numbers []int
}

// EvaluateResponse is the normalized ticket and its evaluation.
type EvaluateResponse struct {
	Ticket     domain.Ticket
	Evaluation domain.Evaluation
}

// Service runs generations and evaluations. It is safe for concurrent use;
// every generation builds its own random source.
type Service struct {
	seedFunc func() (int64, error)
	policy   domain.Policy
	tracer   trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithSeedFunc overrides the server seed generator.
func WithSeedFunc(seedFunc func() (int64, error)) Option {
	return func(s *Service) {
		s.seedFunc = seedFunc
	}
}

// WithTracer overrides the tracer used for generation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New creates a Service with crypto seeded LIVE generations and the default
// acceptance policy.
func New(opts ...Option) *Service {
	s := &Service{
		seedFunc: random.NewSeed,
		policy:   domain.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Generate produces one batch.
//
// Generation is not interruptible; ctx is only checked before it starts.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	if err := ctx.Err(); err != nil {
		return GenerateResponse{}, err
	}
	if err := domain.ValidateTicketSize(req.TicketSize); err != nil {
		return GenerateResponse{}, ticketSizeError(strconv.Itoa(req.TicketSize), err)
	}

	resolved, err := s.resolveSeed(req.Rng)
	if err != nil {
		return GenerateResponse{}, err
	}

	_, span := s.tracer.Start(ctx, "lotofacil.GenerateBatch", trace.WithAttributes(
		attribute.Int("lotofacil.ticket_size", req.TicketSize),
		attribute.Int64("lotofacil.seed", resolved.Seed),
		attribute.String("lotofacil.seed_source", string(resolved.Source)),
		attribute.String("lotofacil.roll_mode", string(resolved.RollMode)),
	))
	defer span.End()

	fallbackSlots := 0
	generator, err := domain.NewGenerator(
		random.NewSource(resolved.Seed),
		domain.WithPolicy(s.policy),
		domain.WithSlotHook(func(report domain.SlotReport) {
			if !report.Fallback {
				return
			}
			fallbackSlots++
			span.AddEvent("lotofacil.slot.fallback", trace.WithAttributes(
				attribute.Int("lotofacil.slot", report.ID),
				attribute.Int("lotofacil.attempts", report.Attempts),
			))
		}),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return GenerateResponse{}, platformerrors.Wrap(platformerrors.CodeUnknown, "create generator", err)
	}
	result, err := generator.GenerateBatch(req.TicketSize)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return GenerateResponse{}, ticketSizeError(strconv.Itoa(req.TicketSize), err)
	}
	span.SetAttributes(attribute.Int("lotofacil.fallback_slots", fallbackSlots))
	if fallbackSlots > 0 {
		log.Printf("seed %d size %d: %d slot(s) kept an unbalanced ticket after %d attempts",
			resolved.Seed, req.TicketSize, fallbackSlots, domain.MaxAttempts)
	}

	return GenerateResponse{
		TicketSize: req.TicketSize,
		Result:     result,
		Rng: RngResult{
			SeedUsed:   uint64(resolved.Seed),
			RngAlgo:    random.RngAlgoMathRandV1,
			SeedSource: string(resolved.Source),
			RollMode:   string(resolved.RollMode),
		},
	}, nil
}

// Evaluate classifies a caller-supplied ticket against the policy.
func (s *Service) Evaluate(ctx context.Context, req EvaluateRequest) (EvaluateResponse, error) {
	if err := ctx.Err(); err != nil {
		return EvaluateResponse{}, err
	}
	ticket, err := domain.ParseTicket(req.Numbers)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTicketSize) {
			return EvaluateResponse{}, ticketSizeError(strconv.Itoa(len(req.Numbers)), err)
		}
		return EvaluateResponse{}, ticketNumbersError(fmt.Sprint(req.Numbers), err)
	}
	return EvaluateResponse{
		Ticket:     ticket,
		Evaluation: s.policy.Evaluate(ticket),
	}, nil
}

// Policy returns the acceptance policy applied by the service.
func (s *Service) Policy() domain.Policy {
	return s.policy
}

func (s *Service) resolveSeed(rng *RngRequest) (random.Resolved, error) {
	request := &random.Request{}
	if rng != nil {
		mode, err := random.ParseRollMode(rng.RollMode)
		if err != nil {
			return random.Resolved{}, platformerrors.WrapWithMetadata(
				platformerrors.CodeRollModeInvalid, err.Error(),
				map[string]string{i18n.MetadataValue: rng.RollMode}, err)
		}
		request.Seed = rng.Seed
		request.RollMode = mode
	}

	resolved, err := random.ResolveSeed(request, s.seedFunc)
	switch {
	case err == nil:
		return resolved, nil
	case errors.Is(err, random.ErrSeedOutOfRange):
		return random.Resolved{}, seedError(err)
	case errors.Is(err, random.ErrSeedRequired):
		return random.Resolved{}, platformerrors.Wrap(platformerrors.CodeSeedRequired, err.Error(), err)
	default:
		return random.Resolved{}, platformerrors.Wrap(platformerrors.CodeSeedGeneratorError, "failed to generate seed", err)
	}
}

func ticketSizeError(value string, err error) error {
	return platformerrors.WrapWithMetadata(
		platformerrors.CodeTicketSizeOutOfRange, err.Error(),
		map[string]string{i18n.MetadataValue: value}, err)
}

func seedError(err error) error {
	return platformerrors.Wrap(platformerrors.CodeSeedOutOfRange, random.ErrSeedOutOfRange.Error(), err)
}

func ticketNumbersError(value string, err error) error {
	return platformerrors.WrapWithMetadata(
		platformerrors.CodeTicketNumbersInvalid, err.Error(),
		map[string]string{i18n.MetadataValue: value}, err)
}
