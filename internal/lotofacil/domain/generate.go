package domain

import (
	"math"
	"strconv"
)

// slotState tracks a single batch slot while it is being filled.
type slotState int

const (
	slotSampling slotState = iota
	slotFallback
	slotAccepted
)

func (s slotState) String() string {
	switch s {
	case slotSampling:
		return "SAMPLING"
	case slotFallback:
		return "FALLBACK"
	case slotAccepted:
		return "ACCEPTED"
	default:
		return "UNKNOWN"
	}
}

// SlotReport describes how one batch slot was filled.
type SlotReport struct {
	ID       int
	Attempts int
	// Fallback is set when the slot holds the last candidate after the
	// attempt bound was reached.
	Fallback bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithPolicy replaces the default acceptance policy.
func WithPolicy(policy Policy) Option {
	return func(g *Generator) {
		g.policy = policy
	}
}

// WithSlotHook registers a callback invoked after each slot is filled.
// The hook does not affect the produced batch.
func WithSlotHook(hook func(SlotReport)) Option {
	return func(g *Generator) {
		g.onSlot = hook
	}
}

// Generator produces batches of policy-balanced tickets.
//
// A Generator is not safe for concurrent use because its Source is not.
// Use one Generator per invocation.
type Generator struct {
	source Source
	policy Policy
	onSlot func(SlotReport)
}

// NewGenerator creates a generator drawing from src.
func NewGenerator(src Source, opts ...Option) (*Generator, error) {
	if src == nil {
		return nil, ErrMissingSource
	}
	g := &Generator{
		source: src,
		policy: DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateBatch fills BatchSize slots with tickets of ticketSize numbers and
// summarizes them.
//
// # Retry and fallback
//
// Each slot is sampled until a candidate satisfies the policy or MaxAttempts
// candidates have been drawn. When the bound is reached the final candidate
// is kept as is, without an extra draw, so at most
// BatchSize*MaxAttempts tickets are sampled per call.
//
// # Errors
//
// The only error is ErrInvalidTicketSize for sizes outside
// [MinTicketSize, MaxTicketSize]. Unsatisfiable policies are absorbed by the
// fallback.
func (g *Generator) GenerateBatch(ticketSize int) (Result, error) {
	if err := ValidateTicketSize(ticketSize); err != nil {
		return Result{}, err
	}

	var batch Batch
	for i := range batch {
		id := i + 1
		ticket, report, err := g.fillSlot(id, ticketSize)
		if err != nil {
			return Result{}, err
		}
		batch[i] = Entry{
			ID:         id,
			Ticket:     ticket,
			Statistics: ComputeStatistics(ticket),
		}
		if g.onSlot != nil {
			g.onSlot(report)
		}
	}

	return Result{
		Batch:      batch,
		Statistics: Summarize(batch),
	}, nil
}

// fillSlot runs the slot state machine until it reaches slotAccepted.
func (g *Generator) fillSlot(id, ticketSize int) (Ticket, SlotReport, error) {
	report := SlotReport{ID: id}
	state := slotSampling
	var candidate Ticket

	for state != slotAccepted {
		switch state {
		case slotSampling:
			ticket, err := SampleTicket(g.source, ticketSize)
			if err != nil {
				return nil, SlotReport{}, err
			}
			candidate = ticket
			report.Attempts++
			switch {
			case g.policy.Accepts(candidate):
				state = slotAccepted
			case report.Attempts >= MaxAttempts:
				state = slotFallback
			}
		case slotFallback:
			report.Fallback = true
			state = slotAccepted
		}
	}
	return candidate, report, nil
}

// GenerateBatch is a convenience wrapper using the default policy.
func GenerateBatch(src Source, ticketSize int) (Result, error) {
	g, err := NewGenerator(src)
	if err != nil {
		return Result{}, err
	}
	return g.GenerateBatch(ticketSize)
}

// Summarize averages each ticket statistic across the batch.
func Summarize(batch Batch) BatchStatistics {
	var even, odd, fib, frame int
	for _, entry := range batch {
		even += entry.Statistics.Even
		odd += entry.Statistics.Odd
		fib += entry.Statistics.Fibonacci
		frame += entry.Statistics.Frame
	}
	return BatchStatistics{
		AvgEven:      mean(even, len(batch)),
		AvgOdd:       mean(odd, len(batch)),
		AvgFibonacci: mean(fib, len(batch)),
		AvgFrame:     mean(frame, len(batch)),
	}
}

func mean(total, count int) float64 {
	return math.Round(float64(total)/float64(count)*10) / 10
}

// FormatAverage renders an average with one decimal place.
func FormatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
