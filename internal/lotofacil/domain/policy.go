package domain

// Bounds is an inclusive integer range.
type Bounds struct {
	Min int
	Max int
}

// Contains reports whether v lies in the range.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Criterion names one acceptance rule.
type Criterion string

const (
	CriterionEven      Criterion = "even"
	CriterionOdd       Criterion = "odd"
	CriterionFibonacci Criterion = "fibonacci"
	CriterionFrame     Criterion = "frame"
	CriterionSequence  Criterion = "sequence"
)

// Policy is the acceptance rule set applied to candidate tickets.
type Policy struct {
	Even      Bounds
	Odd       Bounds
	Fibonacci Bounds
	Frame     Bounds
	// MaxRun is the run length of consecutive numbers that causes rejection.
	MaxRun int
}

// DefaultPolicy returns the bounds observed in past Lotofácil draws.
// They apply unchanged to every ticket size.
func DefaultPolicy() Policy {
	return Policy{
		Even:      Bounds{Min: 6, Max: 9},
		Odd:       Bounds{Min: 6, Max: 9},
		Fibonacci: Bounds{Min: 3, Max: 7},
		Frame:     Bounds{Min: 8, Max: 12},
		MaxRun:    DefaultMaxRun,
	}
}

// Evaluation is the outcome of checking a ticket against a policy.
type Evaluation struct {
	Statistics TicketStatistics
	Accepted   bool
	// Violations lists failed criteria in evaluation order.
	Violations []Criterion
}

// Evaluate checks every criterion against ticket.
func (p Policy) Evaluate(ticket Ticket) Evaluation {
	stats := ComputeStatistics(ticket)
	var violations []Criterion
	if !p.Even.Contains(stats.Even) {
		violations = append(violations, CriterionEven)
	}
	if !p.Odd.Contains(stats.Odd) {
		violations = append(violations, CriterionOdd)
	}
	if !p.Fibonacci.Contains(stats.Fibonacci) {
		violations = append(violations, CriterionFibonacci)
	}
	if !p.Frame.Contains(stats.Frame) {
		violations = append(violations, CriterionFrame)
	}
	if HasLongSequence(ticket, p.MaxRun) {
		violations = append(violations, CriterionSequence)
	}
	return Evaluation{
		Statistics: stats,
		Accepted:   len(violations) == 0,
		Violations: violations,
	}
}

// Accepts reports whether ticket satisfies every criterion.
func (p Policy) Accepts(ticket Ticket) bool {
	even, odd := CountEvenOdd(ticket)
	return p.Even.Contains(even) &&
		p.Odd.Contains(odd) &&
		p.Fibonacci.Contains(CountFibonacci(ticket)) &&
		p.Frame.Contains(CountFrame(ticket)) &&
		!HasLongSequence(ticket, p.MaxRun)
}
