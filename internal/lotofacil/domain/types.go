package domain

const (
	// PoolSize is the number of balls on the Lotofácil board.
	PoolSize = 25
	// MinTicketSize is the smallest ticket a player can mark.
	MinTicketSize = 15
	// MaxTicketSize is the largest ticket a player can mark.
	MaxTicketSize = 20
	// BatchSize is the number of tickets produced per generation.
	BatchSize = 5
	// MaxAttempts bounds how many candidates are drawn for one batch slot.
	MaxAttempts = 1000
	// DefaultMaxRun is the run length rejected by the default policy.
	DefaultMaxRun = 5
)

// Source is the uniform draw capability used by the sampler.
//
// Intn returns a value in [0, n). *math/rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// Ticket is an ascending sequence of distinct numbers in [1, PoolSize].
//
// Tickets are produced by SampleTicket or ParseTicket and must not be
// modified afterwards.
type Ticket []int

// TicketStatistics captures the derived counts for an accepted ticket.
type TicketStatistics struct {
	Even      int
	Odd       int
	Fibonacci int
	Frame     int
	Sum       int
}

// Entry pairs an accepted ticket with its statistics and 1-based slot id.
type Entry struct {
	ID         int
	Ticket     Ticket
	Statistics TicketStatistics
}

// Batch is the fixed group of tickets produced by one generation.
type Batch [BatchSize]Entry

// BatchStatistics holds the per-batch mean of each ticket statistic,
// rounded to one decimal place.
type BatchStatistics struct {
	AvgEven      float64
	AvgOdd       float64
	AvgFibonacci float64
	AvgFrame     float64
}

// Result is the atomic output of a batch generation.
type Result struct {
	Batch      Batch
	Statistics BatchStatistics
}
