package lotofacil

import (
	"github.com/louisbranch/lotofacil/internal/lotofacil/domain"
	"github.com/louisbranch/lotofacil/internal/lotofacil/service"
)

type statisticsOutput struct {
	Even      int `json:"even"`
	Odd       int `json:"odd"`
	Fibonacci int `json:"fibonacci"`
	Frame     int `json:"frame"`
	Sum       int `json:"sum"`
}

type ticketOutput struct {
	ID         int              `json:"id"`
	Numbers    []int            `json:"numbers"`
	Statistics statisticsOutput `json:"statistics"`
}

// averagesOutput keeps the one-decimal text form next to the numeric value.
type averagesOutput struct {
	Even          float64 `json:"avg_even"`
	Odd           float64 `json:"avg_odd"`
	Fibonacci     float64 `json:"avg_fibonacci"`
	Frame         float64 `json:"avg_frame"`
	EvenText      string  `json:"avg_even_text"`
	OddText       string  `json:"avg_odd_text"`
	FibonacciText string  `json:"avg_fibonacci_text"`
	FrameText     string  `json:"avg_frame_text"`
}

type batchOutput struct {
	TicketSize int            `json:"ticket_size"`
	Tickets    []ticketOutput `json:"tickets"`
	Statistics averagesOutput `json:"statistics"`
	Seed       uint64         `json:"seed"`
	SeedSource string         `json:"seed_source"`
	RollMode   string         `json:"roll_mode"`
	RngAlgo    string         `json:"rng_algo"`
}

type evaluationOutput struct {
	Numbers    []int            `json:"numbers"`
	Statistics statisticsOutput `json:"statistics"`
	Accepted   bool             `json:"accepted"`
	Violations []string         `json:"violations"`
}

func newStatisticsOutput(s domain.TicketStatistics) statisticsOutput {
	return statisticsOutput{Even: s.Even, Odd: s.Odd, Fibonacci: s.Fibonacci, Frame: s.Frame, Sum: s.Sum}
}

func newBatchOutput(resp service.GenerateResponse) batchOutput {
	stats := resp.Result.Statistics
	out := batchOutput{
		TicketSize: resp.TicketSize,
		Tickets:    make([]ticketOutput, 0, len(resp.Result.Batch)),
		Statistics: averagesOutput{
			Even:          stats.AvgEven,
			Odd:           stats.AvgOdd,
			Fibonacci:     stats.AvgFibonacci,
			Frame:         stats.AvgFrame,
			EvenText:      domain.FormatAverage(stats.AvgEven),
			OddText:       domain.FormatAverage(stats.AvgOdd),
			FibonacciText: domain.FormatAverage(stats.AvgFibonacci),
			FrameText:     domain.FormatAverage(stats.AvgFrame),
		},
		Seed:       resp.Rng.SeedUsed,
		SeedSource: resp.Rng.SeedSource,
		RollMode:   resp.Rng.RollMode,
		RngAlgo:    resp.Rng.RngAlgo,
	}
	for _, entry := range resp.Result.Batch {
		out.Tickets = append(out.Tickets, ticketOutput{
			ID:         entry.ID,
			Numbers:    []int(entry.Ticket),
			Statistics: newStatisticsOutput(entry.Statistics),
		})
	}
	return out
}

func newEvaluationOutput(resp service.EvaluateResponse) evaluationOutput {
	violations := make([]string, 0, len(resp.Evaluation.Violations))
	for _, v := range resp.Evaluation.Violations {
		violations = append(violations, string(v))
	}
	return evaluationOutput{
		Numbers:    []int(resp.Ticket),
		Statistics: newStatisticsOutput(resp.Evaluation.Statistics),
		Accepted:   resp.Evaluation.Accepted,
		Violations: violations,
	}
}
