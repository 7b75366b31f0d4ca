package service

import (
	"fmt"
	"math"
	"strconv"

	"github.com/louisbranch/lotofacil/internal/lotofacil/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

// Payload field names. Seeds travel as decimal strings because Struct numbers
// are doubles and cannot hold every uint64.
const (
	fieldTicketSize = "ticket_size"
	fieldRng        = "rng"
	fieldSeed       = "seed"
	fieldRollMode   = "roll_mode"
	fieldSeedUsed   = "seed_used"
	fieldRngAlgo    = "rng_algo"
	fieldSeedSource = "seed_source"
	fieldEntries    = "entries"
	fieldID         = "id"
	fieldNumbers    = "numbers"
	fieldStatistics = "statistics"
	fieldEven       = "even"
	fieldOdd        = "odd"
	fieldFibonacci  = "fibonacci"
	fieldFrame      = "frame"
	fieldSum        = "sum"
	fieldAvgEven    = "avg_even"
	fieldAvgOdd     = "avg_odd"
	fieldAvgFib     = "avg_fibonacci"
	fieldAvgFrame   = "avg_frame"
	fieldAccepted   = "accepted"
	fieldViolations = "violations"
)

func encodeGenerateRequest(req GenerateRequest) (*structpb.Struct, error) {
	fields := map[string]any{fieldTicketSize: req.TicketSize}
	if req.Rng != nil {
		rng := map[string]any{}
		if req.Rng.Seed != nil {
			rng[fieldSeed] = strconv.FormatUint(*req.Rng.Seed, 10)
		}
		if req.Rng.RollMode != "" {
			rng[fieldRollMode] = req.Rng.RollMode
		}
		fields[fieldRng] = rng
	}
	return structpb.NewStruct(fields)
}

func decodeGenerateRequest(in *structpb.Struct) (GenerateRequest, error) {
	size, ok := intValue(in.GetFields()[fieldTicketSize])
	if !ok {
		return GenerateRequest{}, ticketSizeError(
			describeValue(in.GetFields()[fieldTicketSize]),
			fmt.Errorf("%w: ticket_size must be an integer", domain.ErrInvalidTicketSize))
	}
	req := GenerateRequest{TicketSize: size}

	rng := in.GetFields()[fieldRng].GetStructValue()
	if rng == nil {
		return req, nil
	}
	req.Rng = &RngRequest{RollMode: rng.GetFields()[fieldRollMode].GetStringValue()}
	if value, ok := rng.GetFields()[fieldSeed]; ok {
		seed, err := seedValue(value)
		if err != nil {
			return GenerateRequest{}, seedError(err)
		}
		req.Rng.Seed = &seed
	}
	return req, nil
}

func encodeGenerateResponse(resp GenerateResponse) (*structpb.Struct, error) {
	entries := make([]any, 0, len(resp.Result.Batch))
	for _, entry := range resp.Result.Batch {
		entries = append(entries, map[string]any{
			fieldID:         entry.ID,
			fieldNumbers:    intsToList(entry.Ticket),
			fieldStatistics: ticketStatisticsFields(entry.Statistics),
		})
	}
	stats := resp.Result.Statistics
	return structpb.NewStruct(map[string]any{
		fieldTicketSize: resp.TicketSize,
		fieldEntries:    entries,
		fieldStatistics: map[string]any{
			fieldAvgEven:  stats.AvgEven,
			fieldAvgOdd:   stats.AvgOdd,
			fieldAvgFib:   stats.AvgFibonacci,
			fieldAvgFrame: stats.AvgFrame,
		},
		fieldRng: map[string]any{
			fieldSeedUsed:   strconv.FormatUint(resp.Rng.SeedUsed, 10),
			fieldRngAlgo:    resp.Rng.RngAlgo,
			fieldSeedSource: resp.Rng.SeedSource,
			fieldRollMode:   resp.Rng.RollMode,
		},
	})
}

func decodeGenerateResponse(in *structpb.Struct) (GenerateResponse, error) {
	fields := in.GetFields()
	size, ok := intValue(fields[fieldTicketSize])
	if !ok {
		return GenerateResponse{}, fmt.Errorf("decode response: missing %s", fieldTicketSize)
	}

	entries := fields[fieldEntries].GetListValue().GetValues()
	if len(entries) != domain.BatchSize {
		return GenerateResponse{}, fmt.Errorf("decode response: got %d entries, want %d", len(entries), domain.BatchSize)
	}
	var batch domain.Batch
	for i, value := range entries {
		entry := value.GetStructValue().GetFields()
		id, ok := intValue(entry[fieldID])
		if !ok {
			return GenerateResponse{}, fmt.Errorf("decode response: entry %d has no id", i)
		}
		numbers, err := listToInts(entry[fieldNumbers].GetListValue())
		if err != nil {
			return GenerateResponse{}, fmt.Errorf("decode response: entry %d: %w", id, err)
		}
		batch[i] = domain.Entry{
			ID:         id,
			Ticket:     domain.Ticket(numbers),
			Statistics: decodeTicketStatistics(entry[fieldStatistics].GetStructValue()),
		}
	}

	stats := fields[fieldStatistics].GetStructValue().GetFields()
	rng := fields[fieldRng].GetStructValue().GetFields()
	seed, err := strconv.ParseUint(rng[fieldSeedUsed].GetStringValue(), 10, 64)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("decode response: seed: %w", err)
	}

	return GenerateResponse{
		TicketSize: size,
		Result: domain.Result{
			Batch: batch,
			Statistics: domain.BatchStatistics{
				AvgEven:      stats[fieldAvgEven].GetNumberValue(),
				AvgOdd:       stats[fieldAvgOdd].GetNumberValue(),
				AvgFibonacci: stats[fieldAvgFib].GetNumberValue(),
				AvgFrame:     stats[fieldAvgFrame].GetNumberValue(),
			},
		},
		Rng: RngResult{
			SeedUsed:   seed,
			RngAlgo:    rng[fieldRngAlgo].GetStringValue(),
			SeedSource: rng[fieldSeedSource].GetStringValue(),
			RollMode:   rng[fieldRollMode].GetStringValue(),
		},
	}, nil
}

func encodeEvaluateRequest(req EvaluateRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{fieldNumbers: intsToList(req.Numbers)})
}

func decodeEvaluateRequest(in *structpb.Struct) (EvaluateRequest, error) {
	numbers, err := listToInts(in.GetFields()[fieldNumbers].GetListValue())
	if err != nil {
		return EvaluateRequest{}, ticketNumbersError(describeValue(in.GetFields()[fieldNumbers]),
			fmt.Errorf("%w: %v", domain.ErrInvalidTicketNumbers, err))
	}
	return EvaluateRequest{Numbers: numbers}, nil
}

func encodeEvaluateResponse(resp EvaluateResponse) (*structpb.Struct, error) {
	violations := make([]any, 0, len(resp.Evaluation.Violations))
	for _, v := range resp.Evaluation.Violations {
		violations = append(violations, string(v))
	}
	return structpb.NewStruct(map[string]any{
		fieldNumbers:    intsToList(resp.Ticket),
		fieldStatistics: ticketStatisticsFields(resp.Evaluation.Statistics),
		fieldAccepted:   resp.Evaluation.Accepted,
		fieldViolations: violations,
	})
}

func decodeEvaluateResponse(in *structpb.Struct) (EvaluateResponse, error) {
	fields := in.GetFields()
	numbers, err := listToInts(fields[fieldNumbers].GetListValue())
	if err != nil {
		return EvaluateResponse{}, fmt.Errorf("decode response: %w", err)
	}
	var violations []domain.Criterion
	for _, v := range fields[fieldViolations].GetListValue().GetValues() {
		violations = append(violations, domain.Criterion(v.GetStringValue()))
	}
	return EvaluateResponse{
		Ticket: domain.Ticket(numbers),
		Evaluation: domain.Evaluation{
			Statistics: decodeTicketStatistics(fields[fieldStatistics].GetStructValue()),
			Accepted:   fields[fieldAccepted].GetBoolValue(),
			Violations: violations,
		},
	}, nil
}

func ticketStatisticsFields(s domain.TicketStatistics) map[string]any {
	return map[string]any{
		fieldEven:      s.Even,
		fieldOdd:       s.Odd,
		fieldFibonacci: s.Fibonacci,
		fieldFrame:     s.Frame,
		fieldSum:       s.Sum,
	}
}

func decodeTicketStatistics(in *structpb.Struct) domain.TicketStatistics {
	fields := in.GetFields()
	number := func(name string) int {
		v, _ := intValue(fields[name])
		return v
	}
	return domain.TicketStatistics{
		Even:      number(fieldEven),
		Odd:       number(fieldOdd),
		Fibonacci: number(fieldFibonacci),
		Frame:     number(fieldFrame),
		Sum:       number(fieldSum),
	}
}

// intValue reads an integral number value.
func intValue(v *structpb.Value) (int, bool) {
	number, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	f := number.NumberValue
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// seedValue accepts the decimal string form and, for convenience, small
// integral numbers.
func seedValue(v *structpb.Value) (uint64, error) {
	if number, ok := v.GetKind().(*structpb.Value_NumberValue); ok {
		f := number.NumberValue
		if f != math.Trunc(f) || f < 0 || f > 1<<53 {
			return 0, fmt.Errorf("seed %v is not an exact non-negative integer", f)
		}
		return uint64(f), nil
	}
	return strconv.ParseUint(v.GetStringValue(), 10, 64)
}

func describeValue(v *structpb.Value) string {
	if v == nil {
		return "missing"
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return "invalid"
	}
	return string(b)
}

func intsToList(values []int) []any {
	list := make([]any, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}

func listToInts(list *structpb.ListValue) ([]int, error) {
	values := make([]int, 0, len(list.GetValues()))
	for i, value := range list.GetValues() {
		n, ok := intValue(value)
		if !ok {
			return nil, fmt.Errorf("element %d is not an integer", i)
		}
		values = append(values, n)
	}
	return values, nil
}
