package random

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// RollMode says whether a generation is fresh or a replay of a known seed.
type RollMode string

const (
	RollModeLive   RollMode = "LIVE"
	RollModeReplay RollMode = "REPLAY"
)

// SeedSource records who supplied the seed.
type SeedSource string

const (
	SeedSourceClient SeedSource = "CLIENT"
	SeedSourceServer SeedSource = "SERVER"
)

// ErrSeedOutOfRange indicates a client seed that does not fit in an int64.
var ErrSeedOutOfRange = errors.New("seed must be between 0 and 9223372036854775807")

// ErrSeedRequired indicates a replay request without a seed.
var ErrSeedRequired = errors.New("replay roll mode requires a seed")

// ErrInvalidRollMode indicates an unknown roll mode label.
var ErrInvalidRollMode = errors.New("roll mode must be LIVE or REPLAY")

// Request carries optional caller RNG settings.
type Request struct {
	Seed     *uint64
	RollMode RollMode
}

// Resolved is the seed selected for a generation and where it came from.
type Resolved struct {
	Seed     int64
	Source   SeedSource
	RollMode RollMode
}

// ParseRollMode maps a label to a RollMode. An empty label means LIVE.
func ParseRollMode(value string) (RollMode, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", string(RollModeLive):
		return RollModeLive, nil
	case string(RollModeReplay):
		return RollModeReplay, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidRollMode, value)
	}
}

// ResolveSeed picks the seed for a generation.
//
// A client seed always wins. Without one, REPLAY fails with ErrSeedRequired
// and LIVE asks seedFunc for a fresh seed.
func ResolveSeed(request *Request, seedFunc func() (int64, error)) (Resolved, error) {
	mode := RollModeLive
	if request != nil && request.RollMode != "" {
		mode = request.RollMode
	}

	if request != nil && request.Seed != nil {
		if *request.Seed > math.MaxInt64 {
			return Resolved{}, ErrSeedOutOfRange
		}
		return Resolved{
			Seed:     int64(*request.Seed),
			Source:   SeedSourceClient,
			RollMode: mode,
		}, nil
	}

	if mode == RollModeReplay {
		return Resolved{}, ErrSeedRequired
	}
	if seedFunc == nil {
		return Resolved{}, errors.New("seed generator is not configured")
	}
	seed, err := seedFunc()
	if err != nil {
		return Resolved{}, fmt.Errorf("generate seed: %w", err)
	}
	return Resolved{
		Seed:     seed,
		Source:   SeedSourceServer,
		RollMode: mode,
	}, nil
}
