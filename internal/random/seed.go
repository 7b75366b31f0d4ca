// Package random provides seed generation and seed resolution helpers.
//
// It uses crypto/rand to generate high-entropy seeds and math/rand to build
// the deterministic sources that consume them, so any generation can be
// replayed from its seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// RngAlgoMathRandV1 identifies math/rand seeded with rand.NewSource.
const RngAlgoMathRandV1 = "math_rand_v1"

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:]) >> 1), nil
}

// NewSource returns a deterministic source for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
