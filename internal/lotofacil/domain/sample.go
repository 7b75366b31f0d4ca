package domain

import (
	"fmt"
	"slices"
)

// SampleTicket draws size distinct numbers from the board without
// replacement and returns them in ascending order.
//
// Each draw picks a uniform index into the remaining pool and removes that
// number, so the source is consulted exactly size times.
func SampleTicket(src Source, size int) (Ticket, error) {
	if src == nil {
		return nil, ErrMissingSource
	}
	if size < 0 || size > PoolSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDrawSize, size)
	}

	pool := make([]int, PoolSize)
	for i := range pool {
		pool[i] = i + 1
	}

	ticket := make(Ticket, 0, size)
	for range size {
		index := src.Intn(len(pool))
		ticket = append(ticket, pool[index])
		pool = slices.Delete(pool, index, index+1)
	}
	slices.Sort(ticket)
	return ticket, nil
}
