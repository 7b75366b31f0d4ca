package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidTicketSize indicates a ticket size outside [MinTicketSize, MaxTicketSize].
var ErrInvalidTicketSize = errors.New("ticket size must be between 15 and 20")

// ErrInvalidDrawSize indicates a sampler request larger than the pool.
var ErrInvalidDrawSize = errors.New("draw size must be between 0 and 25")

// ErrInvalidTicketNumbers indicates a caller-supplied ticket is not a set of
// distinct numbers in [1, PoolSize].
var ErrInvalidTicketNumbers = errors.New("ticket numbers must be distinct values between 1 and 25")

// ErrMissingSource indicates no random source was provided.
var ErrMissingSource = errors.New("random source is required")

// ValidateTicketSize reports whether size is a playable ticket size.
func ValidateTicketSize(size int) error {
	if size < MinTicketSize || size > MaxTicketSize {
		return fmt.Errorf("%w: got %d", ErrInvalidTicketSize, size)
	}
	return nil
}
