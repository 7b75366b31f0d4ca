// Package errors provides structured error handling with gRPC status mapping.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Ticket errors
	CodeTicketSizeOutOfRange Code = "TICKET_SIZE_OUT_OF_RANGE"
	CodeTicketNumbersInvalid Code = "TICKET_NUMBERS_INVALID"

	// Random/seed errors
	CodeSeedOutOfRange     Code = "SEED_OUT_OF_RANGE"
	CodeSeedRequired       Code = "SEED_REQUIRED"
	CodeRollModeInvalid    Code = "ROLL_MODE_INVALID"
	CodeSeedGeneratorError Code = "SEED_GENERATOR_ERROR"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeTicketSizeOutOfRange,
		CodeTicketNumbersInvalid,
		CodeSeedOutOfRange,
		CodeSeedRequired,
		CodeRollModeInvalid:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
