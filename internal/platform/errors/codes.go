// Package errors provides coded domain errors for the generator core.
//
// Every failure the core reports is a caller-input validation failure. The
// code says which rule was broken; the message says how.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Argument validation
	CodeRangeViolation     Code = "RANGE_VIOLATION"
	CodeConflictingOptions Code = "CONFLICTING_OPTIONS"

	// Collection validation
	CodeEmptyInput        Code = "EMPTY_INPUT"
	CodeMismatchedLengths Code = "MISMATCHED_LENGTHS"
	CodeDegenerateWeights Code = "DEGENERATE_WEIGHTS"

	// Bounded retries ran out
	CodeExhaustedSampleSpace Code = "EXHAUSTED_SAMPLE_SPACE"

	// Dice
	CodeDiceMissing         Code = "DICE_MISSING"
	CodeDiceInvalidSpec     Code = "DICE_INVALID_SPEC"
	CodeDiceInvalidNotation Code = "DICE_INVALID_NOTATION"

	// Reference data
	CodeDataNotFound Code = "DATA_NOT_FOUND"
	CodeDataInvalid  Code = "DATA_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRangeViolation,
		CodeConflictingOptions,
		CodeEmptyInput,
		CodeMismatchedLengths,
		CodeDegenerateWeights,
		CodeDiceMissing,
		CodeDiceInvalidSpec,
		CodeDiceInvalidNotation:
		return codes.InvalidArgument

	// FailedPrecondition - the request is well formed but cannot be satisfied
	case CodeExhaustedSampleSpace:
		return codes.FailedPrecondition

	case CodeDataNotFound:
		return codes.NotFound

	case CodeDataInvalid:
		return codes.DataLoss

	default:
		return codes.Internal
	}
}
