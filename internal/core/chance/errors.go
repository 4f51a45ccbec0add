package chance

import (
	"fmt"

	apperrors "github.com/louisbranch/chance/internal/platform/errors"
)

// Sentinels for errors.Is. Errors returned by this package carry a more
// specific message but match exactly one of these by code.
var (
	// ErrRangeViolation indicates min > max, a likelihood outside [0,100], a
	// negative length or count, or a bound outside the representable range.
	ErrRangeViolation = apperrors.New(apperrors.CodeRangeViolation, "value out of range")

	// ErrConflictingOptions indicates mutually exclusive options were both set.
	ErrConflictingOptions = apperrors.New(apperrors.CodeConflictingOptions, "conflicting options")

	// ErrEmptyInput indicates a selection over an empty collection.
	ErrEmptyInput = apperrors.New(apperrors.CodeEmptyInput, "empty input")

	// ErrMismatchedLengths indicates items and weights differ in length.
	ErrMismatchedLengths = apperrors.New(apperrors.CodeMismatchedLengths, "items and weights differ in length")

	// ErrDegenerateWeights indicates no weight is positive.
	ErrDegenerateWeights = apperrors.New(apperrors.CodeDegenerateWeights, "no positive weights")

	// ErrExhaustedSampleSpace indicates a bounded retry budget ran out.
	ErrExhaustedSampleSpace = apperrors.New(apperrors.CodeExhaustedSampleSpace, "sample space exhausted")
)

func rangeError(format string, args ...any) error {
	return apperrors.Newf(apperrors.CodeRangeViolation, format, args...)
}

func conflictError(a, b string) error {
	return apperrors.WithMetadata(apperrors.CodeConflictingOptions,
		fmt.Sprintf("cannot specify both %s and %s", a, b),
		map[string]string{"first": a, "second": b})
}

func emptyError(op string) error {
	return apperrors.WithMetadata(apperrors.CodeEmptyInput,
		fmt.Sprintf("%s: cannot select from an empty collection", op),
		map[string]string{"operation": op})
}

func mismatchError(items, weights int) error {
	return apperrors.WithMetadata(apperrors.CodeMismatchedLengths,
		fmt.Sprintf("%d items but %d weights", items, weights),
		map[string]string{"items": fmt.Sprint(items), "weights": fmt.Sprint(weights)})
}

func degenerateError(sum float64) error {
	return apperrors.Newf(apperrors.CodeDegenerateWeights, "sum of positive weights is %v", sum)
}

func exhaustedError(op string, budget int) error {
	return apperrors.WithMetadata(apperrors.CodeExhaustedSampleSpace,
		fmt.Sprintf("%s: no result within %d attempts", op, budget),
		map[string]string{"operation": op, "budget": fmt.Sprint(budget)})
}
