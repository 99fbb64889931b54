package allen

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes classification errors.
type ErrorCode string

const (
	// ErrCodeEmptyInterval indicates an interval with no extent.
	ErrCodeEmptyInterval ErrorCode = "EMPTY_INTERVAL"

	// ErrCodeAmbiguousOrder indicates a comparison without a definite order (NaN).
	ErrCodeAmbiguousOrder ErrorCode = "AMBIGUOUS_ORDER"

	// ErrCodeInvariantViolation indicates an atomic tuple that no pair of
	// non-empty intervals can produce.
	ErrCodeInvariantViolation ErrorCode = "INVARIANT_VIOLATION"
)

// Sentinels for errors.Is. Every *IntervalError matches exactly one of them.
var (
	ErrEmptyInterval  = errors.New("empty interval")
	ErrAmbiguousOrder = errors.New("ambiguous order")
)

// IntervalError reports why a pair of intervals could not be classified.
type IntervalError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Operand names the offending interval ("s" or "t"), or is empty when
	// the failure involves both.
	Operand string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *IntervalError) Error() string {
	if e.Operand != "" {
		return fmt.Sprintf("%s: %s (operand=%s)", e.Code, e.Message, e.Operand)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches the package sentinels by code.
func (e *IntervalError) Is(target error) bool {
	switch target {
	case ErrEmptyInterval:
		return e.Code == ErrCodeEmptyInterval
	case ErrAmbiguousOrder:
		return e.Code == ErrCodeAmbiguousOrder
	}
	return false
}

func newEmptyIntervalError(operand string) *IntervalError {
	return &IntervalError{
		Code:    ErrCodeEmptyInterval,
		Operand: operand,
		Message: "interval has no extent; relations are undefined for empty intervals",
	}
}

func newAmbiguousOrderError(operand, what string) *IntervalError {
	return &IntervalError{
		Code:    ErrCodeAmbiguousOrder,
		Operand: operand,
		Message: fmt.Sprintf("no definite order between %s", what),
	}
}

// IsEmptyInterval returns true if the error is an empty interval error.
// Uses errors.Is to handle wrapped errors.
func IsEmptyInterval(err error) bool {
	return errors.Is(err, ErrEmptyInterval)
}

// IsAmbiguousOrder returns true if the error is an ambiguous order error.
func IsAmbiguousOrder(err error) bool {
	return errors.Is(err, ErrAmbiguousOrder)
}

// CodeOf returns the ErrorCode carried by err, or "" if err is not an
// *IntervalError.
func CodeOf(err error) ErrorCode {
	var ie *IntervalError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}

// InvariantError is the panic value raised when the decision table sees a
// tuple of atomic orderings that two non-empty intervals cannot produce.
// It signals a defect in the comparators, never bad caller input.
type InvariantError struct {
	Atomics AtomicRelations
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: unmatched atomic relations %s", ErrCodeInvariantViolation, e.Atomics)
}
