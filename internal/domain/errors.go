package domain

import (
	"errors"
	"fmt"
)

// The engine fails fast: both error classes are raised at the very start of a
// calculation, before any accumulation begins, so a caller never sees a
// partial result for invalid input.
var (
	// ErrNilInput marks a missing required collection argument.
	ErrNilInput = errors.New("required input is nil")

	// ErrInvalidArgument marks an out-of-domain value: a negative amount,
	// balance or rate, a non-positive window length, or an end date before a
	// start date.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NilInputError returns an ErrNilInput wrapping the named argument.
func NilInputError(name string) error {
	return fmt.Errorf("%w: %s", ErrNilInput, name)
}

// InvalidArgumentError returns an ErrInvalidArgument with a formatted reason.
func InvalidArgumentError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
