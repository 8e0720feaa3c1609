package dimension

import (
	"errors"
	"fmt"
)

// Error kinds reported by the dimension layer. Callers match them with errors.Is.
var (
	ErrRankMismatch     = errors.New("rank mismatch")
	ErrOutOfBounds      = errors.New("index out of bounds")
	ErrSliceOutOfBounds = errors.New("slice out of bounds")
	ErrInvalidStride    = errors.New("invalid slice stride")
	ErrCapacityExceeded = errors.New("rank exceeds maximum of 10 axes")
	ErrEmptyShape       = errors.New("shape must have at least one axis")
	ErrInvalidShape     = errors.New("invalid shape")
	ErrAllocation       = errors.New("buffer allocation failed")
)

// AxisError carries the axis, offending value and extent for bounds failures.
type AxisError struct {
	Err    error // ErrOutOfBounds or ErrSliceOutOfBounds
	Axis   int
	Value  int
	Extent int
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("%v: axis %d: value %d, extent %d", e.Err, e.Axis, e.Value, e.Extent)
}

// Unwrap returns the underlying error kind.
func (e *AxisError) Unwrap() error {
	return e.Err
}

func rankError(what string, got, want int) error {
	return fmt.Errorf("%w: %s has %d axes, want %d", ErrRankMismatch, what, got, want)
}
