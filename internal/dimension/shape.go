package dimension

import (
	"fmt"
	"math"
)

// Shape holds the extent of every axis of an array.
type Shape struct {
	Dims
}

// NewShape creates a shape from 1 to MaxRank non-negative extents.
// A zero extent is allowed and yields an empty shape (Size() == 0).
func NewShape(extents ...int) (Shape, error) {
	if len(extents) == 0 {
		return Shape{}, ErrEmptyShape
	}
	d, err := NewDims(extents...)
	if err != nil {
		return Shape{}, err
	}
	for i, e := range extents {
		if e < 0 {
			return Shape{}, fmt.Errorf("%w: extent %d at axis %d is negative", ErrInvalidShape, e, i)
		}
	}
	return Shape{d}, nil
}

// MustShape is like NewShape but panics on error.
// Intended for literals in tests and examples.
func MustShape(extents ...int) Shape {
	s, err := NewShape(extents...)
	if err != nil {
		panic(err)
	}
	return s
}

// NDims returns the number of axes.
func (s Shape) NDims() int {
	return s.rank
}

// Get returns the extent of axis, failing with ErrOutOfBounds when the axis
// does not exist. Use At on hot paths where the axis is already known valid.
func (s Shape) Get(axis int) (int, error) {
	if axis < 0 || axis >= s.rank {
		return 0, &AxisError{Err: ErrOutOfBounds, Axis: axis, Value: axis, Extent: s.rank}
	}
	return s.vals[axis], nil
}

// Size returns the product of all extents.
// It is 0 if any extent is 0 and 1 for a shape squeezed down to no axes.
func (s Shape) Size() int {
	n := 1
	for _, e := range s.vals[:s.rank] {
		n *= e
	}
	return n
}

// CheckedSize is like Size but reports ErrAllocation if the product overflows.
func (s Shape) CheckedSize() (int, error) {
	n := 1
	for _, e := range s.vals[:s.rank] {
		if e != 0 && n > math.MaxInt/e {
			return 0, fmt.Errorf("%w: size of shape %v overflows", ErrAllocation, s)
		}
		n *= e
	}
	return n, nil
}

// Squeeze removes every unit axis in place, keeping the order of the rest.
func (s *Shape) Squeeze() {
	s.Filter(func(_, e int) bool { return e != 1 })
}

// Equal reports whether both shapes have the same extents.
func (s Shape) Equal(other Shape) bool {
	return s.Dims.Equal(other.Dims)
}

// Strides returns the row-major strides for the shape.
func (s Shape) Strides() Stride {
	return StridesOf(s)
}
