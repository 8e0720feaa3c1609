package dimension

import "fmt"

// Selector picks part of one axis when slicing. It is implemented by Slice,
// which keeps the axis, and At, which pins the axis to one coordinate and
// removes it from the result.
type Selector interface {
	selectAxis(axis, extent int) (axisSelection, error)
}

type axisSelection struct {
	begin    int
	extent   int
	step     int
	collapse bool
}

// Slice selects the half-open range [Begin, End) of an axis, taking every
// Step-th element. End == 0 means "up to the end of the axis" and is resolved
// against the extent of the array being sliced, not when the Slice is built.
type Slice struct {
	Begin int
	End   int
	Step  int
}

// NewSlice builds a Slice and validates what can be checked without knowing
// the axis extent.
func NewSlice(begin, end, step int) (Slice, error) {
	s := Slice{Begin: begin, End: end, Step: step}
	if err := s.validate(); err != nil {
		return Slice{}, err
	}
	return s, nil
}

// Span is a step-1 Slice over [begin, end). It is validated when applied.
func Span(begin, end int) Slice {
	return Slice{Begin: begin, End: end, Step: 1}
}

func (s Slice) validate() error {
	if s.Step <= 0 {
		return fmt.Errorf("%w: step %d must be positive", ErrInvalidStride, s.Step)
	}
	if s.Begin < 0 || s.End < 0 {
		return fmt.Errorf("%w: negative bound in [%d, %d)", ErrSliceOutOfBounds, s.Begin, s.End)
	}
	if s.End != 0 && s.Begin >= s.End {
		return fmt.Errorf("%w: begin %d must be less than end %d", ErrSliceOutOfBounds, s.Begin, s.End)
	}
	return nil
}

// String renders the slice in begin:end:step form, e.g. "0:5:2".
func (s Slice) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Begin, s.End, s.Step)
}

func (s Slice) selectAxis(axis, extent int) (axisSelection, error) {
	if err := s.validate(); err != nil {
		return axisSelection{}, fmt.Errorf("axis %d: %w", axis, err)
	}
	end := s.End
	if end == 0 {
		end = extent
	}
	if s.Begin >= extent {
		return axisSelection{}, &AxisError{Err: ErrSliceOutOfBounds, Axis: axis, Value: s.Begin, Extent: extent}
	}
	if end > extent {
		return axisSelection{}, &AxisError{Err: ErrSliceOutOfBounds, Axis: axis, Value: end, Extent: extent}
	}
	return axisSelection{
		begin:  s.Begin,
		extent: (end-s.Begin-1)/s.Step + 1,
		step:   s.Step,
	}, nil
}

// At pins an axis to a single coordinate. The axis is dropped from the
// resulting view.
type At int

func (a At) selectAxis(axis, extent int) (axisSelection, error) {
	if a < 0 || int(a) >= extent {
		return axisSelection{}, &AxisError{Err: ErrSliceOutOfBounds, Axis: axis, Value: int(a), Extent: extent}
	}
	return axisSelection{begin: int(a), extent: 1, step: 1, collapse: true}, nil
}

// Geometry describes a strided window into a flat buffer: the element at
// coordinates c lives at Offset + c.Dot(Stride).
type Geometry struct {
	Offset int
	Shape  Shape
	Stride Stride
}

// Resolve applies sels to the axes of a window described by shape and stride,
// leading axis first. Axes without a selector keep their full range. Axes
// selected with At are removed, keeping the order of the remaining axes.
func Resolve(shape Shape, stride Stride, sels ...Selector) (Geometry, error) {
	if stride.rank != shape.rank {
		return Geometry{}, rankError("stride", stride.rank, shape.rank)
	}
	if len(sels) > shape.rank {
		return Geometry{}, rankError("selector list", len(sels), shape.rank)
	}

	g := Geometry{Shape: shape, Stride: stride}
	var collapsed [MaxRank]bool
	for axis, sel := range sels {
		if sel == nil {
			return Geometry{}, fmt.Errorf("%w: nil selector at axis %d", ErrSliceOutOfBounds, axis)
		}
		r, err := sel.selectAxis(axis, shape.vals[axis])
		if err != nil {
			return Geometry{}, err
		}
		g.Offset += r.begin * stride.vals[axis]
		if r.collapse {
			collapsed[axis] = true
			continue
		}
		g.Shape.vals[axis] = r.extent
		// A single-element axis never advances; scaling its stride could overflow.
		if r.extent > 1 {
			g.Stride.vals[axis] = stride.vals[axis] * r.step
		}
	}

	keep := func(axis, _ int) bool { return !collapsed[axis] }
	g.Shape.Filter(keep)
	g.Stride.Filter(keep)
	if g.Shape.rank == 0 {
		return Geometry{}, fmt.Errorf("%w: every axis is pinned, access the element directly", ErrRankMismatch)
	}
	return g, nil
}
