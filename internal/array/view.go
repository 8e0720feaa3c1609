package array

import (
	"fmt"
	"iter"

	"github.com/dasupradyumna/DeVi/internal/dimension"
	"github.com/dasupradyumna/DeVi/internal/parallel"
)

// View is a strided window into an Array's buffer. It does not own the buffer;
// writes through a view are visible to the array and to every overlapping view.
//
// Views are only created by slicing an Array or another View.
type View[T Scalar] struct {
	source []T
	start  int
	stride dimension.Stride
	shape  dimension.Shape
}

func newView[T Scalar](source []T, g dimension.Geometry) *View[T] {
	return &View[T]{
		source: source,
		start:  g.Offset,
		stride: g.Stride,
		shape:  g.Shape,
	}
}

// Shape returns the view's shape.
func (v *View[T]) Shape() dimension.Shape {
	return v.shape
}

// NDims returns the number of axes.
func (v *View[T]) NDims() int {
	return v.shape.NDims()
}

// Size returns the number of elements in the view.
func (v *View[T]) Size() int {
	return v.shape.Size()
}

// DType returns the element type tag.
func (v *View[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Offset returns the buffer position of the view's first element.
func (v *View[T]) Offset() int {
	return v.start
}

// Strides returns the buffer step of each axis.
func (v *View[T]) Strides() dimension.Stride {
	return v.stride
}

// offset maps a row-major position within the view to a buffer position.
// It panics if i is outside [0, Size()).
func (v *View[T]) offset(i int) int {
	idx, err := dimension.Unflat(v.shape, i)
	if err != nil {
		panic(err)
	}
	off, _ := idx.Dot(v.stride)
	return v.start + off
}

// Flat returns the element at row-major position i of the view.
// It panics if i is outside [0, Size()).
func (v *View[T]) Flat(i int) T {
	return v.source[v.offset(i)]
}

// SetFlat stores x at row-major position i of the view.
// It panics if i is outside [0, Size()).
func (v *View[T]) SetFlat(i int, x T) {
	v.source[v.offset(i)] = x
}

// At returns the element at row-major position i, which must be below Size().
func (v *View[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Size() {
		var zero T
		return zero, &dimension.AxisError{Err: dimension.ErrOutOfBounds, Axis: -1, Value: i, Extent: v.Size()}
	}
	return v.Flat(i), nil
}

// Ref returns a pointer into the shared buffer for the element at coords.
func (v *View[T]) Ref(coords ...int) (*T, error) {
	if len(coords) != v.shape.NDims() {
		return nil, fmt.Errorf("%w: got %d coordinates for %d axes",
			dimension.ErrRankMismatch, len(coords), v.shape.NDims())
	}
	idx, err := dimension.NewIndex(coords...)
	if err != nil {
		return nil, err
	}
	if err := idx.Validate(v.shape); err != nil {
		return nil, err
	}
	off, err := idx.Dot(v.stride)
	if err != nil {
		return nil, err
	}
	return &v.source[v.start+off], nil
}

// Get returns the element at coords.
func (v *View[T]) Get(coords ...int) (T, error) {
	p, err := v.Ref(coords...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores x at coords.
func (v *View[T]) Set(x T, coords ...int) error {
	p, err := v.Ref(coords...)
	if err != nil {
		return err
	}
	*p = x
	return nil
}

// Slice narrows the view further. The result aliases the same buffer.
func (v *View[T]) Slice(sels ...dimension.Selector) (*View[T], error) {
	g, err := dimension.Resolve(v.shape, v.stride, sels...)
	if err != nil {
		return nil, err
	}
	g.Offset += v.start
	return newView(v.source, g), nil
}

// Fill sets every element of the view to x.
func (v *View[T]) Fill(x T) {
	parallel.For(v.Size(), func(i int) {
		v.source[v.offset(i)] = x
	}, workers)
}

// Copy materializes the view into a new contiguous array.
func (v *View[T]) Copy() *Array[T] {
	out := &Array[T]{data: make([]T, v.Size()), shape: v.shape}
	parallel.For(len(out.data), func(i int) {
		out.data[i] = v.source[v.offset(i)]
	}, workers)
	return out
}

// All iterates over (row-major position, value) pairs of the view.
func (v *View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Size(); i++ {
			if !yield(i, v.source[v.offset(i)]) {
				return
			}
		}
	}
}

// String returns a short description such as "View[int32]( 3 3 )@21".
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]%v@%d", v.DType(), v.shape, v.start)
}
