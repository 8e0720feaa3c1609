package array

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/dasupradyumna/DeVi/internal/dimension"
	"github.com/dasupradyumna/DeVi/internal/parallel"
)

// workers controls how whole-buffer loops (fill, conversion, view copies)
// are split. Small buffers always run on the calling goroutine.
var workers = parallel.DefaultConfig()

// Ndarray is implemented by Array and View.
type Ndarray interface {
	Shape() dimension.Shape
	NDims() int
	Size() int
	DType() DataType
}

var (
	_ Ndarray = (*Array[float32])(nil)
	_ Ndarray = (*View[float32])(nil)
)

// Array owns a contiguous row-major buffer of T together with its shape.
//
// Array is not safe for concurrent mutation; guard whole arrays with an
// external lock when sharing them between goroutines.
type Array[T Scalar] struct {
	data  []T
	shape dimension.Shape
}

func allocate[T Scalar](shape dimension.Shape) (*Array[T], error) {
	if shape.NDims() == 0 {
		return nil, dimension.ErrEmptyShape
	}
	n, err := shape.CheckedSize()
	if err != nil {
		return nil, err
	}
	if elem := DataTypeOf[T]().Size(); n > math.MaxInt/elem {
		return nil, fmt.Errorf("%w: %d elements of %s", dimension.ErrAllocation, n, DataTypeOf[T]())
	}
	return &Array[T]{data: make([]T, n), shape: shape}, nil
}

// New creates a zero-filled array.
//
// Example:
//
//	a, err := array.New[int32](dimension.MustShape(2, 2))
func New[T Scalar](shape dimension.Shape) (*Array[T], error) {
	return allocate[T](shape)
}

// Full creates an array with every element set to value.
func Full[T Scalar](shape dimension.Shape, value T) (*Array[T], error) {
	a, err := allocate[T](shape)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// FromSlice creates an array from a Go slice in row-major order.
// The slice is copied into the array's memory.
func FromSlice[T Scalar](data []T, shape dimension.Shape) (*Array[T], error) {
	if shape.Size() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			dimension.ErrInvalidShape, shape, shape.Size(), len(data))
	}
	a, err := allocate[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() dimension.Shape {
	return a.shape
}

// NDims returns the number of axes.
func (a *Array[T]) NDims() int {
	return a.shape.NDims()
}

// Size returns the number of elements described by the shape.
// An array whose buffer was moved out has size 0.
func (a *Array[T]) Size() int {
	if a.data == nil {
		return 0
	}
	return a.shape.Size()
}

// DType returns the element type tag.
func (a *Array[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the underlying buffer. Writes through it are visible to the
// array and to every view of it.
func (a *Array[T]) Data() []T {
	return a.data
}

// Flat returns the element at buffer position i without checks beyond Go's
// slice bounds.
func (a *Array[T]) Flat(i int) T {
	return a.data[i]
}

// SetFlat stores v at buffer position i without checks beyond Go's slice bounds.
func (a *Array[T]) SetFlat(i int, v T) {
	a.data[i] = v
}

// At returns the element at flat position i, which must be below Size().
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= a.Size() {
		var zero T
		return zero, &dimension.AxisError{Err: dimension.ErrOutOfBounds, Axis: -1, Value: i, Extent: a.Size()}
	}
	return a.data[i], nil
}

// Ref returns a pointer to the element at coords. There must be exactly one
// coordinate per axis and each must be in bounds.
func (a *Array[T]) Ref(coords ...int) (*T, error) {
	if len(coords) != a.shape.NDims() {
		return nil, fmt.Errorf("%w: got %d coordinates for %d axes",
			dimension.ErrRankMismatch, len(coords), a.shape.NDims())
	}
	idx, err := dimension.NewIndex(coords...)
	if err != nil {
		return nil, err
	}
	off, err := idx.Flat(a.shape)
	if err != nil {
		return nil, err
	}
	if a.data == nil {
		return nil, &dimension.AxisError{Err: dimension.ErrOutOfBounds, Axis: -1, Value: off, Extent: 0}
	}
	return &a.data[off], nil
}

// Get returns the element at coords.
func (a *Array[T]) Get(coords ...int) (T, error) {
	p, err := a.Ref(coords...)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set stores v at coords.
func (a *Array[T]) Set(v T, coords ...int) error {
	p, err := a.Ref(coords...)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Slice returns a view of the array selected by sels, one per leading axis.
// Slice selectors keep their axis; At selectors drop it. Trailing axes
// without a selector keep their full range.
//
// The view shares the array's buffer. It stays tied to the buffer the array
// held at slicing time: a later Move, Swap or Assign does not redirect it.
//
// Example:
//
//	v, err := a.Slice(dimension.Slice{Begin: 0, End: 5, Step: 2}, dimension.Span(3, 6), dimension.At(3))
func (a *Array[T]) Slice(sels ...dimension.Selector) (*View[T], error) {
	g, err := dimension.Resolve(a.shape, a.shape.Strides(), sels...)
	if err != nil {
		return nil, err
	}
	return newView(a.data, g), nil
}

// Copy returns a deep copy with its own buffer.
func (a *Array[T]) Copy() *Array[T] {
	return &Array[T]{data: slices.Clone(a.data), shape: a.shape}
}

// Move transfers the buffer and shape to a new array, leaving a empty.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{data: a.data, shape: a.shape}
	a.data, a.shape = nil, dimension.Shape{}
	return moved
}

// Swap exchanges buffers and shapes of a and other.
func (a *Array[T]) Swap(other *Array[T]) {
	*a, *other = *other, *a
}

// Assign replaces the contents of a with a deep copy of src.
func (a *Array[T]) Assign(src *Array[T]) {
	tmp := src.Copy()
	a.Swap(tmp)
}

// Fill sets every buffer slot to v.
func (a *Array[T]) Fill(v T) {
	parallel.Range(len(a.data), func(lo, hi int) {
		chunk := a.data[lo:hi]
		for i := range chunk {
			chunk[i] = v
		}
	}, workers)
}

// Reshape replaces the shape metadata. The buffer is untouched and the new
// size is not checked: callers must keep it equal to Size(). Access past the
// buffer under a larger shape panics. An array whose buffer was moved out
// cannot be reshaped.
func (a *Array[T]) Reshape(extents ...int) error {
	if a.data == nil {
		return fmt.Errorf("%w: array buffer was moved out", dimension.ErrInvalidShape)
	}
	s, err := dimension.NewShape(extents...)
	if err != nil {
		return err
	}
	a.shape = s
	return nil
}

// Flatten reshapes the array to a single axis of Size() elements.
// It does nothing to an array whose buffer was moved out.
func (a *Array[T]) Flatten() {
	if a.data == nil {
		return
	}
	a.shape = dimension.MustShape(a.shape.Size())
}

// Squeeze removes every unit axis from the shape.
func (a *Array[T]) Squeeze() {
	a.shape.Squeeze()
}

// Equal reports whether other is an array of the same element type with the
// same shape and contents. Arrays of different element types are never equal.
func (a *Array[T]) Equal(other Ndarray) bool {
	b, ok := other.(*Array[T])
	if !ok || b == nil {
		return false
	}
	return a.shape.Equal(b.shape) && slices.Equal(a.data, b.data)
}

// NotEqual is the negation of Equal.
func (a *Array[T]) NotEqual(other Ndarray) bool {
	return !a.Equal(other)
}

// All iterates over (flat position, value) pairs in row-major order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// String returns a short description such as "Array[int32]( 2 2 )".
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", a.DType(), a.shape)
}
