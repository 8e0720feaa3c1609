// Copyright 2025 DeVi Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package core

import (
	"github.com/dasupradyumna/DeVi/internal/array"
	"github.com/dasupradyumna/DeVi/internal/dimension"
)

// MaxRank is the maximum number of axes.
const MaxRank = dimension.MaxRank

// Shape lists the extent of each axis.
// Example: MustShape(2, 3, 4) describes a 2×3×4 array.
type Shape = dimension.Shape

// Stride lists the buffer step of each axis.
type Stride = dimension.Stride

// Index lists one coordinate per axis.
type Index = dimension.Index

// Selector picks part of an axis when slicing: a Slice or an At.
type Selector = dimension.Selector

// Slice keeps the range [Begin, End) of an axis, every Step-th element.
type Slice = dimension.Slice

// At pins an axis to one coordinate and drops it from the view.
type At = dimension.At

// AxisError describes which axis failed a bounds check.
type AxisError = dimension.AxisError

// Scalar is the constraint for element types.
// Supported types: bool, int8-int64, uint8-uint64, float32, float64.
type Scalar = array.Scalar

// DataType is the runtime element type tag.
type DataType = array.DataType

// Data type constants.
const (
	Bool8   DataType = array.Bool8
	Int8    DataType = array.Int8
	Int16   DataType = array.Int16
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
	Uint8   DataType = array.Uint8
	Uint16  DataType = array.Uint16
	Uint32  DataType = array.Uint32
	Uint64  DataType = array.Uint64
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
)

// Ndarray is the read-only metadata common to arrays and views.
type Ndarray = array.Ndarray

// Array owns a contiguous buffer of T.
type Array[T Scalar] = array.Array[T]

// View is a strided window into an Array's buffer.
type View[T Scalar] = array.View[T]

// Errors.
var (
	ErrRankMismatch     = dimension.ErrRankMismatch
	ErrOutOfBounds      = dimension.ErrOutOfBounds
	ErrSliceOutOfBounds = dimension.ErrSliceOutOfBounds
	ErrInvalidStride    = dimension.ErrInvalidStride
	ErrCapacityExceeded = dimension.ErrCapacityExceeded
	ErrEmptyShape       = dimension.ErrEmptyShape
	ErrInvalidShape     = dimension.ErrInvalidShape
	ErrAllocation       = dimension.ErrAllocation
)

// NewShape creates a shape from 1 to MaxRank non-negative extents.
func NewShape(extents ...int) (Shape, error) {
	return dimension.NewShape(extents...)
}

// MustShape is like NewShape but panics on error.
func MustShape(extents ...int) Shape {
	return dimension.MustShape(extents...)
}

// NewIndex creates an index from up to MaxRank coordinates.
func NewIndex(coords ...int) (Index, error) {
	return dimension.NewIndex(coords...)
}

// Unflat returns the coordinates of flat offset in a row-major layout of shape.
func Unflat(shape Shape, offset int) (Index, error) {
	return dimension.Unflat(shape, offset)
}

// StridesOf returns the row-major strides of shape.
func StridesOf(shape Shape) Stride {
	return dimension.StridesOf(shape)
}

// NewSlice creates a validated Slice.
func NewSlice(begin, end, step int) (Slice, error) {
	return dimension.NewSlice(begin, end, step)
}

// Span is a step-1 Slice over [begin, end).
func Span(begin, end int) Slice {
	return dimension.Span(begin, end)
}

// New creates a zero-filled array.
func New[T Scalar](shape Shape) (*Array[T], error) {
	return array.New[T](shape)
}

// Full creates an array with every element set to value.
func Full[T Scalar](shape Shape, value T) (*Array[T], error) {
	return array.Full(shape, value)
}

// FromSlice creates an array by copying data in row-major order.
func FromSlice[T Scalar](data []T, shape Shape) (*Array[T], error) {
	return array.FromSlice(data, shape)
}

// AsType returns an element-wise converted copy of a.
func AsType[U, T Scalar](a *Array[T]) *Array[U] {
	return array.AsType[U](a)
}

// DataTypeOf returns the tag for T.
func DataTypeOf[T Scalar]() DataType {
	return array.DataTypeOf[T]()
}
