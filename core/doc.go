// Copyright 2025 DeVi Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package core provides n-dimensional strided arrays and views.
//
// # Overview
//
// An Array owns a contiguous row-major buffer and a Shape. Slicing an Array
// yields a View: a base offset, a shape and a stride vector over the same
// buffer. Views never copy; writes through any of them are visible to the
// array and to every overlapping view.
//
// # Basic Usage
//
//	a, err := core.Full[int32](core.MustShape(5, 8, 6), 1)
//	if err != nil {
//	    return err
//	}
//
//	// Rows 0, 2, 4; columns 3..5; pin the last axis at 3.
//	v, err := a.Slice(core.Slice{Begin: 0, End: 5, Step: 2}, core.Span(3, 6), core.At(3))
//	if err != nil {
//	    return err
//	}
//	_ = v.Set(2, 0, 0) // a.Get(0, 3, 3) now returns 2
//
// # Selectors
//
// Slice{Begin, End, Step} keeps its axis with extent ceil((End-Begin)/Step).
// End == 0 means "to the end of the axis". At(i) pins an axis and removes it.
// Axes after the last selector keep their full range.
//
// # Errors
//
// Failures are returned, never recovered. Match them with errors.Is:
//   - ErrRankMismatch: wrong number of coordinates or selectors
//   - ErrOutOfBounds: a coordinate is outside its axis
//   - ErrSliceOutOfBounds: a slice bound is outside its axis, or begin >= end
//   - ErrInvalidStride: a slice step is not positive
//   - ErrCapacityExceeded: more than MaxRank axes
//   - ErrAllocation: the buffer size overflows
//
// # Lifetimes and Concurrency
//
// A View holds the buffer the Array had when it was sliced. Moving or
// reassigning the Array does not update existing views. Nothing is locked
// internally; synchronize whole arrays externally when sharing them.
package core
