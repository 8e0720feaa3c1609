// Package dimension implements the axis arithmetic behind strided arrays:
// shapes, row-major strides, coordinates and slice geometry.
package dimension

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxRank is the hard ceiling on the number of axes of any shape, index or stride.
const MaxRank = 10

// Dims is a fixed-capacity sequence of axis values stored inline.
// Shape, Stride and Index wrap it with per-role meaning.
//
// Dims is a value type: assignment copies it.
type Dims struct {
	vals [MaxRank]int
	rank int
}

// NewDims builds a Dims from up to MaxRank values.
func NewDims(vals ...int) (Dims, error) {
	var d Dims
	if len(vals) > MaxRank {
		return d, fmt.Errorf("%w: got %d values", ErrCapacityExceeded, len(vals))
	}
	d.rank = copy(d.vals[:], vals)
	return d, nil
}

// Rank returns the number of stored values.
func (d Dims) Rank() int {
	return d.rank
}

// At returns the value at axis. Only the capacity is checked, not the rank.
func (d Dims) At(axis int) int {
	return d.vals[axis]
}

// Set stores v at axis. Only the capacity is checked, not the rank.
func (d *Dims) Set(axis, v int) {
	d.vals[axis] = v
}

// Append adds v as a new trailing axis.
func (d *Dims) Append(v int) error {
	if d.rank == MaxRank {
		return ErrCapacityExceeded
	}
	d.vals[d.rank] = v
	d.rank++
	return nil
}

// Equal reports whether both sequences have the same rank and values.
func (d Dims) Equal(other Dims) bool {
	return slices.Equal(d.vals[:d.rank], other.vals[:other.rank])
}

// Swap exchanges the contents of d and other.
func (d *Dims) Swap(other *Dims) {
	*d, *other = *other, *d
}

// Values returns a copy of the stored values.
func (d Dims) Values() []int {
	out := make([]int, d.rank)
	copy(out, d.vals[:d.rank])
	return out
}

// Filter keeps the axes for which keep returns true, compacting them
// to the front in their original order.
func (d *Dims) Filter(keep func(axis, v int) bool) {
	j := 0
	for i := 0; i < d.rank; i++ {
		if keep(i, d.vals[i]) {
			d.vals[j] = d.vals[i]
			j++
		}
	}
	for i := j; i < d.rank; i++ {
		d.vals[i] = 0
	}
	d.rank = j
}

// String renders the values as a space-joined parenthesized list, e.g. "( 3 10 1 )".
func (d Dims) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for _, v := range d.vals[:d.rank] {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString(" )")
	return b.String()
}
