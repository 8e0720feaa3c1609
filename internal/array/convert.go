package array

import "github.com/dasupradyumna/DeVi/internal/parallel"

// number is Scalar without bool; Go converts freely between these.
type number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// AsType returns a new array of element type U holding every element of a
// converted with Go conversion rules: integers wrap, floats truncate toward
// zero, bool becomes 1 or 0, and a number becomes true when non-zero.
// Representability is not checked.
func AsType[U, T Scalar](a *Array[T]) *Array[U] {
	out := &Array[U]{data: make([]U, len(a.data)), shape: a.shape}
	parallel.Range(len(a.data), func(lo, hi int) {
		castSlice(out.data[lo:hi], a.data[lo:hi])
	}, workers)
	return out
}

func castSlice[U, T Scalar](dst []U, src []T) {
	switch s := any(src).(type) {
	case []bool:
		castFromBool(dst, s)
	case []int8:
		castFrom(dst, s)
	case []int16:
		castFrom(dst, s)
	case []int32:
		castFrom(dst, s)
	case []int64:
		castFrom(dst, s)
	case []uint8:
		castFrom(dst, s)
	case []uint16:
		castFrom(dst, s)
	case []uint32:
		castFrom(dst, s)
	case []uint64:
		castFrom(dst, s)
	case []float32:
		castFrom(dst, s)
	case []float64:
		castFrom(dst, s)
	}
}

func castFrom[U Scalar, S number](dst []U, src []S) {
	switch d := any(dst).(type) {
	case []bool:
		for i, v := range src {
			d[i] = v != 0
		}
	case []int8:
		convert(d, src)
	case []int16:
		convert(d, src)
	case []int32:
		convert(d, src)
	case []int64:
		convert(d, src)
	case []uint8:
		convert(d, src)
	case []uint16:
		convert(d, src)
	case []uint32:
		convert(d, src)
	case []uint64:
		convert(d, src)
	case []float32:
		convert(d, src)
	case []float64:
		convert(d, src)
	}
}

func castFromBool[U Scalar](dst []U, src []bool) {
	switch d := any(dst).(type) {
	case []bool:
		copy(d, src)
	case []int8:
		fromBool(d, src)
	case []int16:
		fromBool(d, src)
	case []int32:
		fromBool(d, src)
	case []int64:
		fromBool(d, src)
	case []uint8:
		fromBool(d, src)
	case []uint16:
		fromBool(d, src)
	case []uint32:
		fromBool(d, src)
	case []uint64:
		fromBool(d, src)
	case []float32:
		fromBool(d, src)
	case []float64:
		fromBool(d, src)
	}
}

func convert[D, S number](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

func fromBool[D number](dst []D, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}
