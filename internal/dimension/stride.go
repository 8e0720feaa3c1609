package dimension

// Stride holds, per axis, how many buffer elements one step along that axis skips.
type Stride struct {
	Dims
}

// StridesOf computes row-major strides for shape: the last axis has stride 1 and
// stride[i] = stride[i+1] * extent[i+1].
func StridesOf(shape Shape) Stride {
	var st Stride
	st.rank = shape.rank
	step := 1
	for i := shape.rank - 1; i >= 0; i-- {
		st.vals[i] = step
		step *= shape.vals[i]
	}
	return st
}

// NDims returns the number of axes.
func (st Stride) NDims() int {
	return st.rank
}

// Equal reports whether both stride vectors are identical.
func (st Stride) Equal(other Stride) bool {
	return st.Dims.Equal(other.Dims)
}

// Contiguous reports whether st is the row-major stride vector of shape.
func (st Stride) Contiguous(shape Shape) bool {
	return st.Equal(StridesOf(shape))
}
