package dimension

// Index holds one coordinate per axis. It only has meaning relative to a
// shape or stride vector of the same rank.
type Index struct {
	Dims
}

// NewIndex creates an index from up to MaxRank coordinates.
func NewIndex(coords ...int) (Index, error) {
	d, err := NewDims(coords...)
	if err != nil {
		return Index{}, err
	}
	return Index{d}, nil
}

// Unflat returns the coordinates of the element at flat offset in a row-major
// layout of shape. The offset must lie in [0, shape.Size()).
func Unflat(shape Shape, offset int) (Index, error) {
	if offset < 0 || offset >= shape.Size() {
		return Index{}, &AxisError{Err: ErrOutOfBounds, Axis: -1, Value: offset, Extent: shape.Size()}
	}
	var idx Index
	idx.rank = shape.rank
	step := 1
	for i := shape.rank - 1; i >= 0; i-- {
		idx.vals[i] = (offset % (step * shape.vals[i])) / step
		step *= shape.vals[i]
	}
	return idx, nil
}

// Equal reports whether both indices hold the same coordinates.
func (idx Index) Equal(other Index) bool {
	return idx.Dims.Equal(other.Dims)
}

// Validate checks idx against shape. A rank difference yields ErrRankMismatch;
// a coordinate outside [0, extent) yields an *AxisError wrapping ErrOutOfBounds.
func (idx Index) Validate(shape Shape) error {
	if idx.rank != shape.rank {
		return rankError("index", idx.rank, shape.rank)
	}
	for i := 0; i < idx.rank; i++ {
		if c := idx.vals[i]; c < 0 || c >= shape.vals[i] {
			return &AxisError{Err: ErrOutOfBounds, Axis: i, Value: c, Extent: shape.vals[i]}
		}
	}
	return nil
}

// Flat converts idx into the row-major offset within shape.
func (idx Index) Flat(shape Shape) (int, error) {
	if err := idx.Validate(shape); err != nil {
		return 0, err
	}
	flat, step := 0, 1
	for i := idx.rank - 1; i >= 0; i-- {
		flat += step * idx.vals[i]
		step *= shape.vals[i]
	}
	return flat, nil
}

// Dot resolves idx against an arbitrary stride vector: sum of coord[i] * stride[i].
// No bounds are checked; only the ranks must agree.
func (idx Index) Dot(stride Stride) (int, error) {
	if idx.rank != stride.rank {
		return 0, rankError("index", idx.rank, stride.rank)
	}
	dot := 0
	for i := 0; i < idx.rank; i++ {
		dot += idx.vals[i] * stride.vals[i]
	}
	return dot, nil
}

// Transform re-expresses idx, given against src, as the coordinates with the
// same row-major offset in dst. Both shapes must have the same rank.
func (idx Index) Transform(src, dst Shape) (Index, error) {
	if src.Equal(dst) {
		return idx, nil
	}
	if src.rank != dst.rank {
		return Index{}, rankError("target shape", dst.rank, src.rank)
	}
	flat, err := idx.Flat(src)
	if err != nil {
		return Index{}, err
	}
	return Unflat(dst, flat)
}
