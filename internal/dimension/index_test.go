package dimension

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexFlat(t *testing.T) {
	idx, err := NewIndex(3, 5)
	require.NoError(t, err)

	flat, err := idx.Flat(MustShape(10, 8))
	require.NoError(t, err)
	assert.Equal(t, 29, flat)

	_, err = idx.Flat(MustShape(2, 6))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	var axisErr *AxisError
	require.True(t, errors.As(err, &axisErr))
	assert.Equal(t, 0, axisErr.Axis)
	assert.Equal(t, 3, axisErr.Value)
	assert.Equal(t, 2, axisErr.Extent)
}

func TestIndexValidateErrorKinds(t *testing.T) {
	s := MustShape(2, 2)

	tests := []struct {
		name   string
		coords []int
		want   error
	}{
		{"in bounds", []int{1, 1}, nil},
		{"too large", []int{2, 0}, ErrOutOfBounds},
		{"negative", []int{0, -1}, ErrOutOfBounds},
		{"too many axes", []int{1, 1, 0}, ErrRankMismatch},
		{"too few axes", []int{1}, ErrRankMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := NewIndex(tt.coords...)
			require.NoError(t, err)
			err = idx.Validate(s)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnflat(t *testing.T) {
	idx, err := Unflat(MustShape(10, 8), 29)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{3, 5}, idx.Values()); diff != "" {
		t.Errorf("Unflat() mismatch (-want +got):\n%s", diff)
	}

	_, err = Unflat(MustShape(2, 3), 6)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Unflat(MustShape(2, 3), -1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Unflat(MustShape(4, 0), 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFlatUnflatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for rank := 1; rank <= MaxRank; rank++ {
		extents := make([]int, rank)
		for i := range extents {
			extents[i] = 1 + rng.Intn(4)
		}
		s := MustShape(extents...)

		for trial := 0; trial < 50; trial++ {
			coords := make([]int, rank)
			for i := range coords {
				coords[i] = rng.Intn(extents[i])
			}
			idx, err := NewIndex(coords...)
			require.NoError(t, err)

			flat, err := idx.Flat(s)
			require.NoError(t, err)
			require.Less(t, flat, s.Size())

			back, err := Unflat(s, flat)
			require.NoError(t, err)
			require.True(t, back.Equal(idx), "rank %d: %v -> %d -> %v", rank, idx, flat, back)
		}
	}
}

func TestIndexDot(t *testing.T) {
	idx, _ := NewIndex(2, 1)
	st, _ := NewDims(96, 6)

	dot, err := idx.Dot(Stride{st})
	require.NoError(t, err)
	assert.Equal(t, 198, dot)

	_, err = idx.Dot(MustShape(2, 3, 4).Strides())
	assert.ErrorIs(t, err, ErrRankMismatch)

	// Against contiguous strides, Dot agrees with Flat.
	s := MustShape(4, 5, 6)
	idx3, _ := NewIndex(3, 2, 5)
	flat, err := idx3.Flat(s)
	require.NoError(t, err)
	dot, err = idx3.Dot(s.Strides())
	require.NoError(t, err)
	assert.Equal(t, flat, dot)
}

func TestIndexTransform(t *testing.T) {
	s := MustShape(3, 4)
	idx, _ := NewIndex(2, 3)

	same, err := idx.Transform(s, s)
	require.NoError(t, err)
	assert.True(t, same.Equal(idx), "identity transform is a no-op")

	// (2,3) in (3,4) is offset 11, which is (1,5) in (2,6).
	moved, err := idx.Transform(s, MustShape(2, 6))
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 5}, moved.Values()); diff != "" {
		t.Errorf("Transform() mismatch (-want +got):\n%s", diff)
	}

	_, err = idx.Transform(s, MustShape(12))
	assert.ErrorIs(t, err, ErrRankMismatch)

	// Offset 11 does not fit a (2,2) target.
	_, err = idx.Transform(s, MustShape(2, 2))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	bad, _ := NewIndex(3, 0)
	_, err = bad.Transform(s, MustShape(2, 6))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}
