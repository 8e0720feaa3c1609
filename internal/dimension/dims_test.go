package dimension

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDims(t *testing.T) {
	d, err := NewDims(3, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rank())
	if diff := cmp.Diff([]int{3, 10, 1}, d.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}

	empty, err := NewDims()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rank())

	_, err = NewDims(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestDimsAppend(t *testing.T) {
	var d Dims
	for i := 0; i < MaxRank; i++ {
		require.NoError(t, d.Append(i+1))
	}
	assert.Equal(t, MaxRank, d.Rank())
	assert.ErrorIs(t, d.Append(11), ErrCapacityExceeded)
	assert.Equal(t, 10, d.At(9))
}

func TestDimsEqual(t *testing.T) {
	a, _ := NewDims(2, 3)
	b, _ := NewDims(2, 3)
	c, _ := NewDims(2, 3, 0)
	d, _ := NewDims(3, 2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "rank differs")
	assert.False(t, a.Equal(d), "values differ")

	// Values past the rank must not take part in the comparison.
	b.Set(5, 42)
	assert.True(t, a.Equal(b))
}

func TestDimsCopyAndSwap(t *testing.T) {
	a, _ := NewDims(1, 2, 3)
	b, _ := NewDims(9)

	c := a
	c.Set(0, 100)
	assert.Equal(t, 1, a.At(0), "assignment must copy storage")

	a.Swap(&b)
	if diff := cmp.Diff([]int{9}, a.Values()); diff != "" {
		t.Errorf("after swap a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, b.Values()); diff != "" {
		t.Errorf("after swap b (-want +got):\n%s", diff)
	}
}

func TestDimsFilter(t *testing.T) {
	d, _ := NewDims(4, 0, 7, 0, 2)
	d.Filter(func(_, v int) bool { return v != 0 })
	if diff := cmp.Diff([]int{4, 7, 2}, d.Values()); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, d.At(3), "dropped slots are cleared")
}

func TestDimsString(t *testing.T) {
	d, _ := NewDims(5, 0)
	assert.Equal(t, "( 5 0 )", d.String())
	assert.Equal(t, "( )", Dims{}.String())
}
