package segtree

import (
	"math"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rangekit/testutil"
)

func TestNewSum_Float(t *testing.T) {
	data := []float64{0.5, 1.25, -2.0, 4.0}

	st, err := NewSum(len(data), func(i int) float64 { return data[i] })
	require.NoError(t, err)

	got, err := st.QueryOn(0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 3.75, got, 1e-12)

	got, err = st.QueryOn(3, 1)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestNewMax(t *testing.T) {
	data := []int{3, 1, 4, 1, 5, 9, 2, 6}

	st, err := NewMax(len(data), func(i int) int { return data[i] }, math.MinInt)
	require.NoError(t, err)

	tests := []struct {
		left, right int
		want        int
	}{
		{0, 7, 9},
		{0, 2, 4},
		{6, 7, 6},
		{3, 3, 1},
	}

	for _, tt := range tests {
		got, err := st.QueryOn(tt.left, tt.right)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "max over [%d, %d]", tt.left, tt.right)
	}

	data[2] = 100
	require.NoError(t, st.UpdateAt(2))

	got, err := st.QueryOn(0, 7)
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	// Empty query reports the identity verbatim.
	got, err = st.QueryOn(5, 4)
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, got)
}

func TestNewMax_Randomized(t *testing.T) {
	const (
		size   = 97
		rounds = 300
	)

	rng := testutil.NewRNG(31415)

	data := make([]int, size)
	for i := range data {
		data[i] = rng.Intn(10000)
	}

	st, err := NewMax(size, func(i int) int { return data[i] }, math.MinInt)
	require.NoError(t, err)

	for i := 0; i < rounds; i++ {
		left, right := rng.Interval(size)
		want := lo.Reduce(data[left:right+1], func(agg int, item int, _ int) int {
			if item > agg {
				return item
			}
			return agg
		}, math.MinInt)

		got, err := st.QueryOn(left, right)
		require.NoError(t, err)
		assert.Equal(t, want, got, "max over [%d, %d]", left, right)

		idx := rng.Intn(size)
		data[idx] = rng.Intn(10000)
		require.NoError(t, st.UpdateAt(idx))
	}
}

func TestNewIndexOfMax(t *testing.T) {
	data := []int{2, 7, 1, 7, 5}

	st, err := NewIndexOfMax(len(data), func(i int) int { return data[i] }, math.MinInt)
	require.NoError(t, err)

	got, err := st.QueryOn(0, 4)
	require.NoError(t, err)
	// Ties resolve to the leftmost occurrence.
	assert.Equal(t, IndexedValue[int]{Index: 1, Value: 7}, got)

	got, err = st.QueryOn(2, 4)
	require.NoError(t, err)
	assert.Equal(t, IndexedValue[int]{Index: 3, Value: 7}, got)

	data[4] = 9
	require.NoError(t, st.UpdateAt(4))

	got, err = st.QueryOn(0, 4)
	require.NoError(t, err)
	assert.Equal(t, IndexedValue[int]{Index: 4, Value: 9}, got)

	// Empty queries report the identity with index -1.
	got, err = st.QueryOn(3, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Index)
}
