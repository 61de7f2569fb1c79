package sortnet_test

import (
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/katalvlaran/sortnet"
	"github.com/katalvlaran/sortnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSorter_Ordered sorts random inputs for every available scheme of n=10.
func TestSorter_Ordered(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, s := range sortnet.AvailableSchemes(10) {
		st, err := sortnet.NewSorter[float64](10, s)
		require.NoError(t, err)
		require.Equal(t, 10, st.N())
		for i := 0; i < 50; i++ {
			data := make([]float64, 10)
			for k := range data {
				data[k] = rng.NormFloat64()
			}
			want := slices.Clone(data)
			slices.Sort(want)
			st.Sort(data)
			assert.Equal(t, want, data, s.String())
		}
	}
}

// TestSorter_Func orders strings by length then lexically.
func TestSorter_Func(t *testing.T) {
	st, err := sortnet.NewSorterFunc(5, sortnet.BoseNelson, func(a, b string) bool {
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return strings.Compare(a, b) < 0
	})
	require.NoError(t, err)

	data := []string{"ccc", "a", "bb", "ab", "b"}
	st.Sort(data)
	assert.Equal(t, []string{"a", "b", "ab", "bb", "ccc"}, data)
}

// TestSorter_CAS builds a descending sorter on a private cache.
func TestSorter_CAS(t *testing.T) {
	c := sortnet.NewCache()
	st, err := sortnet.NewSorterCAS(c, 4, sortnet.SizeOptimized, network.Descending[int]())
	require.NoError(t, err)

	data := []int{2, 4, 1, 3}
	st.Sort(data)
	assert.Equal(t, []int{4, 3, 2, 1}, data)
	assert.Same(t, c.MustGet(4, sortnet.SizeOptimized), st.Network())
}

// TestSorter_Unavailable surfaces the dispatcher error.
func TestSorter_Unavailable(t *testing.T) {
	_, err := sortnet.NewSorter[int](12, sortnet.BatcherOddEvenMerge)
	require.ErrorIs(t, err, sortnet.ErrUnavailable)
}
