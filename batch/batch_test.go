package batch_test

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/sortnet/batch"
	"github.com/katalvlaran/sortnet/generate"
	"github.com/katalvlaran/sortnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomArrays(rng *rand.Rand, count, n int) [][]int {
	out := make([][]int, count)
	for i := range out {
		out[i] = make([]int, n)
		for k := range out[i] {
			out[i][k] = rng.Intn(1000)
		}
	}

	return out
}

// TestSort_ManyArrays sorts more arrays than one chunk across workers.
func TestSort_ManyArrays(t *testing.T) {
	nw, err := generate.BoseNelson(9)
	require.NoError(t, err)
	arrays := randomArrays(rand.New(rand.NewSource(1)), 1000, 9)
	want := make([][]int, len(arrays))
	for i, a := range arrays {
		want[i] = slices.Clone(a)
		slices.Sort(want[i])
	}

	require.NoError(t, batch.Sort(context.Background(), arrays, nw, batch.WithWorkers(4), batch.WithChunkSize(7)))
	assert.Equal(t, want, arrays)
}

// TestApply_Descending uses a custom compare-and-swap.
func TestApply_Descending(t *testing.T) {
	nw, err := generate.BitonicMerge(6)
	require.NoError(t, err)
	arrays := randomArrays(rand.New(rand.NewSource(2)), 50, 6)

	require.NoError(t, batch.Apply(context.Background(), arrays, network.Descending[int](), nw))
	for _, a := range arrays {
		assert.True(t, slices.IsSortedFunc(a, func(x, y int) int { return y - x }), "%v", a)
	}
}

// TestApply_Validation rejects bad input before touching anything.
func TestApply_Validation(t *testing.T) {
	nw, err := generate.Insertion(4)
	require.NoError(t, err)
	ctx := context.Background()

	arrays := [][]int{{4, 3, 2, 1}, {3, 2, 1}}
	err = batch.Sort(ctx, arrays, nw)
	require.ErrorIs(t, err, batch.ErrShortArray)
	assert.Contains(t, err.Error(), "array 1")
	assert.Equal(t, []int{4, 3, 2, 1}, arrays[0])

	require.ErrorIs(t, batch.Sort[int](ctx, nil, nil), batch.ErrNilNetwork)
	require.NoError(t, batch.Sort[int](ctx, nil, nw))
}

// TestApplyFlat sorts packed arrays and rejects a ragged tail.
func TestApplyFlat(t *testing.T) {
	nw, err := generate.BatcherOddEvenMerge(4)
	require.NoError(t, err)
	data := []int{4, 3, 2, 1, 8, 6, 7, 5, 0, 0, 1, 0}

	require.NoError(t, batch.ApplyFlat(context.Background(), data, network.Ordered[int](), nw, batch.WithChunkSize(1)))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 1}, data)

	err = batch.ApplyFlat(context.Background(), data[:10], network.Ordered[int](), nw)
	require.ErrorIs(t, err, batch.ErrRagged)
}

// TestColumns matches the row-wise result lane by lane.
func TestColumns(t *testing.T) {
	nw, err := generate.SizeOptimized(8)
	require.NoError(t, err)
	const lanes = 300
	rng := rand.New(rand.NewSource(4))
	cols := make([][]int32, 8)
	for p := range cols {
		cols[p] = make([]int32, lanes)
		for k := range cols[p] {
			cols[p][k] = rng.Int31n(100)
		}
	}
	rows := make([][]int32, lanes)
	for k := range rows {
		rows[k] = make([]int32, 8)
		for p := range cols {
			rows[k][p] = cols[p][k]
		}
		slices.Sort(rows[k])
	}

	require.NoError(t, batch.Columns(context.Background(), cols, nw, batch.WithChunkSize(33), batch.WithWorkers(3)))
	for k := range rows {
		for p := range cols {
			require.Equal(t, rows[k][p], cols[p][k], "lane %d position %d", k, p)
		}
	}
}

// TestColumns_Validation covers too few columns and ragged lanes.
func TestColumns_Validation(t *testing.T) {
	nw, err := generate.Insertion(3)
	require.NoError(t, err)
	ctx := context.Background()

	require.ErrorIs(t, batch.Columns(ctx, [][]int{{1}, {2}}, nw), batch.ErrShortArray)
	require.ErrorIs(t, batch.Columns(ctx, [][]int{{1, 2}, {2}, {3, 4}}, nw), batch.ErrRagged)
}

// TestCancelled returns the context error and leaves arrays unsorted.
func TestCancelled(t *testing.T) {
	nw, err := generate.Insertion(5)
	require.NoError(t, err)
	arrays := [][]int{{5, 4, 3, 2, 1}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, batch.Sort(ctx, arrays, nw), context.Canceled)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, arrays[0])
}

// TestOptions checks defaults and the panicking constructors.
func TestOptions(t *testing.T) {
	o := batch.DefaultOptions()
	assert.GreaterOrEqual(t, o.Workers, 1)
	assert.Equal(t, batch.DefaultChunkSize, o.ChunkSize)

	assert.Panics(t, func() { batch.WithWorkers(0) })
	assert.Panics(t, func() { batch.WithChunkSize(-1) })
}
