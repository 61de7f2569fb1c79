package network_test

import (
	"testing"

	"github.com/katalvlaran/sortnet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVerify_Sorting accepts a correct network and an n=1 identity.
func TestVerify_Sorting(t *testing.T) {
	require.NoError(t, network.Verify(sort4(t)))

	one, err := network.FromComparators(1, nil)
	require.NoError(t, err)
	require.NoError(t, network.Verify(one))
}

// TestVerify_DescendingComparators accepts a network that uses a descending
// comparator as its first step.
func TestVerify_DescendingComparators(t *testing.T) {
	nw, err := network.FromComparators(3, []network.Comparator{c(2, 1), c(0, 2), c(0, 1), c(1, 2)})
	require.NoError(t, err)
	require.NoError(t, network.Verify(nw))
}

// TestVerify_Rejects drops the last comparator of sort4 and expects the
// failing input to be reported.
func TestVerify_Rejects(t *testing.T) {
	nw, err := network.New(4, []network.Layer{{c(0, 1), c(2, 3)}, {c(0, 2), c(1, 3)}})
	require.NoError(t, err)

	err = network.Verify(nw)
	require.ErrorIs(t, err, network.ErrNotSorting)
	assert.Contains(t, err.Error(), "input ")
}

// TestVerify_WideNetwork checks a network spanning several 64-input chunks:
// a 7-element odd-even transposition sort.
func TestVerify_WideNetwork(t *testing.T) {
	const n = 7
	var seq []network.Comparator
	for round := 0; round < n; round++ {
		for p := round % 2; p+1 < n; p += 2 {
			seq = append(seq, c(p, p+1))
		}
	}
	nw, err := network.FromComparators(n, seq)
	require.NoError(t, err)
	require.NoError(t, network.Verify(nw))

	// One round short leaves some input unsorted.
	short, err := network.FromComparators(n, seq[:len(seq)-3])
	require.NoError(t, err)
	require.ErrorIs(t, network.Verify(short), network.ErrNotSorting)
}

// TestVerify_TooLarge refuses sizes beyond the exhaustive bound.
func TestVerify_TooLarge(t *testing.T) {
	nw, err := network.FromComparators(network.MaxVerifySize+1, nil)
	require.NoError(t, err)
	require.ErrorIs(t, network.Verify(nw), network.ErrTooLarge)
}
