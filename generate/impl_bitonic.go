// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// impl_bitonic.go — bitonic merge sort for arbitrary N.
//
// Construction over the inclusive range [lo, hi] with direction flag inv:
//   • sort(lo, hi, inv): empty when hi-lo < 1; else mid = lo + (hi-lo+1)/2,
//     sort(lo, mid-1, !inv), sort(mid, hi, inv), merge(lo, hi, inv).
//   • merge(lo, hi, inv): empty when hi-lo < 1; else n = hi-lo+1, m = the
//     largest power of two below n; emit (lo+k, lo+k+m) for k in [0, n-m),
//     flipped to (lo+k+m, lo+k) when inv is set; then merge(lo, lo+m-1, inv)
//     and merge(lo+m, hi, inv).
//
// Splitting off the largest power-of-two prefix is what admits any N ≥ 1.
// Flipped comparators are descending: they route the smaller value to the
// higher position.
//
// Complexity: size 24 for N=8, 80 for N=16; recursion depth O(log N).

package generate

import "github.com/katalvlaran/sortnet/network"

// bitonic holds the emitter threaded through the recursion.
type bitonic struct {
	*emitter
}

// BitonicMerge returns the bitonic merge network for n elements.
//
// Errors: ErrTooFewElements for n < 1.
func BitonicMerge(n int) (*network.Network, error) {
	if err := checkSize(MethodBitonicMerge, n); err != nil {
		return nil, err
	}

	g := bitonic{emitter: newEmitter(n * 4)}
	g.sort(0, n-1, false)

	return g.build(MethodBitonicMerge, n)
}

// sort emits the network for positions lo..hi in the direction given by inv.
func (g bitonic) sort(lo, hi int, inv bool) {
	if hi-lo < 1 {
		return
	}
	mid := lo + (hi-lo+1)/2
	g.sort(lo, mid-1, !inv)
	g.sort(mid, hi, inv)
	g.merge(lo, hi, inv)
}

// merge emits the bitonic merge of positions lo..hi.
func (g bitonic) merge(lo, hi int, inv bool) {
	if hi-lo < 1 {
		return
	}
	n := hi - lo + 1
	m := largestPowerOfTwoBelow(n)
	for k := 0; k < n-m; k++ {
		if inv {
			g.cas(lo+k+m, lo+k)
		} else {
			g.cas(lo+k, lo+k+m)
		}
	}
	g.merge(lo, lo+m-1, inv)
	g.merge(lo+m, hi, inv)
}
