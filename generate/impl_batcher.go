// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// impl_batcher.go — Ken Batcher's odd–even merge sort (1968).
//
// Construction over the inclusive range [lo, hi]:
//   • sort(lo, hi): empty when hi-lo < 1; else mid = lo + (hi-lo)/2,
//     sort(lo, mid), sort(mid+1, hi), merge(lo, hi, 1).
//   • merge(i, j, r): when 2r > j-i emit (i, i+r); else step = 2r,
//     merge(i, j, step), merge(i+r, j, step), then
//     (i+r+k·step, i+r+k·step+r) for k in [0, ⌈((j-r)-(i+r))/step⌉).
//
// Contract: defined only for power-of-two N; other sizes are rejected with
// ErrNotPowerOfTwo before anything is emitted.
//
// Complexity: size 19 for N=8, 63 for N=16; depth log2(N)(log2(N)+1)/2.

package generate

import (
	"fmt"

	"github.com/katalvlaran/sortnet/network"
)

// batcher holds the emitter threaded through the recursion.
type batcher struct {
	*emitter
}

// BatcherOddEvenMerge returns Batcher's odd–even merge network for n elements.
//
// Errors: ErrTooFewElements for n < 1, ErrNotPowerOfTwo otherwise when n is
// not a power of two.
func BatcherOddEvenMerge(n int) (*network.Network, error) {
	if err := checkSize(MethodBatcherOddEvenMerge, n); err != nil {
		return nil, err
	}
	if !IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%s: n=%d: %w", MethodBatcherOddEvenMerge, n, ErrNotPowerOfTwo)
	}

	g := batcher{emitter: newEmitter(n * 4)}
	g.sort(0, n-1)

	return g.build(MethodBatcherOddEvenMerge, n)
}

// sort emits the network for positions lo..hi.
func (g batcher) sort(lo, hi int) {
	if hi-lo < 1 {
		return
	}
	mid := lo + (hi-lo)/2
	g.sort(lo, mid)
	g.sort(mid+1, hi)
	g.merge(lo, hi, 1)
}

// merge emits the odd–even merge of positions i..j at stride r.
func (g batcher) merge(i, j, r int) {
	step := r * 2
	if step > j-i {
		g.cas(i, i+r)
		return
	}
	g.merge(i, j, step)
	g.merge(i+r, j, step)
	for k := 0; k < ceilDiv((j-r)-(i+r), step); k++ {
		a := i + r + k*step
		g.cas(a, a+r)
	}
}
