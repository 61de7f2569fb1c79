// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// impl_insertion.go — unrolled insertion sort.
//
// Construction: N stages; stage k (0..N-1) sinks element k into the sorted
// prefix with the cascade (k-1,k), (k-2,k-1), ..., (0,1). Stage 0 is empty.
//
// Complexity:
//   • Size:  N(N-1)/2 comparators.
//   • Depth: 2N-3 layers for N ≥ 2 after layering.

package generate

import "github.com/katalvlaran/sortnet/network"

// Insertion returns the insertion-sort network for n elements.
//
// Errors: ErrTooFewElements for n < 1.
func Insertion(n int) (*network.Network, error) {
	if err := checkSize(MethodInsertion, n); err != nil {
		return nil, err
	}

	e := newEmitter(n * (n - 1) / 2)
	for k := 0; k < n; k++ {
		for j := k - 1; j >= 0; j-- {
			e.cas(j, j+1)
		}
	}

	return e.build(MethodInsertion, n)
}
