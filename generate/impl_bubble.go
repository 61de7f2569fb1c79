// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// impl_bubble.go — unrolled bubble sort.
//
// Construction: N stages; stage i (0..N-1) bubbles the maximum of the
// unsorted prefix to position N-1-i with (0,1), (1,2), ..., (N-2-i, N-1-i).
// The last stage is empty.
//
// Complexity:
//   • Size:  N(N-1)/2 comparators.
//   • Depth: 2N-3 layers for N ≥ 2 after layering.

package generate

import "github.com/katalvlaran/sortnet/network"

// Bubble returns the bubble-sort network for n elements.
//
// Errors: ErrTooFewElements for n < 1.
func Bubble(n int) (*network.Network, error) {
	if err := checkSize(MethodBubble, n); err != nil {
		return nil, err
	}

	e := newEmitter(n * (n - 1) / 2)
	for i := 0; i < n; i++ {
		for p := 0; p < n-1-i; p++ {
			e.cas(p, p+1)
		}
	}

	return e.build(MethodBubble, n)
}
