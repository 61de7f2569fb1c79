// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// impl_size_optimized.go — table lookup of best known size-optimized networks.
//
// Contract:
//   • 1 ≤ N ≤ MaxSizeOptimized; larger N returns ErrTableBound.
//   • Table layers are already index-disjoint and are passed to network.New
//     unchanged, so the resulting depth is the table's own.
//
// Complexity: O(Size) to copy the entry.

package generate

import (
	"fmt"

	"github.com/katalvlaran/sortnet/network"
)

// SizeOptimized returns the best known size-optimized network for n elements.
//
// Errors: ErrTooFewElements for n < 1, ErrTableBound for n > MaxSizeOptimized.
func SizeOptimized(n int) (*network.Network, error) {
	if err := checkSize(MethodSizeOptimized, n); err != nil {
		return nil, err
	}
	if n > MaxSizeOptimized {
		return nil, fmt.Errorf("%s: n=%d > %d: %w", MethodSizeOptimized, n, MaxSizeOptimized, ErrTableBound)
	}

	nw, err := network.New(n, sizeOptimizedTable[n-1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSizeOptimized, err)
	}

	return nw, nil
}
