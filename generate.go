// SPDX-License-Identifier: MIT
// Package: sortnet
//
// generate.go — unified dispatcher over the generate package.
//
// Routing order:
//   1. Unknown scheme  → ErrUnknownScheme.
//   2. n ≤ 0           → ErrInvalidSize.
//   3. !Available(n,s) → ErrUnavailable.
//   4. Generator call; its sentinels are mapped onto the root ones.

package sortnet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sortnet/generate"
	"github.com/katalvlaran/sortnet/network"
)

// generators is indexed by Scheme.
var generators = [numSchemes]func(int) (*network.Network, error){
	Insertion:           generate.Insertion,
	Bubble:              generate.Bubble,
	BoseNelson:          generate.BoseNelson,
	BatcherOddEvenMerge: generate.BatcherOddEvenMerge,
	BitonicMerge:        generate.BitonicMerge,
	SizeOptimized:       generate.SizeOptimized,
}

// Generate builds the network of scheme s for n elements. The result is
// immutable and safe to share between goroutines.
//
// Errors: ErrUnknownScheme, ErrInvalidSize, ErrUnavailable.
//
// Complexity: O(Size) for every scheme.
func Generate(n int, s Scheme) (*network.Network, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%s: %s: %w", methodGenerate, s, ErrUnknownScheme)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrInvalidSize)
	}
	if !Available(n, s) {
		return nil, fmt.Errorf("%s: %s n=%d: %w", methodGenerate, s, n, ErrUnavailable)
	}

	nw, err := generators[s](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %s n=%d: %w: %w", methodGenerate, s, n, mapGenerateError(err), err)
	}

	return nw, nil
}

// MustGenerate is Generate for callers that have already checked Available.
// It panics on error.
func MustGenerate(n int, s Scheme) *network.Network {
	nw, err := Generate(n, s)
	if err != nil {
		panic(err)
	}

	return nw
}

// mapGenerateError picks the root sentinel matching a generate-package error.
func mapGenerateError(err error) error {
	if errors.Is(err, generate.ErrTooFewElements) {
		return ErrInvalidSize
	}

	return ErrUnavailable
}
