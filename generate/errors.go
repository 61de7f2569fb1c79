// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// errors.go — sentinel errors for the generate package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators wrap them with their method name: "BatcherOddEvenMerge: n=6: <sentinel>".
//   • Generators validate their domain before emitting anything and never panic.

package generate

import "errors"

// ErrTooFewElements indicates n < MinElements.
var ErrTooFewElements = errors.New("generate: at least one element is required")

// ErrNotPowerOfTwo indicates a scheme that is defined only for power-of-two n.
var ErrNotPowerOfTwo = errors.New("generate: n must be a power of two")

// ErrTableBound indicates n beyond the size-optimized table.
var ErrTableBound = errors.New("generate: n exceeds the size-optimized table")
