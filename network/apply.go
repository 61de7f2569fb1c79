// SPDX-License-Identifier: MIT
// Package: sortnet/network
//
// apply.go — execution engine.
//
// Contract:
//   • Layers run strictly in order; comparators inside a layer touch disjoint
//     positions, so their order is irrelevant.
//   • The caller owns data exclusively for the duration of the call.
//   • len(data) ≥ N is a caller precondition; a shorter slice panics on the
//     first bounds check instead of being silently truncated.
//   • No allocation, no error path.

package network

import "cmp"

// CAS is a compare-and-swap primitive. After cas(a, b) returns, *a must be
// ordered no later than *b under the order the primitive encodes, and the
// pair {*a, *b} must be a permutation of the values it received.
type CAS[T any] func(a, b *T)

// Less returns the default CAS for a strict ordering predicate: when
// less(*b, *a) the two values are swapped, otherwise they are left alone.
func Less[T any](less func(a, b T) bool) CAS[T] {
	return func(a, b *T) {
		if less(*b, *a) {
			*a, *b = *b, *a
		}
	}
}

// Ordered returns the ascending CAS for ordered types, using cmp.Less so that
// NaN values order before every other float.
func Ordered[T cmp.Ordered]() CAS[T] {
	return Less(cmp.Less[T])
}

// Descending returns the CAS that moves the larger value to the lower index.
func Descending[T cmp.Ordered]() CAS[T] {
	return Less(func(a, b T) bool { return cmp.Less(b, a) })
}

// MinMax returns the branchless CAS form: *a = min(*a, *b), *b = max(*a, *b).
// The input must not contain NaN, for which min and max do not return one of
// their operands.
func MinMax[T cmp.Ordered]() CAS[T] {
	return func(a, b *T) {
		x, y := *a, *b
		*a, *b = min(x, y), max(x, y)
	}
}

// Apply executes nw against data[:nw.N()] using cas.
//
// Complexity: O(Size) calls to cas.
func Apply[T any](data []T, cas CAS[T], nw *Network) {
	// One bounds check up front; panics when len(data) < N.
	data = data[:nw.n:nw.n]
	for _, layer := range nw.layers {
		for _, c := range layer {
			cas(&data[c.A], &data[c.B])
		}
	}
}

// Sort sorts data[:nw.N()] ascending.
func Sort[T cmp.Ordered](data []T, nw *Network) {
	data = data[:nw.n:nw.n]
	for _, layer := range nw.layers {
		for _, c := range layer {
			if cmp.Less(data[c.B], data[c.A]) {
				data[c.A], data[c.B] = data[c.B], data[c.A]
			}
		}
	}
}

// SortFunc sorts data[:nw.N()] by the strict ordering predicate less.
func SortFunc[T any](data []T, nw *Network, less func(a, b T) bool) {
	Apply(data, Less(less), nw)
}

// ApplyColumns runs nw over a structure-of-arrays batch: cols[p][k] is the
// value at position p of the k-th independent array. Each comparator (A, B)
// becomes an element-wise min into cols[A] and max into cols[B], the form a
// vector unit executes lane by lane. All columns must have the same length
// and len(cols) ≥ N. The input must not contain NaN.
//
// Complexity: O(Size · len(cols[0])).
func ApplyColumns[T cmp.Ordered](cols [][]T, nw *Network) {
	cols = cols[:nw.n:nw.n]
	for _, layer := range nw.layers {
		for _, c := range layer {
			lo, hi := cols[c.A], cols[c.B]
			hi = hi[:len(lo)]
			for k, x := range lo {
				y := hi[k]
				lo[k], hi[k] = min(x, y), max(x, y)
			}
		}
	}
}
