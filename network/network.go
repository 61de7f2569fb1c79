// SPDX-License-Identifier: MIT
// Package: sortnet/network
//
// network.go — construction, layering and read-only accessors.
//
// Contract:
//   • New accepts pre-layered input and rejects overlapping layers.
//   • FromComparators accepts an ordered comparator stream and schedules it
//     into disjoint layers as early as possible (ASAP), keeping the relative
//     order of every two comparators that share a position.
//   • Empty layers carry no work and are dropped by both constructors.
//   • Accessors return copies; a Network never changes after construction.

package network

import (
	"fmt"
	"strings"
)

// New builds a Network over n positions from explicit layers.
//
// Errors:
//   - ErrInvalidSize      — n < 1.
//   - ErrIndexOutOfRange  — a comparator position outside [0, n).
//   - ErrSelfComparator   — a comparator with A == B.
//   - ErrLayerOverlap     — a layer touching one position twice.
//
// Complexity: O(n + Size) time, O(n + Size) space.
func New(n int, layers []Layer) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrInvalidSize)
	}

	nw := &Network{n: n, layers: make([]Layer, 0, len(layers))}
	// seen[p] == stamp marks p as used by the layer being checked.
	seen := make([]int, n)
	for li, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		stamp := li + 1
		for _, c := range layer {
			if err := checkComparator(n, c); err != nil {
				return nil, fmt.Errorf("%s: layer %d: %w", methodNew, li, err)
			}
			if seen[c.A] == stamp || seen[c.B] == stamp {
				return nil, fmt.Errorf("%s: layer %d: comparator %v: %w", methodNew, li, c, ErrLayerOverlap)
			}
			seen[c.A], seen[c.B] = stamp, stamp
		}
		nw.layers = append(nw.layers, append(Layer(nil), layer...))
		nw.size += len(layer)
	}

	return nw, nil
}

// FromComparators builds a Network over n positions from an ordered comparator
// sequence. Comparator c lands in layer 1 + max(last[c.A], last[c.B]), where
// last[p] is the layer of the latest comparator touching p. The result applies
// the same permutation as running seq one comparator at a time.
//
// Errors: ErrInvalidSize, ErrIndexOutOfRange, ErrSelfComparator.
//
// Complexity: O(n + len(seq)) time and space.
func FromComparators(n int, seq []Comparator) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodFromComparators, n, ErrInvalidSize)
	}

	// last[p] is the index of the last layer touching p, -1 if none.
	last := make([]int, n)
	for i := range last {
		last[i] = -1
	}

	var layers []Layer
	for i, c := range seq {
		if err := checkComparator(n, c); err != nil {
			return nil, fmt.Errorf("%s: comparator #%d: %w", methodFromComparators, i, err)
		}
		at := max(last[c.A], last[c.B]) + 1
		if at == len(layers) {
			layers = append(layers, nil)
		}
		layers[at] = append(layers[at], c)
		last[c.A], last[c.B] = at, at
	}

	return &Network{n: n, layers: layers, size: len(seq)}, nil
}

// checkComparator validates c against the positions [0, n).
func checkComparator(n int, c Comparator) error {
	if c.A < 0 || c.A >= n || c.B < 0 || c.B >= n {
		return fmt.Errorf("comparator %v with n=%d: %w", c, n, ErrIndexOutOfRange)
	}
	if c.A == c.B {
		return fmt.Errorf("comparator %v: %w", c, ErrSelfComparator)
	}

	return nil
}

// N returns the number of positions the network sorts.
func (nw *Network) N() int { return nw.n }

// Depth returns the number of layers.
func (nw *Network) Depth() int { return len(nw.layers) }

// Size returns the total number of comparators.
func (nw *Network) Size() int { return nw.size }

// Layers returns a deep copy of the layers.
func (nw *Network) Layers() []Layer {
	out := make([]Layer, len(nw.layers))
	for i, layer := range nw.layers {
		out[i] = append(Layer(nil), layer...)
	}

	return out
}

// Layer returns a copy of layer i. It panics if i is out of range.
func (nw *Network) Layer(i int) Layer {
	return append(Layer(nil), nw.layers[i]...)
}

// Comparators returns all comparators in execution order.
func (nw *Network) Comparators() []Comparator {
	out := make([]Comparator, 0, nw.size)
	for _, layer := range nw.layers {
		out = append(out, layer...)
	}

	return out
}

// Validate re-checks the structural invariants: every position in range,
// no self comparator, and disjoint positions inside each layer.
func (nw *Network) Validate() error {
	if nw == nil || nw.n < 1 {
		return fmt.Errorf("%s: %w", methodValidate, ErrInvalidSize)
	}
	seen := make([]int, nw.n)
	for li, layer := range nw.layers {
		stamp := li + 1
		for _, c := range layer {
			if err := checkComparator(nw.n, c); err != nil {
				return fmt.Errorf("%s: layer %d: %w", methodValidate, li, err)
			}
			if seen[c.A] == stamp || seen[c.B] == stamp {
				return fmt.Errorf("%s: layer %d: comparator %v: %w", methodValidate, li, c, ErrLayerOverlap)
			}
			seen[c.A], seen[c.B] = stamp, stamp
		}
	}

	return nil
}

// Equal reports whether two networks have the same N and identical layers,
// comparator order included.
func (nw *Network) Equal(other *Network) bool {
	if nw == nil || other == nil {
		return nw == other
	}
	if nw.n != other.n || nw.size != other.size || len(nw.layers) != len(other.layers) {
		return false
	}
	for i := range nw.layers {
		if len(nw.layers[i]) != len(other.layers[i]) {
			return false
		}
		for j := range nw.layers[i] {
			if nw.layers[i][j] != other.layers[i][j] {
				return false
			}
		}
	}

	return true
}

// String returns a one-line summary followed by the layers, e.g.
// "n=3 size=3 depth=3 [(1,2)] [(0,2)] [(0,1)]".
func (nw *Network) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "n=%d size=%d depth=%d", nw.n, nw.size, len(nw.layers))
	for _, layer := range nw.layers {
		sb.WriteString(" [")
		for i, c := range layer {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(c.String())
		}
		sb.WriteByte(']')
	}

	return sb.String()
}
