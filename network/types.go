// SPDX-License-Identifier: MIT
// Package: sortnet/network
//
// types.go — descriptor types and sentinel errors of the network package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method, offending comparator, layer index) is attached with %w.
//   • Apply and its variants have no error path; malformed input is rejected
//     when a Network is constructed.

package network

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a network size N < 1.
	ErrInvalidSize = errors.New("network: size must be at least 1")

	// ErrIndexOutOfRange indicates a comparator position outside [0, N).
	ErrIndexOutOfRange = errors.New("network: comparator index out of range")

	// ErrSelfComparator indicates a comparator whose two positions are equal.
	ErrSelfComparator = errors.New("network: comparator positions must differ")

	// ErrLayerOverlap indicates that a layer touches the same position twice.
	ErrLayerOverlap = errors.New("network: layer positions are not disjoint")

	// ErrNotSorting is returned by Verify when some 0-1 input is left unsorted.
	ErrNotSorting = errors.New("network: network does not sort every input")

	// ErrTooLarge is returned by Verify when N exceeds MaxVerifySize.
	ErrTooLarge = errors.New("network: too many elements for exhaustive verification")
)

// Method tags used as error prefixes.
const (
	methodNew             = "New"
	methodFromComparators = "FromComparators"
	methodValidate        = "Validate"
	methodVerify          = "Verify"
	methodUnmarshal       = "UnmarshalJSON"
)

// Comparator is an ordered pair of distinct positions. After the comparator
// is applied the element at A is ≤ the element at B under the active order.
// A may be greater than B; such a comparator moves the smaller value to the
// higher position.
type Comparator struct {
	A int
	B int
}

// String renders the comparator as "(A,B)".
func (c Comparator) String() string {
	return fmt.Sprintf("(%d,%d)", c.A, c.B)
}

// Lo returns the smaller of the two positions.
func (c Comparator) Lo() int { return min(c.A, c.B) }

// Hi returns the larger of the two positions.
func (c Comparator) Hi() int { return max(c.A, c.B) }

// Descending reports whether the comparator routes the smaller value to the
// higher position.
func (c Comparator) Descending() bool { return c.A > c.B }

// Layer is a set of comparators with pairwise disjoint positions.
type Layer []Comparator

// Network is an immutable sorting network over N positions: an ordered
// sequence of layers. The zero value is not usable; build one with New,
// FromComparators, or a generator.
//
// A *Network is safe for concurrent use by multiple goroutines.
type Network struct {
	n      int
	layers []Layer
	size   int
}
