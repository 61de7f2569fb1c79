// SPDX-License-Identifier: MIT
// Package: sortnet
//
// scheme.go — the Scheme tag and its text forms.

package sortnet

import (
	"fmt"
	"strings"
)

// Scheme selects a network construction.
type Scheme uint8

const (
	// Insertion is the unrolled insertion sort.
	Insertion Scheme = iota
	// Bubble is the unrolled bubble sort.
	Bubble
	// BoseNelson is the Bose–Nelson recursive merge construction.
	BoseNelson
	// BatcherOddEvenMerge is Batcher's odd–even merge sort (power-of-two N).
	BatcherOddEvenMerge
	// BitonicMerge is the bitonic merge sort for arbitrary N.
	BitonicMerge
	// SizeOptimized looks up the best known network by comparator count.
	SizeOptimized

	numSchemes
)

// schemeNames are the canonical text forms, indexed by Scheme.
var schemeNames = [numSchemes]string{
	Insertion:           "insertion",
	Bubble:              "bubble",
	BoseNelson:          "bose-nelson",
	BatcherOddEvenMerge: "batcher",
	BitonicMerge:        "bitonic",
	SizeOptimized:       "size-optimized",
}

// schemeAliases maps extra accepted spellings onto schemes.
var schemeAliases = map[string]Scheme{
	"insertion_sort":         Insertion,
	"bubble_sort":            Bubble,
	"bose_nelson_sort":       BoseNelson,
	"bosenelson":             BoseNelson,
	"batcher_odd_even_merge": BatcherOddEvenMerge,
	"odd-even-merge":         BatcherOddEvenMerge,
	"bitonic_merge":          BitonicMerge,
	"size_optimized_sort":    SizeOptimized,
	"size_optimized":         SizeOptimized,
}

// Schemes returns every known scheme in declaration order.
func Schemes() []Scheme {
	out := make([]Scheme, numSchemes)
	for i := range out {
		out[i] = Scheme(i)
	}

	return out
}

// Valid reports whether s names a known scheme.
func (s Scheme) Valid() bool { return s < numSchemes }

// String returns the canonical name, or "Scheme(k)" for unknown values.
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", uint8(s))
	}

	return schemeNames[s]
}

// ParseScheme resolves a canonical name or alias, case-insensitively.
//
// Errors: ErrUnknownScheme.
func ParseScheme(name string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range schemeNames {
		if n == key {
			return Scheme(i), nil
		}
	}
	if s, ok := schemeAliases[key]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%s: %q: %w", methodParseScheme, name, ErrUnknownScheme)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%s: %d: %w", methodMarshalScheme, uint8(s), ErrUnknownScheme)
	}

	return []byte(schemeNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed

	return nil
}
