// SPDX-License-Identifier: MIT
// Package: sortnet/network
//
// verify.go — exhaustive 0-1 principle check.
//
// A comparator network sorts every input iff it sorts every input of zeros
// and ones. Verify enumerates all 2^N such inputs, 64 at a time: word w[p]
// holds position p of 64 inputs (bit k ↔ input base+k). On 0-1 values a
// comparator is min/max, i.e. w[A], w[B] = w[A]&w[B], w[A]|w[B].

package network

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxVerifySize is the largest N Verify accepts (2^24 inputs).
const MaxVerifySize = 24

// lanePatterns[p] has bit k set iff bit p of k is set, for p < 6.
var lanePatterns = [6]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// Verify reports whether nw sorts every input ascending. It returns nil on
// success, an error wrapping ErrNotSorting that names one failing 0-1 input
// otherwise, and ErrTooLarge when N > MaxVerifySize.
//
// Complexity: O(2^N/64 · (N + Size)) time, O(N) space.
func Verify(nw *Network) error {
	if err := nw.Validate(); err != nil {
		return fmt.Errorf("%s: %w", methodVerify, err)
	}
	n := nw.n
	if n > MaxVerifySize {
		return fmt.Errorf("%s: n=%d > %d: %w", methodVerify, n, MaxVerifySize, ErrTooLarge)
	}

	chunks := uint64(1)
	if n > 6 {
		chunks = 1 << (n - 6)
	}
	w := make([]uint64, n)
	for chunk := uint64(0); chunk < chunks; chunk++ {
		for p := range w {
			switch {
			case p < 6:
				w[p] = lanePatterns[p]
			case chunk>>(p-6)&1 == 1:
				w[p] = ^uint64(0)
			default:
				w[p] = 0
			}
		}
		for _, layer := range nw.layers {
			for _, c := range layer {
				a, b := w[c.A], w[c.B]
				w[c.A], w[c.B] = a&b, a|b
			}
		}
		// A one directly followed by a zero marks an unsorted lane.
		var bad uint64
		for p := 0; p+1 < n; p++ {
			bad |= w[p] &^ w[p+1]
		}
		if bad != 0 {
			input := chunk<<6 | uint64(bits.TrailingZeros64(bad))
			return fmt.Errorf("%s: input %s: %w", methodVerify, formatZeroOne(input, n), ErrNotSorting)
		}
	}

	return nil
}

// formatZeroOne renders the 0-1 input encoded in x as positions 0..n-1.
func formatZeroOne(x uint64, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for p := 0; p < n; p++ {
		if x>>p&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
