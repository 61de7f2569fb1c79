// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// helpers.go — index arithmetic and the comparator emitter shared by the
// generators.

package generate

import (
	"fmt"

	"github.com/katalvlaran/sortnet/network"
)

// emitter collects comparators in construction order.
type emitter struct {
	seq []network.Comparator
}

// newEmitter returns an emitter with room for capacity comparators.
func newEmitter(capacity int) *emitter {
	return &emitter{seq: make([]network.Comparator, 0, capacity)}
}

// cas appends the comparator (a, b).
func (e *emitter) cas(a, b int) {
	e.seq = append(e.seq, network.Comparator{A: a, B: b})
}

// build layers the collected sequence into a network over n positions.
func (e *emitter) build(method string, n int) (*network.Network, error) {
	nw, err := network.FromComparators(n, e.seq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return nw, nil
}

// checkSize rejects n < MinElements.
func checkSize(method string, n int) error {
	if n < MinElements {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrTooFewElements)
	}

	return nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// largestPowerOfTwoBelow returns the largest power of two strictly less than
// n (1 for n ≤ 2), found by doubling from 1 until reaching n and halving back.
func largestPowerOfTwoBelow(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return max(p>>1, 1)
}

// ceilDiv returns ⌈x/y⌉ for y > 0, and 0 for x ≤ 0.
func ceilDiv(x, y int) int {
	if x <= 0 {
		return 0
	}

	return 1 + (x-1)/y
}
