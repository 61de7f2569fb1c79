// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// impl_bose_nelson.go — Bose & Nelson, "A Sorting Problem" (1962).
//
// Construction (0-based):
//   • sort(lo, n): m = ⌊n/2⌋; sort(lo, m) if m > 1; sort(lo+m, n-m) if n-m > 1;
//     merge(lo, lo+m, m, n-m).
//   • merge(i, j, x, y) merges the sorted runs [i, i+x) and [j, j+y):
//       x=1,y=1 → (i,j)
//       x=1,y=2 → (i,j+1), (i,j)
//       x=2,y=1 → (i,j), (i+1,j)
//       else    → l = ⌊x/2⌋, m = ⌊(x odd ? y : y+1)/2⌋;
//                 merge(i, j, l, m); merge(i+l, j+m, x-l, y-m); merge(i+l, j, x-l, m).
//     The y split depends on the parity of x; sort only ever requests runs
//     with |x-y| ≤ 1, which the recursion preserves.
//
// Complexity: recursion depth O(log N); size 19 for N=8, 65 for N=16.

package generate

import "github.com/katalvlaran/sortnet/network"

// boseNelson holds the emitter threaded through the mutual recursion.
type boseNelson struct {
	*emitter
}

// BoseNelson returns the Bose–Nelson network for n elements.
//
// Errors: ErrTooFewElements for n < 1.
func BoseNelson(n int) (*network.Network, error) {
	if err := checkSize(MethodBoseNelson, n); err != nil {
		return nil, err
	}

	g := boseNelson{emitter: newEmitter(n * 4)}
	g.sort(0, n)

	return g.build(MethodBoseNelson, n)
}

// sort emits the network for the n elements starting at lo.
func (g boseNelson) sort(lo, n int) {
	if n <= 1 {
		return
	}
	m := n / 2
	if m > 1 {
		g.sort(lo, m)
	}
	if n-m > 1 {
		g.sort(lo+m, n-m)
	}
	g.merge(lo, lo+m, m, n-m)
}

// merge emits the merge of the x-run at i with the y-run at j.
func (g boseNelson) merge(i, j, x, y int) {
	switch {
	case x == 1 && y == 1:
		g.cas(i, j)
	case x == 1 && y == 2:
		g.cas(i, j+1)
		g.cas(i, j)
	case x == 2 && y == 1:
		g.cas(i, j)
		g.cas(i+1, j)
	default:
		l := x / 2
		m := (y + 1) / 2
		if x&1 == 1 {
			m = y / 2
		}
		g.merge(i, j, l, m)
		g.merge(i+l, j+m, x-l, y-m)
		g.merge(i+l, j, x-l, m)
	}
}
