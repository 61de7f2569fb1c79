// Package network models data-independent sorting networks and executes them
// against caller-owned slices.
//
// 🚀 What is a sorting network?
//
//	A fixed, statically ordered sequence of compare-and-swap (CAS) operations
//	over positions 0..N-1. The sequence never branches on the data it sorts,
//	only on positions, which makes it attractive for small fixed-size arrays
//	where branch-free, unrollable code beats a general comparison sort.
//
// ✨ Model:
//   - Comparator{A, B}: after the operation the element at A is ≤ the element at B.
//   - Layer: comparators with pairwise disjoint positions; order inside a layer
//     is irrelevant and the comparators may run in parallel.
//   - Network: N plus an ordered list of layers; immutable once built.
//
// ⚙️ Usage:
//
//	nw, err := network.FromComparators(3, []network.Comparator{{1, 2}, {0, 2}, {0, 1}})
//	if err != nil {
//	  // ErrInvalidSize, ErrIndexOutOfRange or ErrSelfComparator
//	}
//	data := []int{3, 1, 2}
//	network.Sort(data, nw) // data == [1 2 3]
//
// Execution:
//
//   - Apply(data, cas, nw) walks the layers in order and calls cas(&data[A], &data[B])
//     for every comparator. Substitute Less(pred) for a custom order or any CAS
//     for a custom swap primitive (e.g. MinMax for the branchless form).
//   - ApplyColumns runs the network over a structure-of-arrays batch, turning each
//     comparator into element-wise min/max over two columns.
//
// Verification:
//
//   - Verify checks a network against every 0-1 input (the 0-1 principle), 64
//     inputs per machine word, for N ≤ MaxVerifySize.
//
// Complexity:
//
//   - Apply: O(Size) CAS calls, no allocation.
//   - FromComparators: O(N + len(seq)) time and space.
//   - Verify: O(2^N / 64 · (N + Size)) word operations.
package network
