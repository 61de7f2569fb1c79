// Package generate builds sorting networks from the classic construction
// schemes, one pure function per scheme.
//
// Every generator is a deterministic recursive function of N that emits
// comparators in the order of its published construction; the network
// package then schedules them into index-disjoint layers. The size-optimized
// scheme is a lookup into a table of externally proven or search-derived
// networks rather than a construction.
//
// Schemes:
//   - Insertion            — unrolled insertion sort, N(N-1)/2 comparators, any N ≥ 1.
//   - Bubble               — unrolled bubble sort, N(N-1)/2 comparators, any N ≥ 1.
//   - BoseNelson           — Bose & Nelson, "A Sorting Problem" (1962), any N ≥ 1.
//   - BatcherOddEvenMerge  — Batcher's odd–even merge (1968), N a power of two.
//   - BitonicMerge         — bitonic merge with power-of-two splits, any N ≥ 1.
//   - SizeOptimized        — SorterHunter / proven-optimal table, 1 ≤ N ≤ MaxSizeOptimized.
//
// Usage:
//
//	nw, err := generate.BoseNelson(8)
//	if err != nil {
//	  // ErrTooFewElements
//	}
//	fmt.Println(nw.Size(), nw.Depth()) // 19 7
//
// Errors are sentinels (ErrTooFewElements, ErrNotPowerOfTwo, ErrTableBound)
// wrapped with the generator name; check them with errors.Is.
package generate
