// Package sortnet generates and runs sorting networks: fixed, data-independent
// sequences of compare-and-swap operations that sort N values.
//
// 🚀 What is sortnet?
//
//	A small library that brings together:
//		• Six construction schemes: insertion, bubble, Bose–Nelson,
//		  Batcher odd–even merge, bitonic merge, size-optimized table
//		• A layered network model with index-disjoint layers
//		• A generic execution engine with pluggable compare-and-swap
//		• An exhaustive 0-1 principle verifier
//		• A memoizing cache, a batch executor, and text/DOT/JSON/SVG renderers
//
// ✨ Packages
//
//   - sortnet           – Scheme tags, Available, Generate, Cache, Sorter[T]
//   - sortnet/network   – Comparator, Layer, Network, Apply, Verify
//   - sortnet/generate  – one generator per scheme
//   - sortnet/batch     – one network over many arrays, in parallel
//   - sortnet/render    – diagrams and wire formats
//
// 📦 Quick start
//
//	nw, err := sortnet.Generate(8, sortnet.BatcherOddEvenMerge)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	data := []int{5, 7, 1, 3, 8, 2, 6, 4}
//	network.Sort(data, nw) // [1 2 3 4 5 6 7 8]
//
// or, typed and cached:
//
//	s, err := sortnet.NewSorter[int](8, sortnet.SizeOptimized)
//	s.Sort(data)
//
// Availability is a pure predicate: Available(n, scheme) never builds
// anything. Batcher needs a power-of-two N; the size-optimized table covers
// 1 ≤ N ≤ generate.MaxSizeOptimized; every other scheme accepts any N ≥ 1.
// N = 1 yields the identity network for every scheme.
package sortnet
