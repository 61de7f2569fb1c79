package sortnet

import "github.com/katalvlaran/sortnet/generate"

// Available reports whether Generate(n, s) would succeed. It never builds a
// network.
//
//	Insertion, Bubble, BoseNelson, BitonicMerge: n ≥ 1
//	BatcherOddEvenMerge:                          n a power of two
//	SizeOptimized:                                1 ≤ n ≤ generate.MaxSizeOptimized
func Available(n int, s Scheme) bool {
	if n < generate.MinElements || !s.Valid() {
		return false
	}
	switch s {
	case BatcherOddEvenMerge:
		return generate.IsPowerOfTwo(n)
	case SizeOptimized:
		return n <= generate.MaxSizeOptimized
	default:
		return true
	}
}

// AvailableSchemes returns the schemes that have a network for n, in
// declaration order.
func AvailableSchemes(n int) []Scheme {
	var out []Scheme
	for _, s := range Schemes() {
		if Available(n, s) {
			out = append(out, s)
		}
	}

	return out
}
