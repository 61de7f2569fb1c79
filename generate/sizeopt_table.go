// SPDX-License-Identifier: MIT
// Package: sortnet/generate
//
// sizeopt_table.go — best known size-optimized networks for N = 1..32.
//
// Entry i holds the layers for N = i+1. Each layer is index-disjoint; N = 1
// is the identity. Sizes follow the published best-known upper bounds
// (Knuth TAOCP vol. 3 §5.3.4 and later searches).

package generate

import "github.com/katalvlaran/sortnet/network"

// sizeOptimizedTable is indexed by N-1.
var sizeOptimizedTable = [...][]network.Layer{
	// 1: size 0, depth 0
	{},
	// 2: size 1, depth 1
	{
		{{0, 1}},
	},
	// 3: size 3, depth 3
	{
		{{0, 2}},
		{{0, 1}},
		{{1, 2}},
	},
	// 4: size 5, depth 3
	{
		{{0, 2}, {1, 3}},
		{{0, 1}, {2, 3}},
		{{1, 2}},
	},
	// 5: size 9, depth 5
	{
		{{0, 3}, {1, 4}},
		{{0, 2}, {1, 3}},
		{{0, 1}, {2, 4}},
		{{1, 2}, {3, 4}},
		{{2, 3}},
	},
	// 6: size 12, depth 5
	{
		{{0, 5}, {1, 3}, {2, 4}},
		{{1, 2}, {3, 4}},
		{{0, 3}, {2, 5}},
		{{0, 1}, {2, 3}, {4, 5}},
		{{1, 2}, {3, 4}},
	},
	// 7: size 16, depth 6
	{
		{{0, 6}, {2, 3}, {4, 5}},
		{{0, 2}, {1, 4}, {3, 6}},
		{{0, 1}, {2, 5}, {3, 4}},
		{{1, 2}, {4, 6}},
		{{2, 3}, {4, 5}},
		{{1, 2}, {3, 4}, {5, 6}},
	},
	// 8: size 19, depth 6
	{
		{{0, 2}, {1, 3}, {4, 6}, {5, 7}},
		{{0, 4}, {1, 5}, {2, 6}, {3, 7}},
		{{0, 1}, {2, 3}, {4, 5}, {6, 7}},
		{{2, 4}, {3, 5}},
		{{1, 4}, {3, 6}},
		{{1, 2}, {3, 4}, {5, 6}},
	},
	// 9: size 25, depth 7
	{
		{{0, 3}, {1, 7}, {2, 5}, {4, 8}},
		{{0, 7}, {2, 4}, {3, 8}, {5, 6}},
		{{0, 2}, {1, 3}, {4, 5}, {7, 8}},
		{{1, 4}, {3, 6}, {5, 7}},
		{{0, 1}, {2, 4}, {3, 5}, {6, 8}},
		{{2, 3}, {4, 5}, {6, 7}},
		{{1, 2}, {3, 4}, {5, 6}},
	},
	// 10: size 29, depth 8
	{
		{{0, 8}, {1, 9}, {2, 7}, {3, 5}, {4, 6}},
		{{0, 2}, {1, 4}, {5, 8}, {7, 9}},
		{{0, 3}, {2, 4}, {5, 7}, {6, 9}},
		{{0, 1}, {3, 6}, {8, 9}},
		{{1, 5}, {2, 3}, {4, 8}, {6, 7}},
		{{1, 2}, {3, 5}, {4, 6}, {7, 8}},
		{{2, 3}, {4, 5}, {6, 7}},
		{{3, 4}, {5, 6}},
	},
	// 11: size 35, depth 8
	{
		{{0, 9}, {1, 6}, {2, 4}, {3, 7}, {5, 8}},
		{{0, 1}, {3, 5}, {4, 10}, {6, 9}, {7, 8}},
		{{1, 3}, {2, 5}, {4, 7}, {8, 10}},
		{{0, 4}, {1, 2}, {3, 7}, {5, 9}, {6, 8}},
		{{0, 1}, {2, 6}, {4, 5}, {7, 8}, {9, 10}},
		{{2, 4}, {3, 6}, {5, 7}, {8, 9}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8}},
		{{2, 3}, {4, 5}, {6, 7}},
	},
	// 12: size 39, depth 9
	{
		{{0, 8}, {1, 7}, {2, 6}, {3, 11}, {4, 10}, {5, 9}},
		{{0, 1}, {2, 5}, {3, 4}, {6, 9}, {7, 8}, {10, 11}},
		{{0, 2}, {1, 6}, {5, 10}, {9, 11}},
		{{0, 3}, {1, 2}, {4, 6}, {5, 7}, {8, 11}, {9, 10}},
		{{1, 4}, {3, 5}, {6, 8}, {7, 10}},
		{{1, 3}, {2, 5}, {6, 9}, {8, 10}},
		{{2, 3}, {4, 5}, {6, 7}, {8, 9}},
		{{4, 6}, {5, 7}},
		{{3, 4}, {5, 6}, {7, 8}},
	},
	// 13: size 45, depth 10
	{
		{{0, 12}, {1, 10}, {2, 9}, {3, 7}, {5, 11}, {6, 8}},
		{{1, 6}, {2, 3}, {4, 11}, {7, 9}, {8, 10}},
		{{0, 4}, {1, 2}, {3, 6}, {7, 8}, {9, 10}, {11, 12}},
		{{4, 6}, {5, 9}, {8, 11}, {10, 12}},
		{{0, 5}, {3, 8}, {4, 7}, {6, 11}, {9, 10}},
		{{0, 1}, {2, 5}, {6, 9}, {7, 8}, {10, 11}},
		{{1, 3}, {2, 4}, {5, 6}, {9, 10}},
		{{1, 2}, {3, 4}, {5, 7}, {6, 8}},
		{{2, 3}, {4, 5}, {6, 7}, {8, 9}},
		{{3, 4}, {5, 6}},
	},
	// 14: size 51, depth 10
	{
		{{0, 6}, {1, 11}, {2, 12}, {3, 10}, {4, 5}, {7, 13}, {8, 9}},
		{{1, 2}, {3, 7}, {4, 8}, {5, 9}, {6, 10}, {11, 12}},
		{{0, 4}, {1, 3}, {5, 6}, {7, 8}, {9, 13}, {10, 12}},
		{{0, 1}, {2, 9}, {3, 7}, {4, 11}, {6, 10}, {12, 13}},
		{{2, 5}, {4, 7}, {6, 9}, {8, 11}},
		{{1, 2}, {3, 4}, {6, 7}, {9, 10}, {11, 12}},
		{{1, 3}, {2, 4}, {5, 6}, {7, 8}, {9, 11}, {10, 12}},
		{{2, 3}, {4, 7}, {6, 9}, {10, 11}},
		{{4, 5}, {6, 7}, {8, 9}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}},
	},
	// 15: size 56, depth 10
	{
		{{1, 2}, {3, 10}, {4, 14}, {5, 8}, {6, 13}, {7, 12}, {9, 11}},
		{{0, 14}, {1, 5}, {2, 8}, {3, 7}, {6, 9}, {10, 12}, {11, 13}},
		{{0, 7}, {1, 6}, {2, 9}, {4, 10}, {5, 11}, {8, 13}, {12, 14}},
		{{0, 6}, {2, 4}, {3, 5}, {7, 11}, {8, 10}, {9, 12}, {13, 14}},
		{{0, 3}, {1, 2}, {4, 7}, {5, 9}, {6, 8}, {10, 11}, {12, 13}},
		{{0, 1}, {2, 3}, {4, 6}, {7, 9}, {10, 12}, {11, 13}},
		{{1, 2}, {3, 5}, {8, 10}, {11, 12}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}},
		{{2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}},
		{{5, 6}, {7, 8}},
	},
	// 16: size 60, depth 10
	{
		{{0, 13}, {1, 12}, {2, 15}, {3, 14}, {4, 8}, {5, 6}, {7, 11}, {9, 10}},
		{{0, 5}, {1, 7}, {2, 9}, {3, 4}, {6, 13}, {8, 14}, {10, 15}, {11, 12}},
		{{0, 1}, {2, 3}, {4, 5}, {6, 8}, {7, 9}, {10, 11}, {12, 13}, {14, 15}},
		{{0, 2}, {1, 3}, {4, 10}, {5, 11}, {6, 7}, {8, 9}, {12, 14}, {13, 15}},
		{{1, 2}, {3, 12}, {4, 6}, {5, 7}, {8, 10}, {9, 11}, {13, 14}},
		{{1, 4}, {2, 6}, {5, 8}, {7, 10}, {9, 13}, {11, 14}},
		{{2, 4}, {3, 6}, {9, 12}, {11, 13}},
		{{3, 5}, {6, 8}, {7, 9}, {10, 12}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}},
		{{6, 7}, {8, 9}},
	},
	// 17: size 71, depth 12
	{
		{{0, 11}, {1, 15}, {2, 10}, {3, 5}, {4, 6}, {8, 12}, {9, 16}, {13, 14}},
		{{0, 6}, {1, 13}, {2, 8}, {4, 14}, {5, 15}, {7, 11}},
		{{0, 8}, {3, 7}, {4, 9}, {6, 16}, {10, 11}, {12, 14}},
		{{0, 2}, {1, 4}, {5, 6}, {7, 13}, {8, 9}, {10, 12}, {11, 14}, {15, 16}},
		{{0, 3}, {2, 5}, {6, 11}, {7, 10}, {9, 13}, {12, 15}, {14, 16}},
		{{0, 1}, {3, 4}, {5, 10}, {6, 9}, {7, 8}, {11, 15}, {13, 14}},
		{{1, 2}, {3, 7}, {4, 8}, {6, 12}, {11, 13}, {14, 15}},
		{{1, 3}, {2, 7}, {4, 5}, {9, 11}, {10, 12}, {13, 14}},
		{{2, 3}, {4, 6}, {5, 7}, {8, 10}},
		{{3, 4}, {6, 8}, {7, 9}, {10, 12}},
		{{5, 6}, {7, 8}, {9, 10}, {11, 12}},
		{{4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}},
	},
	// 18: size 77, depth 13
	{
		{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}},
		{{1, 5}, {2, 6}, {3, 7}, {4, 10}, {8, 16}, {9, 17}, {12, 14}, {13, 15}},
		{{0, 8}, {1, 10}, {2, 12}, {3, 14}, {6, 13}, {7, 15}, {9, 16}, {11, 17}},
		{{0, 4}, {1, 9}, {5, 17}, {8, 11}, {10, 16}},
		{{0, 2}, {1, 6}, {4, 10}, {5, 9}, {14, 16}, {15, 17}},
		{{1, 2}, {3, 10}, {4, 12}, {5, 7}, {6, 14}, {9, 13}, {15, 16}},
		{{3, 8}, {5, 12}, {7, 11}, {9, 10}},
		{{3, 4}, {6, 8}, {7, 14}, {9, 12}, {11, 13}},
		{{1, 3}, {2, 4}, {7, 9}, {8, 12}, {11, 15}, {13, 16}},
		{{2, 3}, {4, 5}, {6, 7}, {10, 11}, {12, 14}, {13, 15}},
		{{4, 6}, {5, 8}, {9, 10}, {11, 14}},
		{{3, 4}, {5, 7}, {8, 9}, {10, 12}, {13, 14}},
		{{5, 6}, {7, 8}, {9, 10}, {11, 12}},
	},
	// 19: size 85, depth 12
	{
		{{0, 12}, {1, 4}, {2, 8}, {3, 5}, {6, 17}, {7, 11}, {9, 14}, {10, 13}, {15, 16}},
		{{0, 2}, {1, 7}, {3, 6}, {4, 11}, {5, 17}, {8, 12}, {10, 15}, {13, 16}, {14, 18}},
		{{3, 10}, {4, 14}, {5, 15}, {6, 13}, {7, 9}, {11, 17}, {16, 18}},
		{{0, 7}, {1, 10}, {4, 6}, {9, 15}, {11, 16}, {12, 17}, {13, 14}},
		{{0, 3}, {2, 6}, {5, 7}, {8, 11}, {12, 16}},
		{{1, 8}, {2, 9}, {3, 4}, {6, 15}, {7, 13}, {10, 11}, {12, 18}},
		{{1, 3}, {2, 5}, {6, 9}, {7, 12}, {8, 10}, {11, 14}, {17, 18}},
		{{0, 1}, {2, 3}, {4, 8}, {6, 10}, {9, 12}, {14, 15}, {16, 17}},
		{{1, 2}, {5, 8}, {6, 7}, {9, 11}, {10, 13}, {14, 16}, {15, 17}},
		{{3, 6}, {4, 5}, {7, 9}, {8, 10}, {11, 12}, {13, 14}, {15, 16}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 13}, {12, 14}},
		{{2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}},
	},
	// 20: size 91, depth 12
	{
		{{0, 3}, {1, 7}, {2, 5}, {4, 8}, {6, 9}, {10, 13}, {11, 15}, {12, 18}, {14, 17}, {16, 19}},
		{{0, 14}, {1, 11}, {2, 16}, {3, 17}, {4, 12}, {5, 19}, {6, 10}, {7, 15}, {8, 18}, {9, 13}},
		{{0, 4}, {1, 2}, {3, 8}, {5, 7}, {11, 16}, {12, 14}, {15, 19}, {17, 18}},
		{{1, 6}, {2, 12}, {3, 5}, {4, 11}, {7, 17}, {8, 15}, {13, 18}, {14, 16}},
		{{0, 1}, {2, 6}, {7, 10}, {9, 12}, {13, 17}, {18, 19}},
		{{1, 6}, {5, 9}, {7, 11}, {8, 12}, {10, 14}, {13, 18}},
		{{3, 5}, {4, 7}, {8, 10}, {9, 11}, {12, 15}, {14, 16}},
		{{1, 3}, {2, 4}, {5, 7}, {6, 10}, {9, 13}, {12, 14}, {15, 17}, {16, 18}},
		{{1, 2}, {3, 4}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {15, 16}, {17, 18}},
		{{2, 3}, {4, 6}, {5, 8}, {7, 9}, {10, 12}, {11, 14}, {13, 15}, {16, 17}},
		{{4, 5}, {6, 8}, {7, 10}, {9, 12}, {11, 13}, {14, 15}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}},
	},
	// 21: size 100, depth 12
	{
		{{0, 7}, {1, 10}, {3, 5}, {4, 8}, {6, 13}, {9, 19}, {11, 14}, {12, 17}, {15, 16}, {18, 20}},
		{{0, 11}, {1, 15}, {2, 12}, {3, 4}, {5, 8}, {6, 9}, {7, 14}, {10, 16}, {13, 19}, {17, 20}},
		{{0, 6}, {1, 3}, {2, 18}, {4, 15}, {5, 10}, {8, 16}, {11, 17}, {12, 13}, {14, 20}},
		{{2, 6}, {5, 12}, {7, 18}, {8, 14}, {9, 11}, {10, 17}, {13, 19}, {16, 20}},
		{{1, 2}, {4, 7}, {5, 9}, {6, 17}, {10, 13}, {11, 12}, {14, 19}, {15, 18}},
		{{0, 2}, {3, 6}, {4, 5}, {7, 10}, {8, 11}, {9, 15}, {12, 16}, {13, 18}, {14, 17}, {19, 20}},
		{{0, 1}, {2, 3}, {5, 9}, {6, 12}, {7, 8}, {11, 14}, {13, 15}, {16, 19}, {17, 18}},
		{{1, 2}, {3, 9}, {6, 13}, {10, 11}, {12, 15}, {16, 17}, {18, 19}},
		{{1, 4}, {2, 5}, {3, 7}, {6, 10}, {8, 9}, {11, 12}, {13, 14}, {17, 18}},
		{{2, 4}, {5, 6}, {7, 8}, {9, 11}, {10, 13}, {12, 15}, {14, 16}},
		{{3, 4}, {5, 7}, {6, 8}, {9, 10}, {11, 13}, {12, 14}, {15, 16}},
		{{4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}},
	},
	// 22: size 107, depth 13
	{
		{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}, {18, 19}, {20, 21}},
		{{0, 12}, {1, 13}, {2, 6}, {3, 7}, {4, 10}, {8, 20}, {9, 21}, {11, 17}, {14, 18}, {15, 19}},
		{{0, 2}, {1, 6}, {3, 12}, {4, 16}, {5, 17}, {7, 13}, {8, 14}, {9, 18}, {15, 20}, {19, 21}},
		{{0, 8}, {1, 15}, {2, 14}, {3, 9}, {5, 11}, {6, 20}, {7, 19}, {10, 16}, {12, 18}, {13, 21}},
		{{0, 4}, {1, 10}, {3, 8}, {5, 9}, {7, 14}, {11, 20}, {12, 16}, {13, 18}, {17, 21}},
		{{1, 3}, {2, 5}, {4, 8}, {6, 9}, {7, 10}, {11, 14}, {12, 15}, {13, 17}, {16, 19}, {18, 20}},
		{{2, 4}, {3, 12}, {5, 8}, {6, 11}, {9, 18}, {10, 15}, {13, 16}, {17, 19}},
		{{1, 2}, {3, 4}, {5, 7}, {6, 12}, {8, 11}, {9, 15}, {10, 13}, {14, 16}, {17, 18}, {19, 20}},
		{{2, 3}, {4, 5}, {7, 12}, {8, 10}, {9, 14}, {11, 13}, {16, 17}, {18, 19}},
		{{4, 6}, {5, 8}, {9, 11}, {10, 12}, {13, 16}, {15, 17}},
		{{3, 4}, {6, 7}, {9, 10}, {11, 12}, {14, 15}, {17, 18}},
		{{5, 6}, {7, 8}, {10, 11}, {13, 14}, {15, 16}},
		{{6, 7}, {8, 9}, {12, 13}, {14, 15}},
	},
	// 23: size 115, depth 13
	{
		{{0, 20}, {1, 12}, {2, 16}, {4, 6}, {5, 10}, {7, 21}, {8, 14}, {9, 15}, {11, 22}, {13, 18}, {17, 19}},
		{{0, 3}, {1, 11}, {2, 7}, {4, 17}, {5, 13}, {6, 19}, {8, 9}, {10, 18}, {12, 22}, {14, 15}, {16, 21}},
		{{0, 1}, {2, 4}, {3, 12}, {5, 8}, {6, 9}, {7, 10}, {11, 20}, {13, 16}, {14, 17}, {15, 18}, {19, 21}},
		{{2, 5}, {4, 8}, {6, 11}, {7, 14}, {9, 16}, {12, 17}, {15, 19}, {18, 21}},
		{{1, 8}, {3, 14}, {4, 7}, {9, 20}, {10, 12}, {11, 13}, {15, 22}, {16, 19}},
		{{0, 7}, {1, 5}, {3, 4}, {6, 11}, {8, 15}, {9, 14}, {10, 13}, {12, 17}, {18, 22}, {19, 20}},
		{{0, 2}, {1, 6}, {4, 7}, {5, 9}, {8, 10}, {13, 15}, {14, 18}, {16, 19}, {17, 22}, {20, 21}},
		{{2, 3}, {4, 5}, {6, 8}, {7, 9}, {10, 11}, {12, 13}, {14, 16}, {15, 17}, {18, 19}, {21, 22}},
		{{1, 2}, {3, 6}, {4, 10}, {7, 8}, {9, 11}, {12, 14}, {13, 19}, {15, 16}, {17, 20}},
		{{2, 3}, {5, 10}, {6, 7}, {8, 9}, {13, 18}, {14, 15}, {16, 17}, {20, 21}},
		{{3, 4}, {5, 7}, {10, 12}, {11, 13}, {16, 18}, {19, 20}},
		{{4, 6}, {8, 10}, {9, 12}, {11, 14}, {13, 15}, {17, 19}},
		{{5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}},
	},
	// 24: size 120, depth 13
	{
		{{0, 20}, {1, 12}, {2, 16}, {3, 23}, {4, 6}, {5, 10}, {7, 21}, {8, 14}, {9, 15}, {11, 22}, {13, 18}, {17, 19}},
		{{0, 3}, {1, 11}, {2, 7}, {4, 17}, {5, 13}, {6, 19}, {8, 9}, {10, 18}, {12, 22}, {14, 15}, {16, 21}, {20, 23}},
		{{0, 1}, {2, 4}, {3, 12}, {5, 8}, {6, 9}, {7, 10}, {11, 20}, {13, 16}, {14, 17}, {15, 18}, {19, 21}, {22, 23}},
		{{2, 5}, {4, 8}, {6, 11}, {7, 14}, {9, 16}, {12, 17}, {15, 19}, {18, 21}},
		{{1, 8}, {3, 14}, {4, 7}, {9, 20}, {10, 12}, {11, 13}, {15, 22}, {16, 19}},
		{{0, 7}, {1, 5}, {3, 4}, {6, 11}, {8, 15}, {9, 14}, {10, 13}, {12, 17}, {16, 23}, {18, 22}, {19, 20}},
		{{0, 2}, {1, 6}, {4, 7}, {5, 9}, {8, 10}, {13, 15}, {14, 18}, {16, 19}, {17, 22}, {21, 23}},
		{{2, 3}, {4, 5}, {6, 8}, {7, 9}, {10, 11}, {12, 13}, {14, 16}, {15, 17}, {18, 19}, {20, 21}},
		{{1, 2}, {3, 6}, {4, 10}, {7, 8}, {9, 11}, {12, 14}, {13, 19}, {15, 16}, {17, 20}, {21, 22}},
		{{2, 3}, {5, 10}, {6, 7}, {8, 9}, {13, 18}, {14, 15}, {16, 17}, {20, 21}},
		{{3, 4}, {5, 7}, {10, 12}, {11, 13}, {16, 18}, {19, 20}},
		{{4, 6}, {8, 10}, {9, 12}, {11, 14}, {13, 15}, {17, 19}},
		{{5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}},
	},
	// 25: size 132, depth 15
	{
		{{0, 2}, {1, 8}, {3, 18}, {4, 17}, {5, 20}, {6, 19}, {7, 9}, {10, 11}, {12, 13}, {14, 16}, {15, 22}, {21, 23}},
		{{0, 3}, {1, 15}, {2, 18}, {4, 12}, {5, 21}, {6, 10}, {7, 14}, {8, 22}, {9, 16}, {11, 19}, {13, 17}, {20, 23}},
		{{0, 4}, {1, 7}, {2, 13}, {3, 12}, {5, 6}, {8, 14}, {9, 15}, {10, 21}, {11, 20}, {16, 22}, {17, 18}, {19, 23}},
		{{0, 5}, {2, 11}, {3, 6}, {4, 10}, {7, 16}, {8, 9}, {12, 21}, {13, 19}, {14, 15}, {17, 20}, {18, 23}},
		{{2, 7}, {6, 9}, {8, 11}, {14, 24}, {18, 21}},
		{{3, 8}, {7, 10}, {11, 12}, {13, 14}, {15, 21}, {18, 20}, {22, 24}},
		{{4, 13}, {10, 16}, {11, 15}, {18, 24}, {19, 22}},
		{{1, 4}, {8, 11}, {9, 19}, {13, 17}, {14, 18}, {16, 20}, {23, 24}},
		{{0, 1}, {4, 5}, {6, 13}, {9, 14}, {10, 17}, {12, 16}, {18, 19}, {20, 21}, {22, 23}},
		{{2, 6}, {3, 4}, {5, 13}, {7, 9}, {12, 18}, {15, 17}, {16, 19}, {20, 22}, {21, 23}},
		{{1, 2}, {5, 8}, {6, 7}, {9, 10}, {11, 13}, {14, 15}, {17, 20}, {21, 22}},
		{{1, 3}, {2, 4}, {5, 6}, {7, 11}, {8, 9}, {10, 13}, {12, 14}, {15, 16}, {17, 18}, {19, 20}},
		{{2, 3}, {4, 8}, {6, 7}, {9, 12}, {10, 11}, {13, 14}, {15, 17}, {16, 18}, {20, 21}},
		{{3, 5}, {4, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 15}, {14, 17}, {16, 19}},
		{{4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}, {18, 19}},
	},
	// 26: size 139, depth 15
	{
		{{0, 25}, {1, 3}, {2, 9}, {4, 19}, {5, 18}, {6, 21}, {7, 20}, {8, 10}, {11, 12}, {13, 14}, {15, 17}, {16, 23}, {22, 24}},
		{{1, 4}, {2, 16}, {3, 19}, {5, 13}, {6, 22}, {7, 11}, {8, 15}, {9, 23}, {10, 17}, {12, 20}, {14, 18}, {21, 24}},
		{{1, 5}, {2, 8}, {3, 14}, {4, 13}, {6, 7}, {9, 15}, {10, 16}, {11, 22}, {12, 21}, {17, 23}, {18, 19}, {20, 24}},
		{{0, 10}, {1, 6}, {3, 7}, {4, 11}, {5, 12}, {13, 20}, {14, 21}, {15, 25}, {18, 22}, {19, 24}},
		{{0, 4}, {8, 10}, {12, 13}, {15, 17}, {21, 25}},
		{{0, 2}, {4, 8}, {10, 12}, {13, 15}, {17, 21}, {23, 25}},
		{{0, 1}, {2, 3}, {4, 5}, {8, 14}, {9, 13}, {11, 17}, {12, 16}, {20, 21}, {22, 23}, {24, 25}},
		{{1, 4}, {3, 10}, {6, 9}, {7, 13}, {8, 11}, {12, 18}, {14, 17}, {15, 22}, {16, 19}, {21, 24}},
		{{2, 6}, {3, 8}, {5, 7}, {9, 12}, {13, 16}, {17, 22}, {18, 20}, {19, 23}},
		{{1, 2}, {4, 6}, {5, 9}, {7, 10}, {11, 12}, {13, 14}, {15, 18}, {16, 20}, {19, 21}, {23, 24}},
		{{2, 4}, {3, 5}, {7, 13}, {8, 9}, {10, 14}, {11, 15}, {12, 18}, {16, 17}, {20, 22}, {21, 23}},
		{{3, 4}, {6, 9}, {7, 11}, {10, 12}, {13, 15}, {14, 18}, {16, 19}, {21, 22}},
		{{5, 7}, {6, 8}, {9, 13}, {10, 11}, {12, 16}, {14, 15}, {17, 19}, {18, 20}},
		{{5, 6}, {7, 8}, {9, 10}, {11, 13}, {12, 14}, {15, 16}, {17, 18}, {19, 20}},
		{{4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}, {18, 19}, {20, 21}},
	},
	// 27: size 150, depth 15
	{
		{{0, 9}, {1, 6}, {2, 4}, {3, 7}, {5, 8}, {11, 24}, {12, 23}, {13, 26}, {14, 25}, {15, 19}, {16, 17}, {18, 22}, {20, 21}},
		{{0, 1}, {3, 5}, {4, 10}, {6, 9}, {7, 8}, {11, 16}, {12, 18}, {13, 20}, {14, 15}, {17, 24}, {19, 25}, {21, 26}, {22, 23}},
		{{1, 3}, {2, 5}, {4, 7}, {8, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 19}, {18, 20}, {21, 22}, {23, 24}, {25, 26}},
		{{0, 4}, {1, 2}, {3, 7}, {5, 9}, {6, 8}, {11, 13}, {12, 14}, {15, 21}, {16, 22}, {17, 18}, {19, 20}, {23, 25}, {24, 26}},
		{{0, 1}, {2, 6}, {4, 5}, {7, 8}, {9, 10}, {12, 13}, {14, 23}, {15, 17}, {16, 18}, {19, 21}, {20, 22}, {24, 25}},
		{{0, 11}, {2, 4}, {3, 6}, {5, 7}, {8, 9}, {12, 15}, {13, 17}, {16, 19}, {18, 21}, {20, 24}, {22, 25}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {13, 15}, {14, 17}, {20, 23}, {22, 24}},
		{{1, 12}, {2, 3}, {4, 5}, {6, 7}, {14, 16}, {17, 19}, {18, 20}, {21, 23}},
		{{2, 13}, {14, 15}, {16, 17}, {18, 19}, {20, 21}, {22, 23}},
		{{3, 14}, {4, 15}, {5, 16}, {10, 21}, {17, 18}, {19, 20}},
		{{6, 17}, {7, 18}, {8, 19}, {9, 20}, {10, 13}, {14, 22}, {15, 23}, {16, 24}},
		{{6, 10}, {7, 14}, {8, 11}, {9, 12}, {17, 25}, {18, 26}, {19, 23}, {20, 24}},
		{{4, 8}, {5, 9}, {11, 15}, {12, 16}, {13, 17}, {18, 22}, {21, 25}, {24, 26}},
		{{2, 4}, {3, 5}, {6, 8}, {7, 9}, {10, 11}, {12, 14}, {13, 15}, {16, 18}, {17, 19}, {20, 22}, {21, 23}, {25, 26}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}},
	},
	// 28: size 155, depth 15
	{
		{{0, 9}, {1, 20}, {2, 21}, {3, 22}, {4, 19}, {5, 24}, {6, 25}, {7, 26}, {8, 23}, {10, 15}, {11, 13}, {12, 17}, {14, 16}, {18, 27}},
		{{0, 18}, {1, 7}, {2, 6}, {3, 5}, {4, 8}, {9, 27}, {10, 12}, {11, 14}, {13, 16}, {15, 17}, {19, 23}, {20, 26}, {21, 25}, {22, 24}},
		{{1, 2}, {3, 4}, {5, 19}, {6, 20}, {7, 21}, {8, 22}, {9, 18}, {10, 11}, {12, 14}, {13, 15}, {16, 17}, {23, 24}, {25, 26}},
		{{0, 3}, {1, 10}, {5, 8}, {6, 7}, {11, 13}, {14, 16}, {17, 26}, {19, 22}, {20, 21}, {24, 27}},
		{{0, 1}, {2, 7}, {3, 10}, {4, 8}, {12, 13}, {14, 15}, {17, 24}, {19, 23}, {20, 25}, {26, 27}},
		{{1, 3}, {2, 6}, {4, 5}, {7, 19}, {8, 20}, {11, 12}, {13, 14}, {15, 16}, {21, 25}, {22, 23}, {24, 26}},
		{{2, 4}, {5, 12}, {7, 8}, {9, 11}, {10, 14}, {13, 17}, {15, 22}, {16, 18}, {19, 20}, {23, 25}},
		{{2, 9}, {4, 11}, {5, 6}, {7, 13}, {8, 10}, {14, 20}, {16, 23}, {17, 19}, {18, 25}, {21, 22}},
		{{1, 2}, {3, 16}, {4, 9}, {6, 12}, {10, 14}, {11, 24}, {13, 17}, {15, 21}, {18, 23}, {25, 26}},
		{{2, 8}, {3, 5}, {4, 7}, {6, 16}, {9, 15}, {11, 21}, {12, 18}, {19, 25}, {20, 23}, {22, 24}},
		{{2, 3}, {5, 8}, {7, 9}, {11, 15}, {12, 16}, {18, 20}, {19, 22}, {24, 25}},
		{{6, 8}, {10, 12}, {11, 13}, {14, 16}, {15, 17}, {19, 21}},
		{{5, 6}, {8, 10}, {9, 11}, {12, 13}, {14, 15}, {16, 18}, {17, 19}, {21, 22}},
		{{4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 14}, {13, 15}, {16, 17}, {18, 19}, {20, 21}, {22, 23}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}},
	},
	// 29: size 165, depth 15
	{
		{{0, 12}, {1, 10}, {2, 9}, {3, 7}, {5, 11}, {6, 8}, {13, 26}, {14, 25}, {15, 28}, {16, 27}, {17, 21}, {18, 19}, {20, 24}, {22, 23}},
		{{1, 6}, {2, 3}, {4, 11}, {7, 9}, {8, 10}, {13, 18}, {14, 20}, {15, 22}, {16, 17}, {19, 26}, {21, 27}, {23, 28}, {24, 25}},
		{{0, 4}, {1, 2}, {3, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 21}, {20, 22}, {23, 24}, {25, 26}, {27, 28}},
		{{4, 6}, {5, 9}, {8, 11}, {10, 12}, {13, 15}, {14, 16}, {17, 23}, {18, 24}, {19, 20}, {21, 22}, {25, 27}, {26, 28}},
		{{0, 5}, {3, 8}, {4, 7}, {6, 11}, {9, 10}, {14, 15}, {16, 25}, {17, 19}, {18, 20}, {21, 23}, {22, 24}, {26, 27}},
		{{0, 1}, {2, 5}, {6, 9}, {7, 8}, {10, 11}, {14, 17}, {15, 19}, {18, 21}, {20, 23}, {22, 26}, {24, 27}},
		{{0, 13}, {1, 3}, {2, 4}, {5, 6}, {9, 10}, {15, 17}, {16, 19}, {22, 25}, {24, 26}},
		{{1, 2}, {3, 4}, {5, 7}, {6, 8}, {16, 18}, {19, 21}, {20, 22}, {23, 25}},
		{{1, 14}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {16, 17}, {18, 19}, {20, 21}, {22, 23}, {24, 25}},
		{{2, 15}, {3, 4}, {5, 6}, {10, 23}, {11, 24}, {12, 25}, {19, 20}, {21, 22}},
		{{3, 16}, {4, 17}, {5, 18}, {6, 19}, {7, 20}, {8, 21}, {9, 22}, {10, 15}},
		{{6, 10}, {8, 13}, {9, 14}, {11, 16}, {12, 17}, {18, 26}, {19, 27}, {20, 28}},
		{{4, 8}, {5, 9}, {7, 11}, {12, 13}, {14, 18}, {15, 19}, {16, 20}, {17, 21}, {22, 26}, {23, 27}, {24, 28}},
		{{2, 4}, {3, 5}, {6, 8}, {7, 9}, {10, 12}, {11, 14}, {13, 15}, {16, 18}, {17, 19}, {20, 22}, {21, 23}, {24, 26}, {25, 27}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}, {25, 26}, {27, 28}},
	},
	// 30: size 172, depth 15
	{
		{{1, 2}, {3, 10}, {4, 14}, {5, 8}, {6, 13}, {7, 12}, {9, 11}, {16, 17}, {18, 25}, {19, 29}, {20, 23}, {21, 28}, {22, 27}, {24, 26}},
		{{0, 14}, {1, 5}, {2, 8}, {3, 7}, {6, 9}, {10, 12}, {11, 13}, {15, 29}, {16, 20}, {17, 23}, {18, 22}, {21, 24}, {25, 27}, {26, 28}},
		{{0, 7}, {1, 6}, {2, 9}, {4, 10}, {5, 11}, {8, 13}, {12, 14}, {15, 22}, {16, 21}, {17, 24}, {19, 25}, {20, 26}, {23, 28}, {27, 29}},
		{{0, 6}, {2, 4}, {3, 5}, {7, 11}, {8, 10}, {9, 12}, {13, 14}, {15, 21}, {17, 19}, {18, 20}, {22, 26}, {23, 25}, {24, 27}, {28, 29}},
		{{0, 3}, {1, 2}, {4, 7}, {5, 9}, {6, 8}, {10, 11}, {12, 13}, {14, 29}, {15, 18}, {16, 17}, {19, 22}, {20, 24}, {21, 23}, {25, 26}, {27, 28}},
		{{0, 1}, {2, 3}, {4, 6}, {7, 9}, {10, 12}, {11, 13}, {15, 16}, {17, 18}, {19, 21}, {22, 24}, {25, 27}, {26, 28}},
		{{0, 15}, {1, 2}, {3, 5}, {8, 10}, {11, 12}, {13, 28}, {16, 17}, {18, 20}, {23, 25}, {26, 27}},
		{{1, 16}, {3, 4}, {5, 6}, {7, 8}, {9, 10}, {12, 27}, {18, 19}, {20, 21}, {22, 23}, {24, 25}},
		{{2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {17, 18}, {19, 20}, {21, 22}, {23, 24}, {25, 26}},
		{{2, 17}, {3, 18}, {4, 19}, {5, 6}, {7, 8}, {9, 24}, {10, 25}, {11, 26}, {20, 21}, {22, 23}},
		{{5, 20}, {6, 21}, {7, 22}, {8, 23}, {9, 16}, {10, 17}, {11, 18}, {12, 19}},
		{{5, 9}, {6, 10}, {7, 11}, {8, 15}, {13, 20}, {14, 21}, {18, 22}, {19, 23}},
		{{3, 5}, {4, 8}, {7, 9}, {12, 15}, {13, 16}, {14, 17}, {20, 24}, {21, 25}},
		{{2, 4}, {6, 8}, {10, 12}, {11, 13}, {14, 15}, {16, 18}, {17, 19}, {20, 22}, {21, 23}, {24, 26}, {25, 27}},
		{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}, {25, 26}, {27, 28}},
	},
	// 31: size 180, depth 14
	{
		{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}, {18, 19}, {20, 21}, {22, 23}, {24, 25}, {26, 27}, {28, 29}},
		{{0, 2}, {1, 3}, {4, 6}, {5, 7}, {8, 10}, {9, 11}, {12, 14}, {13, 15}, {16, 18}, {17, 19}, {20, 22}, {21, 23}, {24, 26}, {25, 27}, {28, 30}},
		{{0, 4}, {1, 5}, {2, 6}, {3, 7}, {8, 12}, {9, 13}, {10, 14}, {11, 15}, {16, 20}, {17, 21}, {18, 22}, {19, 23}, {24, 28}, {25, 29}, {26, 30}},
		{{0, 8}, {1, 9}, {2, 10}, {3, 11}, {4, 12}, {5, 13}, {6, 14}, {7, 15}, {16, 24}, {17, 25}, {18, 26}, {19, 27}, {20, 28}, {21, 29}, {22, 30}},
		{{0, 16}, {1, 8}, {2, 4}, {3, 12}, {5, 10}, {6, 9}, {7, 14}, {11, 13}, {17, 24}, {18, 20}, {19, 28}, {21, 26}, {22, 25}, {23, 30}, {27, 29}},
		{{1, 2}, {3, 5}, {4, 8}, {6, 22}, {7, 11}, {9, 25}, {10, 12}, {13, 14}, {17, 18}, {19, 21}, {20, 24}, {23, 27}, {26, 28}, {29, 30}},
		{{1, 17}, {2, 18}, {3, 19}, {4, 20}, {5, 10}, {7, 23}, {8, 24}, {11, 27}, {12, 28}, {13, 29}, {14, 30}, {21, 26}},
		{{3, 17}, {4, 16}, {5, 21}, {6, 18}, {7, 9}, {8, 20}, {10, 26}, {11, 23}, {13, 25}, {14, 28}, {15, 27}, {22, 24}},
		{{1, 4}, {3, 8}, {5, 16}, {7, 17}, {9, 21}, {10, 22}, {11, 19}, {12, 20}, {14, 24}, {15, 26}, {23, 28}, {27, 30}},
		{{2, 5}, {7, 8}, {9, 18}, {11, 17}, {12, 16}, {13, 22}, {14, 20}, {15, 19}, {23, 24}, {26, 29}},
		{{2, 4}, {6, 12}, {9, 16}, {10, 11}, {13, 17}, {14, 18}, {15, 22}, {19, 25}, {20, 21}, {27, 29}},
		{{5, 6}, {8, 12}, {9, 10}, {11, 13}, {14, 16}, {15, 17}, {18, 20}, {19, 23}, {21, 22}, {25, 26}},
		{{3, 5}, {6, 7}, {8, 9}, {10, 12}, {11, 14}, {13, 16}, {15, 18}, {17, 20}, {19, 21}, {22, 23}, {24, 25}, {26, 28}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}, {25, 26}, {27, 28}},
	},
	// 32: size 185, depth 14
	{
		{{0, 1}, {2, 3}, {4, 5}, {6, 7}, {8, 9}, {10, 11}, {12, 13}, {14, 15}, {16, 17}, {18, 19}, {20, 21}, {22, 23}, {24, 25}, {26, 27}, {28, 29}, {30, 31}},
		{{0, 2}, {1, 3}, {4, 6}, {5, 7}, {8, 10}, {9, 11}, {12, 14}, {13, 15}, {16, 18}, {17, 19}, {20, 22}, {21, 23}, {24, 26}, {25, 27}, {28, 30}, {29, 31}},
		{{0, 4}, {1, 5}, {2, 6}, {3, 7}, {8, 12}, {9, 13}, {10, 14}, {11, 15}, {16, 20}, {17, 21}, {18, 22}, {19, 23}, {24, 28}, {25, 29}, {26, 30}, {27, 31}},
		{{0, 8}, {1, 9}, {2, 10}, {3, 11}, {4, 12}, {5, 13}, {6, 14}, {7, 15}, {16, 24}, {17, 25}, {18, 26}, {19, 27}, {20, 28}, {21, 29}, {22, 30}, {23, 31}},
		{{0, 16}, {1, 8}, {2, 4}, {3, 12}, {5, 10}, {6, 9}, {7, 14}, {11, 13}, {15, 31}, {17, 24}, {18, 20}, {19, 28}, {21, 26}, {22, 25}, {23, 30}, {27, 29}},
		{{1, 2}, {3, 5}, {4, 8}, {6, 22}, {7, 11}, {9, 25}, {10, 12}, {13, 14}, {17, 18}, {19, 21}, {20, 24}, {23, 27}, {26, 28}, {29, 30}},
		{{1, 17}, {2, 18}, {3, 19}, {4, 20}, {5, 10}, {7, 23}, {8, 24}, {11, 27}, {12, 28}, {13, 29}, {14, 30}, {21, 26}},
		{{3, 17}, {4, 16}, {5, 21}, {6, 18}, {7, 9}, {8, 20}, {10, 26}, {11, 23}, {13, 25}, {14, 28}, {15, 27}, {22, 24}},
		{{1, 4}, {3, 8}, {5, 16}, {7, 17}, {9, 21}, {10, 22}, {11, 19}, {12, 20}, {14, 24}, {15, 26}, {23, 28}, {27, 30}},
		{{2, 5}, {7, 8}, {9, 18}, {11, 17}, {12, 16}, {13, 22}, {14, 20}, {15, 19}, {23, 24}, {26, 29}},
		{{2, 4}, {6, 12}, {9, 16}, {10, 11}, {13, 17}, {14, 18}, {15, 22}, {19, 25}, {20, 21}, {27, 29}},
		{{5, 6}, {8, 12}, {9, 10}, {11, 13}, {14, 16}, {15, 17}, {18, 20}, {19, 23}, {21, 22}, {25, 26}},
		{{3, 5}, {6, 7}, {8, 9}, {10, 12}, {11, 14}, {13, 16}, {15, 18}, {17, 20}, {19, 21}, {22, 23}, {24, 25}, {26, 28}},
		{{3, 4}, {5, 6}, {7, 8}, {9, 10}, {11, 12}, {13, 14}, {15, 16}, {17, 18}, {19, 20}, {21, 22}, {23, 24}, {25, 26}, {27, 28}},
	},
}
