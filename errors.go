// SPDX-License-Identifier: MIT
// Package: sortnet
//
// errors.go — sentinel errors and method tags of the root package.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • Generate wraps both the root sentinel and, when one exists, the
//     generate-package cause, so either can be matched.

package sortnet

import "errors"

// ErrInvalidSize indicates n ≤ 0.
var ErrInvalidSize = errors.New("sortnet: element count must be positive")

// ErrUnavailable indicates a scheme that has no network for the requested n.
var ErrUnavailable = errors.New("sortnet: scheme unavailable for this element count")

// ErrUnknownScheme indicates a Scheme value or name outside the known set.
var ErrUnknownScheme = errors.New("sortnet: unknown scheme")

const (
	methodGenerate      = "Generate"
	methodParseScheme   = "ParseScheme"
	methodMarshalScheme = "Scheme.MarshalText"
	methodNewSorter     = "NewSorter"
)
