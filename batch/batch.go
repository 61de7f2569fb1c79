// SPDX-License-Identifier: MIT
// Package: sortnet/batch
//
// batch.go — chunked parallel execution over errgroup.
//
// Contract:
//   • Inputs are validated before any task starts; a validation error
//     leaves every array untouched.
//   • Distinct chunks never share an array, so tasks need no locking.
//
// Complexity: O(k·Size / Workers) wall time for k arrays.

package batch

import (
	"cmp"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortnet/network"
)

// Apply runs nw over every array with cas. Each len(arrays[i]) must be ≥ N;
// positions past N are left alone.
//
// Errors: ErrNilNetwork, ErrShortArray (naming the first offending index),
// ctx.Err() on cancellation.
func Apply[T any](ctx context.Context, arrays [][]T, cas network.CAS[T], nw *network.Network, opts ...Option) error {
	if nw == nil {
		return fmt.Errorf("%s: %w", methodApply, ErrNilNetwork)
	}
	n := nw.N()
	for i, a := range arrays {
		if len(a) < n {
			return fmt.Errorf("%s: array %d has %d < %d: %w", methodApply, i, len(a), n, ErrShortArray)
		}
	}

	return run(ctx, len(arrays), resolve(opts), func(lo, hi int) {
		for _, a := range arrays[lo:hi] {
			network.Apply(a, cas, nw)
		}
	})
}

// Sort is Apply with the ascending order of an ordered type.
func Sort[T cmp.Ordered](ctx context.Context, arrays [][]T, nw *network.Network, opts ...Option) error {
	return Apply(ctx, arrays, network.Ordered[T](), nw, opts...)
}

// ApplyFlat runs nw over data viewed as len(data)/N consecutive arrays.
//
// Errors: ErrNilNetwork, ErrRagged when len(data) is not a multiple of N,
// ctx.Err() on cancellation.
func ApplyFlat[T any](ctx context.Context, data []T, cas network.CAS[T], nw *network.Network, opts ...Option) error {
	if nw == nil {
		return fmt.Errorf("%s: %w", methodApplyFlat, ErrNilNetwork)
	}
	n := nw.N()
	if len(data)%n != 0 {
		return fmt.Errorf("%s: len=%d not a multiple of %d: %w", methodApplyFlat, len(data), n, ErrRagged)
	}

	return run(ctx, len(data)/n, resolve(opts), func(lo, hi int) {
		for k := lo; k < hi; k++ {
			network.Apply(data[k*n:(k+1)*n], cas, nw)
		}
	})
}

// Columns runs network.ApplyColumns over lane ranges of cols in parallel.
// cols must hold at least N columns of equal length; columns past N are left
// alone.
//
// Errors: ErrNilNetwork, ErrShortArray, ErrRagged, ctx.Err() on cancellation.
func Columns[T cmp.Ordered](ctx context.Context, cols [][]T, nw *network.Network, opts ...Option) error {
	if nw == nil {
		return fmt.Errorf("%s: %w", methodColumns, ErrNilNetwork)
	}
	n := nw.N()
	if len(cols) < n {
		return fmt.Errorf("%s: %d columns < %d: %w", methodColumns, len(cols), n, ErrShortArray)
	}
	lanes := len(cols[0])
	for p := 1; p < n; p++ {
		if len(cols[p]) != lanes {
			return fmt.Errorf("%s: column %d has %d lanes, want %d: %w", methodColumns, p, len(cols[p]), lanes, ErrRagged)
		}
	}

	return run(ctx, lanes, resolve(opts), func(lo, hi int) {
		view := make([][]T, n)
		for p := range view {
			view[p] = cols[p][lo:hi]
		}
		network.ApplyColumns(view, nw)
	})
}

// run splits [0, total) into chunks and calls fn on each from a bounded
// errgroup.
func run(ctx context.Context, total int, o Options, fn func(lo, hi int)) error {
	if total == 0 {
		return ctx.Err()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for lo := 0; lo < total; lo += o.ChunkSize {
		if err := gctx.Err(); err != nil {
			break
		}
		hi := min(lo+o.ChunkSize, total)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(lo, hi)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
