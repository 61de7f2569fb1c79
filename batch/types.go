// SPDX-License-Identifier: MIT
// Package: sortnet/batch
//
// types.go — sentinels and functional options.

package batch

import (
	"errors"
	"runtime"
)

// ErrNilNetwork indicates a nil network argument.
var ErrNilNetwork = errors.New("batch: network is nil")

// ErrShortArray indicates an array (or column set) with fewer than N positions.
var ErrShortArray = errors.New("batch: array shorter than the network")

// ErrRagged indicates a flat slice that is not a multiple of N, or columns of
// unequal length.
var ErrRagged = errors.New("batch: ragged input")

// ErrBadWorkers indicates a worker count below one.
var ErrBadWorkers = errors.New("batch: workers must be ≥ 1")

// ErrBadChunkSize indicates a chunk size below one.
var ErrBadChunkSize = errors.New("batch: chunk size must be ≥ 1")

// DefaultChunkSize is the number of arrays (or lanes) per task.
const DefaultChunkSize = 64

const (
	methodApply     = "Apply"
	methodApplyFlat = "ApplyFlat"
	methodColumns   = "Columns"
)

// Options configures a batch run.
//
// Workers   – maximum concurrent tasks. Default runtime.GOMAXPROCS(0).
// ChunkSize – arrays or lanes per task. Default DefaultChunkSize.
type Options struct {
	Workers   int
	ChunkSize int
}

// Option represents a functional option for configuring a batch run.
type Option func(*Options)

// WithWorkers bounds the number of concurrent tasks. n must be ≥ 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithChunkSize sets the arrays (or lanes) handled per task. n must be ≥ 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic(ErrBadChunkSize.Error())
	}

	return func(o *Options) {
		o.ChunkSize = n
	}
}

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
