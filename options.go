package sortnet

import "github.com/prometheus/client_golang/prometheus"

// CacheOptions configures a Cache.
//
// Registerer – destination of the cache metrics; nil disables them.
// PreloadMax – when > 0, NewCache builds every available (n, scheme) with
//
//	n ≤ PreloadMax for the schemes in Preload.
type CacheOptions struct {
	Registerer prometheus.Registerer
	PreloadMax int
	Preload    []Scheme
}

// CacheOption represents a functional option for configuring a Cache.
type CacheOption func(*CacheOptions)

// WithRegisterer registers the cache metrics on reg. Two caches cannot share
// a registerer without wrapping it (prometheus.WrapRegistererWith), since
// metric names would collide.
func WithRegisterer(reg prometheus.Registerer) CacheOption {
	return func(o *CacheOptions) {
		o.Registerer = reg
	}
}

// WithPreload builds the networks for 1..maxN of the given schemes (all
// schemes when none are named) while the cache is constructed.
// maxN must be ≥ 1.
func WithPreload(maxN int, schemes ...Scheme) CacheOption {
	if maxN < 1 {
		panic(ErrInvalidSize.Error())
	}
	for _, s := range schemes {
		if !s.Valid() {
			panic(ErrUnknownScheme.Error())
		}
	}

	return func(o *CacheOptions) {
		o.PreloadMax = maxN
		o.Preload = schemes
	}
}

// DefaultCacheOptions returns the zero configuration: no metrics, no preload.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{}
}
