// SPDX-License-Identifier: MIT
// Package: sortnet
//
// cache.go — memoized networks keyed by (n, scheme).
//
// Concurrency:
//   • Lookups of cached entries take no lock (sync.Map).
//   • Concurrent first requests for one key generate once (singleflight).
//   • Failed lookups are never cached; they are cheap to recompute since
//     Generate rejects them before building anything.

package sortnet

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/sortnet/network"
	"golang.org/x/sync/singleflight"
)

// cacheKey identifies one network.
type cacheKey struct {
	n int
	s Scheme
}

func (k cacheKey) String() string {
	return strconv.Itoa(k.n) + "/" + k.s.String()
}

// CacheStats is a snapshot of cache counters.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
	Errors  uint64
}

// Cache memoizes generated networks. The zero value is not usable; call
// NewCache. A Cache is safe for concurrent use.
type Cache struct {
	nets    sync.Map // cacheKey → *network.Network
	group   singleflight.Group
	entries atomic.Int64
	hits    atomic.Uint64
	misses  atomic.Uint64
	errs    atomic.Uint64
	metrics *cacheMetrics
}

// NewCache returns an empty cache configured by opts.
//
// Complexity: O(1) without preload; the cost of every preloaded Generate
// otherwise.
func NewCache(opts ...CacheOption) *Cache {
	o := DefaultCacheOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cache{}
	if o.Registerer != nil {
		c.metrics = newCacheMetrics(o.Registerer)
	}
	if o.PreloadMax > 0 {
		schemes := o.Preload
		if len(schemes) == 0 {
			schemes = Schemes()
		}
		for n := 1; n <= o.PreloadMax; n++ {
			for _, s := range schemes {
				if Available(n, s) {
					_, _ = c.Get(n, s)
				}
			}
		}
	}

	return c
}

// Get returns the network of scheme s for n elements, generating it on the
// first request. Errors are those of Generate.
func (c *Cache) Get(n int, s Scheme) (*network.Network, error) {
	key := cacheKey{n: n, s: s}
	if v, ok := c.nets.Load(key); ok {
		c.hit()
		return v.(*network.Network), nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Another flight may have stored it between Load and Do.
		if v, ok := c.nets.Load(key); ok {
			return v, nil
		}
		nw, err := Generate(n, s)
		if err != nil {
			return nil, err
		}
		c.miss(nw)
		c.nets.Store(key, nw)
		c.entries.Add(1)

		return nw, nil
	})
	if err != nil {
		c.fail()
		return nil, err
	}

	return v.(*network.Network), nil
}

// MustGet is Get that panics on error.
func (c *Cache) MustGet(n int, s Scheme) *network.Network {
	nw, err := c.Get(n, s)
	if err != nil {
		panic(err)
	}

	return nw
}

// Len returns the number of cached networks.
func (c *Cache) Len() int { return int(c.entries.Load()) }

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Errors:  c.errs.Load(),
	}
}

// Range calls fn for every cached network until fn returns false. The
// iteration order is unspecified.
func (c *Cache) Range(fn func(n int, s Scheme, nw *network.Network) bool) {
	c.nets.Range(func(k, v any) bool {
		key := k.(cacheKey)
		return fn(key.n, key.s, v.(*network.Network))
	})
}

func (c *Cache) hit() {
	c.hits.Add(1)
	if c.metrics != nil {
		c.metrics.hits.Inc()
	}
}

func (c *Cache) miss(nw *network.Network) {
	c.misses.Add(1)
	if c.metrics != nil {
		c.metrics.misses.Inc()
		c.metrics.comparators.Observe(float64(nw.Size()))
	}
}

func (c *Cache) fail() {
	c.errs.Add(1)
	if c.metrics != nil {
		c.metrics.errors.Inc()
	}
}

// defaultCache backs NewSorter and NewSorterFunc.
var defaultCache = NewCache()

// DefaultCache returns the process-wide cache used by the Sorter constructors.
func DefaultCache() *Cache { return defaultCache }
