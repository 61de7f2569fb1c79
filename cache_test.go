package sortnet_test

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sortnet"
	"github.com/katalvlaran/sortnet/network"
)

// CacheSuite groups tests for the memoizing cache.
type CacheSuite struct {
	suite.Suite
	cache *sortnet.Cache
}

func (s *CacheSuite) SetupTest() {
	s.cache = sortnet.NewCache()
}

// TestSameInstance: repeated lookups return the cached pointer.
func (s *CacheSuite) TestSameInstance() {
	a, err := s.cache.Get(12, sortnet.BoseNelson)
	require.NoError(s.T(), err)
	b, err := s.cache.Get(12, sortnet.BoseNelson)
	require.NoError(s.T(), err)

	s.Same(a, b)
	s.Equal(sortnet.CacheStats{Entries: 1, Hits: 1, Misses: 1}, s.cache.Stats())
}

// TestErrorsNotCached: failed lookups are counted, never stored.
func (s *CacheSuite) TestErrorsNotCached() {
	_, err := s.cache.Get(6, sortnet.BatcherOddEvenMerge)
	require.ErrorIs(s.T(), err, sortnet.ErrUnavailable)
	_, err = s.cache.Get(0, sortnet.Insertion)
	require.ErrorIs(s.T(), err, sortnet.ErrInvalidSize)

	st := s.cache.Stats()
	s.Zero(st.Entries)
	s.Equal(uint64(2), st.Errors)
	s.Panics(func() { s.cache.MustGet(6, sortnet.BatcherOddEvenMerge) })
}

// TestConcurrentFirstRequests: parallel callers all see one network.
func (s *CacheSuite) TestConcurrentFirstRequests() {
	const callers = 32
	var (
		wg  sync.WaitGroup
		out = make([]*network.Network, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = s.cache.MustGet(32, sortnet.BatcherOddEvenMerge)
		}(i)
	}
	wg.Wait()

	for _, nw := range out {
		s.Same(out[0], nw)
	}
	st := s.cache.Stats()
	s.Equal(1, st.Entries)
	s.Equal(uint64(1), st.Misses)
}

// TestPreload: WithPreload fills every available pair up front.
func (s *CacheSuite) TestPreload() {
	c := sortnet.NewCache(sortnet.WithPreload(8, sortnet.BatcherOddEvenMerge, sortnet.Insertion))
	// Batcher: 1, 2, 4, 8; insertion: 1..8.
	s.Equal(12, c.Len())

	seen := 0
	c.Range(func(n int, sc sortnet.Scheme, nw *network.Network) bool {
		s.Equal(n, nw.N())
		s.True(sortnet.Available(n, sc))
		seen++
		return true
	})
	s.Equal(12, seen)

	all := sortnet.NewCache(sortnet.WithPreload(2))
	s.Equal(12, all.Len())
}

// TestOptionPanics: invalid option arguments fail fast.
func (s *CacheSuite) TestOptionPanics() {
	s.Panics(func() { sortnet.WithPreload(0) })
	s.Panics(func() { sortnet.WithPreload(4, sortnet.Scheme(77)) })
}

// TestRegisterer: metrics register on the supplied registry.
func (s *CacheSuite) TestRegisterer() {
	reg := prometheus.NewPedanticRegistry()
	c := sortnet.NewCache(sortnet.WithRegisterer(reg))
	c.MustGet(4, sortnet.Bubble)
	c.MustGet(4, sortnet.Bubble)

	families, err := reg.Gather()
	require.NoError(s.T(), err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	s.ElementsMatch([]string{
		"sortnet_cache_hits_total",
		"sortnet_cache_misses_total",
		"sortnet_generate_errors_total",
		"sortnet_network_comparators",
	}, names)
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}
