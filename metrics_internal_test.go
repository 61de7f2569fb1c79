package sortnet

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCacheMetrics reads the collectors behind a cache directly.
func TestCacheMetrics(t *testing.T) {
	c := NewCache(WithRegisterer(prometheus.NewRegistry()))
	require.NotNil(t, c.metrics)

	c.MustGet(8, BatcherOddEvenMerge)
	c.MustGet(8, BatcherOddEvenMerge)
	c.MustGet(8, BatcherOddEvenMerge)
	_, err := c.Get(7, BatcherOddEvenMerge)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.misses))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.errors))
	assert.Equal(t, 1, testutil.CollectAndCount(c.metrics.comparators))
}

// TestCacheKey renders the singleflight key.
func TestCacheKey(t *testing.T) {
	assert.Equal(t, "16/bitonic", cacheKey{n: 16, s: BitonicMerge}.String())
}
