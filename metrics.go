package sortnet

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// cacheMetrics are the prometheus collectors of one Cache.
type cacheMetrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	errors      prometheus.Counter
	comparators prometheus.Histogram
}

func newCacheMetrics(reg prometheus.Registerer) *cacheMetrics {
	f := promauto.With(reg)

	return &cacheMetrics{
		hits: f.NewCounter(prometheus.CounterOpts{
			Name: "sortnet_cache_hits_total",
			Help: "Number of network lookups served from the cache",
		}),
		misses: f.NewCounter(prometheus.CounterOpts{
			Name: "sortnet_cache_misses_total",
			Help: "Number of network lookups that generated a network",
		}),
		errors: f.NewCounter(prometheus.CounterOpts{
			Name: "sortnet_generate_errors_total",
			Help: "Number of failed network lookups",
		}),
		comparators: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "sortnet_network_comparators",
			Help:    "Comparator count of generated networks",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}
