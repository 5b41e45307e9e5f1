package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks Peek calls that found an entry
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	// CacheMisses tracks Peek calls that found nothing
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)

	// CacheClears tracks full-store invalidations after mutations
	CacheClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_cache_clears_total",
			Help: "Total number of full cache invalidations",
		},
	)

	// CacheEntries tracks the current number of cached responses
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "profile_cache_entries",
			Help: "Current number of cached responses",
		},
	)
)
