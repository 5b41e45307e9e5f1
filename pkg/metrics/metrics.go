// Package metrics provides the centralized Prometheus metrics registry for
// the profile client. All metrics are defined in their respective packages
// (client, cache) to maintain modularity and avoid circular dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the profile client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - profile_cache_hits_total (Counter): Store reads served from cache
//   - profile_cache_misses_total (Counter): Store reads that missed
//   - profile_cache_clears_total (Counter): Full-store invalidations after mutations
//   - profile_cache_entries (Gauge): Current number of cached responses
//
// Request Metrics (pkg/client):
//   - profile_requests_total{kind, method, status} (Counter): Backend requests by resource kind, method and HTTP status
//   - profile_request_duration_seconds{kind} (Histogram): Backend request duration by resource kind
//   - profile_errors_total{kind} (Counter): Backend errors by resource kind
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(profile_cache_hits_total[5m])) /
//   (sum(rate(profile_cache_hits_total[5m])) + sum(rate(profile_cache_misses_total[5m])))
//
//   # Invalidation Churn (full clears per minute)
//   rate(profile_cache_clears_total[1m]) * 60
//
//   # Request Error Rate
//   rate(profile_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(profile_request_duration_seconds_bucket[5m]))
