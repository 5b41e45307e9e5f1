// Package cache provides the in-memory response cache shared by every
// dashboard view.
//
// The store is a process-wide cache-aside layer: callers (the request client
// in pkg/client) populate it after successful GETs and clear it after any
// mutation. Entries carry no TTL and no version - presence alone means
// "valid until the next mutation clears the store". The cache lives only
// for the lifetime of the process and rebuilds from scratch each session.
//
// # Basic Usage
//
//	store := cache.NewStore()
//
//	key := cache.Key{
//		Base: "http://localhost:8000",
//		Path: "/business/directory-view",
//	}
//
//	if body, ok := store.Peek(key); ok {
//		// instant path - render the cached body
//	}
//
//	// after a successful fetch
//	store.Put(key, body)
//
//	// after any successful mutation
//	store.Clear()
//
// # Invalidation
//
// There is deliberately no per-entry invalidation. The backend resources
// feed into aggregate views (the public directory bundles media, services,
// coupons and operational info per business), so a mutation to any resource
// may affect cached reads of other resources. Clearing everything is the
// only invalidation that never leaves a stale aggregate behind.
//
// # Metrics
//
// The store exports Prometheus metrics:
//
//   - profile_cache_hits_total - Peek calls that found an entry
//   - profile_cache_misses_total - Peek calls that found nothing
//   - profile_cache_clears_total - full-store invalidations
//   - profile_cache_entries - current number of cached responses
package cache
