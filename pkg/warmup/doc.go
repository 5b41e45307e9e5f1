// Package warmup fills the response cache ahead of demand. A Warmer fans a
// list of targets out over a bounded worker pool and fetches each one
// through the caching client, so the views rendered right after startup
// hydrate instantly instead of racing their first network round trip.
package warmup
