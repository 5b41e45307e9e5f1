// Package profile exposes typed operations over the caching client for
// every profile backend resource: businesses, services, coupons, media,
// operational info, AI metadata, visibility audits and JSON-LD feeds.
//
// Reads go through the cache-aside client (pkg/client), so repeated reads
// of the same path are served instantly from the shared store. Every
// mutation clears the store. Payloads for create and update operations are
// validated locally before any network call.
//
// List operations build their query strings in a fixed parameter order so
// that repeated calls always map to the same cache key (the key derivation
// performs no normalization).
package profile
