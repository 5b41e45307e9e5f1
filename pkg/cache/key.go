package cache

// Key represents a unique identifier for a cached GET response.
//
// Key derivation is deliberately a plain concatenation of the base address
// and the request path (query string included, in the order the caller
// built it). There is no query-parameter sorting and no other
// normalization: two requests share an entry only when their paths are
// byte-identical. This trades deduplication robustness for simplicity;
// the typed helpers in pkg/profile always build query strings in a fixed
// order so repeated calls map to the same key.
type Key struct {
	// Base is the resource endpoint base address (e.g. "http://localhost:8000")
	Base string

	// Path is the request path including any query string
	// (e.g. "/coupons/?business_id=42&active_only=true")
	Path string
}

// String derives the cache key string.
//
// Example:
//
//	http://localhost:8000/business/directory-view
func (k Key) String() string {
	return k.Base + k.Path
}
