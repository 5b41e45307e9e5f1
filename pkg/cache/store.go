package cache

import (
	"sync"
)

// Store holds the process-wide mapping from request keys to the most
// recently observed successful response bodies.
//
// A Store is explicitly constructed and injected into the request client
// rather than living as a package-level global, so tests can run against
// isolated instances without cross-test pollution. One instance is shared
// by all dashboard views for the lifetime of the process.
//
// The store performs no I/O and cannot fail. There is no eviction policy
// beyond Clear; unbounded growth is accepted because the number of distinct
// resource paths visited in one session is small.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewStore creates an empty response cache.
func NewStore() *Store {
	return &Store{
		entries: make(map[string][]byte),
	}
}

// Peek returns the cached response body for key, or ok=false when nothing
// is cached. Peek is side-effect-free apart from hit/miss accounting and
// never fails. Callers must not modify the returned slice.
func (s *Store) Peek(key Key) ([]byte, bool) {
	s.mu.RLock()
	body, ok := s.entries[key.String()]
	s.mu.RUnlock()

	if ok {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
	return body, ok
}

// Put stores body at key, unconditionally overwriting any prior entry.
// Concurrent writers for the same key are last-write-wins; both bodies are
// assumed equivalent for a given key at a given moment.
func (s *Store) Put(key Key, body []byte) {
	s.mu.Lock()
	s.entries[key.String()] = body
	size := len(s.entries)
	s.mu.Unlock()

	CacheEntries.Set(float64(size))
}

// Has reports whether key is cached without touching hit/miss accounting.
func (s *Store) Has(key Key) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[key.String()]
	return ok
}

// Clear removes all entries unconditionally. There is no selective variant:
// any mutation anywhere in the system discards every cached read, including
// reads of unrelated resource types.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[string][]byte)
	s.mu.Unlock()

	CacheClears.Inc()
	CacheEntries.Set(0)
}

// Len returns the current number of cached responses.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
