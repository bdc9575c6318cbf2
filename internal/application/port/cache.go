package port

import (
	"encoding/json"

	"github.com/bnema/onramp/internal/domain/entity"
)

// Cache is a generic bounded in-memory cache. Implementations must be thread-safe.
type Cache[K comparable, V any] interface {
	// Get retrieves a value by key and marks it as recently used.
	Get(key K) (V, bool)

	// Set stores a value, possibly evicting the least recently used entry.
	Set(key K, value V)

	// Remove deletes a key from the cache.
	Remove(key K)

	// Values returns the cached values, most recently used first.
	Values() []V

	// Len returns the number of items currently in the cache.
	Len() int
}

// ResponseCache is the read side of the persisted API response cache.
type ResponseCache interface {
	// Get returns the cached body if present and fresh, or regardless of age when allowExpired.
	Get(key string, allowExpired bool) (json.RawMessage, bool)

	// Lookup returns the raw entry and whether it is still fresh.
	Lookup(key string) (entry entity.CacheEntry, fresh bool, ok bool)
}
