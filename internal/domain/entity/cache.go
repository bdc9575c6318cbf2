package entity

import (
	"encoding/json"
	"time"
)

// CacheEntry is one stored API response.
type CacheEntry struct {
	Key       string
	Timestamp time.Time
	Data      json.RawMessage
}

// Age returns how long ago the entry was written.
func (e CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// Expired reports whether the entry is at least ttl old.
func (e CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return e.Age(now) >= ttl
}

// CacheStats describes the response cache for `onramp cache stats`.
type CacheStats struct {
	Entries int       `json:"entries"`
	Bytes   int       `json:"bytes"`
	Oldest  time.Time `json:"oldest,omitzero"`
	Newest  time.Time `json:"newest,omitzero"`
	Expired int       `json:"expired"`
}
