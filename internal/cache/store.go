// Package cache holds the persisted API response cache.
//
// The whole store is serialized into a single slot as
// {"<key>": {"timestamp": <unix ms>, "data": <json>}}. It is read once at
// startup and rewritten after every Set. Reads never touch storage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/bnema/onramp/internal/domain/entity"
	"github.com/bnema/onramp/internal/domain/repository"
	"github.com/bnema/onramp/internal/logging"
)

// SlotName is the slot holding the serialized store.
const SlotName = "apiCache"

const (
	DefaultTTL                     = 15 * time.Minute
	DefaultEvictFraction           = 0.25
	DefaultAggressiveEvictFraction = 0.5
)

// ErrQuotaExceeded is returned by persist when the serialized store is larger than maxBytes.
var ErrQuotaExceeded = errors.New("cache quota exceeded")

type persistedEntry struct {
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// Store maps keys (request URLs) to timestamped response bodies.
type Store struct {
	mu      sync.Mutex
	slots   repository.SlotRepository
	entries map[string]entity.CacheEntry

	ttl                time.Duration
	maxBytes           int
	evictFraction      float64
	aggressiveFraction float64
	// evictions counts consecutive Sets that needed eviction.
	evictions int

	now func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTTL sets how long an entry counts as fresh.
func WithTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithMaxBytes caps the serialized size. Zero disables the cap.
func WithMaxBytes(n int) StoreOption {
	return func(s *Store) {
		s.maxBytes = n
	}
}

// WithEvictFractions sets the share of oldest entries dropped after a failed
// write, and the larger share used when the previous write also failed.
func WithEvictFractions(normal, aggressive float64) StoreOption {
	return func(s *Store) {
		if normal > 0 && normal <= 1 {
			s.evictFraction = normal
		}
		if aggressive > 0 && aggressive <= 1 {
			s.aggressiveFraction = aggressive
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore loads the store from its slot. A missing or unreadable slot yields
// an empty store.
func NewStore(ctx context.Context, slots repository.SlotRepository, opts ...StoreOption) *Store {
	s := &Store{
		slots:              slots,
		entries:            make(map[string]entity.CacheEntry),
		ttl:                DefaultTTL,
		evictFraction:      DefaultEvictFraction,
		aggressiveFraction: DefaultAggressiveEvictFraction,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	log := logging.FromContext(logging.WithComponent(ctx, "cache"))

	raw, found, err := s.slots.Get(ctx, SlotName)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read response cache, starting empty")
		return
	}
	if !found || len(raw) == 0 {
		return
	}

	var persisted map[string]persistedEntry
	if err := json.Unmarshal(raw, &persisted); err != nil {
		log.Warn().Err(err).Msg("response cache is corrupt, starting empty")
		return
	}
	for key, pe := range persisted {
		s.entries[key] = entity.CacheEntry{
			Key:       key,
			Timestamp: time.UnixMilli(pe.Timestamp),
			Data:      pe.Data,
		}
	}
	log.Debug().Int("entries", len(s.entries)).Msg("response cache loaded")
}

// Get returns the data for key if present and fresh. With allowExpired the
// age is ignored.
func (s *Store) Get(key string, allowExpired bool) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if !allowExpired && e.Expired(s.now(), s.ttl) {
		return nil, false
	}
	return e.Data, true
}

// Lookup returns the entry for key regardless of age, and whether it is fresh.
func (s *Store) Lookup(key string) (entity.CacheEntry, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return entity.CacheEntry{}, false, false
	}
	return e, !e.Expired(s.now(), s.ttl), true
}

// Set stores data under key and persists the store. Persistence failures are
// absorbed: the oldest entries are evicted and the write retried once, and if
// that fails too the store is emptied.
func (s *Store) Set(ctx context.Context, key string, data json.RawMessage) {
	log := logging.FromContext(logging.WithComponent(ctx, "cache"))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entity.CacheEntry{
		Key:       key,
		Timestamp: s.now(),
		Data:      append(json.RawMessage(nil), data...),
	}

	err := s.persistLocked(ctx)
	if err == nil {
		s.evictions = 0
		return
	}

	fraction := s.evictFraction
	if s.evictions > 0 {
		fraction = s.aggressiveFraction
	}
	s.evictions++
	removed := s.evictOldestLocked(fraction)
	log.Warn().Err(err).Int("evicted", removed).Float64("fraction", fraction).Msg("response cache write failed, evicted oldest entries")

	if err = s.persistLocked(ctx); err == nil {
		return
	}

	log.Warn().Err(err).Msg("response cache write failed after eviction, clearing cache")
	s.entries = make(map[string]entity.CacheEntry)
	if err := s.persistLocked(ctx); err != nil {
		log.Error().Err(err).Msg("failed to persist empty response cache")
	}
}

// evictOldestLocked drops ceil(len*fraction) entries, oldest first.
func (s *Store) evictOldestLocked(fraction float64) int {
	if len(s.entries) == 0 {
		return 0
	}
	n := max(int(math.Ceil(float64(len(s.entries))*fraction)), 1)

	ordered := make([]entity.CacheEntry, 0, len(s.entries))
	for _, e := range s.entries {
		ordered = append(ordered, e)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Timestamp.Equal(ordered[j].Timestamp) {
			return ordered[i].Key < ordered[j].Key
		}
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	if n > len(ordered) {
		n = len(ordered)
	}
	for _, e := range ordered[:n] {
		delete(s.entries, e.Key)
	}
	return n
}

func (s *Store) serializeLocked() ([]byte, error) {
	persisted := make(map[string]persistedEntry, len(s.entries))
	for key, e := range s.entries {
		persisted[key] = persistedEntry{Timestamp: e.Timestamp.UnixMilli(), Data: e.Data}
	}
	return json.Marshal(persisted)
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := s.serializeLocked()
	if err != nil {
		return fmt.Errorf("serialize response cache: %w", err)
	}
	if s.maxBytes > 0 && len(raw) > s.maxBytes {
		return fmt.Errorf("%d bytes over %d: %w", len(raw), s.maxBytes, ErrQuotaExceeded)
	}
	return s.slots.Put(ctx, SlotName, raw)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Stats summarizes the store.
func (s *Store) Stats() entity.CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := entity.CacheStats{Entries: len(s.entries)}
	if raw, err := s.serializeLocked(); err == nil {
		stats.Bytes = len(raw)
	}
	now := s.now()
	for _, e := range s.entries {
		if stats.Oldest.IsZero() || e.Timestamp.Before(stats.Oldest) {
			stats.Oldest = e.Timestamp
		}
		if e.Timestamp.After(stats.Newest) {
			stats.Newest = e.Timestamp
		}
		if e.Expired(now, s.ttl) {
			stats.Expired++
		}
	}
	return stats
}

// Clear empties the store and its slot.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]entity.CacheEntry)
	s.evictions = 0
	if err := s.slots.Delete(ctx, SlotName); err != nil {
		return fmt.Errorf("clear response cache: %w", err)
	}
	return nil
}
