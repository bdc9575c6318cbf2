// Package ratelimit tracks the upstream API's rate-limit cooldown.
package ratelimit

import (
	"sync"
	"time"
)

// DefaultCooldown is how long the guard stays active after a 429.
const DefaultCooldown = 60 * time.Second

// Guard remembers the last rate-limit response. The flag expires lazily on the
// next query; no timer runs.
type Guard struct {
	mu       sync.Mutex
	hit      bool
	lastHit  time.Time
	cooldown time.Duration
	now      func() time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithCooldown sets the cooldown window.
func WithCooldown(d time.Duration) Option {
	return func(g *Guard) {
		if d > 0 {
			g.cooldown = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) {
		g.now = now
	}
}

// NewGuard returns a guard that has never been hit.
func NewGuard(opts ...Option) *Guard {
	g := &Guard{
		cooldown: DefaultCooldown,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsCoolingDown reports whether a rate-limit hit happened within the cooldown.
func (g *Guard) IsCoolingDown() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.activeLocked()
}

// RecordHit marks a rate-limit response at the current time.
func (g *Guard) RecordHit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hit = true
	g.lastHit = g.now()
}

// Remaining returns the time left in the cooldown, or zero when inactive.
func (g *Guard) Remaining() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.activeLocked() {
		return 0
	}
	return g.cooldown - g.now().Sub(g.lastHit)
}

func (g *Guard) activeLocked() bool {
	if !g.hit {
		return false
	}
	if g.now().Sub(g.lastHit) < g.cooldown {
		return true
	}
	g.hit = false
	return false
}
