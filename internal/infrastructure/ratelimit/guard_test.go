package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func TestGuard_NeverHit(t *testing.T) {
	g := NewGuard()

	assert.False(t, g.IsCoolingDown())
	assert.Zero(t, g.Remaining())
}

func TestGuard_CooldownWindow(t *testing.T) {
	clock := &testClock{t: time.Unix(1_700_000_000, 0)}
	g := NewGuard(WithCooldown(time.Minute), WithClock(clock.now))

	g.RecordHit()
	assert.True(t, g.IsCoolingDown())
	assert.Equal(t, time.Minute, g.Remaining())

	clock.t = clock.t.Add(59 * time.Second)
	assert.True(t, g.IsCoolingDown())
	assert.Equal(t, time.Second, g.Remaining())

	clock.t = clock.t.Add(time.Second)
	assert.False(t, g.IsCoolingDown(), "cooldown ends once the full window has elapsed")
	assert.False(t, g.hit, "expired flag is cleared lazily")
	assert.Zero(t, g.Remaining())
}

func TestGuard_RecordHitRestartsWindow(t *testing.T) {
	clock := &testClock{t: time.Unix(1_700_000_000, 0)}
	g := NewGuard(WithCooldown(time.Minute), WithClock(clock.now))

	g.RecordHit()
	clock.t = clock.t.Add(50 * time.Second)
	g.RecordHit()
	clock.t = clock.t.Add(50 * time.Second)

	assert.True(t, g.IsCoolingDown())
}

func TestGuard_DefaultCooldown(t *testing.T) {
	g := NewGuard(WithCooldown(0))
	assert.Equal(t, DefaultCooldown, g.cooldown)
}

func TestGuard_ConcurrentUse(t *testing.T) {
	g := NewGuard()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			g.RecordHit()
		}()
		go func() {
			defer wg.Done()
			_ = g.IsCoolingDown()
			_ = g.Remaining()
		}()
	}
	wg.Wait()

	assert.True(t, g.IsCoolingDown())
}
