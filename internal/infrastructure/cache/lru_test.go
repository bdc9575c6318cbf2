package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/entity"
)

var _ port.Cache[string, entity.RecentCoin] = (*LRU[string, entity.RecentCoin])(nil)

func TestLRU_EvictsLeastRecent(t *testing.T) {
	recent := NewLRU[string, int](2)

	recent.Set("bitcoin", 1)
	recent.Set("ethereum", 2)
	recent.Set("solana", 3)

	_, ok := recent.Get("bitcoin")
	assert.False(t, ok, "bitcoin should have been evicted")
	assert.Equal(t, 2, recent.Len())
}

func TestLRU_GetRefreshesRecency(t *testing.T) {
	recent := NewLRU[string, int](2)

	recent.Set("bitcoin", 1)
	recent.Set("ethereum", 2)
	recent.Get("bitcoin")
	recent.Set("solana", 3)

	_, ok := recent.Get("bitcoin")
	assert.True(t, ok)
	_, ok = recent.Get("ethereum")
	assert.False(t, ok)
}

func TestLRU_PeekKeepsRecency(t *testing.T) {
	recent := NewLRU[string, int](2)

	recent.Set("bitcoin", 1)
	recent.Set("ethereum", 2)
	v, ok := recent.Peek("bitcoin")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	recent.Set("solana", 3)
	_, ok = recent.Peek("bitcoin")
	assert.False(t, ok, "peek must not protect an entry from eviction")
}

func TestLRU_SetExistingMovesToFront(t *testing.T) {
	recent := NewLRU[string, int](3)

	recent.Set("a", 1)
	recent.Set("b", 2)
	recent.Set("a", 10)

	assert.Equal(t, []int{10, 2}, recent.Values())
	assert.Equal(t, 2, recent.Len())
}

func TestLRU_ValuesMostRecentFirst(t *testing.T) {
	recent := NewLRU[string, entity.RecentCoin](5)
	for _, id := range []string{"bitcoin", "ethereum", "solana"} {
		recent.Set(id, entity.RecentCoin{ID: id})
	}
	recent.Get("bitcoin")

	var ids []string
	for _, c := range recent.Values() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"bitcoin", "solana", "ethereum"}, ids)
}

func TestLRU_RemoveAndClear(t *testing.T) {
	recent := NewLRU[string, int](3)
	recent.Set("a", 1)
	recent.Set("b", 2)

	recent.Remove("a")
	recent.Remove("missing")
	assert.Equal(t, 1, recent.Len())

	recent.Clear()
	assert.Zero(t, recent.Len())
	assert.Empty(t, recent.Values())
}

func TestLRU_ZeroCapacityHoldsOne(t *testing.T) {
	recent := NewLRU[string, int](0)

	recent.Set("a", 1)
	recent.Set("b", 2)

	assert.Equal(t, []int{2}, recent.Values())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	recent := NewLRU[int, int](50)
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			recent.Set(i, i)
		}()
		go func() {
			defer wg.Done()
			recent.Get(i)
		}()
		go func() {
			defer wg.Done()
			_ = recent.Values()
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, recent.Len(), 50)
}
