package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized(), "LazyDB should not be initialized before DB() is called")
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	defer func() { _ = lazy.Close() }()

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_MigratesSlotsTable(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	defer func() { _ = lazy.Close() }()

	db, err := lazy.DB(ctx)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM slots").Scan(&count))
	assert.Zero(t, count)
}

func TestLazySlotRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	defer func() { _ = lazy.Close() }()

	repo := sqlite.NewLazySlotRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Put(ctx, "theme", []byte("light")))
	assert.True(t, lazy.IsInitialized())

	value, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", string(value))
}

type failingProvider struct{ err error }

func (p failingProvider) DB(context.Context) (*sql.DB, error) { return nil, p.err }
func (failingProvider) Close() error { return nil }
func (failingProvider) IsInitialized() bool { return false }

func TestLazySlotRepository_PropagatesInitError(t *testing.T) {
	boom := errors.New("disk full")
	repo := sqlite.NewLazySlotRepository(failingProvider{err: boom})

	_, _, err := repo.Get(testCtx(), "theme")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, repo.Put(testCtx(), "theme", nil), boom)
}
