package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/onramp/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/onramp/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "onramp.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func TestSlotRepository_GetMissing(t *testing.T) {
	repo := sqlite.NewSlotRepository(openTestDB(t))

	value, found, err := repo.Get(testCtx(), "apiCache")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestSlotRepository_PutReplacesValue(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSlotRepository(openTestDB(t))

	require.NoError(t, repo.Put(ctx, "theme", []byte("dark")))
	require.NoError(t, repo.Put(ctx, "theme", []byte("light")))

	value, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", string(value))
}

func TestSlotRepository_Delete(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSlotRepository(openTestDB(t))

	require.NoError(t, repo.Put(ctx, "theme", []byte("dark")))
	require.NoError(t, repo.Delete(ctx, "theme"))
	require.NoError(t, repo.Delete(ctx, "never-written"))

	_, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSlotRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "onramp.sqlite")

	db, err := sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewSlotRepository(db).Put(ctx, "apiCache", []byte(`{}`)))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, path)
	require.NoError(t, err)
	defer func() { _ = sqlite.Close(db) }()

	value, found, err := sqlite.NewSlotRepository(db).Get(ctx, "apiCache")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{}`, string(value))

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestNewConnection_EmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(testCtx(), "")
	require.Error(t, err)
}
