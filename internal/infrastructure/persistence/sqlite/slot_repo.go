package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/onramp/internal/domain/repository"
	"github.com/bnema/onramp/internal/logging"
)

const (
	getSlotSQL = `SELECT value FROM slots WHERE name = ?`
	putSlotSQL = `INSERT INTO slots (name, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSlotSQL = `DELETE FROM slots WHERE name = ?`
)

type slotRepo struct {
	db *sql.DB
}

// NewSlotRepository creates a SQLite-backed slot repository.
func NewSlotRepository(db *sql.DB) repository.SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, getSlotSQL, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get slot %s: %w", name, err)
	}
	return value, true, nil
}

func (r *slotRepo) Put(ctx context.Context, name string, value []byte) error {
	logging.FromContext(ctx).Trace().Str("slot", name).Int("bytes", len(value)).Msg("writing slot")

	if value == nil {
		value = []byte{}
	}
	if _, err := r.db.ExecContext(ctx, putSlotSQL, name, value); err != nil {
		return fmt.Errorf("put slot %s: %w", name, err)
	}
	return nil
}

func (r *slotRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, deleteSlotSQL, name); err != nil {
		return fmt.Errorf("delete slot %s: %w", name, err)
	}
	return nil
}
