// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrapper below defers opening the database until a slot is first
// read or written, so commands that never touch persisted state skip the cost.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/onramp/internal/application/port"
	"github.com/bnema/onramp/internal/domain/repository"
)

// LazySlotRepository wraps a slot repository with lazy database initialization.
type LazySlotRepository struct {
	provider port.DatabaseProvider
	repo     repository.SlotRepository
	once     sync.Once
	initErr  error
}

// NewLazySlotRepository creates a lazy-loading slot repository.
func NewLazySlotRepository(provider port.DatabaseProvider) repository.SlotRepository {
	return &LazySlotRepository{provider: provider}
}

func (r *LazySlotRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSlotRepository(db)
	})
	return r.initErr
}

func (r *LazySlotRepository) Get(ctx context.Context, name string) ([]byte, bool, error) {
	if err := r.init(ctx); err != nil {
		return nil, false, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazySlotRepository) Put(ctx context.Context, name string, value []byte) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Put(ctx, name, value)
}

func (r *LazySlotRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
