package repository

import "context"

// SlotRepository persists opaque values under fixed names, like a browser's
// localStorage. Values are never interpreted by the store.
type SlotRepository interface {
	// Get returns the stored value and whether the slot exists.
	Get(ctx context.Context, name string) ([]byte, bool, error)

	// Put creates or replaces the slot's value.
	Put(ctx context.Context, name string, value []byte) error

	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, name string) error
}
