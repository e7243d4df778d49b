package store

import "context"

// Store is a durable key-value byte store. Each clinic collection is saved
// whole under its own key; there is no partial or delta persistence.
type Store interface {
	// Load returns the bytes saved under key. The second return value is
	// false when no snapshot exists for the key.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save replaces the bytes saved under key.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes the snapshot for key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
