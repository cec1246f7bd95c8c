package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when a key has no stored value. Absence is
// an expected state for every key the application uses, not a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is a keyed byte store with whole-value semantics: values are read
// and written in their entirety, never partially updated. Writes to the same
// key from concurrent writers race last-writer-wins on every backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
