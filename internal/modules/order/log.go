package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmusonda/smartcart-backend/internal/storage"
)

// historyKey is the fixed storage key the whole order collection lives under.
const historyKey = "order-history"

// Log is the append-only order history. The collection is stored whole under
// one key, so every mutation reads the full collection, modifies it in
// memory and writes it back. Concurrent writers race last-writer-wins;
// accepted at single-session demo scale.
type Log struct {
	store storage.Store
}

// NewLog creates an order log over the given store.
func NewLog(store storage.Store) *Log { return &Log{store: store} }

// ReadAll returns every placed order, oldest first. A missing or unreadable
// collection is an empty history, not an error.
func (l *Log) ReadAll(ctx context.Context) ([]Order, error) {
	b, err := l.store.Get(ctx, historyKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read order history: %w", err)
	}
	var orders []Order
	if err := json.Unmarshal(b, &orders); err != nil {
		// Corrupted or foreign-format content; treat as absent.
		return nil, nil
	}
	return orders, nil
}

// Append adds the order to the end of the history.
func (l *Log) Append(ctx context.Context, o Order) error {
	orders, err := l.ReadAll(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, o)
	return l.write(ctx, orders)
}

// UpdateStatus sets the status of the order with the given id. Unknown ids
// are a no-op.
func (l *Log) UpdateStatus(ctx context.Context, id string, status Status) error {
	orders, err := l.ReadAll(ctx)
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return l.write(ctx, orders)
		}
	}
	return nil
}

// Seed writes the given orders as the initial history. It does nothing when
// a history already exists, even an empty one.
func (l *Log) Seed(ctx context.Context, orders []Order) error {
	_, err := l.store.Get(ctx, historyKey)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("read order history: %w", err)
	}
	return l.write(ctx, orders)
}

func (l *Log) write(ctx context.Context, orders []Order) error {
	b, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode order history: %w", err)
	}
	if err := l.store.Set(ctx, historyKey, b); err != nil {
		return fmt.Errorf("write order history: %w", err)
	}
	return nil
}
