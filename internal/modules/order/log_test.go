package order

import (
	"context"
	"testing"
	"time"

	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
	"github.com/tmusonda/smartcart-backend/internal/storage"
)

func testOrder(id string, total float64) Order {
	placed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return Order{
		ID:                id,
		CustomerName:      "Customer",
		CustomerEmail:     "customer@example.com",
		Items:             []cart.LineItem{{ID: "1", Name: "Headphones", Price: total, Quantity: 1}},
		Total:             total,
		Status:            StatusProcessing,
		PlacedAt:          placed,
		EstimatedDelivery: placed.Add(deliveryLeadTime),
	}
}

func TestLogReadAllEmpty(t *testing.T) {
	l := NewLog(storage.NewMemoryStore())
	orders, err := l.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("got %d orders, want 0", len(orders))
	}
}

func TestLogAppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	l := NewLog(storage.NewMemoryStore())

	if err := l.Append(ctx, testOrder("ORD-1", 10)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	if err := l.Append(ctx, testOrder("ORD-2", 20)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	orders, err := l.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].ID != "ORD-1" || orders[1].ID != "ORD-2" {
		t.Errorf("order sequence = [%s %s], want [ORD-1 ORD-2]", orders[0].ID, orders[1].ID)
	}
	if orders[1].Total != 20 {
		t.Errorf("total = %v, want 20", orders[1].Total)
	}
	if orders[0].Status != StatusProcessing {
		t.Errorf("status = %s, want %s", orders[0].Status, StatusProcessing)
	}
}

func TestLogMalformedContentTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Set(ctx, "order-history", []byte("not json at all")); err != nil {
		t.Fatal(err)
	}

	l := NewLog(store)
	orders, err := l.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("got %d orders from corrupt content, want 0", len(orders))
	}

	// Appending over corrupt content starts a fresh collection.
	if err := l.Append(ctx, testOrder("ORD-1", 10)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}
	orders, _ = l.ReadAll(ctx)
	if len(orders) != 1 {
		t.Errorf("got %d orders, want 1", len(orders))
	}
}

func TestLogUpdateStatus(t *testing.T) {
	ctx := context.Background()
	l := NewLog(storage.NewMemoryStore())
	if err := l.Append(ctx, testOrder("ORD-1", 10)); err != nil {
		t.Fatal(err)
	}

	if err := l.UpdateStatus(ctx, "ORD-1", StatusShipped); err != nil {
		t.Fatalf("UpdateStatus() error: %v", err)
	}
	orders, _ := l.ReadAll(ctx)
	if orders[0].Status != StatusShipped {
		t.Errorf("status = %s, want %s", orders[0].Status, StatusShipped)
	}

	// Unknown id is a no-op, not an error.
	if err := l.UpdateStatus(ctx, "ORD-404", StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus() unknown id error: %v", err)
	}
	orders, _ = l.ReadAll(ctx)
	if len(orders) != 1 || orders[0].Status != StatusShipped {
		t.Errorf("history changed by unknown-id update: %+v", orders)
	}
}

func TestLogSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds absent history", func(t *testing.T) {
		l := NewLog(storage.NewMemoryStore())
		if err := l.Seed(ctx, DemoOrders()); err != nil {
			t.Fatalf("Seed() error: %v", err)
		}
		orders, _ := l.ReadAll(ctx)
		if len(orders) != 3 {
			t.Fatalf("got %d orders, want 3", len(orders))
		}
		if orders[0].ID != "ORD-1001" {
			t.Errorf("first order = %s, want ORD-1001", orders[0].ID)
		}
	})

	t.Run("does not overwrite existing history", func(t *testing.T) {
		l := NewLog(storage.NewMemoryStore())
		if err := l.Append(ctx, testOrder("ORD-1", 10)); err != nil {
			t.Fatal(err)
		}
		if err := l.Seed(ctx, DemoOrders()); err != nil {
			t.Fatalf("Seed() error: %v", err)
		}
		orders, _ := l.ReadAll(ctx)
		if len(orders) != 1 || orders[0].ID != "ORD-1" {
			t.Errorf("seed overwrote existing history: %+v", orders)
		}
	})
}
