package order

import (
	"time"

	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
)

// DemoOrders returns the fixed example orders the admin panel starts with.
// They are seeded into the log once, only when no history exists yet, so the
// customer and admin views share one authoritative collection.
func DemoOrders() []Order {
	return []Order{
		{
			ID:            "ORD-1001",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			Items: []cart.LineItem{
				{ID: "1", Name: "Wireless Headphones", Price: 199.99, Quantity: 1},
				{ID: "6", Name: "Power Bank", Price: 49.99, Quantity: 2},
			},
			Total:             299.97,
			Status:            StatusProcessing,
			PlacedAt:          time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			EstimatedDelivery: time.Date(2024, 1, 22, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-1002",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			Items: []cart.LineItem{
				{ID: "2", Name: "Smart Watch", Price: 299.99, Quantity: 1},
			},
			Total:             299.99,
			Status:            StatusShipped,
			PlacedAt:          time.Date(2024, 1, 14, 14, 20, 0, 0, time.UTC),
			EstimatedDelivery: time.Date(2024, 1, 21, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-1003",
			CustomerName:  "Bob Johnson",
			CustomerEmail: "bob@example.com",
			Items: []cart.LineItem{
				{ID: "4", Name: "Coffee Maker", Price: 149.99, Quantity: 1},
				{ID: "3", Name: "Organic T-Shirt", Price: 29.99, Quantity: 3},
			},
			Total:             239.96,
			Status:            StatusDelivered,
			PlacedAt:          time.Date(2024, 1, 12, 9, 15, 0, 0, time.UTC),
			EstimatedDelivery: time.Date(2024, 1, 19, 9, 15, 0, 0, time.UTC),
		},
	}
}
