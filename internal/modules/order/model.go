package order

import (
	"time"

	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
)

// Status is the lifecycle state of a placed order.
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s Status) bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order is a placed order. Everything except Status is immutable after
// placement; Status changes only through the administrative path. Items is a
// snapshot taken at placement time — later cart activity cannot reach it.
type Order struct {
	ID                string          `json:"id"`
	CustomerName      string          `json:"customerName"`
	CustomerEmail     string          `json:"customerEmail"`
	Items             []cart.LineItem `json:"items"`
	Total             float64         `json:"total"`
	Status            Status          `json:"status"`
	PlacedAt          time.Time       `json:"date"`
	EstimatedDelivery time.Time       `json:"estimatedDelivery"`
}

// UpdateStatusRequest is the payload for changing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Stats summarises the order history for the admin view.
type Stats struct {
	Total        int     `json:"total"`
	Processing   int     `json:"processing"`
	Shipped      int     `json:"shipped"`
	Delivered    int     `json:"delivered"`
	TotalRevenue float64 `json:"totalRevenue"`
}
