package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
)

// deliveryLeadTime is the fixed window quoted on every new order.
const deliveryLeadTime = 7 * 24 * time.Hour

// CustomerInfo identifies who placed an order, for the admin view. Empty
// fields fall back to anonymous placeholders.
type CustomerInfo struct {
	Name  string
	Email string
}

// Service defines order placement and management logic.
type Service interface {
	// Checkout converts the session's cart into a persisted order: it
	// snapshots the lines, appends the order to the log and clears the
	// cart. The cart is only cleared after the append visibly succeeded.
	// An empty cart is not rejected here; that guard belongs to callers.
	Checkout(ctx context.Context, sessionID string, info CustomerInfo) (*Order, error)

	// History returns all placed orders, oldest first.
	History(ctx context.Context) ([]Order, error)

	// UpdateStatus sets an order's status, admin path only. Any member of
	// the status enum may be set; unknown order ids are a no-op.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error

	// Stats summarises the history for the admin dashboard.
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	carts  *cart.Store
	log    *Log
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	lastID int64
}

// NewService creates a new order service.
func NewService(carts *cart.Store, log *Log, logger *zap.Logger) Service {
	return &service{carts: carts, log: log, logger: logger, now: time.Now}
}

func (s *service) Checkout(ctx context.Context, sessionID string, info CustomerInfo) (*Order, error) {
	if info.Name == "" {
		info.Name = "Customer"
	}
	if info.Email == "" {
		info.Email = "customer@example.com"
	}

	c := s.carts.Get(sessionID)
	items := c.Items()
	now := s.now()
	o := Order{
		ID:                s.nextOrderID(),
		CustomerName:      info.Name,
		CustomerEmail:     info.Email,
		Items:             items,
		Total:             total(items),
		Status:            StatusProcessing,
		PlacedAt:          now,
		EstimatedDelivery: now.Add(deliveryLeadTime),
	}

	if err := s.log.Append(ctx, o); err != nil {
		// The cart stays intact: callers must never see a cleared cart
		// for an order that was not recorded.
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	c.Clear()

	s.logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.Int("lines", len(o.Items)),
		zap.Float64("total", o.Total))
	return &o, nil
}

func (s *service) History(ctx context.Context) ([]Order, error) {
	return s.log.ReadAll(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) error {
	status := Status(req.Status)
	if !ValidStatus(status) {
		return fmt.Errorf("invalid status %q", req.Status)
	}
	return s.log.UpdateStatus(ctx, id, status)
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	orders, err := s.log.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	st := &Stats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case StatusProcessing:
			st.Processing++
		case StatusShipped:
			st.Shipped++
		case StatusDelivered:
			st.Delivered++
		}
		st.TotalRevenue += o.Total
	}
	st.TotalRevenue = round2(st.TotalRevenue)
	return st, nil
}

// nextOrderID derives the id from the wall clock as ORD-<unix millis>,
// bumped past the previous issue when the clock has not advanced, so ids
// stay unique within the process.
func (s *service) nextOrderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := s.now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("ORD-%d", ms)
}

func total(items []cart.LineItem) float64 {
	var t float64
	for _, it := range items {
		t += it.Price * float64(it.Quantity)
	}
	return round2(t)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
