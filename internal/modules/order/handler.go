package order

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
	"github.com/tmusonda/smartcart-backend/internal/modules/session"
)

// Handler exposes the checkout, order-history and admin order endpoints.
type Handler struct {
	service  Service
	carts    *cart.Store
	sessions session.Service
}

func NewHandler(service Service, carts *cart.Store, sessions session.Service) *Handler {
	return &Handler{service: service, carts: carts, sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", h.history)           // GET  /api/v1/orders
		r.Post("/checkout", h.checkout) // POST /api/v1/orders/checkout
	})
	r.Route("/api/v1/admin/orders", func(r chi.Router) {
		r.Get("/", h.history)                   // GET   /api/v1/admin/orders
		r.Get("/stats", h.stats)                // GET   /api/v1/admin/orders/stats
		r.Patch("/{id}/status", h.updateStatus) // PATCH /api/v1/admin/orders/{id}/status
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sid := session.EnsureID(w, r)
	if h.carts.Get(sid).ItemCount() == 0 {
		respond(w, http.StatusUnprocessableEntity, map[string]string{"error": "cart is empty"})
		return
	}

	var info CustomerInfo
	if u, err := h.sessions.Current(r.Context()); err == nil && u != nil {
		info = CustomerInfo{Name: u.Name, Email: u.Email}
	}

	o, err := h.service.Checkout(r.Context(), sid, info)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, o)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.History(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []Order{}
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Stats(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, st)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.service.UpdateStatus(r.Context(), id, req); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid status") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "order updated"})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
