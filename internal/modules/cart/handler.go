package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tmusonda/smartcart-backend/internal/modules/session"
)

// CandidateSource resolves a product id into a cart candidate, rejecting
// products that cannot currently be purchased. The catalog service
// implements it.
type CandidateSource interface {
	Candidate(ctx context.Context, id string) (Candidate, error)
}

// Handler exposes the cart HTTP endpoints. Each request operates on the
// caller's session cart.
type Handler struct {
	carts  *Store
	source CandidateSource
}

func NewHandler(carts *Store, source CandidateSource) *Handler {
	return &Handler{carts: carts, source: source}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.getCart)                    // GET    /api/v1/cart
		r.Delete("/", h.clearCart)               // DELETE /api/v1/cart
		r.Post("/items", h.addItem)              // POST   /api/v1/cart/items
		r.Patch("/items/{id}", h.updateQuantity) // PATCH  /api/v1/cart/items/{id}
		r.Delete("/items/{id}", h.removeItem)    // DELETE /api/v1/cart/items/{id}
	})
}

// cartView is the JSON shape of a cart: the lines plus the derived totals.
type cartView struct {
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     float64    `json:"total"`
}

func view(c *Cart) cartView {
	return cartView{Items: c.Items(), ItemCount: c.ItemCount(), Total: c.Total()}
}

// addItemRequest carries only the product id; name, price and image come
// from the catalog so callers cannot forge them.
type addItemRequest struct {
	ProductID string `json:"product_id"`
}

// updateQuantityRequest carries the new absolute quantity for a line.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(session.EnsureID(w, r))
	respond(w, http.StatusOK, view(c))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.ProductID == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "product_id is required"})
		return
	}
	cand, err := h.source.Candidate(r.Context(), req.ProductID)
	if err != nil {
		code := http.StatusNotFound
		if strings.Contains(err.Error(), "unavailable") {
			code = http.StatusUnprocessableEntity
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	c := h.carts.Get(session.EnsureID(w, r))
	c.AddItem(cand)
	respond(w, http.StatusOK, view(c))
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	c := h.carts.Get(session.EnsureID(w, r))
	c.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	respond(w, http.StatusOK, view(c))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(session.EnsureID(w, r))
	c.RemoveItem(chi.URLParam(r, "id"))
	respond(w, http.StatusOK, view(c))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(session.EnsureID(w, r))
	c.Clear()
	respond(w, http.StatusOK, view(c))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
