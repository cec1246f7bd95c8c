package cart

// LineItem is a single selection in a cart: a catalog product plus the
// quantity chosen. Lines are unique by product id, and a line's quantity is
// always at least 1 — a line that would drop to zero is removed, never kept.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Candidate describes a product being added to a cart. Every add contributes
// quantity 1; the display data only matters the first time an id is seen.
type Candidate struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
