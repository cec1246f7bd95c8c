package catalog

// ProductStatus marks whether a product is offered in the storefront.
type ProductStatus string

const (
	StatusActive   ProductStatus = "active"
	StatusInactive ProductStatus = "inactive"
)

// Product is an item offered in the storefront.
type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Image       string        `json:"image"`
	Category    string        `json:"category"`
	Rating      float64       `json:"rating"`
	Reviews     int           `json:"reviews"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	InStock     bool          `json:"inStock"`
}

// Purchasable reports whether the product can currently be added to a cart.
func (p *Product) Purchasable() bool {
	return p.Status == StatusActive && p.Stock > 0
}

// CreateProductRequest holds the validated data for adding a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// UpdateProductRequest holds the validated data for editing a product.
// The image and review figures are not editable from the admin form.
type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}
