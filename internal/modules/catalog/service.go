package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tmusonda/smartcart-backend/internal/modules/cart"
)

// Service defines catalog business logic: the read side feeding the
// storefront and the admin CRUD over the product list.
type Service interface {
	// ListProducts returns products matching the search query and category.
	// The query matches name or description case-insensitively; an empty or
	// "All" category matches everything.
	ListProducts(ctx context.Context, query, category string) ([]*Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id string) (*Product, error)

	// Categories returns "All" followed by each distinct category in
	// first-seen order.
	Categories(ctx context.Context) ([]string, error)

	// CreateProduct validates the request and adds a product.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)

	// UpdateProduct validates the request and edits an existing product.
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id string) error

	// Candidate resolves a product into a cart candidate, rejecting
	// products that are out of stock or inactive.
	Candidate(ctx context.Context, id string) (cart.Candidate, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context, query, category string) ([]*Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if category != "" && category != "All" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	categories := []string{"All"}
	seen := map[string]bool{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories, nil
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := validateProduct(req.Name, req.Description, req.Category, req.Price, req.Stock); err != nil {
		return nil, err
	}
	p := &Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       placeholderImage,
		Category:    req.Category,
		Stock:       req.Stock,
		Status:      StatusActive,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	p.InStock = p.Purchasable()
	return p, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	if err := validateProduct(req.Name, req.Description, req.Category, req.Price, req.Stock); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Category = req.Category
	p.Stock = req.Stock
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	p.InStock = p.Purchasable()
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Candidate(ctx context.Context, id string) (cart.Candidate, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return cart.Candidate{}, err
	}
	if !p.Purchasable() {
		return cart.Candidate{}, fmt.Errorf("product %s is currently unavailable", id)
	}
	return cart.Candidate{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}, nil
}

// validateProduct rejects malformed admin form input before it reaches the
// repository.
func validateProduct(name, description, category string, price float64, stock int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category is required")
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}
