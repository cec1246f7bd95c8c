package catalog

import "context"

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)

	// List returns all products in insertion order.
	List(ctx context.Context) ([]*Product, error)

	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
}
