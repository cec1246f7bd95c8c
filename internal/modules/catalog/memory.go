package catalog

import (
	"context"
	"fmt"
	"sync"
)

// memoryRepository keeps products in an insertion-ordered slice guarded by a
// mutex. The demo catalog is small enough that linear scans are fine.
type memoryRepository struct {
	mu       sync.RWMutex
	products []*Product
}

// NewMemoryRepository creates a repository holding the given seed products.
func NewMemoryRepository(seed []*Product) Repository {
	r := &memoryRepository{}
	for _, p := range seed {
		cp := *p
		cp.InStock = cp.Purchasable()
		r.products = append(r.products, &cp)
	}
	return r
}

func (r *memoryRepository) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.products {
		if existing.ID == p.ID {
			return fmt.Errorf("product %s already exists", p.ID)
		}
	}
	cp := *p
	cp.InStock = cp.Purchasable()
	r.products = append(r.products, &cp)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (r *memoryRepository) List(ctx context.Context) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryRepository) Update(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == p.ID {
			cp := *p
			cp.InStock = cp.Purchasable()
			r.products[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("product %s not found", p.ID)
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.products {
		if existing.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s not found", id)
}
