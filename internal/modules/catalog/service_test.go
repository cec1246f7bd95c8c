package catalog

import (
	"context"
	"strings"
	"testing"
)

func newTestService() Service {
	return NewService(NewMemoryRepository(DemoProducts()))
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	t.Run("no filter returns everything", func(t *testing.T) {
		products, err := s.ListProducts(ctx, "", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 6 {
			t.Errorf("got %d products, want 6", len(products))
		}
	})

	t.Run("query matches name case-insensitively", func(t *testing.T) {
		products, err := s.ListProducts(ctx, "bluetooth", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 1 || products[0].ID != "1" {
			t.Errorf("got %+v, want only the headphones", products)
		}
	})

	t.Run("query matches description", func(t *testing.T) {
		products, err := s.ListProducts(ctx, "lumbar", "")
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 1 || products[0].ID != "5" {
			t.Errorf("got %+v, want only the chair", products)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		products, err := s.ListProducts(ctx, "", "Electronics")
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 3 {
			t.Errorf("got %d electronics, want 3", len(products))
		}
	})

	t.Run("All category matches everything", func(t *testing.T) {
		products, err := s.ListProducts(ctx, "", "All")
		if err != nil {
			t.Fatal(err)
		}
		if len(products) != 6 {
			t.Errorf("got %d products, want 6", len(products))
		}
	})
}

func TestCategoriesFirstSeenOrder(t *testing.T) {
	s := newTestService()
	got, err := s.Categories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"All", "Electronics", "Clothing", "Home & Kitchen", "Furniture"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	p, err := s.CreateProduct(ctx, CreateProductRequest{
		Name:        "Desk Lamp",
		Description: "Adjustable LED desk lamp",
		Price:       39.99,
		Category:    "Home & Kitchen",
		Stock:       30,
	})
	if err != nil {
		t.Fatalf("CreateProduct() error: %v", err)
	}
	if p.ID == "" {
		t.Error("created product has no id")
	}
	if p.Status != StatusActive || !p.InStock {
		t.Errorf("new product not purchasable: %+v", p)
	}

	products, _ := s.ListProducts(ctx, "", "")
	if len(products) != 7 {
		t.Errorf("got %d products after create, want 7", len(products))
	}
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	cases := []struct {
		name string
		req  CreateProductRequest
	}{
		{"missing name", CreateProductRequest{Description: "d", Category: "c", Price: 1, Stock: 1}},
		{"missing description", CreateProductRequest{Name: "n", Category: "c", Price: 1, Stock: 1}},
		{"missing category", CreateProductRequest{Name: "n", Description: "d", Price: 1, Stock: 1}},
		{"negative price", CreateProductRequest{Name: "n", Description: "d", Category: "c", Price: -1, Stock: 1}},
		{"negative stock", CreateProductRequest{Name: "n", Description: "d", Category: "c", Price: 1, Stock: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreateProduct(ctx, tc.req); err == nil {
				t.Error("CreateProduct() accepted malformed input")
			}
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	p, err := s.UpdateProduct(ctx, "4", UpdateProductRequest{
		Name:        "Professional Coffee Maker",
		Description: "Brew perfect coffee every time with this premium coffee maker",
		Price:       129.99,
		Category:    "Home & Kitchen",
		Stock:       10,
	})
	if err != nil {
		t.Fatalf("UpdateProduct() error: %v", err)
	}
	if p.Price != 129.99 || p.Stock != 10 {
		t.Errorf("got %+v", p)
	}

	if _, err := s.UpdateProduct(ctx, "404", UpdateProductRequest{
		Name: "n", Description: "d", Category: "c", Price: 1, Stock: 1,
	}); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("unknown id error = %v, want not found", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	if err := s.DeleteProduct(ctx, "6"); err != nil {
		t.Fatalf("DeleteProduct() error: %v", err)
	}
	if _, err := s.GetProduct(ctx, "6"); err == nil {
		t.Error("deleted product still retrievable")
	}
	if err := s.DeleteProduct(ctx, "6"); err == nil {
		t.Error("deleting twice did not error")
	}
}

func TestCandidate(t *testing.T) {
	ctx := context.Background()
	s := newTestService()

	t.Run("purchasable product", func(t *testing.T) {
		cand, err := s.Candidate(ctx, "1")
		if err != nil {
			t.Fatalf("Candidate() error: %v", err)
		}
		if cand.ID != "1" || cand.Name != "Wireless Bluetooth Headphones" || cand.Price != 199.99 {
			t.Errorf("got %+v", cand)
		}
	})

	t.Run("out of stock", func(t *testing.T) {
		// The coffee maker is seeded with zero stock.
		if _, err := s.Candidate(ctx, "4"); err == nil || !strings.Contains(err.Error(), "unavailable") {
			t.Errorf("error = %v, want unavailable", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		if _, err := s.Candidate(ctx, "404"); err == nil {
			t.Error("Candidate() accepted an unknown id")
		}
	})
}
