package storage

import (
	"context"
	"errors"
	"testing"
)

// The memory and file backends share the whole-value contract; run the same
// suite over both.
func backends(t *testing.T) map[string]Store {
	t.Helper()
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Get(ctx, "order-history"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() on absent key = %v, want ErrNotFound", err)
			}

			if err := s.Set(ctx, "order-history", []byte(`[{"id":"ORD-1"}]`)); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			got, err := s.Get(ctx, "order-history")
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if string(got) != `[{"id":"ORD-1"}]` {
				t.Errorf("Get() = %s", got)
			}

			// Whole-value overwrite.
			if err := s.Set(ctx, "order-history", []byte(`[]`)); err != nil {
				t.Fatal(err)
			}
			got, _ = s.Get(ctx, "order-history")
			if string(got) != `[]` {
				t.Errorf("Get() after overwrite = %s", got)
			}

			if err := s.Delete(ctx, "order-history"); err != nil {
				t.Fatalf("Delete() error: %v", err)
			}
			if _, err := s.Get(ctx, "order-history"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after delete = %v, want ErrNotFound", err)
			}

			// Deleting an absent key is not an error.
			if err := s.Delete(ctx, "order-history"); err != nil {
				t.Errorf("Delete() on absent key = %v", err)
			}
		})
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.Set(ctx, "k", []byte("abc")); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Get(ctx, "k")
	got[0] = 'X'
	again, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through a returned slice: %s", again)
	}
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.Set(ctx, "current-user-session", []byte(`{"id":"1"}`)); err != nil {
		t.Fatal(err)
	}

	s2, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.Get(ctx, "current-user-session")
	if err != nil {
		t.Fatalf("Get() after reopen error: %v", err)
	}
	if string(got) != `{"id":"1"}` {
		t.Errorf("Get() after reopen = %s", got)
	}
}
