package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/archplane/archplane/pkg/diagram"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	d := Diagram{
		ID:   "d1",
		Name: "checkout",
		Graph: diagram.Graph{
			Nodes: []diagram.Node{{ID: "svc", Category: diagram.CategoryService}},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.Save(ctx, d); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Get(ctx, "d1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "checkout" {
		t.Errorf("Name = %q, want %q", got.Name, "checkout")
	}
	if got.Graph.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", got.Graph.NodeCount())
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Save(ctx, Diagram{ID: "d1"})

	if err := s.Delete(ctx, "d1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := s.Delete(ctx, "d1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_ListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	now := time.Now()
	_ = s.Save(ctx, Diagram{ID: "old", UpdatedAt: now.Add(-time.Hour)})
	_ = s.Save(ctx, Diagram{ID: "new", UpdatedAt: now})

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d diagrams, want 2", len(list))
	}
	if list[0].ID != "new" {
		t.Errorf("List[0].ID = %q, want most recently updated first", list[0].ID)
	}
}

func TestMemoryStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.Save(ctx, Diagram{ID: "d1", Name: "v1"})
	_ = s.Save(ctx, Diagram{ID: "d1", Name: "v2"})

	got, _ := s.Get(ctx, "d1")
	if got.Name != "v2" {
		t.Errorf("Name = %q, want %q", got.Name, "v2")
	}
}
