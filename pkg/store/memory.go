package store

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory DiagramStore for development and testing.
type MemoryStore struct {
	mu       sync.RWMutex
	diagrams map[string]Diagram
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{diagrams: make(map[string]Diagram)}
}

// Get returns the diagram with the given ID, or ErrNotFound.
func (s *MemoryStore) Get(ctx context.Context, id string) (Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.diagrams[id]
	if !ok {
		return Diagram{}, ErrNotFound
	}
	return d, nil
}

// Save inserts or replaces a diagram by ID.
func (s *MemoryStore) Save(ctx context.Context, d Diagram) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagrams[d.ID] = d
	return nil
}

// Delete removes a diagram. Returns ErrNotFound if absent.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.diagrams[id]; !ok {
		return ErrNotFound
	}
	delete(s.diagrams, id)
	return nil
}

// List returns all diagrams, most recently updated first.
func (s *MemoryStore) List(ctx context.Context) ([]Diagram, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Diagram, 0, len(s.diagrams))
	for _, d := range s.diagrams {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Diagram) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements DiagramStore.
var _ DiagramStore = (*MemoryStore)(nil)
