// Package store persists diagrams.
//
// The engine itself is stateless; diagrams live here between editing
// sessions. Two implementations exist: MemoryStore for tests and
// single-process development, MongoStore for deployments.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/archplane/archplane/pkg/diagram"
)

// ErrNotFound is returned when a diagram does not exist.
var ErrNotFound = errors.New("diagram not found")

// Diagram is a stored diagram document.
type Diagram struct {
	ID        string        `json:"id" bson:"_id"`
	Name      string        `json:"name" bson:"name"`
	Graph     diagram.Graph `json:"graph" bson:"graph"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

// DiagramStore persists diagrams. Implementations must be safe for
// concurrent use.
type DiagramStore interface {
	// Get returns the diagram with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Diagram, error)

	// Save inserts or replaces a diagram by ID.
	Save(ctx context.Context, d Diagram) error

	// Delete removes a diagram. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns all diagrams, most recently updated first.
	List(ctx context.Context) ([]Diagram, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
