// Package solver defines the boundary to external constraint-based layout
// engines.
//
// The layout engine prefers delegating placement to a dedicated solver and
// only falls back to its local heuristic pipeline when the solver fails.
// The boundary is a single-method interface so that callers can swap in a
// mock for testing the fallback path without any real solver present.
//
// The production implementation, [Graphviz], drives the layered "dot"
// engine of Graphviz through goccy/go-graphviz.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/archplane/archplane/pkg/diagram"
)

var (
	// ErrEmptyResult is returned when the solver produced no usable
	// positions for a non-empty graph. Treated the same as any other
	// solver failure: the caller falls back to the local pipeline.
	ErrEmptyResult = errors.New("solver returned no positions")

	// ErrTimeout is returned when the solver exceeded its configured
	// time budget.
	ErrTimeout = errors.New("solver timed out")
)

// Position is a solved node coordinate (top-left corner, canvas units).
type Position struct {
	X float64
	Y float64
}

// Options describes the layout request sent to a solver: fixed node
// dimensions plus the named layout parameters of a layered, left-to-right,
// orthogonally routed drawing.
type Options struct {
	NodeWidth  float64
	NodeHeight float64
	ColumnGap  float64 // rank separation
	RowGap     float64 // node separation within a rank

	// Padding is applied by offset normalization: the minimum solved
	// coordinate on each axis is shifted to this value.
	PaddingX float64
	PaddingY float64

	// Timeout bounds the attempt. Zero means no explicit bound beyond
	// the caller's context.
	Timeout time.Duration
}

// Solver computes positions for every node of a prepared graph.
//
// Implementations must return a position for each node in c.Nodes or an
// error; a partial result is an error. The context carries cancellation:
// when the caller supersedes the request, implementations should return
// promptly and the result, if any, is discarded.
type Solver interface {
	Solve(ctx context.Context, c diagram.Clean, opts Options) (map[string]Position, error)
}

// Normalize shifts positions so the minimum coordinate on each axis equals
// the configured padding. Solvers report coordinates in their own frame;
// diagrams want a consistent top-left origin.
func Normalize(positions map[string]Position, padX, padY float64) map[string]Position {
	if len(positions) == 0 {
		return positions
	}

	first := true
	var minX, minY float64
	for _, p := range positions {
		if first {
			minX, minY = p.X, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
	}

	out := make(map[string]Position, len(positions))
	for id, p := range positions {
		out[id] = Position{X: p.X - minX + padX, Y: p.Y - minY + padY}
	}
	return out
}
