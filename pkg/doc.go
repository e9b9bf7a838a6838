// Package pkg provides the core libraries for ArchPlane diagram layout.
//
// # Overview
//
// ArchPlane assigns canvas positions to software architecture diagrams:
// clients, gateways, services, queues and databases flow left to right in
// layered columns. The pkg directory is organized into:
//
//  1. [diagram] - Graph model, categories, preparation, serialization
//  2. [layout] - The layout engine (depth assignment, ordering, placement)
//  3. [layout/solver] - External constraint-solver boundary (Graphviz)
//  4. [cache] / [store] - Layout result caching and diagram persistence
//  5. [errors] / [observability] - Structured errors and hook points
//
// # Architecture
//
// The typical data flow:
//
//	graph.json / API request
//	         ↓
//	    [diagram] package (validate, filter, adjacency)
//	         ↓
//	    [layout/solver] package (Graphviz attempt)
//	         ↓ on failure
//	    [layout] package (layered heuristic pipeline)
//	         ↓
//	    positioned graph (JSON)
//
// # Quick Start
//
// Lay out a graph with the local pipeline:
//
//	import (
//	    "context"
//	    "github.com/archplane/archplane/pkg/diagram"
//	    "github.com/archplane/archplane/pkg/layout"
//	)
//
//	g, _ := diagram.ReadFile("graph.json")
//	engine := layout.NewEngine(layout.DefaultConfig())
//	out := engine.Layout(context.Background(), g)
//	_ = diagram.WriteFile(out, "graph.layout.json")
//
// Attach the Graphviz solver:
//
//	engine.Solver = solver.Graphviz{}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Engine only
//
// [diagram]: https://pkg.go.dev/github.com/archplane/archplane/pkg/diagram
// [layout]: https://pkg.go.dev/github.com/archplane/archplane/pkg/layout
// [layout/solver]: https://pkg.go.dev/github.com/archplane/archplane/pkg/layout/solver
// [cache]: https://pkg.go.dev/github.com/archplane/archplane/pkg/cache
// [store]: https://pkg.go.dev/github.com/archplane/archplane/pkg/store
// [errors]: https://pkg.go.dev/github.com/archplane/archplane/pkg/errors
// [observability]: https://pkg.go.dev/github.com/archplane/archplane/pkg/observability
package pkg
