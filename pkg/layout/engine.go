package layout

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/archplane/archplane/pkg/diagram"
	"github.com/archplane/archplane/pkg/layout/solver"
	"github.com/archplane/archplane/pkg/observability"
)

// Engine computes positions for architecture diagrams.
//
// When a Solver is attached, the engine first delegates to it; any solver
// failure, timeout, or malformed response falls back transparently to the
// local heuristic pipeline (depth assignment, lane-biased crossing
// minimization, geometric placement, collision resolution). The caller
// always receives a fully laid-out graph, never a solver error.
//
// The local pipeline is a pure function of the input graph and Config:
// identical inputs produce bit-identical coordinates, with no randomness
// and no shared state. Engines are safe for concurrent use; each Layout
// call owns its own ephemeral maps.
type Engine struct {
	// Config holds spacing and refinement parameters.
	// Zero-valued configs are replaced by DefaultConfig.
	Config Config

	// Solver is the optional external layout engine. Nil disables the
	// external attempt and runs the local pipeline directly.
	Solver solver.Solver

	// Logger receives layout diagnostics. Nil discards them.
	Logger *log.Logger
}

// NewEngine creates an engine with the given config and no solver.
func NewEngine(cfg Config) *Engine {
	return &Engine{Config: cfg}
}

// Layout returns a copy of g with every node's x/y replaced by computed
// coordinates. Topology is untouched except that edges dropped by
// [diagram.Prepare] (dangling endpoints, self-loops) are absent from the
// result. An empty graph is returned unchanged.
//
// The context governs only the external solver attempt: cancelling it
// supersedes the request, discarding any stale solver result, and the
// local pipeline still produces a layout synchronously.
func (e *Engine) Layout(ctx context.Context, g diagram.Graph) diagram.Graph {
	if len(g.Nodes) == 0 {
		return g
	}

	cfg := e.Config
	if cfg == (Config{}) {
		cfg = DefaultConfig()
	}
	logger := e.logger()

	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, g.NodeCount(), g.EdgeCount())

	clean := diagram.Prepare(g)
	if dropped := len(g.Edges) - clean.EdgeCount(); dropped > 0 {
		logger.Debugf("Dropped %d malformed edge(s) before layout", dropped)
	}

	if e.Solver != nil {
		if out, ok := e.trySolver(ctx, clean, cfg, logger); ok {
			observability.Layout().OnLayoutComplete(ctx, g.NodeCount(), time.Since(start), true)
			return out
		}
		observability.Layout().OnSolverFallback(ctx)
	}

	out := e.fallback(clean, cfg, logger)
	observability.Layout().OnLayoutComplete(ctx, g.NodeCount(), time.Since(start), false)
	return out
}

// trySolver runs the external solver attempt. The boolean reports whether
// its result was applied; false means the caller must fall back.
func (e *Engine) trySolver(ctx context.Context, c diagram.Clean, cfg Config, logger *log.Logger) (diagram.Graph, bool) {
	positions, err := e.Solver.Solve(ctx, c, solver.Options{
		NodeWidth:  cfg.NodeWidth,
		NodeHeight: cfg.NodeHeight,
		ColumnGap:  cfg.ColumnGap,
		RowGap:     cfg.RowGap,
		PaddingX:   cfg.PaddingX,
		PaddingY:   cfg.PaddingY,
		Timeout:    cfg.SolverTimeout,
	})

	switch {
	case err != nil:
		logger.Warnf("External solver failed, using local pipeline: %v", err)
		return diagram.Graph{}, false
	case ctx.Err() != nil:
		// A newer layout request superseded this one while the solver
		// was running; its result must not clobber the newer state.
		logger.Warn("External solver result superseded, using local pipeline")
		return diagram.Graph{}, false
	case len(positions) < len(c.Nodes):
		logger.Warnf("External solver placed %d of %d nodes, using local pipeline", len(positions), len(c.Nodes))
		return diagram.Graph{}, false
	}

	return applyPositions(c, positions), true
}

// fallback runs the local heuristic pipeline.
func (e *Engine) fallback(c diagram.Clean, cfg Config, logger *log.Logger) diagram.Graph {
	depths := AssignDepths(c, cfg.ColumnGap)
	orders := MinimizeCrossings(c, depths, cfg)
	nodes := Place(c, orders, cfg)
	nodes = ResolveCollisions(nodes, cfg)

	logger.Debugf("Local layout: %d layers, %d crossings", len(orders), CountCrossings(c, orders))

	return diagram.Graph{Nodes: nodes, Edges: c.Edges}
}

func (e *Engine) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}

// applyPositions clones the node list with solver coordinates applied.
func applyPositions(c diagram.Clean, positions map[string]solver.Position) diagram.Graph {
	nodes := make([]diagram.Node, len(c.Nodes))
	copy(nodes, c.Nodes)
	for i := range nodes {
		p := positions[nodes[i].ID]
		nodes[i].X = p.X
		nodes[i].Y = p.Y
	}
	return diagram.Graph{Nodes: nodes, Edges: c.Edges}
}
