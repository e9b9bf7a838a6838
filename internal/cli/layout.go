package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/archplane/archplane/pkg/cache"
	"github.com/archplane/archplane/pkg/diagram"
	"github.com/archplane/archplane/pkg/layout"
	"github.com/archplane/archplane/pkg/layout/solver"
	"github.com/archplane/archplane/pkg/observability"
)

// layoutCommand creates the layout command for positioning diagram graphs.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output        string
		noCache       bool
		noSolver      bool
		columnGap     float64
		rowGap        float64
		solverTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "layout <graph.json>",
		Short: "Compute node positions for a diagram graph",
		Long: `Compute node positions for a diagram graph.

The layout command takes a graph.json file describing nodes and edges and
assigns canvas coordinates to every node. By default the Graphviz solver
handles placement; if it fails, or with --no-solver, the built-in layered
pipeline takes over.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("column-gap") {
				c.cfg.Layout.ColumnGap = columnGap
			}
			if cmd.Flags().Changed("row-gap") {
				c.cfg.Layout.RowGap = rowGap
			}
			if cmd.Flags().Changed("solver-timeout") {
				c.cfg.Layout.SolverTimeout.Duration = solverTimeout
			}
			return c.runLayout(cmd.Context(), args[0], output, noCache, noSolver)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&noSolver, "no-solver", false, "skip the Graphviz solver and use the built-in pipeline")
	cmd.Flags().Float64Var(&columnGap, "column-gap", layout.DefaultColumnGap, "horizontal spacing between depth columns")
	cmd.Flags().Float64Var(&rowGap, "row-gap", layout.DefaultRowGap, "vertical spacing between rows")
	cmd.Flags().DurationVar(&solverTimeout, "solver-timeout", layout.DefaultSolverTimeout, "time budget for the Graphviz solver")

	return cmd
}

// runLayout loads the graph, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output string, noCache, noSolver bool) error {
	logger := loggerFromContext(ctx)

	g, err := diagram.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	lcfg := c.cfg.LayoutConfig()
	eng := layout.NewEngine(lcfg)
	eng.Logger = logger
	if !noSolver {
		eng.Solver = solver.Graphviz{}
	}

	layoutCache := c.newCache(noCache)
	defer layoutCache.Close()

	raw, err := diagram.Marshal(g)
	if err != nil {
		return fmt.Errorf("serialize graph: %w", err)
	}
	key := cache.LayoutKey(cache.Hash(raw), cache.LayoutKeyOpts{
		Solver: !noSolver,
		Config: lcfg,
	})

	out, cached := c.cachedLayout(ctx, layoutCache, key)
	if !cached {
		spinner := newSpinnerWithContext(ctx, "Computing layout...")
		spinner.Start()

		prog := newProgress(logger)
		out = eng.Layout(ctx, g)
		spinner.Stop()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		prog.done(fmt.Sprintf("Positioned %d nodes", out.NodeCount()))

		if data, err := diagram.Marshal(out); err == nil {
			if err := layoutCache.Set(ctx, key, data, c.cfg.Cache.TTL.Duration); err != nil {
				logger.Warnf("Cache layout result: %v", err)
			}
		}
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := diagram.WriteFile(out, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(out.NodeCount(), out.EdgeCount(), cached)
	printNewline()
	printNextStep("Serve the editor API", "archplane serve")

	return nil
}

// cachedLayout looks up a previously computed layout. Any cache problem is
// a miss.
func (c *CLI) cachedLayout(ctx context.Context, layoutCache cache.Cache, key string) (diagram.Graph, bool) {
	data, ok, err := layoutCache.Get(ctx, key)
	if err != nil || !ok {
		observability.Cache().OnCacheMiss(ctx, "layout")
		return diagram.Graph{}, false
	}
	out, err := diagram.Unmarshal(data)
	if err != nil {
		observability.Cache().OnCacheMiss(ctx, "layout")
		return diagram.Graph{}, false
	}
	observability.Cache().OnCacheHit(ctx, "layout")
	return out, true
}
