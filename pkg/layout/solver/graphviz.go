package solver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/archplane/archplane/pkg/diagram"
)

// pointsPerInch converts canvas pixels to Graphviz inches, treating one
// canvas pixel as one point.
const pointsPerInch = 72.0

// Graphviz solves layouts by running the layered "dot" engine of Graphviz
// in-process (goccy/go-graphviz ships it as a wasm module, so there is no
// system dependency).
//
// The request is rendered as a DOT document with fixed node dimensions and
// rank/node separation derived from the configured gaps; the solved node
// centers are read back from the xdot output. The zero value is ready to use.
type Graphviz struct{}

// Solve implements [Solver].
func (Graphviz) Solve(ctx context.Context, c diagram.Clean, opts Options) (map[string]Position, error) {
	if len(c.Nodes) == 0 {
		return nil, ErrEmptyResult
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	xdot, err := renderXDOT(ctx, ToDOT(c, opts))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}

	positions, err := parsePositions(xdot, opts)
	if err != nil {
		return nil, err
	}

	for _, n := range c.Nodes {
		if _, ok := positions[n.ID]; !ok {
			return nil, fmt.Errorf("%w: node %q unplaced", ErrEmptyResult, n.ID)
		}
	}

	return Normalize(positions, opts.PaddingX, opts.PaddingY), nil
}

// ToDOT renders the layout request as a DOT document: left-to-right flow,
// fixed-size box nodes, orthogonal edge routing, spacing from the options.
func ToDOT(c diagram.Clean, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  splines=ortho;\n")
	fmt.Fprintf(&buf, "  ranksep=%.3f;\n", inches(opts.ColumnGap-opts.NodeWidth))
	fmt.Fprintf(&buf, "  nodesep=%.3f;\n", inches(opts.RowGap-opts.NodeHeight))
	fmt.Fprintf(&buf, "  node [shape=box, fixedsize=true, width=%.3f, height=%.3f];\n",
		inches(opts.NodeWidth), inches(opts.NodeHeight))
	buf.WriteString("\n")

	for _, n := range c.Nodes {
		fmt.Fprintf(&buf, "  %q;\n", n.ID)
	}

	buf.WriteString("\n")
	for _, e := range c.Edges {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.Source, e.Target, e.Label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.Source, e.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// inches converts pixels to inches for DOT spacing attributes, clamped to
// a sane minimum so degenerate option sets still produce a valid document.
func inches(px float64) float64 {
	const min = 0.1
	in := px / pointsPerInch
	if in < min {
		return min
	}
	return in
}

func renderXDOT(ctx context.Context, dot string) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return "", fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return buf.String(), nil
}

var (
	nodeStmtRe = regexp.MustCompile(`^\s*"((?:[^"\\]|\\.)*)"\s*\[`)
	posAttrRe  = regexp.MustCompile(`\bpos="(-?[0-9.]+),(-?[0-9.]+)"`)
)

// parsePositions extracts node center positions from xdot output.
//
// Node statements carry pos="x,y" in points with the origin at the bottom
// left; edge statements carry spline point lists (pos="e,...") and are
// skipped. Centers are converted to top-left corners and the y axis is
// flipped so y grows downward; Normalize fixes the frame afterwards.
func parsePositions(xdot string, opts Options) (map[string]Position, error) {
	positions := make(map[string]Position)

	for _, stmt := range strings.Split(xdot, ";") {
		if strings.Contains(stmt, "->") {
			continue
		}
		idMatch := nodeStmtRe.FindStringSubmatch(stmt)
		if idMatch == nil {
			continue
		}
		posMatch := posAttrRe.FindStringSubmatch(stmt)
		if posMatch == nil {
			continue
		}

		x, errX := strconv.ParseFloat(posMatch[1], 64)
		y, errY := strconv.ParseFloat(posMatch[2], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("malformed pos attribute %q", posMatch[0])
		}

		id := strings.ReplaceAll(idMatch[1], `\"`, `"`)
		positions[id] = Position{
			X: x - opts.NodeWidth/2,
			Y: -y - opts.NodeHeight/2,
		}
	}

	if len(positions) == 0 {
		return nil, ErrEmptyResult
	}
	return positions, nil
}
