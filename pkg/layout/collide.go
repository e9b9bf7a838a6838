package layout

import (
	"math"

	"github.com/archplane/archplane/pkg/diagram"
)

// collisionPasses is fixed: two sweeps settle the chains of overlap that a
// single push can create, and the expected graph sizes (tens of nodes) make
// the O(n²) pair scan irrelevant.
const collisionPasses = 2

// ResolveCollisions nudges overlapping nodes apart after placement.
//
// Each pass examines every node pair, treating nodes as axis-aligned boxes
// of the configured width and height plus the collision margin. When both
// axes overlap, the node with the larger y is pushed further down by
// (height + margin); on an exact y tie the later node of the pair moves.
// Only vertical spacing changes, so the left-to-right order established by
// crossing minimization is preserved.
//
// The slice is modified in place and returned for convenience.
func ResolveCollisions(nodes []diagram.Node, cfg Config) []diagram.Node {
	minDX := cfg.NodeWidth + cfg.CollisionMargin
	minDY := cfg.NodeHeight + cfg.CollisionMargin

	for pass := 0; pass < collisionPasses; pass++ {
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				a, b := &nodes[i], &nodes[j]
				if math.Abs(a.X-b.X) >= minDX || math.Abs(a.Y-b.Y) >= minDY {
					continue
				}
				switch {
				case a.Y > b.Y:
					a.Y += minDY
				default:
					b.Y += minDY
				}
			}
		}
	}

	return nodes
}
