package layout

import (
	"maps"
	"slices"

	"github.com/archplane/archplane/pkg/diagram"
)

// Place maps the ordered layers onto canvas coordinates:
//
//	x = paddingX + depth * columnGap
//	y = paddingY + rank  * rowGap
//
// Gaps are compacted for unusual shapes to keep the diagram inside a
// practical viewport: graphs with fewer than CompactDepthBelow layers get
// tighter columns, graphs with more than CompactNodesAbove nodes get
// tighter rows. The thresholds are tuned constants, configurable but not
// derived from anything deeper.
//
// The returned slice is a clone of c.Nodes with only X and Y rewritten;
// the input graph is never mutated.
func Place(c diagram.Clean, orders map[int][]string, cfg Config) []diagram.Node {
	nodes := slices.Clone(c.Nodes)
	colGap, rowGap := effectiveGaps(len(orders), len(nodes), cfg)

	layers := slices.Sorted(maps.Keys(orders))
	for col, d := range layers {
		for rank, id := range orders[d] {
			n := &nodes[c.Index[id]]
			n.X = cfg.PaddingX + float64(col)*colGap
			n.Y = cfg.PaddingY + float64(rank)*rowGap
		}
	}

	return nodes
}

// effectiveGaps applies shape-based compaction to the configured gaps.
func effectiveGaps(layerCount, nodeCount int, cfg Config) (colGap, rowGap float64) {
	colGap, rowGap = cfg.ColumnGap, cfg.RowGap
	if layerCount < cfg.CompactDepthBelow {
		colGap *= cfg.CompactFactor
	}
	if nodeCount > cfg.CompactNodesAbove {
		rowGap *= cfg.CompactFactor
	}
	return colGap, rowGap
}
