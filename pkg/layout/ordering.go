package layout

import (
	"fmt"
	"maps"
	"slices"

	"github.com/archplane/archplane/pkg/diagram"
)

// MinimizeCrossings orders the nodes within each layer to reduce edge
// crossings using the Sugiyama-style barycenter heuristic.
//
// Layers are initialized by (lane, advisory input y, insertion order), then
// refined for a fixed number of passes alternating forward sweeps (each
// layer ordered by the mean rank of its parents in the previous, already
// committed layer) and backward sweeps (mean rank of children in the next
// layer). A node without neighbors in the adjacent layer keeps its current
// index. A lane-bias term is added before sorting so ties between nodes
// with identical neighbor structure break by category rather than
// arbitrarily.
//
// Crossing minimization is NP-hard; this converges to a visually acceptable
// order, not an optimal one. The fixed pass count and fixed tie-break make
// it fully deterministic.
//
// Every node in c must have an entry in depths: a missing entry is an
// internal invariant breach and panics.
func MinimizeCrossings(c diagram.Clean, depths map[string]int, cfg Config) map[int][]string {
	layers := buildLayers(c, depths)
	if len(layers) == 0 {
		return layers
	}

	layerIDs := slices.Sorted(maps.Keys(layers))
	ranks := rankTable(layers)

	for pass := 0; pass < cfg.Passes; pass++ {
		// Forward: order each layer by parent ranks above it.
		for i := 1; i < len(layerIDs); i++ {
			d := layerIDs[i]
			sortByBarycenter(layers[d], ranks, c.Incoming, depths, layerIDs[i-1], cfg.LaneBias, c)
			ranks = rankTable(layers)
		}
		// Backward: order each layer by child ranks below it.
		for i := len(layerIDs) - 2; i >= 0; i-- {
			d := layerIDs[i]
			sortByBarycenter(layers[d], ranks, c.Outgoing, depths, layerIDs[i+1], cfg.LaneBias, c)
			ranks = rankTable(layers)
		}
	}

	return layers
}

// buildLayers groups node IDs by depth and applies the initial ordering.
func buildLayers(c diagram.Clean, depths map[string]int) map[int][]string {
	layers := make(map[int][]string)
	for _, n := range c.Nodes {
		d, ok := depths[n.ID]
		if !ok {
			panic(fmt.Sprintf("layout: node %q missing from depth map", n.ID))
		}
		layers[d] = append(layers[d], n.ID)
	}

	for d := range layers {
		slices.SortStableFunc(layers[d], func(a, b string) int {
			na, nb := c.Nodes[c.Index[a]], c.Nodes[c.Index[b]]
			if la, lb := LaneOf(na.Category), LaneOf(nb.Category); la != lb {
				return la - lb
			}
			if na.Y != nb.Y {
				if na.Y < nb.Y {
					return -1
				}
				return 1
			}
			return c.Index[a] - c.Index[b]
		})
	}

	return layers
}

// rankTable snapshots the committed rank of every node in every layer.
// Each sweep reads the previous snapshot and the next sweep sees a fresh
// one, keeping passes order-independent within themselves.
func rankTable(layers map[int][]string) map[string]int {
	ranks := make(map[string]int)
	for _, ids := range layers {
		for i, id := range ids {
			ranks[id] = i
		}
	}
	return ranks
}

// sortByBarycenter reorders layer in place by the biased barycenter of each
// node's neighbors in the adjacent layer adjDepth.
func sortByBarycenter(layer []string, ranks map[string]int, neighbors map[string][]string, depths map[string]int, adjDepth int, laneBias float64, c diagram.Clean) {
	bary := make(map[string]float64, len(layer))
	for i, id := range layer {
		sum, count := 0.0, 0
		for _, nb := range neighbors[id] {
			if depths[nb] == adjDepth {
				sum += float64(ranks[nb])
				count++
			}
		}
		b := float64(i)
		if count > 0 {
			b = sum / float64(count)
		}
		bary[id] = b + laneBias*float64(LaneOf(c.Nodes[c.Index[id]].Category))
	}

	slices.SortStableFunc(layer, func(a, b string) int {
		switch {
		case bary[a] < bary[b]:
			return -1
		case bary[a] > bary[b]:
			return 1
		default:
			return ranks[a] - ranks[b]
		}
	})
}
