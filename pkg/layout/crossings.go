package layout

import (
	"maps"
	"slices"

	"github.com/archplane/archplane/pkg/diagram"
)

// CountCrossings returns the total number of edge crossings for the given
// layer orderings. It sums the crossings between each pair of consecutive
// layers. The orders map should contain node IDs in top-to-bottom order for
// each layer, as produced by [MinimizeCrossings].
//
// Used for debug reporting and for asserting that refinement does not make
// an ordering worse; the engine itself never branches on the count.
func CountCrossings(c diagram.Clean, orders map[int][]string) int {
	layers := slices.Sorted(maps.Keys(orders))
	crossings := 0
	for i := 0; i < len(layers)-1; i++ {
		crossings += countLayerCrossings(c, orders[layers[i]], orders[layers[i+1]])
	}
	return crossings
}

// countLayerCrossings counts edge crossings between two adjacent layers
// using a Fenwick tree for O(E log V) inversion counting. Two edges (u1,v1)
// and (u2,v2) cross iff pos(u1) < pos(u2) and pos(v1) > pos(v2), so sorting
// edges by source position reduces the problem to counting inversions in
// the sequence of target positions.
func countLayerCrossings(c diagram.Clean, upper, lower []string) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := diagram.PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, id := range upper {
		for _, child := range c.Outgoing[id] {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
