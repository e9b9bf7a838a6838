package layout

import "github.com/archplane/archplane/pkg/diagram"

// AssignDepths computes a layer (depth) for every node using a longest-path
// topological traversal (Kahn's algorithm).
//
// Source nodes (in-degree 0) start at depth 0. Each node lands at one plus
// the maximum depth of any of its parents, so for an acyclic graph every
// retained edge points to a strictly deeper layer.
//
// # Cycles
//
// Kahn's algorithm never visits nodes on a cycle: their in-degree never
// reaches zero, so the queue drains with them unassigned. Rather than
// failing, those nodes receive a fallback depth so that every downstream
// stage stays well-defined. The fallback is a cheap proxy, not a structural
// answer: the node's advisory input x divided by the column gap when
// positive, otherwise its insertion index. Layering quality for cyclic
// components is explicitly weaker; totality is the contract.
//
// The columnGap parameter is the effective column spacing used to translate
// advisory x coordinates into a column index. It must be positive.
func AssignDepths(c diagram.Clean, columnGap float64) map[string]int {
	depths := make(map[string]int, len(c.Nodes))
	inDegree := make(map[string]int, len(c.Nodes))
	queue := make([]string, 0, len(c.Nodes))

	for _, n := range c.Nodes {
		degree := len(c.Incoming[n.ID])
		inDegree[n.ID] = degree
		if degree == 0 {
			depths[n.ID] = 0
			queue = append(queue, n.ID)
		}
	}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range c.Outgoing[curr] {
			if d := depths[curr] + 1; d > depths[child] {
				depths[child] = d
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	// Nodes still above zero in-degree sit on a cycle.
	for _, n := range c.Nodes {
		if inDegree[n.ID] > 0 {
			depths[n.ID] = fallbackDepth(n, c.Index[n.ID], columnGap)
		}
	}

	return depths
}

// fallbackDepth derives a depth for a node unreachable by topological
// processing. Advisory x wins when it carries any signal; insertion order
// is the last resort. Never negative.
func fallbackDepth(n diagram.Node, index int, columnGap float64) int {
	if n.X > 0 && columnGap > 0 {
		return int(n.X / columnGap)
	}
	if index < 0 {
		return 0
	}
	return index
}
