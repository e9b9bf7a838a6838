package diagram

// Clean is a validated view of a Graph prepared for layout.
//
// Edges whose endpoints do not resolve to nodes, and self-loops, have been
// filtered out. Adjacency lists and the id→index side table are built once
// here and reused by every downstream layout stage, so nodes never need to
// hold live references to each other.
type Clean struct {
	Nodes []Node
	Edges []Edge

	// Outgoing and Incoming map a node ID to its neighbor IDs, in edge
	// insertion order. Both maps have an entry for every node.
	Outgoing map[string][]string
	Incoming map[string][]string

	// Index maps a node ID to its position in Nodes. Doubles as the
	// node's insertion order for deterministic tiebreaks.
	Index map[string]int
}

// Prepare validates a graph for layout.
//
// Dangling edges (either endpoint missing from the node set) and self-loops
// are dropped silently: upstream diagram generation is not fully trusted, and
// a malformed edge is a quality problem, not an error. The node list passes
// through untouched.
func Prepare(g Graph) Clean {
	c := Clean{
		Nodes:    g.Nodes,
		Edges:    make([]Edge, 0, len(g.Edges)),
		Outgoing: make(map[string][]string, len(g.Nodes)),
		Incoming: make(map[string][]string, len(g.Nodes)),
		Index:    make(map[string]int, len(g.Nodes)),
	}

	for i, n := range g.Nodes {
		c.Index[n.ID] = i
		c.Outgoing[n.ID] = nil
		c.Incoming[n.ID] = nil
	}

	for _, e := range g.Edges {
		if e.Source == e.Target {
			continue
		}
		if _, ok := c.Index[e.Source]; !ok {
			continue
		}
		if _, ok := c.Index[e.Target]; !ok {
			continue
		}
		c.Edges = append(c.Edges, e)
		c.Outgoing[e.Source] = append(c.Outgoing[e.Source], e.Target)
		c.Incoming[e.Target] = append(c.Incoming[e.Target], e.Source)
	}

	return c
}

// NodeCount returns the number of nodes.
func (c Clean) NodeCount() int { return len(c.Nodes) }

// EdgeCount returns the number of retained edges.
func (c Clean) EdgeCount() int { return len(c.Edges) }

// PosMap creates a position lookup map from a slice of node IDs.
// The returned map maps each ID to its index in the slice. This is commonly
// used to convert layer orderings into fast rank lookups for barycenter and
// crossing calculations.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}
