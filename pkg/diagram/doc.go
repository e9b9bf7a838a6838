// Package diagram defines the architecture-diagram graph model.
//
// A diagram is a directed graph of typed components (Node) connected by
// labeled edges (Edge). The package owns serialization of diagrams and the
// [Prepare] step that validates a graph for layout: filtering malformed
// edges and building the adjacency indices every layout stage reuses.
//
// Diagrams come from untrusted generators, so [Prepare] is deliberately
// forgiving: dangling edges and self-loops are dropped rather than rejected.
package diagram
