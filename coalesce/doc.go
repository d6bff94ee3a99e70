// Package coalesce collapses maximal chains of degree-2 nodes in a Graph
// into single polyline edges, producing a smaller but geometrically
// identical graph.
//
// A node of degree 2 that sits between exactly two edges carries no
// topological information beyond the shape of the path passing through
// it (no branch, no dead end), so routing and rendering can treat the
// whole chain as one edge. The one subtlety is an isolated simple
// cycle: a loop of degree-2 nodes with no other connection to the rest
// of the graph collapses to a single node with a self-loop edge,
// rather than disappearing entirely.
package coalesce
