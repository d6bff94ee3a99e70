// Package connectivity enumerates the connected components of a Graph.
//
// A component groups every node reachable from another by some path of
// edges, regardless of edge direction (the graph is undirected).
// Enumeration walks the graph with a queue rather than recursion, and
// reports nodes and edges in the order the parent Graph returns them,
// not in visit order.
package connectivity
