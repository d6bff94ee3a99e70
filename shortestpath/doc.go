// Package shortestpath computes the shortest Path between two EdgePoints
// of a Graph using A* search, treating each endpoint's edge as two
// partial legs attached to the graph's vertices rather than searching
// vertex to vertex directly.
//
// The search heuristic is straight-line distance to the goal's
// Cartesian location, which is admissible and consistent for Euclidean
// coordinates. The returned Path is always canonicalized: zero-length
// boundary artifacts introduced by representing an endpoint as a point
// partway along an edge are trimmed away.
package shortestpath
