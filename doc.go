// Package graphsandpaths is an immutable, planar-graph geometry library:
// vertices carry 2-D Cartesian locations, edges are polylines, and the
// library answers geometric and topological queries against that graph.
//
// What it does:
//
//	geom/          — Euclidean primitives: distance, interpolation, segment projection
//	polyline/       — cumulative-distance tables, floor-index lookup, dedup
//	graph/          — Id, Node, Edge, EdgePoint, Path, Graph and their accessors
//	coalesce/       — collapse degree-2 chains into single polyline edges
//	connectivity/   — connected-component enumeration
//	shortestpath/   — A* over edge-point endpoints, with full geometric trace
//	pathops/        — advance a path (or a raw location list) by a distance
//	spatialindex/   — R-tree mesh for approximate-then-exact closest-point queries
//
// A Graph is built once via graph.Create and never mutated afterwards;
// every derived view (coalesced graphs, connected components, meshed
// graphs) is a fresh, independent value. Multiple goroutines may read a
// Graph concurrently without synchronization — there is nothing to
// synchronize against, since nothing mutates it.
//
//	go get github.com/dphilipson/graphs-and-paths
package graphsandpaths
