// Package graph defines the central Id, Node, Edge, EdgePoint,
// OrientedEdge, Path, and Graph types for an immutable planar graph whose
// edges are polylines, along with the construction entry point (Create)
// and the read-only accessors derived from it.
//
// A Graph is built once and never mutated; GetNode/GetEdge report
// absence via a comma-ok return rather than an error, while every other
// accessor returns a sentinel error (wrapped with the offending Id) when
// given an Id the Graph does not contain.
package graph
