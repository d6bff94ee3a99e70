// Package pathops advances a Location polyline or a graph.Path by a fixed
// distance from its start, trimming consumed geometry and re-deriving the
// shortened result's boundary EdgePoint along the way.
package pathops
