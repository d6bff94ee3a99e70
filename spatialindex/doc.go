// Package spatialindex attaches an R-tree-backed nearest-sample index to a
// Graph, so that GetClosestPoint can answer "which edge, and where on it,
// is nearest to this location" without a linear scan over every edge's
// polyline.
//
// The index stores a bounded grid of samples along each edge rather than
// the raw polyline vertices, trading a small, precision-tunable error for
// O(log n) lookups: see BuildMesh for how samples are chosen and
// GetClosestPoint for how a sample is refined into an exact answer.
package spatialindex
