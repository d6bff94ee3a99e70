// Package polyline provides arithmetic over sequences of geom.Location
// that make up an edge's geometry: cumulative-distance tables, floor-index
// lookup into those tables, and deduplication of repeated consecutive
// points produced when polyline slices are concatenated across a shared
// endpoint.
package polyline
