// Package geom provides the Euclidean primitives the rest of this module
// builds on: 2-D locations, point-to-point distance, interpolation along a
// segment, and projection of a point onto a segment.
//
// Everything here is a pure function over float64 coordinates; nothing in
// this package allocates beyond its return value, and nothing can fail.
package geom
