package geom

import "math"

// Location is a finite 2-D Cartesian point. Equality is bitwise float
// equality, matching the data model's definition of Location: two
// Locations are equal iff their X and Y components compare == under
// IEEE-754, not "close enough".
type Location struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Location) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	return math.Hypot(dx, dy)
}

// Intermediate returns the point at distance d along the segment from a to
// b, clamped to the segment: d <= 0 returns a, d >= Distance(a, b) returns
// b. If a == b the segment has zero length and Intermediate always
// returns a, regardless of d (the early return on L == 0 skips the
// t = d/L division, which could otherwise produce NaN).
//
// Complexity: O(1).
func Intermediate(a, b Location, d float64) Location {
	length := Distance(a, b)
	if length == 0 {
		return a
	}
	t := clamp(d/length, 0, 1)

	return Location{
		X: (1-t)*a.X + t*b.X,
		Y: (1-t)*a.Y + t*b.Y,
	}
}

// SegmentProjection is the result of projecting a query point onto a
// segment: how far down the segment the closest point lies, and how far
// the query point is from that closest point.
type SegmentProjection struct {
	DistanceDownSegment float64
	DistanceFromPoint   float64
}

// ClosestPointOnSegment projects p onto the line through a and b, clamps
// the projection parameter to [0, 1] so the result lies on the segment
// (not its infinite extension), and reports both how far down the segment
// that closest point is and how far p is from it. If a == b the segment
// is a single point and the projection is trivially a, at distance zero
// down the segment.
//
// Complexity: O(1).
func ClosestPointOnSegment(p, a, b Location) SegmentProjection {
	abx, aby := b.X-a.X, b.Y-a.Y
	segLen := math.Hypot(abx, aby)
	if segLen == 0 {
		return SegmentProjection{DistanceDownSegment: 0, DistanceFromPoint: Distance(p, a)}
	}

	apx, apy := p.X-a.X, p.Y-a.Y
	t := clamp((apx*abx+apy*aby)/(segLen*segLen), 0, 1)
	closest := Location{X: a.X + t*abx, Y: a.Y + t*aby}

	return SegmentProjection{
		DistanceDownSegment: t * segLen,
		DistanceFromPoint:   Distance(p, closest),
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
