package polyline

import (
	"sort"

	"github.com/dphilipson/graphs-and-paths/geom"
)

// CumulativeDistances returns, for each index i of locs, the Euclidean
// length of the polyline locs[0..i]. The result has the same length as
// locs; CumulativeDistances(locs)[0] is always 0.
//
// Complexity: O(n).
func CumulativeDistances(locs []geom.Location) []float64 {
	out := make([]float64, len(locs))
	for i := 1; i < len(locs); i++ {
		out[i] = out[i-1] + geom.Distance(locs[i-1], locs[i])
	}

	return out
}

// FindFloorIndex returns the largest index i such that sorted[i] <= x, or
// -1 if x is strictly less than every element. sorted must be
// non-decreasing; callers pass in a CumulativeDistances table, which
// always satisfies this.
//
// Complexity: O(log n).
func FindFloorIndex(sorted []float64, x float64) int {
	// sort.Search finds the smallest i for which sorted[i] > x; the floor
	// index is one less than that.
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] > x })

	return i - 1
}

// DedupeLocations collapses runs of bitwise-identical consecutive
// locations to a single copy. Used whenever polyline slices are
// concatenated across a shared endpoint, which would otherwise double
// that point.
//
// Complexity: O(n).
func DedupeLocations(locs []geom.Location) []geom.Location {
	if len(locs) == 0 {
		return locs
	}
	out := make([]geom.Location, 0, len(locs))
	out = append(out, locs[0])
	for _, loc := range locs[1:] {
		if loc != out[len(out)-1] {
			out = append(out, loc)
		}
	}

	return out
}
