package pathops

import (
	"fmt"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
)

// AdvanceAlongLocations returns the sub-polyline of locs that remains
// after walking d along it from locs[0], splitting the segment straddling
// that distance rather than landing only on existing vertices.
//
// Complexity: O(n).
func AdvanceAlongLocations(locs []geom.Location, d float64) ([]geom.Location, error) {
	if d < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeDistance, d)
	}
	if d == 0 {
		return locs, nil
	}

	remaining := d
	for i := 0; i < len(locs)-1; i++ {
		segLen := geom.Distance(locs[i], locs[i+1])
		if remaining < segLen {
			split := geom.Intermediate(locs[i], locs[i+1], remaining)
			out := make([]geom.Location, 0, len(locs)-i)
			out = append(out, split)
			out = append(out, locs[i+1:]...)

			return out, nil
		}
		remaining -= segLen
	}

	return []geom.Location{locs[len(locs)-1]}, nil
}

// AdvanceAlongPath returns the suffix of path remaining after walking d
// from its start, dropping any oriented edges fully consumed along the
// way and re-deriving start, nodes, and locations to match.
//
// Complexity: O(|path.OrientedEdges| + |path.Locations|).
func AdvanceAlongPath(path graph.Path, d float64) (graph.Path, error) {
	if d < 0 {
		return graph.Path{}, fmt.Errorf("%w: %v", ErrNegativeDistance, d)
	}
	if d == 0 {
		return path, nil
	}
	if d >= path.Length {
		return terminalPath(path), nil
	}

	orientedEdges := append([]graph.OrientedEdge{}, path.OrientedEdges...)
	nodes := append([]*graph.Node{}, path.Nodes...)
	start := path.Start
	remaining := d

	for len(orientedEdges) > 1 {
		oe := orientedEdges[0]
		edgeRemaining := remainingOnEdge(oe, start)
		if remaining < edgeRemaining {
			break
		}
		remaining -= edgeRemaining
		orientedEdges = orientedEdges[1:]
		nodes = nodes[1:]
		start = boundaryEdgePoint(orientedEdges[0])
	}

	first := orientedEdges[0]
	if first.IsForward {
		start = graph.EdgePoint{EdgeId: first.Edge.Id, Distance: start.Distance + remaining}
	} else {
		start = graph.EdgePoint{EdgeId: first.Edge.Id, Distance: start.Distance - remaining}
	}

	locations, err := AdvanceAlongLocations(path.Locations, d)
	if err != nil {
		return graph.Path{}, err
	}

	return graph.Path{
		Start:         start,
		End:           path.End,
		OrientedEdges: orientedEdges,
		Nodes:         nodes,
		Locations:     locations,
		Length:        path.Length - d,
	}, nil
}

// remainingOnEdge is how far start is from the far boundary of oe, in the
// direction oe is traversed.
func remainingOnEdge(oe graph.OrientedEdge, start graph.EdgePoint) float64 {
	if oe.IsForward {
		return oe.Edge.Length - start.Distance
	}

	return start.Distance
}

// boundaryEdgePoint returns the EdgePoint at the near boundary of oe, the
// point a traversal of oe begins from.
func boundaryEdgePoint(oe graph.OrientedEdge) graph.EdgePoint {
	if oe.IsForward {
		return graph.EdgePoint{EdgeId: oe.Edge.Id, Distance: 0}
	}

	return graph.EdgePoint{EdgeId: oe.Edge.Id, Distance: oe.Edge.Length}
}

// terminalPath collapses path to a single point at its End, per the
// "d >= length" case, mirroring the canonicalization single-point
// collapse this result is consistent with.
func terminalPath(path graph.Path) graph.Path {
	last := path.OrientedEdges[len(path.OrientedEdges)-1]
	lastLoc := path.Locations[len(path.Locations)-1]

	return graph.Path{
		Start:         path.End,
		End:           path.End,
		OrientedEdges: []graph.OrientedEdge{last},
		Nodes:         nil,
		Locations:     []geom.Location{lastLoc},
		Length:        0,
	}
}
