package shortestpath

import "github.com/dphilipson/graphs-and-paths/graph"

// canonicalize implements §4.6.5: it normalizes the zero-length
// prefix/suffix artifacts created when an endpoint falls exactly at one
// of its edge's own vertices.
func canonicalize(g *graph.Graph, path graph.Path) graph.Path {
	first := path.OrientedEdges[0]
	last := path.OrientedEdges[len(path.OrientedEdges)-1]

	prefixTrivial := (first.IsForward && path.Start.Distance >= first.Edge.Length) ||
		(!first.IsForward && path.Start.Distance <= 0)
	suffixTrivial := (last.IsForward && path.End.Distance <= 0) ||
		(!last.IsForward && path.End.Distance >= last.Edge.Length)

	if !prefixTrivial && !suffixTrivial {
		return path
	}
	if prefixTrivial && suffixTrivial && len(path.Nodes) == 1 {
		return singlePointPath(g, path)
	}

	orientedEdges := append([]graph.OrientedEdge{}, path.OrientedEdges...)
	nodes := append([]*graph.Node{}, path.Nodes...)
	start := path.Start
	end := path.End

	if prefixTrivial && len(orientedEdges) > 1 {
		orientedEdges = orientedEdges[1:]
		nodes = nodes[1:]
		start = boundaryEdgePoint(orientedEdges[0], true)
	}
	if suffixTrivial && len(orientedEdges) > 1 {
		orientedEdges = orientedEdges[:len(orientedEdges)-1]
		nodes = nodes[:len(nodes)-1]
		end = boundaryEdgePoint(orientedEdges[len(orientedEdges)-1], false)
	}

	path.Start = start
	path.End = end
	path.OrientedEdges = orientedEdges
	path.Nodes = nodes
	path.Locations = buildLocations(g, orientedEdges, start, end)

	return path
}

// boundaryEdgePoint returns the EdgePoint at the near boundary of oe
// (distance 0 or Length depending on orientation), used when oe becomes
// the new first or last oriented edge of a canonicalized path.
// atStart indicates whether oe is becoming the new first edge (its
// near boundary is where the path now begins) as opposed to the new
// last edge (its near boundary is where the path now ends).
func boundaryEdgePoint(oe graph.OrientedEdge, atStart bool) graph.EdgePoint {
	forward := oe.IsForward
	if !atStart {
		forward = !forward
	}
	if forward {
		return graph.EdgePoint{EdgeId: oe.Edge.Id, Distance: 0}
	}

	return graph.EdgePoint{EdgeId: oe.Edge.Id, Distance: oe.Edge.Length}
}

// singlePointPath collapses path to a single-point path at its End,
// keeping only the last oriented edge, per the "both trivial, one
// interior node" case of §4.6.5.
func singlePointPath(g *graph.Graph, path graph.Path) graph.Path {
	last := path.OrientedEdges[len(path.OrientedEdges)-1]
	collapsed := graph.Path{
		Start:         path.End,
		End:           path.End,
		OrientedEdges: []graph.OrientedEdge{last},
		Nodes:         nil,
		Length:        0,
	}
	collapsed.Locations = buildLocations(g, collapsed.OrientedEdges, collapsed.Start, collapsed.End)

	return collapsed
}
