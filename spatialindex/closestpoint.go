package spatialindex

import (
	"log"
	"math"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
)

// GetClosestPoint returns the EdgePoint of g nearest to location.
//
// If g carries a mesh (see BuildMesh/WithMesh), the answer comes from a
// single R-tree nearest-neighbor query followed by an exact refinement
// against the one polyline segment the matched sample sits on:
// O(log n). The refinement is exact up to the mesh's precision, since
// the true closest point is guaranteed to lie within precision of some
// sample.
//
// Without a mesh, GetClosestPoint falls back to a linear scan of every
// segment of every edge, which is exact but O(|edges|·|segments|); this
// is logged as a warning since it defeats the purpose of the index for
// large graphs.
func GetClosestPoint(g *graph.Graph, location geom.Location) (graph.EdgePoint, error) {
	if mesh, ok := g.ClosestPointMesh(); ok {
		return closestPointWithMesh(g, mesh, location)
	}

	return closestPointByScan(g, location)
}

func closestPointWithMesh(g *graph.Graph, mesh graph.ClosestPointMesh, location geom.Location) (graph.EdgePoint, error) {
	edgeId, locationIndex, ok := mesh.NearestSample(location)
	if !ok {
		return graph.EdgePoint{}, ErrEmptyGraph
	}
	edge, _ := g.GetEdge(edgeId)
	proj := geom.ClosestPointOnSegment(location, edge.Locations[locationIndex], edge.Locations[locationIndex+1])

	return graph.EdgePoint{
		EdgeId:   edgeId,
		Distance: edge.LocationDistances[locationIndex] + proj.DistanceDownSegment,
	}, nil
}

func closestPointByScan(g *graph.Graph, location geom.Location) (graph.EdgePoint, error) {
	edges := g.GetAllEdges()
	if len(edges) == 0 {
		return graph.EdgePoint{}, ErrEmptyGraph
	}
	log.Printf("spatialindex: GetClosestPoint without a mesh scans every segment of every edge (O(|edges|*|segments|)); call BuildMesh for large graphs")

	var (
		bestEdgeId graph.Id
		bestDist   float64
		bestAway   = math.Inf(1)
	)
	for _, edge := range edges {
		for i := 0; i < len(edge.Locations)-1; i++ {
			proj := geom.ClosestPointOnSegment(location, edge.Locations[i], edge.Locations[i+1])
			if proj.DistanceFromPoint < bestAway {
				bestAway = proj.DistanceFromPoint
				bestEdgeId = edge.Id
				bestDist = edge.LocationDistances[i] + proj.DistanceDownSegment
			}
		}
	}

	return graph.EdgePoint{EdgeId: bestEdgeId, Distance: bestDist}, nil
}
