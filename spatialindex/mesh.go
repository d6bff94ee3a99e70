package spatialindex

import (
	"fmt"
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
	"github.com/dphilipson/graphs-and-paths/polyline"
)

// rectEpsilon is the side length used for a sample's degenerate,
// point-sized R-tree bounding rectangle; rtreego rejects zero-length
// sides outright.
const rectEpsilon = 1e-9

// sample is one point recorded in the mesh: its location, the edge it
// lies on, and the index into that edge's Locations/LocationDistances of
// the polyline vertex at or immediately before it.
type sample struct {
	location      geom.Location
	edgeId        graph.Id
	locationIndex int
}

// Bounds implements rtreego.Spatial as a degenerate rectangle centered on
// the sample's location.
func (s sample) Bounds() rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{s.location.X - rectEpsilon/2, s.location.Y - rectEpsilon/2},
		[]float64{rectEpsilon, rectEpsilon},
	)
	if err != nil {
		panic(fmt.Sprintf("spatialindex: degenerate sample rect: %v", err))
	}

	return rect
}

// Mesh is a graph.ClosestPointMesh backed by an R-tree of samples taken
// along every edge of a Graph at roughly Precision intervals.
type Mesh struct {
	tree  *rtreego.Rtree
	count int
}

// BuildMesh samples g's edges at roughly precision intervals (one sample
// every precision units of arc length, plus one sample at every node
// that has at least one incident edge)
// and bulk-loads them into an R-tree.
//
// precision must be positive; it bounds the worst-case error of
// GetClosestPoint's refinement step.
//
// Complexity: O(totalEdgeLength/precision + |edges| + |nodes|) to build.
func BuildMesh(g *graph.Graph, precision float64) (*Mesh, error) {
	if precision <= 0 {
		return nil, fmt.Errorf("spatialindex: precision must be positive, got %v", precision)
	}

	var samples []rtreego.Spatial
	for _, node := range g.GetAllNodes() {
		if len(node.EdgeIds) == 0 {
			continue
		}
		edge, _ := g.GetEdge(node.EdgeIds[0])
		locationIndex := 0
		if node.Id != edge.StartNodeId {
			locationIndex = len(edge.Locations) - 2
		}
		samples = append(samples, sample{
			location:      node.Location,
			edgeId:        edge.Id,
			locationIndex: locationIndex,
		})
	}

	for _, edge := range g.GetAllEdges() {
		n := int(math.Ceil(edge.Length / precision))
		if n <= 0 {
			continue
		}
		step := edge.Length / float64(n)
		for i := 1; i < n; i++ {
			d := float64(i) * step
			loc, err := g.GetLocation(graph.EdgePoint{EdgeId: edge.Id, Distance: d})
			if err != nil {
				return nil, err
			}
			samples = append(samples, sample{
				location:      loc,
				edgeId:        edge.Id,
				locationIndex: polyline.FindFloorIndex(edge.LocationDistances, d),
			})
		}
	}

	tree := rtreego.NewTree(2, 25, 50, samples...)

	return &Mesh{tree: tree, count: len(samples)}, nil
}

// NearestSample implements graph.ClosestPointMesh.
func (m *Mesh) NearestSample(loc geom.Location) (graph.Id, int, bool) {
	if m.count == 0 {
		return graph.Id{}, 0, false
	}
	nearest := m.tree.NearestNeighbor(rtreego.Point{loc.X, loc.Y}).(sample)

	return nearest.edgeId, nearest.locationIndex, true
}
