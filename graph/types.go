package graph

import "github.com/dphilipson/graphs-and-paths/geom"

// SimpleNode is a single input vertex: an Id and its location.
type SimpleNode struct {
	Id       Id
	Location geom.Location
}

// SimpleEdge is a single input edge: an Id, its two endpoint node Ids, and
// an optional list of locations the polyline passes through between
// them. StartNodeId == EndNodeId is permitted and denotes a self-loop.
// InnerLocations may be nil; it is normalized to an empty slice on
// construction.
type SimpleEdge struct {
	Id            Id
	StartNodeId   Id
	EndNodeId     Id
	InnerLocations []geom.Location
}

// Node is a SimpleNode together with the derived Ids of every edge
// incident to it, in the order those edges were supplied at
// construction. A self-loop at this node appears twice in EdgeIds.
type Node struct {
	Id       Id
	Location geom.Location
	EdgeIds  []Id
}

// Edge is a SimpleEdge together with its derived polyline geometry.
//
// Locations is [start.Location] ++ InnerLocations ++ [end.Location], so
// len(Locations) >= 2. LocationDistances has the same length: element i
// is the cumulative Euclidean distance along Locations[0..i], so
// LocationDistances[0] == 0 and the last element equals Length.
type Edge struct {
	Id                Id
	StartNodeId       Id
	EndNodeId         Id
	InnerLocations    []geom.Location
	Length            float64
	Locations         []geom.Location
	LocationDistances []float64
}

// EdgePoint is a point on an edge, parameterized by distance from the
// edge's start node along its polyline. Callers should keep
// 0 <= Distance <= the edge's Length; GetLocation tolerates values
// outside that range by clamping to the nearest endpoint.
type EdgePoint struct {
	EdgeId   Id
	Distance float64
}

// OrientedEdge is an Edge together with a traversal direction: forward
// means the edge is walked from its start node to its end node.
type OrientedEdge struct {
	Edge      *Edge
	IsForward bool
}

// StartNodeId returns the node this oriented edge is walked away from.
func (oe OrientedEdge) StartNodeId() Id {
	if oe.IsForward {
		return oe.Edge.StartNodeId
	}

	return oe.Edge.EndNodeId
}

// EndNodeId returns the node this oriented edge is walked toward.
func (oe OrientedEdge) EndNodeId() Id {
	if oe.IsForward {
		return oe.Edge.EndNodeId
	}

	return oe.Edge.StartNodeId
}

// Path is a route between two EdgePoints: an ordered sequence of
// OrientedEdges, the interior junction Nodes between consecutive edges
// (so len(Nodes) == len(OrientedEdges)-1; endpoints are not included),
// the fully expanded, deduplicated polyline from Start to End, and the
// total signed length traversed.
type Path struct {
	Start        EdgePoint
	End          EdgePoint
	OrientedEdges []OrientedEdge
	Nodes        []*Node
	Locations    []geom.Location
	Length       float64
}

// ClosestPointMesh is a precomputed spatial index over a Graph's edge
// polylines, populated by the spatialindex package. It is stored here as
// an interface, rather than a concrete type, so that graph does not
// depend on spatialindex (which depends on graph and on an R-tree
// implementation); spatialindex.WithMesh attaches an implementation via
// Graph.WithClosestPointMesh.
type ClosestPointMesh interface {
	// NearestSample returns the edge Id and the index into that edge's
	// Locations/LocationDistances (such that the true closest point lies
	// on the segment [locationIndex, locationIndex+1]) for the mesh
	// sample nearest to loc. ok is false only when the mesh has no
	// samples at all.
	NearestSample(loc geom.Location) (edgeId Id, locationIndex int, ok bool)
}

// GraphOption configures a Graph as part of Create, applied after nodes
// and edges are validated and built. The lone option in this module,
// spatialindex.WithClosestPointMeshPrecision, lives in that package
// rather than here so that graph need not depend on spatialindex.
type GraphOption func(g *Graph) *Graph

// Graph is an immutable collection of Nodes and Edges plus an optional
// closest-point mesh. It is created once via Create and never mutated;
// every derived operation (Coalesced, connected components, mesh
// attachment) returns a fresh Graph value. Because nothing mutates a
// Graph after construction, concurrent readers need no synchronization.
type Graph struct {
	nodes      []*Node
	nodeIndex  map[Id]int
	edges      []*Edge
	edgeIndex  map[Id]int
	mesh       ClosestPointMesh
}

// WithClosestPointMesh returns a shallow copy of g with its closest-point
// mesh replaced by mesh. If g already carries a mesh, it is silently
// replaced — calling this twice (for instance through two
// spatialindex.WithMesh calls) keeps only the most recently attached mesh.
func (g *Graph) WithClosestPointMesh(mesh ClosestPointMesh) *Graph {
	cp := *g
	cp.mesh = mesh

	return &cp
}

// ClosestPointMesh returns g's attached mesh, if any.
func (g *Graph) ClosestPointMesh() (ClosestPointMesh, bool) {
	if g.mesh == nil {
		return nil, false
	}

	return g.mesh, true
}
