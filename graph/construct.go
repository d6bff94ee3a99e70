package graph

import (
	"fmt"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/polyline"
)

// Create validates nodes and edges and builds an immutable Graph.
//
// Validation, in order:
//  1. No two nodes may share an Id (ErrDuplicateNodeId).
//  2. No two edges may share an Id (ErrDuplicateEdgeId).
//  3. Every edge's StartNodeId and EndNodeId must reference a node in
//     nodes (ErrUnknownReferencedNode).
//
// Complexity: O(V + E) plus O(L) for the total number of locations across
// all edge polylines.
func Create(nodes []SimpleNode, edges []SimpleEdge, opts ...GraphOption) (*Graph, error) {
	nodeIndex := make(map[Id]int, len(nodes))
	out := &Graph{
		nodes:     make([]*Node, len(nodes)),
		nodeIndex: nodeIndex,
		edges:     make([]*Edge, 0, len(edges)),
		edgeIndex: make(map[Id]int, len(edges)),
	}

	for i, n := range nodes {
		if _, exists := nodeIndex[n.Id]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateNodeId, n.Id)
		}
		nodeIndex[n.Id] = i
		out.nodes[i] = &Node{Id: n.Id, Location: n.Location}
	}

	for _, e := range edges {
		if _, exists := out.edgeIndex[e.Id]; exists {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateEdgeId, e.Id)
		}
		startIdx, ok := nodeIndex[e.StartNodeId]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownReferencedNode, e.StartNodeId)
		}
		endIdx, ok := nodeIndex[e.EndNodeId]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrUnknownReferencedNode, e.EndNodeId)
		}

		builtEdge := buildEdge(e, out.nodes[startIdx].Location, out.nodes[endIdx].Location)
		out.edgeIndex[e.Id] = len(out.edges)
		out.edges = append(out.edges, builtEdge)

		out.nodes[startIdx].EdgeIds = append(out.nodes[startIdx].EdgeIds, e.Id)
		out.nodes[endIdx].EdgeIds = append(out.nodes[endIdx].EdgeIds, e.Id)
	}

	result := out
	for _, opt := range opts {
		result = opt(result)
	}

	return result, nil
}

// buildEdge derives Edge.Locations/LocationDistances/Length from a
// SimpleEdge and its resolved endpoint locations.
func buildEdge(e SimpleEdge, startLoc, endLoc geom.Location) *Edge {
	innerLocations := e.InnerLocations
	if innerLocations == nil {
		innerLocations = []geom.Location{}
	}

	locs := make([]geom.Location, 0, len(innerLocations)+2)
	locs = append(locs, startLoc)
	locs = append(locs, innerLocations...)
	locs = append(locs, endLoc)
	distances := polyline.CumulativeDistances(locs)

	return &Edge{
		Id:                e.Id,
		StartNodeId:       e.StartNodeId,
		EndNodeId:         e.EndNodeId,
		InnerLocations:    innerLocations,
		Length:            distances[len(distances)-1],
		Locations:         locs,
		LocationDistances: distances,
	}
}
