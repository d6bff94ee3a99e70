package graph

import (
	"fmt"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/polyline"
)

// GetAllNodes returns every node, in the order nodes were supplied to
// Create.
//
// Complexity: O(1) (returns the backing slice; callers must not mutate
// it).
func (g *Graph) GetAllNodes() []*Node {
	return g.nodes
}

// GetAllEdges returns every edge, in the order edges were supplied to
// Create.
//
// Complexity: O(1) (returns the backing slice; callers must not mutate
// it).
func (g *Graph) GetAllEdges() []*Edge {
	return g.edges
}

// GetNode returns the node with the given Id, or ok == false if no such
// node exists. Unlike most other accessors, a missing Id here is not an
// error.
//
// Complexity: O(1).
func (g *Graph) GetNode(id Id) (node *Node, ok bool) {
	i, ok := g.nodeIndex[id]
	if !ok {
		return nil, false
	}

	return g.nodes[i], true
}

// GetEdge returns the edge with the given Id, or ok == false if no such
// edge exists. Unlike most other accessors, a missing Id here is not an
// error.
//
// Complexity: O(1).
func (g *Graph) GetEdge(id Id) (edge *Edge, ok bool) {
	i, ok := g.edgeIndex[id]
	if !ok {
		return nil, false
	}

	return g.edges[i], true
}

// GetEdgesOfNode returns the edges incident to nodeId, in the same order
// as node.EdgeIds (construction order; a self-loop appears twice).
//
// Complexity: O(deg(node)).
func (g *Graph) GetEdgesOfNode(nodeId Id) ([]*Edge, error) {
	node, ok := g.GetNode(nodeId)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownNodeId, nodeId)
	}
	out := make([]*Edge, len(node.EdgeIds))
	for i, eid := range node.EdgeIds {
		// node.EdgeIds was built from this Graph's own edges at
		// construction, so every lookup here is guaranteed to succeed.
		edge, _ := g.GetEdge(eid)
		out[i] = edge
	}

	return out, nil
}

// GetEndpointsOfEdge returns the start and end nodes of edgeId.
//
// Complexity: O(1).
func (g *Graph) GetEndpointsOfEdge(edgeId Id) (start, end *Node, err error) {
	edge, ok := g.GetEdge(edgeId)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownEdgeId, edgeId)
	}
	start, _ = g.GetNode(edge.StartNodeId)
	end, _ = g.GetNode(edge.EndNodeId)

	return start, end, nil
}

// GetOtherEndpoint returns the endpoint of edgeId that is not nodeId. If
// edgeId is a self-loop, nodeId must be that loop's sole endpoint, and
// the same node is returned.
//
// Complexity: O(1).
func (g *Graph) GetOtherEndpoint(edgeId, nodeId Id) (*Node, error) {
	edge, ok := g.GetEdge(edgeId)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEdgeId, edgeId)
	}
	switch nodeId {
	case edge.StartNodeId:
		node, _ := g.GetNode(edge.EndNodeId)
		return node, nil
	case edge.EndNodeId:
		node, _ := g.GetNode(edge.StartNodeId)
		return node, nil
	default:
		return nil, fmt.Errorf("%w: %v is not an endpoint of edge %v", ErrNotAnEndpoint, nodeId, edgeId)
	}
}

// GetNeighbors returns, for each edge incident to nodeId, the node at its
// other end (in the order GetEdgesOfNode returns those edges).
//
// Complexity: O(deg(node)).
func (g *Graph) GetNeighbors(nodeId Id) ([]*Node, error) {
	edges, err := g.GetEdgesOfNode(nodeId)
	if err != nil {
		return nil, err
	}
	out := make([]*Node, len(edges))
	for i, edge := range edges {
		// GetOtherEndpoint cannot fail: nodeId is by construction one of
		// edge's two endpoints, since edge came from GetEdgesOfNode(nodeId).
		other, _ := g.GetOtherEndpoint(edge.Id, nodeId)
		out[i] = other
	}

	return out, nil
}

// GetLocation resolves an EdgePoint to Cartesian coordinates.
//
// Out-of-range distances are tolerated, not rejected: distance < 0
// clamps to the start node's location, and distance >= edge.Length
// clamps to the end node's location. The >= comparison (not >) is
// deliberate: a distance exactly at Length returns the literal,
// bitwise-equal end-node location instead of being interpolated along
// the polyline, where floating-point round-off could produce a near-miss.
//
// Complexity: O(log n) in the number of locations on the edge.
func (g *Graph) GetLocation(point EdgePoint) (geom.Location, error) {
	edge, ok := g.GetEdge(point.EdgeId)
	if !ok {
		return geom.Location{}, fmt.Errorf("%w: %v", ErrUnknownEdgeId, point.EdgeId)
	}
	if point.Distance < 0 {
		start, _ := g.GetNode(edge.StartNodeId)
		return start.Location, nil
	}
	if point.Distance >= edge.Length {
		end, _ := g.GetNode(edge.EndNodeId)
		return end.Location, nil
	}

	i := polyline.FindFloorIndex(edge.LocationDistances, point.Distance)

	return geom.Intermediate(edge.Locations[i], edge.Locations[i+1], point.Distance-edge.LocationDistances[i]), nil
}
