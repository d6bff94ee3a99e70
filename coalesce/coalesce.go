package coalesce

import (
	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
	"github.com/dphilipson/graphs-and-paths/polyline"
)

// Coalesced returns a new Graph in which every maximal chain of
// degree-2 nodes in g has been collapsed into a single edge. The result
// covers the same locations as g; it merely has fewer nodes and edges.
//
// Complexity: O(V + E) plus O(L) for the total number of locations
// across all edges, since every edge is visited a constant number of
// times regardless of chain length.
func Coalesced(g *graph.Graph) (*graph.Graph, error) {
	allEdges := g.GetAllEdges()
	remaining := make(map[graph.Id]bool, len(allEdges))
	for _, e := range allEdges {
		remaining[e.Id] = true
	}
	removedNodes := make(map[graph.Id]bool)

	newEdges := make([]graph.SimpleEdge, 0, len(allEdges))
	for _, e := range allEdges {
		if !remaining[e.Id] {
			continue
		}
		chain := maximalChain(g, e)
		if len(chain) == 1 {
			newEdges = append(newEdges, toSimpleEdge(e))
			delete(remaining, e.Id)
			continue
		}

		combined := buildCoalescedEdge(chain)
		newEdges = append(newEdges, combined)
		for _, oe := range chain {
			delete(remaining, oe.Edge.Id)
		}
		for _, nid := range interiorNodeIds(chain) {
			if nid != combined.StartNodeId && nid != combined.EndNodeId {
				removedNodes[nid] = true
			}
		}
	}

	oldNodes := g.GetAllNodes()
	newNodes := make([]graph.SimpleNode, 0, len(oldNodes))
	for _, n := range oldNodes {
		if removedNodes[n.Id] {
			continue
		}
		newNodes = append(newNodes, graph.SimpleNode{Id: n.Id, Location: n.Location})
	}

	return graph.Create(newNodes, newEdges)
}

func toSimpleEdge(e *graph.Edge) graph.SimpleEdge {
	return graph.SimpleEdge{
		Id:             e.Id,
		StartNodeId:    e.StartNodeId,
		EndNodeId:      e.EndNodeId,
		InnerLocations: e.InnerLocations,
	}
}

// maximalChain returns the maximal sequence of OrientedEdges formed by
// extending startEdge through degree-2 nodes in both directions, with
// startEdge itself oriented forward. If the forward extension loops
// back to startEdge, the chain is an isolated simple cycle and is
// returned without a duplicated closing element.
func maximalChain(g *graph.Graph, startEdge *graph.Edge) []graph.OrientedEdge {
	forward, closed := extend(g, graph.OrientedEdge{Edge: startEdge, IsForward: true}, startEdge.Id)
	if closed {
		return forward
	}
	backward, _ := extend(g, graph.OrientedEdge{Edge: startEdge, IsForward: false}, startEdge.Id)
	prefix := graph.ReverseOrientedEdges(backward[1:])

	return append(prefix, forward...)
}

// extend walks forward from seed for as long as the node it arrives at
// has degree exactly 2 and offers a distinct edge to continue onto.
// closedCycle reports whether the walk returned to startEdgeId, in
// which case chain does not include the duplicated closing element.
func extend(g *graph.Graph, seed graph.OrientedEdge, startEdgeId graph.Id) (chain []graph.OrientedEdge, closedCycle bool) {
	chain = []graph.OrientedEdge{seed}
	cur := seed
	for {
		nextNode := cur.EndNodeId()
		node, _ := g.GetNode(nextNode)
		if len(node.EdgeIds) != 2 {
			return chain, false
		}
		nextEdge, ok := otherEdgeAt(g, cur.Edge.Id, nextNode)
		if !ok {
			return chain, false
		}
		if nextEdge.Id == startEdgeId {
			return chain, true
		}
		oe := orientFrom(nextEdge, nextNode)
		chain = append(chain, oe)
		cur = oe
	}
}

// otherEdgeAt returns the edge incident to atNode other than fromEdgeId,
// given that atNode has exactly two incident edge slots. If both slots
// are fromEdgeId (atNode's only incident edge is a self-loop we just
// arrived on), there is no distinct edge to continue onto.
func otherEdgeAt(g *graph.Graph, fromEdgeId, atNode graph.Id) (*graph.Edge, bool) {
	incident, _ := g.GetEdgesOfNode(atNode)
	if incident[0].Id == fromEdgeId && incident[1].Id == fromEdgeId {
		return nil, false
	}
	if incident[0].Id == fromEdgeId {
		return incident[1], true
	}

	return incident[0], true
}

// orientFrom returns edge oriented so that its StartNodeId is atNode.
func orientFrom(edge *graph.Edge, atNode graph.Id) graph.OrientedEdge {
	return graph.OrientedEdge{Edge: edge, IsForward: edge.StartNodeId == atNode}
}

// interiorNodeIds returns every node visited strictly between the
// endpoints of consecutive edges in chain, i.e. every node a full
// traversal of the chain passes through other than its first start and
// last end.
func interiorNodeIds(chain []graph.OrientedEdge) []graph.Id {
	out := make([]graph.Id, 0, len(chain)-1)
	for i := 0; i < len(chain)-1; i++ {
		out = append(out, chain[i].EndNodeId())
	}

	return out
}

// buildCoalescedEdge concatenates the locations of every oriented edge
// in chain (reversing an edge's own locations when traversed backward)
// into a single polyline, and assigns the new edge the smallest Id
// among its constituents so that coalescing a graph is deterministic.
func buildCoalescedEdge(chain []graph.OrientedEdge) graph.SimpleEdge {
	id := chain[0].Edge.Id
	for _, oe := range chain[1:] {
		id = graph.MinId(id, oe.Edge.Id)
	}

	var combined []geom.Location
	for _, oe := range chain {
		locs := oe.Edge.Locations
		if !oe.IsForward {
			locs = reverseLocations(locs)
		}
		combined = append(combined, locs...)
	}
	combined = polyline.DedupeLocations(combined)

	return graph.SimpleEdge{
		Id:             id,
		StartNodeId:    chain[0].StartNodeId(),
		EndNodeId:      chain[len(chain)-1].EndNodeId(),
		InnerLocations: combined[1 : len(combined)-1],
	}
}

func reverseLocations(locs []geom.Location) []geom.Location {
	out := make([]geom.Location, len(locs))
	for i, l := range locs {
		out[len(locs)-1-i] = l
	}

	return out
}
