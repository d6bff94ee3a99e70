package shortestpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
	"github.com/dphilipson/graphs-and-paths/polyline"
)

// GetShortestPath returns the shortest Path from start to end within g.
// start and end are EdgePoints, not vertices: the search treats both
// endpoints of each one's edge as candidate graph vertices, with the
// partial leg along that edge folded into the total cost.
//
// Complexity: O((V + E) log V) for the A* search, plus O(P) to
// reconstruct and canonicalize a path of P locations.
func GetShortestPath(g *graph.Graph, start, end graph.EdgePoint) (graph.Path, error) {
	startEdge, ok := g.GetEdge(start.EdgeId)
	if !ok {
		return graph.Path{}, fmt.Errorf("%w: unknown start edge %v", graph.ErrUnknownEdgeId, start.EdgeId)
	}
	endEdge, ok := g.GetEdge(end.EdgeId)
	if !ok {
		return graph.Path{}, fmt.Errorf("%w: unknown end edge %v", graph.ErrUnknownEdgeId, end.EdgeId)
	}
	endLocation, err := g.GetLocation(end)
	if err != nil {
		return graph.Path{}, err
	}

	distFromStart := make(map[graph.Id]float64, len(g.GetAllNodes()))
	for _, n := range g.GetAllNodes() {
		distFromStart[n.Id] = math.Inf(1)
	}
	cameFrom := make(map[graph.Id]*graph.Edge)
	done := make(map[graph.Id]bool)

	pq := &nodePQ{}
	heap.Init(pq)
	heuristic := func(nodeId graph.Id) float64 {
		node, _ := g.GetNode(nodeId)
		return geom.Distance(node.Location, endLocation)
	}
	relaxInit := func(nodeId graph.Id, dist float64) {
		if dist < distFromStart[nodeId] {
			distFromStart[nodeId] = dist
			heap.Push(pq, &pqItem{nodeId: nodeId, cost: dist + heuristic(nodeId)})
		}
	}
	relaxInit(startEdge.StartNodeId, start.Distance)
	relaxInit(startEdge.EndNodeId, startEdge.Length-start.Distance)

	endDistanceFromStart := math.Inf(1)
	var endEdgeIsForward bool
	var endMatchedNodeId graph.Id

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		if item.isGoal {
			path, err := reconstructPath(g, start, end, startEdge, endEdge, cameFrom, endMatchedNodeId, endEdgeIsForward, endDistanceFromStart)
			if err != nil {
				return graph.Path{}, err
			}

			return applySameEdgeShortcut(g, start, end, startEdge, path)
		}
		nodeId := item.nodeId
		if done[nodeId] {
			continue
		}
		done[nodeId] = true

		edges, _ := g.GetEdgesOfNode(nodeId)
		for _, edge := range edges {
			other, _ := g.GetOtherEndpoint(edge.Id, nodeId)
			if done[other.Id] {
				continue
			}
			candidate := distFromStart[nodeId] + edge.Length
			if candidate < distFromStart[other.Id] {
				distFromStart[other.Id] = candidate
				cameFrom[other.Id] = edge
				heap.Push(pq, &pqItem{nodeId: other.Id, cost: candidate + heuristic(other.Id)})
			}
		}

		if nodeId == endEdge.StartNodeId {
			total := distFromStart[nodeId] + end.Distance
			if total < endDistanceFromStart {
				endDistanceFromStart = total
				endEdgeIsForward = true
				endMatchedNodeId = nodeId
				heap.Push(pq, &pqItem{isGoal: true, cost: total})
			}
		}
		if nodeId == endEdge.EndNodeId {
			total := distFromStart[nodeId] + (endEdge.Length - end.Distance)
			if total < endDistanceFromStart {
				endDistanceFromStart = total
				endEdgeIsForward = false
				endMatchedNodeId = nodeId
				heap.Push(pq, &pqItem{isGoal: true, cost: total})
			}
		}
	}

	return graph.Path{}, fmt.Errorf("%w: from edge %v to edge %v", ErrNoPath, start.EdgeId, end.EdgeId)
}

// reconstructPath walks cameFrom backward from endMatchedNodeId, then
// prepends the start edge's partial leg, in the manner described by
// §4.6.3: each entry's orientation is assigned relative to the backward
// walk, and the whole sequence (order only, not the flags) is reversed
// at the end to read in start-to-end order.
func reconstructPath(
	g *graph.Graph,
	start, end graph.EdgePoint,
	startEdge, endEdge *graph.Edge,
	cameFrom map[graph.Id]*graph.Edge,
	endMatchedNodeId graph.Id,
	endEdgeIsForward bool,
	length float64,
) (graph.Path, error) {
	orientedEdges := []graph.OrientedEdge{{Edge: endEdge, IsForward: endEdgeIsForward}}
	var nodes []*graph.Node

	cur := endMatchedNodeId
	for {
		edge, ok := cameFrom[cur]
		if !ok {
			break
		}
		forward := edge.EndNodeId == cur
		orientedEdges = append(orientedEdges, graph.OrientedEdge{Edge: edge, IsForward: forward})
		node, _ := g.GetNode(cur)
		nodes = append(nodes, node)
		cur, _ = g.GetOtherEndpoint(edge.Id, cur)
	}
	lastNode, _ := g.GetNode(cur)
	nodes = append(nodes, lastNode)

	var startForward bool
	if startEdge.StartNodeId == startEdge.EndNodeId {
		startForward = start.Distance < startEdge.Length/2
	} else {
		startForward = cur == startEdge.EndNodeId
	}
	orientedEdges = append(orientedEdges, graph.OrientedEdge{Edge: startEdge, IsForward: startForward})

	reverseOrientedEdgeOrder(orientedEdges)
	reverseNodeOrder(nodes)

	locations := buildLocations(g, orientedEdges, start, end)

	return graph.Path{
		Start:         start,
		End:           end,
		OrientedEdges: orientedEdges,
		Nodes:         nodes,
		Locations:     locations,
		Length:        length,
	}, nil
}

// applySameEdgeShortcut implements §4.6.1: when the start and end
// EdgePoints lie on the same edge and that edge's direct interval is no
// longer than the A*-computed path, prefer the direct single-edge path.
// The check runs after A* because a detour through the rest of the
// graph can sometimes be shorter than the direct interval.
func applySameEdgeShortcut(g *graph.Graph, start, end graph.EdgePoint, startEdge *graph.Edge, viaGraph graph.Path) (graph.Path, error) {
	if start.EdgeId != end.EdgeId {
		return canonicalize(g, viaGraph), nil
	}
	direct := math.Abs(start.Distance - end.Distance)
	if direct > viaGraph.Length {
		return canonicalize(g, viaGraph), nil
	}
	oe := []graph.OrientedEdge{{Edge: startEdge, IsForward: start.Distance <= end.Distance}}
	path := graph.Path{
		Start:         start,
		End:           end,
		OrientedEdges: oe,
		Nodes:         nil,
		Locations:     buildLocations(g, oe, start, end),
		Length:        direct,
	}

	return canonicalize(g, path), nil
}

// locationsOnEdgeInterval returns the sub-polyline of edge from distance
// d1 to d2, in that directional order (§4.6.4).
func locationsOnEdgeInterval(g *graph.Graph, edge *graph.Edge, d1, d2 float64) []geom.Location {
	if d1 == d2 {
		loc, _ := g.GetLocation(graph.EdgePoint{EdgeId: edge.Id, Distance: d1})

		return []geom.Location{loc}
	}
	lo, hi := d1, d2
	if hi < lo {
		lo, hi = hi, lo
	}
	iMin := polyline.FindFloorIndex(edge.LocationDistances, lo)
	iMax := polyline.FindFloorIndex(edge.LocationDistances, hi)
	intermediates := append([]geom.Location{}, edge.Locations[iMin+1:iMax+1]...)
	if d2 < d1 {
		reverseLocationsInPlace(intermediates)
	}
	loc1, _ := g.GetLocation(graph.EdgePoint{EdgeId: edge.Id, Distance: d1})
	loc2, _ := g.GetLocation(graph.EdgePoint{EdgeId: edge.Id, Distance: d2})

	out := make([]geom.Location, 0, len(intermediates)+2)
	out = append(out, loc1)
	out = append(out, intermediates...)
	out = append(out, loc2)

	return polyline.DedupeLocations(out)
}

// buildLocations derives the full geometric trace of a Path from its
// oriented edges and boundary EdgePoints: the first and last edges
// contribute a partial interval bounded by start/end, interior edges
// contribute their whole length in their own orientation.
func buildLocations(g *graph.Graph, orientedEdges []graph.OrientedEdge, start, end graph.EdgePoint) []geom.Location {
	var out []geom.Location
	for i, oe := range orientedEdges {
		var d1, d2 float64
		switch {
		case len(orientedEdges) == 1:
			d1, d2 = start.Distance, end.Distance
		case i == 0:
			d1 = start.Distance
			if oe.IsForward {
				d2 = oe.Edge.Length
			} else {
				d2 = 0
			}
		case i == len(orientedEdges)-1:
			if oe.IsForward {
				d1 = 0
			} else {
				d1 = oe.Edge.Length
			}
			d2 = end.Distance
		default:
			if oe.IsForward {
				d1, d2 = 0, oe.Edge.Length
			} else {
				d1, d2 = oe.Edge.Length, 0
			}
		}
		out = append(out, locationsOnEdgeInterval(g, oe.Edge, d1, d2)...)
	}

	return polyline.DedupeLocations(out)
}

func reverseOrientedEdgeOrder(oes []graph.OrientedEdge) {
	for i, j := 0, len(oes)-1; i < j; i, j = i+1, j-1 {
		oes[i], oes[j] = oes[j], oes[i]
	}
}

func reverseNodeOrder(nodes []*graph.Node) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}

func reverseLocationsInPlace(locs []geom.Location) {
	for i, j := 0, len(locs)-1; i < j; i, j = i+1, j-1 {
		locs[i], locs[j] = locs[j], locs[i]
	}
}
