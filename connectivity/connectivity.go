package connectivity

import (
	"fmt"

	"github.com/dphilipson/graphs-and-paths/graph"
)

// Component is one connected component of a Graph: the nodes and edges
// reachable from one another by some path, each listed in the same
// order as the parent Graph's GetAllNodes/GetAllEdges.
type Component struct {
	NodeIds []graph.Id
	EdgeIds []graph.Id
}

// GetConnectedComponents partitions every node and edge of g into its
// connected components, in the order their first node appears in
// g.GetAllNodes().
//
// Complexity: O(V + E).
func GetConnectedComponents(g *graph.Graph) []Component {
	visited := make(map[graph.Id]bool)
	var components []Component
	for _, n := range g.GetAllNodes() {
		if visited[n.Id] {
			continue
		}
		components = append(components, componentContaining(g, n.Id, visited))
	}

	return components
}

// GetConnectedComponentOfNode returns the connected component containing
// nodeId.
//
// Complexity: O(V + E).
func GetConnectedComponentOfNode(g *graph.Graph, nodeId graph.Id) (Component, error) {
	if _, ok := g.GetNode(nodeId); !ok {
		return Component{}, fmt.Errorf("%w: %v", graph.ErrUnknownNodeId, nodeId)
	}

	return componentContaining(g, nodeId, make(map[graph.Id]bool)), nil
}

// componentContaining runs a breadth-first walk from start, marking
// every node it visits in visited, then returns the nodes and edges it
// found filtered from g's own node/edge order.
func componentContaining(g *graph.Graph, start graph.Id, visited map[graph.Id]bool) Component {
	nodeSet := map[graph.Id]bool{start: true}
	edgeSet := make(map[graph.Id]bool)
	visited[start] = true

	queue := []graph.Id{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// cur was reached from g itself (or is the requested start), so
		// it is guaranteed to exist.
		edges, _ := g.GetEdgesOfNode(cur)
		for _, edge := range edges {
			edgeSet[edge.Id] = true
			other, _ := g.GetOtherEndpoint(edge.Id, cur)
			if !nodeSet[other.Id] {
				nodeSet[other.Id] = true
				visited[other.Id] = true
				queue = append(queue, other.Id)
			}
		}
	}

	var nodeIds, edgeIds []graph.Id
	for _, n := range g.GetAllNodes() {
		if nodeSet[n.Id] {
			nodeIds = append(nodeIds, n.Id)
		}
	}
	for _, e := range g.GetAllEdges() {
		if edgeSet[e.Id] {
			edgeIds = append(edgeIds, e.Id)
		}
	}

	return Component{NodeIds: nodeIds, EdgeIds: edgeIds}
}
