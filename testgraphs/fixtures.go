package testgraphs

import (
	"fmt"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
)

// Triangle returns a 3-cycle A-B-C-A around a right triangle whose sides
// AB, BC and CA are 3, 4 and 5 units long.
func Triangle() *graph.Graph {
	nodes := []graph.SimpleNode{
		{Id: graph.StringId("A"), Location: geom.Location{X: 0, Y: 0}},
		{Id: graph.StringId("B"), Location: geom.Location{X: 3, Y: 0}},
		{Id: graph.StringId("C"), Location: geom.Location{X: 3, Y: 4}},
	}
	edges := []graph.SimpleEdge{
		{Id: graph.StringId("AB"), StartNodeId: graph.StringId("A"), EndNodeId: graph.StringId("B")},
		{Id: graph.StringId("BC"), StartNodeId: graph.StringId("B"), EndNodeId: graph.StringId("C")},
		{Id: graph.StringId("CA"), StartNodeId: graph.StringId("C"), EndNodeId: graph.StringId("A")},
	}

	return mustCreate(nodes, edges)
}

// Square returns a 4-cycle A-B-C-D-A around a unit square.
func Square() *graph.Graph {
	nodes := []graph.SimpleNode{
		{Id: graph.StringId("A"), Location: geom.Location{X: 0, Y: 0}},
		{Id: graph.StringId("B"), Location: geom.Location{X: 1, Y: 0}},
		{Id: graph.StringId("C"), Location: geom.Location{X: 1, Y: 1}},
		{Id: graph.StringId("D"), Location: geom.Location{X: 0, Y: 1}},
	}
	edges := []graph.SimpleEdge{
		{Id: graph.StringId("AB"), StartNodeId: graph.StringId("A"), EndNodeId: graph.StringId("B")},
		{Id: graph.StringId("BC"), StartNodeId: graph.StringId("B"), EndNodeId: graph.StringId("C")},
		{Id: graph.StringId("CD"), StartNodeId: graph.StringId("C"), EndNodeId: graph.StringId("D")},
		{Id: graph.StringId("DA"), StartNodeId: graph.StringId("D"), EndNodeId: graph.StringId("A")},
	}

	return mustCreate(nodes, edges)
}

// Chain returns n nodes on a line one unit apart, 0 through n-1, joined
// by n-1 edges. n must be at least 2.
func Chain(n int) *graph.Graph {
	if n < 2 {
		panic(fmt.Sprintf("testgraphs: Chain(%d): need at least 2 nodes", n))
	}

	nodes := make([]graph.SimpleNode, n)
	for i := 0; i < n; i++ {
		nodes[i] = graph.SimpleNode{Id: graph.IntId(int64(i)), Location: geom.Location{X: float64(i), Y: 0}}
	}
	edges := make([]graph.SimpleEdge, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = graph.SimpleEdge{
			Id:          graph.IntId(int64(i)),
			StartNodeId: graph.IntId(int64(i)),
			EndNodeId:   graph.IntId(int64(i + 1)),
		}
	}

	return mustCreate(nodes, edges)
}

// Grid returns a width x height lattice of nodes spaced spacing units
// apart, with edges joining every pair of horizontally or vertically
// adjacent nodes. Node (x, y) has Id IntId(y*width + x). width and
// height must each be at least 2.
func Grid(width, height int, spacing float64) *graph.Graph {
	if width < 2 || height < 2 {
		panic(fmt.Sprintf("testgraphs: Grid(%d, %d): need at least 2x2", width, height))
	}

	id := func(x, y int) graph.Id {
		return graph.IntId(int64(y*width + x))
	}

	var nodes []graph.SimpleNode
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nodes = append(nodes, graph.SimpleNode{
				Id:       id(x, y),
				Location: geom.Location{X: float64(x) * spacing, Y: float64(y) * spacing},
			})
		}
	}

	var edges []graph.SimpleEdge
	nextEdgeId := int64(0)
	newEdge := func(from, to graph.Id) graph.SimpleEdge {
		e := graph.SimpleEdge{Id: graph.IntId(nextEdgeId), StartNodeId: from, EndNodeId: to}
		nextEdgeId++

		return e
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+1 < width {
				edges = append(edges, newEdge(id(x, y), id(x+1, y)))
			}
			if y+1 < height {
				edges = append(edges, newEdge(id(x, y), id(x, y+1)))
			}
		}
	}

	return mustCreate(nodes, edges)
}

func mustCreate(nodes []graph.SimpleNode, edges []graph.SimpleEdge) *graph.Graph {
	g, err := graph.Create(nodes, edges)
	if err != nil {
		panic(fmt.Sprintf("testgraphs: fixture construction failed: %v", err))
	}

	return g
}
