package shortestpath_test

import (
	"testing"

	"github.com/dphilipson/graphs-and-paths/graph"
	"github.com/dphilipson/graphs-and-paths/shortestpath"
	"github.com/dphilipson/graphs-and-paths/testgraphs"
)

var benchSinkPath graph.Path

// BenchmarkGetShortestPath_Chain measures A* throughput end to end to end
// of a long chain graph, exercising the full search, reconstruction, and
// canonicalization pipeline §2's complexity claims are made about.
func BenchmarkGetShortestPath_Chain(b *testing.B) {
	const n = 1000
	g := testgraphs.Chain(n)
	start := graph.EdgePoint{EdgeId: graph.IntId(0), Distance: 0.5}
	end := graph.EdgePoint{EdgeId: graph.IntId(n - 2), Distance: 0.5}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		path, err := shortestpath.GetShortestPath(g, start, end)
		if err != nil {
			b.Fatalf("GetShortestPath: %v", err)
		}
		benchSinkPath = path
	}
}

// BenchmarkGetShortestPath_Grid measures A* across a grid, where the
// branching factor is higher than the chain case and the heuristic does
// real pruning work.
func BenchmarkGetShortestPath_Grid(b *testing.B) {
	const width, height = 30, 30
	g := testgraphs.Grid(width, height, 1)
	start := graph.EdgePoint{EdgeId: graph.IntId(0), Distance: 0.5}
	lastEdgeId := graph.IntId(int64(len(g.GetAllEdges()) - 1))
	end := graph.EdgePoint{EdgeId: lastEdgeId, Distance: 0.5}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		path, err := shortestpath.GetShortestPath(g, start, end)
		if err != nil {
			b.Fatalf("GetShortestPath: %v", err)
		}
		benchSinkPath = path
	}
}
