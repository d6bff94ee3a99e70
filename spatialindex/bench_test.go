package spatialindex_test

import (
	"testing"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
	"github.com/dphilipson/graphs-and-paths/spatialindex"
	"github.com/dphilipson/graphs-and-paths/testgraphs"
)

var benchSinkPoint graph.EdgePoint

// BenchmarkBuildMesh measures mesh construction cost over a grid graph at
// a fixed precision, the O(totalEdgeLength/precision) claim of §5.
func BenchmarkBuildMesh(b *testing.B) {
	g := testgraphs.Grid(30, 30, 10)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		mesh, err := spatialindex.BuildMesh(g, 0.5)
		if err != nil {
			b.Fatalf("BuildMesh: %v", err)
		}
		_ = mesh
	}
}

// BenchmarkGetClosestPoint_WithMesh measures the O(log n) mesh lookup
// path, which this index exists to make fast.
func BenchmarkGetClosestPoint_WithMesh(b *testing.B) {
	g := testgraphs.Grid(30, 30, 10)
	mesh, err := spatialindex.BuildMesh(g, 0.5)
	if err != nil {
		b.Fatalf("BuildMesh: %v", err)
	}
	g = spatialindex.WithMesh(g, mesh)
	loc := geom.Location{X: 123.4, Y: 56.7}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		point, err := spatialindex.GetClosestPoint(g, loc)
		if err != nil {
			b.Fatalf("GetClosestPoint: %v", err)
		}
		benchSinkPoint = point
	}
}

// BenchmarkGetClosestPoint_WithoutMesh measures the O(|edges|*|segments|)
// linear-scan fallback, for comparison against the mesh path above.
func BenchmarkGetClosestPoint_WithoutMesh(b *testing.B) {
	g := testgraphs.Grid(30, 30, 10)
	loc := geom.Location{X: 123.4, Y: 56.7}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		point, err := spatialindex.GetClosestPoint(g, loc)
		if err != nil {
			b.Fatalf("GetClosestPoint: %v", err)
		}
		benchSinkPoint = point
	}
}
