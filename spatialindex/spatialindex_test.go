package spatialindex_test

import (
	"errors"
	"math"
	"testing"

	"github.com/dphilipson/graphs-and-paths/geom"
	"github.com/dphilipson/graphs-and-paths/graph"
	"github.com/dphilipson/graphs-and-paths/spatialindex"
)

func TestGetClosestPoint_AngledSegmentWithMesh(t *testing.T) {
	// S8: single edge (0,0)-(12,9), mesh precision 0.25.
	nodes := []graph.SimpleNode{
		{Id: graph.StringId("A"), Location: geom.Location{X: 0, Y: 0}},
		{Id: graph.StringId("B"), Location: geom.Location{X: 12, Y: 9}},
	}
	edges := []graph.SimpleEdge{
		{Id: graph.StringId("AB"), StartNodeId: graph.StringId("A"), EndNodeId: graph.StringId("B")},
	}
	g, err := graph.Create(nodes, edges)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	mesh, err := spatialindex.BuildMesh(g, 0.25)
	if err != nil {
		t.Fatalf("BuildMesh: %v", err)
	}
	g = spatialindex.WithMesh(g, mesh)

	point, err := spatialindex.GetClosestPoint(g, geom.Location{X: 5, Y: 10})
	if err != nil {
		t.Fatalf("GetClosestPoint: %v", err)
	}
	if point.EdgeId != graph.StringId("AB") {
		t.Fatalf("EdgeId = %v, want AB", point.EdgeId)
	}
	if math.Abs(point.Distance-10) > 0.25 {
		t.Fatalf("Distance = %v, want ~10", point.Distance)
	}
}

func TestGetClosestPoint_WithoutMeshFallsBackToScan(t *testing.T) {
	nodes := []graph.SimpleNode{
		{Id: graph.StringId("A"), Location: geom.Location{X: 0, Y: 0}},
		{Id: graph.StringId("B"), Location: geom.Location{X: 10, Y: 0}},
	}
	edges := []graph.SimpleEdge{
		{Id: graph.StringId("AB"), StartNodeId: graph.StringId("A"), EndNodeId: graph.StringId("B")},
	}
	g, err := graph.Create(nodes, edges)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	point, err := spatialindex.GetClosestPoint(g, geom.Location{X: 4, Y: 3})
	if err != nil {
		t.Fatalf("GetClosestPoint: %v", err)
	}
	if point.EdgeId != graph.StringId("AB") || point.Distance != 4 {
		t.Fatalf("got %+v, want {AB, 4}", point)
	}
}

func TestGetClosestPoint_EmptyGraphIsError(t *testing.T) {
	g, err := graph.Create(nil, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = spatialindex.GetClosestPoint(g, geom.Location{X: 0, Y: 0})
	if !errors.Is(err, spatialindex.ErrEmptyGraph) {
		t.Fatalf("err = %v, want ErrEmptyGraph", err)
	}
}

func TestBuildMesh_NonPositivePrecisionIsError(t *testing.T) {
	nodes := []graph.SimpleNode{
		{Id: graph.StringId("A"), Location: geom.Location{X: 0, Y: 0}},
		{Id: graph.StringId("B"), Location: geom.Location{X: 1, Y: 0}},
	}
	edges := []graph.SimpleEdge{
		{Id: graph.StringId("AB"), StartNodeId: graph.StringId("A"), EndNodeId: graph.StringId("B")},
	}
	g, err := graph.Create(nodes, edges)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := spatialindex.BuildMesh(g, 0); err == nil {
		t.Fatalf("BuildMesh(0): want error, got nil")
	}
}

func TestWithClosestPointMeshPrecision_OptionAttachesMeshAtConstruction(t *testing.T) {
	nodes := []graph.SimpleNode{
		{Id: graph.StringId("A"), Location: geom.Location{X: 0, Y: 0}},
		{Id: graph.StringId("B"), Location: geom.Location{X: 10, Y: 0}},
	}
	edges := []graph.SimpleEdge{
		{Id: graph.StringId("AB"), StartNodeId: graph.StringId("A"), EndNodeId: graph.StringId("B")},
	}
	g, err := graph.Create(nodes, edges, spatialindex.WithClosestPointMeshPrecision(1))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := g.ClosestPointMesh(); !ok {
		t.Fatalf("expected graph to carry a mesh after WithClosestPointMeshPrecision")
	}
}
