package testgraphs_test

import (
	"testing"

	"github.com/dphilipson/graphs-and-paths/testgraphs"
)

func TestTriangle(t *testing.T) {
	g := testgraphs.Triangle()
	if len(g.GetAllNodes()) != 3 || len(g.GetAllEdges()) != 3 {
		t.Fatalf("Triangle: got %d nodes, %d edges, want 3, 3", len(g.GetAllNodes()), len(g.GetAllEdges()))
	}
}

func TestSquare(t *testing.T) {
	g := testgraphs.Square()
	if len(g.GetAllNodes()) != 4 || len(g.GetAllEdges()) != 4 {
		t.Fatalf("Square: got %d nodes, %d edges, want 4, 4", len(g.GetAllNodes()), len(g.GetAllEdges()))
	}
}

func TestChain(t *testing.T) {
	g := testgraphs.Chain(5)
	if len(g.GetAllNodes()) != 5 || len(g.GetAllEdges()) != 4 {
		t.Fatalf("Chain(5): got %d nodes, %d edges, want 5, 4", len(g.GetAllNodes()), len(g.GetAllEdges()))
	}
}

func TestGrid(t *testing.T) {
	g := testgraphs.Grid(3, 2, 1.0)
	if len(g.GetAllNodes()) != 6 {
		t.Fatalf("Grid(3,2): got %d nodes, want 6", len(g.GetAllNodes()))
	}
	// 3x2 grid has 2*2 + 1*3 = 7 edges (horizontal + vertical).
	if len(g.GetAllEdges()) != 7 {
		t.Fatalf("Grid(3,2): got %d edges, want 7", len(g.GetAllEdges()))
	}
}

func TestChainPanicsOnTooFewNodes(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Chain(1): expected panic, got none")
		}
	}()
	testgraphs.Chain(1)
}
