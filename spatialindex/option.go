package spatialindex

import (
	"log"

	"github.com/dphilipson/graphs-and-paths/graph"
)

// WithClosestPointMeshPrecision returns a graph.GraphOption that builds
// and attaches a closest-point mesh at the given precision as part of
// graph.Create, sparing callers a separate WithMesh call immediately
// after construction. If mesh construction fails (precision <= 0), the
// graph is returned without a mesh and the failure is logged rather than
// propagated, since GraphOption cannot return an error.
func WithClosestPointMeshPrecision(precision float64) graph.GraphOption {
	return func(g *graph.Graph) *graph.Graph {
		mesh, err := BuildMesh(g, precision)
		if err != nil {
			log.Printf("spatialindex: WithClosestPointMeshPrecision: %v", err)

			return g
		}

		return WithMesh(g, mesh)
	}
}

// WithMesh returns a copy of g carrying mesh as its closest-point index,
// for use by GetClosestPoint. Building mesh is the caller's
// responsibility; see BuildMesh.
func WithMesh(g *graph.Graph, mesh *Mesh) *graph.Graph {
	return g.WithClosestPointMesh(mesh)
}
