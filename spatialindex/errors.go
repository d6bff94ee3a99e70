package spatialindex

import "errors"

// ErrEmptyGraph is returned by GetClosestPoint when the graph has no
// edges to search, whether or not it carries a mesh.
var ErrEmptyGraph = errors.New("spatialindex: graph has no edges")
