package graph

import "errors"

// Sentinel errors returned by graph construction and accessors. Each is
// wrapped with fmt.Errorf("%w: ...", Err...) at the call site so the
// offending Id (or, for ErrNotAnEndpoint, the word "endpoint") is always
// present in the message while still satisfying errors.Is.
var (
	// ErrDuplicateNodeId indicates two input nodes share an Id.
	ErrDuplicateNodeId = errors.New("graph: duplicate node id")

	// ErrDuplicateEdgeId indicates two input edges share an Id.
	ErrDuplicateEdgeId = errors.New("graph: duplicate edge id")

	// ErrUnknownReferencedNode indicates an edge references a node Id
	// absent from the supplied node list.
	ErrUnknownReferencedNode = errors.New("graph: edge references unknown node id")

	// ErrUnknownNodeId indicates an accessor was given a node Id the
	// Graph does not contain.
	ErrUnknownNodeId = errors.New("graph: unknown node id")

	// ErrUnknownEdgeId indicates an accessor was given an edge Id the
	// Graph does not contain.
	ErrUnknownEdgeId = errors.New("graph: unknown edge id")

	// ErrNotAnEndpoint indicates GetOtherEndpoint was given a node that is
	// not one of the edge's two endpoints.
	ErrNotAnEndpoint = errors.New("graph: node is not an endpoint of edge")
)
