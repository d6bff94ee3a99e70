package graph

// ReverseOrientedEdges returns a new slice containing oes in reverse
// order with each element's IsForward flipped, so that the reversed
// sequence traverses the same locations in the opposite direction.
//
// Complexity: O(n).
func ReverseOrientedEdges(oes []OrientedEdge) []OrientedEdge {
	out := make([]OrientedEdge, len(oes))
	for i, oe := range oes {
		out[len(oes)-1-i] = OrientedEdge{Edge: oe.Edge, IsForward: !oe.IsForward}
	}

	return out
}
