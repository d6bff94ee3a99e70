package shortestpath

import "errors"

// ErrNoPath is returned when no path connects the start and end edges.
var ErrNoPath = errors.New("shortestpath: no path found")
