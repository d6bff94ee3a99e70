package pathops

import "errors"

// ErrNegativeDistance is returned by AdvanceAlongLocations and
// AdvanceAlongPath when given a negative distance to advance.
var ErrNegativeDistance = errors.New("pathops: negative distance")
