package hyperdisk

import "errors"

var (
	// ErrNegativeRadicand indicates that the orthogonal-circle radius could
	// not be computed. Valid endpoints inside the open disk never trigger it.
	ErrNegativeRadicand = errors.New("hyperdisk: negative or undefined radicand in geodesic radius")

	// ErrOutsideDisk indicates a point that has no hyperbolic preimage: the
	// exact disk center, or a point on or outside the unit circle.
	ErrOutsideDisk = errors.New("hyperdisk: point has no hyperbolic preimage")

	// ErrUnknownPoint indicates a handle that is not in the graph.
	ErrUnknownPoint = errors.New("hyperdisk: unknown point")
)
