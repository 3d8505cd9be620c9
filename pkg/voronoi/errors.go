package voronoi

import "errors"

var (
	// ErrInvalidBounds is returned when the clipping rectangle is empty or
	// inverted on either axis.
	ErrInvalidBounds = errors.New("voronoi: invalid bounds")
	// ErrInvalidTolerance is returned for a non-positive or non-finite tolerance.
	ErrInvalidTolerance = errors.New("voronoi: invalid tolerance")
)
