package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors for geom constructors.
var (
	// ErrRange is matched by every coordinate or bound violation.
	ErrRange = errors.New("geom: range violation")

	// ErrOutOfRange indicates a coordinate outside [MinCoord, MaxCoord].
	ErrOutOfRange = fmt.Errorf("%w: coordinates must lie between %d and %d", ErrRange, MinCoord, MaxCoord)

	// ErrInvertedRect indicates a rectangle whose max bound is below its min bound.
	ErrInvertedRect = fmt.Errorf("%w: rectangle max bound is less than min bound", ErrRange)
)
