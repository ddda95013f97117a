package kdtree

import (
	"errors"
	"fmt"

	"github.com/vkarpachev/neighbors/geom"
)

// Sentinel errors for kdtree operations.
var (
	// ErrNilPoint indicates the zero geom.Point was supplied instead of a constructed one.
	ErrNilPoint = errors.New("kdtree: point is not set")

	// ErrNilRect indicates the zero geom.Rect was supplied to Range.
	ErrNilRect = fmt.Errorf("%w: kdtree: search rectangle is not set", geom.ErrRange)

	// ErrNegativeRadius indicates a negative or NaN search radius.
	ErrNegativeRadius = errors.New("kdtree: radius must be a non-negative number")
)
