package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/vkarpachev/neighbors/geom"
)

// Sentinel errors for report construction.
var (
	// ErrTooFewPoints indicates fewer than two distinct input points.
	ErrTooFewPoints = errors.New("report: fewer than two distinct points")

	// ErrBadOptions indicates an invalid Options value.
	ErrBadOptions = errors.New("report: invalid options")
)

// Notice is printed in place of a report when ErrTooFewPoints applies.
const Notice = "There are less than 2 points"

// MaxPrecision bounds Options.Precision.
const MaxPrecision = 10

// Options configures Build and Write.
type Options struct {
	// RadiusFactor multiplies the nearest distance to obtain the neighbor search radius.
	RadiusFactor float64
	// Precision is the number of decimals printed for the radius.
	Precision int
}

// DefaultOptions returns RadiusFactor=2, Precision=2.
func DefaultOptions() Options {
	return Options{
		RadiusFactor: 2,
		Precision:    2,
	}
}

// Validate returns ErrBadOptions describing the first invalid field, or nil.
func (o Options) Validate() error {
	if math.IsNaN(o.RadiusFactor) || math.IsInf(o.RadiusFactor, 0) || o.RadiusFactor <= 0 {
		return fmt.Errorf("%w: RadiusFactor must be a positive number (%v)", ErrBadOptions, o.RadiusFactor)
	}
	if o.Precision < 0 || o.Precision > MaxPrecision {
		return fmt.Errorf("%w: Precision must lie in [0, %d] (%d)", ErrBadOptions, MaxPrecision, o.Precision)
	}

	return nil
}

// Entry is the neighborhood summary of one input point.
type Entry struct {
	Point     geom.Point // the input point
	Nearest   geom.Point // closest other stored point
	Radius    float64    // distance from Point to Nearest
	Neighbors int        // other stored points within RadiusFactor·Radius
}

// Format renders e as a report line with the given number of decimals.
func (e Entry) Format(precision int) string {
	return fmt.Sprintf("%s radius = %.*f, has %d neighbor(s)", e.Point, precision, e.Radius, e.Neighbors)
}
