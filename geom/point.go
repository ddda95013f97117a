package geom

import (
	"fmt"
	"math"
)

const (
	// MinCoord is the smallest accepted coordinate.
	MinCoord = -99_000
	// MaxCoord is the largest accepted coordinate.
	MaxCoord = 99_000
)

// Point is an immutable 2D integer coordinate.
// The set flag distinguishes a constructed point from the zero value.
type Point struct {
	x, y int
	set  bool
}

// NewPoint returns the point (x, y).
// Returns ErrOutOfRange if either coordinate is outside [MinCoord, MaxCoord].
func NewPoint(x, y int) (Point, error) {
	if !inRange(x) || !inRange(y) {
		return Point{}, fmt.Errorf("%w: got (%d, %d)", ErrOutOfRange, x, y)
	}

	return Point{x: x, y: y, set: true}, nil
}

// MustPoint is like NewPoint but panics on invalid coordinates.
// Intended for literals in tests and examples.
func MustPoint(x, y int) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}

	return p
}

// X returns the x-coordinate.
func (p Point) X() int { return p.x }

// Y returns the y-coordinate.
func (p Point) Y() int { return p.y }

// IsZero reports whether p is the zero value rather than a constructed point.
func (p Point) IsZero() bool { return !p.set }

// SquaredDistance returns the squared Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) SquaredDistance(q Point) int64 {
	dx := int64(p.x) - int64(q.x)
	dy := int64(p.y) - int64(q.y)

	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(float64(p.SquaredDistance(q)))
}

// String formats p as {x=X, y=Y}.
func (p Point) String() string {
	return fmt.Sprintf("{x=%d, y=%d}", p.x, p.y)
}

func inRange(v int) bool {
	return v >= MinCoord && v <= MaxCoord
}

func clamp(v int) int {
	if v < MinCoord {
		return MinCoord
	}
	if v > MaxCoord {
		return MaxCoord
	}

	return v
}
