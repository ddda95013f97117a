package geom

import (
	"fmt"
	"math"
)

// Rect is an immutable axis-aligned rectangle with inclusive edges.
type Rect struct {
	minX, minY int
	maxX, maxY int
	set        bool
}

// NewRect returns the rectangle [minX, maxX] × [minY, maxY].
// Returns ErrOutOfRange if any bound is outside [MinCoord, MaxCoord],
// ErrInvertedRect if maxX < minX or maxY < minY.
func NewRect(minX, minY, maxX, maxY int) (Rect, error) {
	if !inRange(minX) || !inRange(minY) || !inRange(maxX) || !inRange(maxY) {
		return Rect{}, fmt.Errorf("%w: got [%d, %d]×[%d, %d]", ErrOutOfRange, minX, maxX, minY, maxY)
	}
	if maxX < minX || maxY < minY {
		return Rect{}, fmt.Errorf("%w: got [%d, %d]×[%d, %d]", ErrInvertedRect, minX, maxX, minY, maxY)
	}

	return Rect{minX: minX, minY: minY, maxX: maxX, maxY: maxY, set: true}, nil
}

// MustRect is like NewRect but panics on invalid bounds.
func MustRect(minX, minY, maxX, maxY int) Rect {
	r, err := NewRect(minX, minY, maxX, maxY)
	if err != nil {
		panic(err)
	}

	return r
}

// Around returns the square centered on c reaching reach units in every
// direction, clipped to [MinCoord, MaxCoord]. A negative reach is treated as 0.
func Around(c Point, reach int) Rect {
	if reach < 0 {
		reach = 0
	}
	if reach > MaxCoord-MinCoord {
		reach = MaxCoord - MinCoord
	}

	return Rect{
		minX: clamp(c.x - reach),
		minY: clamp(c.y - reach),
		maxX: clamp(c.x + reach),
		maxY: clamp(c.y + reach),
		set:  true,
	}
}

// MinX returns the left edge.
func (r Rect) MinX() int { return r.minX }

// MinY returns the bottom edge.
func (r Rect) MinY() int { return r.minY }

// MaxX returns the right edge.
func (r Rect) MaxX() int { return r.maxX }

// MaxY returns the top edge.
func (r Rect) MaxY() int { return r.maxY }

// IsZero reports whether r is the zero value rather than a constructed rectangle.
func (r Rect) IsZero() bool { return !r.set }

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.x >= r.minX && p.x <= r.maxX && p.y >= r.minY && p.y <= r.maxY
}

// Intersects reports whether r and o overlap. Rectangles that only touch
// along an edge or at a corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.maxX >= o.minX && r.maxY >= o.minY &&
		o.maxX >= r.minX && o.maxY >= r.minY
}

// SquaredDistanceTo returns the squared distance from p to the closest
// point of r, or 0 if r contains p.
// Complexity: O(1).
func (r Rect) SquaredDistanceTo(p Point) int64 {
	var dx, dy int64
	switch {
	case p.x < r.minX:
		dx = int64(r.minX) - int64(p.x)
	case p.x > r.maxX:
		dx = int64(p.x) - int64(r.maxX)
	}
	switch {
	case p.y < r.minY:
		dy = int64(r.minY) - int64(p.y)
	case p.y > r.maxY:
		dy = int64(p.y) - int64(r.maxY)
	}

	return dx*dx + dy*dy
}

// DistanceTo returns the distance from p to the closest point of r.
func (r Rect) DistanceTo(p Point) float64 {
	return math.Sqrt(float64(r.SquaredDistanceTo(p)))
}

// Extend returns the smallest rectangle covering both r and p.
// Extending the zero Rect yields the degenerate rectangle at p.
func (r Rect) Extend(p Point) Rect {
	if !r.set {
		return Rect{minX: p.x, minY: p.y, maxX: p.x, maxY: p.y, set: true}
	}
	if p.x < r.minX {
		r.minX = p.x
	}
	if p.x > r.maxX {
		r.maxX = p.x
	}
	if p.y < r.minY {
		r.minY = p.y
	}
	if p.y > r.maxY {
		r.maxY = p.y
	}

	return r
}

// SplitX cuts r by the vertical line at x into [minX, x] and [x, maxX].
// x is expected to lie within [MinX, MaxX]; the line belongs to both halves.
func (r Rect) SplitX(x int) (left, right Rect) {
	left, right = r, r
	left.maxX = x
	right.minX = x

	return left, right
}

// SplitY cuts r by the horizontal line at y into [minY, y] and [y, maxY].
func (r Rect) SplitY(y int) (below, above Rect) {
	below, above = r, r
	below.maxY = y
	above.minY = y

	return below, above
}

// String formats r as Rect{minX=.., minY=.., maxX=.., maxY=..}.
func (r Rect) String() string {
	return fmt.Sprintf("Rect{minX=%d, minY=%d, maxX=%d, maxY=%d}", r.minX, r.minY, r.maxX, r.maxY)
}
