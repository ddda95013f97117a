package kdtree

import (
	"fmt"
	"math"

	"github.com/vkarpachev/neighbors/geom"
)

// node is a single tree vertex. It owns its children; there are no parent links.
type node struct {
	point     geom.Point
	splitsByX bool
	left      *node
	right     *node
}

// goesLeft reports whether p belongs to the left subtree of n.
func (n *node) goesLeft(p geom.Point) bool {
	if n.splitsByX {
		return p.X() < n.point.X()
	}

	return p.Y() < n.point.Y()
}

// split cuts rect, the region owned by n, into the regions of its children.
func (n *node) split(rect geom.Rect) (left, right geom.Rect) {
	if n.splitsByX {
		return rect.SplitX(n.point.X())
	}

	return rect.SplitY(n.point.Y())
}

// KdTree is a mutable 2d-tree over distinct geom.Point values.
// The zero value is an empty tree ready for use.
type KdTree struct {
	root   *node
	size   int
	bounds geom.Rect // covers every inserted point; zero while empty
}

// New builds a tree by inserting points in order.
// Returns the first insertion error; the tree is then built from the
// points preceding the rejected one.
// Complexity: O(n·h).
func New(points ...geom.Point) (*KdTree, error) {
	t := &KdTree{}
	for i, p := range points {
		if err := t.Insert(p); err != nil {
			return t, fmt.Errorf("point %d: %w", i, err)
		}
	}

	return t, nil
}

// Size returns the number of distinct points stored.
func (t *KdTree) Size() int { return t.size }

// Bounds returns the smallest rectangle covering every inserted point.
// ok is false for an empty tree.
func (t *KdTree) Bounds() (rect geom.Rect, ok bool) {
	return t.bounds, !t.bounds.IsZero()
}

// Insert adds p to the tree. Inserting a point equal to a stored one is a no-op.
// Returns ErrNilPoint for the zero point, leaving the tree unchanged.
// Complexity: O(h).
func (t *KdTree) Insert(p geom.Point) error {
	if p.IsZero() {
		return ErrNilPoint
	}
	t.bounds = t.bounds.Extend(p)

	link := &t.root
	splitsByX := true
	for *link != nil {
		n := *link
		if n.point == p {
			return nil
		}
		if n.goesLeft(p) {
			link = &n.left
		} else {
			link = &n.right
		}
		splitsByX = !n.splitsByX
	}
	*link = &node{point: p, splitsByX: splitsByX}
	t.size++

	return nil
}

// Contains reports whether a point equal to p is stored.
// Complexity: O(h).
func (t *KdTree) Contains(p geom.Point) bool {
	if p.IsZero() {
		return false
	}
	n := t.root
	for n != nil {
		if n.point == p {
			return true
		}
		if n.goesLeft(p) {
			n = n.left
		} else {
			n = n.right
		}
	}

	return false
}

// frame is a pending subtree visit: the subtree root and the region it owns.
type frame struct {
	n    *node
	rect geom.Rect
}

// Nearest returns the stored point closest to p, ignoring any stored point
// equal to p. ok is false if no such point exists.
//
// Subtrees whose region is not strictly closer than the current best are
// pruned, and the side of the split containing p is searched first. Among
// equidistant candidates the first one visited wins.
func (t *KdTree) Nearest(p geom.Point) (nearest geom.Point, ok bool) {
	if t.root == nil || p.IsZero() {
		return geom.Point{}, false
	}

	var best int64
	stack := []frame{{n: t.root, rect: t.bounds}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ok && f.rect.SquaredDistanceTo(p) >= best {
			continue
		}
		if f.n.point != p {
			if d := f.n.point.SquaredDistance(p); !ok || d < best {
				nearest, best, ok = f.n.point, d, true
			}
		}

		left, right := f.n.split(f.rect)
		near, far := frame{f.n.left, left}, frame{f.n.right, right}
		if !f.n.goesLeft(p) {
			near, far = far, near
		}
		// far is pushed first so the near subtree is exhausted before it.
		if far.n != nil {
			stack = append(stack, far)
		}
		if near.n != nil {
			stack = append(stack, near)
		}
	}

	return nearest, ok
}

// Range returns every stored point inside rect, edges included.
// The order of the result is unspecified.
// Returns ErrNilRect for the zero rectangle.
func (t *KdTree) Range(rect geom.Rect) ([]geom.Point, error) {
	if rect.IsZero() {
		return nil, ErrNilRect
	}
	if t.root == nil {
		return nil, nil
	}

	var found []geom.Point
	stack := []frame{{n: t.root, rect: t.bounds}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.rect.Intersects(rect) {
			continue
		}
		if rect.Contains(f.n.point) {
			found = append(found, f.n.point)
		}
		left, right := f.n.split(f.rect)
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, right})
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, left})
		}
	}

	return found, nil
}

// Radius returns every stored point whose distance to center is at most r.
// A stored point equal to center is included. The order is unspecified.
//
// Candidates come from a Range query over the square reaching ceil(r+0.5)
// around center, which over-covers the circle, and are then filtered
// exactly by squared distance.
//
// Returns ErrNilPoint for the zero center, ErrNegativeRadius for r < 0 or NaN.
func (t *KdTree) Radius(center geom.Point, r float64) ([]geom.Point, error) {
	if center.IsZero() {
		return nil, ErrNilPoint
	}
	if math.IsNaN(r) || r < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeRadius, r)
	}
	if t.root == nil {
		return nil, nil
	}

	reach := math.Ceil(r + 0.5)
	if reach > geom.MaxCoord-geom.MinCoord {
		reach = geom.MaxCoord - geom.MinCoord
	}
	candidates, err := t.Range(geom.Around(center, int(reach)))
	if err != nil {
		return nil, err
	}

	limit := r * r
	inside := candidates[:0]
	for _, p := range candidates {
		if float64(p.SquaredDistance(center)) <= limit {
			inside = append(inside, p)
		}
	}
	if len(inside) == 0 {
		return nil, nil
	}

	return inside, nil
}
