// Package kdtree implements a 2d-tree: a binary search tree over geom.Point
// that alternates the splitting axis at every level.
//
// What:
//
//   - Insert adds a point; value-equal duplicates are ignored.
//   - Contains tests exact membership.
//   - Nearest finds the closest stored point distinct from the query.
//   - Range collects every stored point inside an axis-aligned rectangle.
//   - Radius collects every stored point within a distance of a center.
//
// Layout:
//
//	The root splits on x, its children on y, and so on. For an x-splitting
//	node, the left subtree holds points with smaller x and the right subtree
//	points with x greater or equal (symmetric for y). Every node therefore
//	owns a rectangle of the plane: the running bounding box of the index,
//	cut by the splitting lines of its ancestors.
//
// Complexity (n = Size, h = tree height, h = O(n) for sorted input):
//
//   - Insert, Contains: O(h) time, O(1) extra memory.
//   - Nearest:          O(h) typical, O(n) worst; O(h) stack.
//   - Range, Radius:    O(h + k) typical for k results, O(n) worst.
//
// No operation recurses, so degenerate trees built from sorted input are safe.
// There is no rebalancing and no deletion.
//
// Concurrency:
//
//	A KdTree is not safe for concurrent mutation. Queries never mutate the
//	tree, so concurrent readers are fine once insertion has finished;
//	otherwise callers must serialize access themselves.
//
// Errors:
//
//   - ErrNilPoint:       a zero geom.Point was passed where a point is required.
//   - ErrNilRect:        a zero geom.Rect was passed to Range (wraps geom.ErrRange).
//   - ErrNegativeRadius: Radius called with r < 0 or NaN.
package kdtree
