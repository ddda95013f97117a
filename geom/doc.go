// Package geom provides the immutable planar value types used by the
// neighbors index: Point and Rect over bounded integer coordinates.
//
// What:
//
//   - Point is a validated (x, y) pair. Two points are equal iff their
//     coordinates are equal, so Point works with == and as a map key.
//   - Rect is a validated axis-aligned rectangle with inclusive edges.
//   - Distances are computed in int64 squared form; the float forms are
//     their square roots.
//
// Bounds:
//
//	Every coordinate lies in [MinCoord, MaxCoord] = [-99000, 99000].
//
// Zero values:
//
//	Point{} and Rect{} are "absent" values: they were never produced by
//	NewPoint or NewRect. NewPoint(0, 0) is the origin and is not IsZero.
//
// Errors:
//
//   - ErrRange:        parent of every bound violation (use errors.Is).
//   - ErrOutOfRange:   a coordinate lies outside [MinCoord, MaxCoord].
//   - ErrInvertedRect: maxX < minX or maxY < minY.
package geom
