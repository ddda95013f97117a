// Package report answers, for every input point, two questions about its
// neighborhood using a kdtree.KdTree:
//
//   - How far is the nearest other point? (the point's radius R)
//   - How many other points lie within RadiusFactor·R? (its neighbor count)
//
// Output:
//
//	One line per input point, in input order:
//
//	    {x=X, y=Y} radius = R.RR, has K neighbor(s)
//
//	Duplicate input points are reported once per occurrence; the index
//	itself stores each distinct point once.
//
// Options:
//
//   - RadiusFactor: multiple of R searched for neighbors (default 2).
//   - Precision:    decimals printed for R (default 2).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two distinct points; Write prints Notice instead.
//   - ErrBadOptions:   RadiusFactor not positive, or Precision out of [0, 10].
package report
