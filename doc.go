// Package neighbors is an in-memory 2d-tree over integer points, plus a
// small command that reports each point's nearest-neighbor distance and
// neighborhood size.
//
// The module is organized as:
//
//	geom/          — immutable Point and Rect values over [-99000, 99000]²
//	kdtree/        — the 2d-tree: Insert, Contains, Nearest, Range, Radius
//	pointio/       — "X Y" line parsing, file and interactive readers
//	report/        — per-point radius and neighbor counts built on kdtree
//	config/        — flags, NEIGHBORS_* environment and neighbors.yaml
//	cmd/neighbors/ — the command-line front end
//
// Quick example:
//
//	tree, _ := kdtree.New(geom.MustPoint(0, 0), geom.MustPoint(3, 4))
//	p, _ := tree.Nearest(geom.MustPoint(0, 0)) // {x=3, y=4}
//
//	go install github.com/vkarpachev/neighbors/cmd/neighbors@latest
package neighbors
