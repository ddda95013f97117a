package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vkarpachev/neighbors/geom"
	"github.com/vkarpachev/neighbors/kdtree"
)

// Build indexes points and computes one Entry per input point, in input order.
// Returns ErrTooFewPoints when fewer than two distinct points are given.
// Complexity: O(n·(h + k)) for n points, tree height h and k neighbors per query.
func Build(points []geom.Point, opts Options) ([]Entry, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	tree, err := kdtree.New(points...)
	if err != nil {
		return nil, fmt.Errorf("report: index points: %w", err)
	}
	if tree.Size() < 2 {
		return nil, ErrTooFewPoints
	}

	entries := make([]Entry, 0, len(points))
	for _, p := range points {
		nearest, ok := tree.Nearest(p)
		if !ok {
			// unreachable with two distinct stored points
			return nil, ErrTooFewPoints
		}
		radius := nearest.Distance(p)
		within, err := tree.Radius(p, opts.RadiusFactor*radius)
		if err != nil {
			return nil, fmt.Errorf("report: neighbors of %v: %w", p, err)
		}
		entries = append(entries, Entry{
			Point:     p,
			Nearest:   nearest,
			Radius:    radius,
			Neighbors: len(within) - 1, // p itself is stored and always within
		})
	}

	return entries, nil
}

// Write builds the report for points and writes it to w, one line per entry.
// With fewer than two distinct points it writes Notice and returns nil.
func Write(w io.Writer, points []geom.Point, opts Options) error {
	entries, err := Build(points, opts)
	bw := bufio.NewWriter(w)
	switch {
	case errors.Is(err, ErrTooFewPoints):
		fmt.Fprintln(bw, Notice)
	case err != nil:
		return err
	default:
		for _, e := range entries {
			fmt.Fprintln(bw, e.Format(opts.Precision))
		}
	}

	return bw.Flush()
}
