package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vkarpachev/neighbors/geom"
)

// EndMarker terminates interactive input.
const EndMarker = "end"

// ParseLine parses "X Y" into a point.
// Leading, trailing and repeated whitespace is ignored.
// Returns ErrParse wrapping the cause on failure.
func ParseLine(line string) (geom.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("%w: want 2 coordinates, got %d", ErrParse, len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: x: %w", ErrParse, err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: y: %w", ErrParse, err)
	}
	p, err := geom.NewPoint(x, y)
	if err != nil {
		return geom.Point{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return p, nil
}

// ReadPoints reads one point per line until EOF.
// The first malformed line aborts the read; the error names its 1-based
// line number and no points are returned.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		p, err := ParseLine(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointio: read: %w", err)
	}

	return points, nil
}
