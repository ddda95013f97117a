package report_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarpachev/neighbors/geom"
	"github.com/vkarpachev/neighbors/report"
)

func points(coords ...[2]int) []geom.Point {
	pts := make([]geom.Point, len(coords))
	for i, c := range coords {
		pts[i] = geom.MustPoint(c[0], c[1])
	}

	return pts
}

// TestOptions_Validate covers defaults and each invalid field.
func TestOptions_Validate(t *testing.T) {
	require.NoError(t, report.DefaultOptions().Validate())

	cases := []struct {
		name string
		opts report.Options
	}{
		{"ZeroFactor", report.Options{RadiusFactor: 0, Precision: 2}},
		{"NegativeFactor", report.Options{RadiusFactor: -1, Precision: 2}},
		{"NaNFactor", report.Options{RadiusFactor: math.NaN(), Precision: 2}},
		{"InfFactor", report.Options{RadiusFactor: math.Inf(1), Precision: 2}},
		{"NegativePrecision", report.Options{RadiusFactor: 2, Precision: -1}},
		{"HugePrecision", report.Options{RadiusFactor: 2, Precision: 11}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.opts.Validate(), report.ErrBadOptions)
			_, err := report.Build(points([2]int{0, 0}, [2]int{1, 1}), tc.opts)
			assert.ErrorIs(t, err, report.ErrBadOptions)
		})
	}
}

// TestBuild_TooFewPoints requires two distinct points.
func TestBuild_TooFewPoints(t *testing.T) {
	cases := []struct {
		name string
		pts  []geom.Point
	}{
		{"None", nil},
		{"One", points([2]int{1, 1})},
		{"Duplicates", points([2]int{1, 1}, [2]int{1, 1}, [2]int{1, 1})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := report.Build(tc.pts, report.DefaultOptions())
			assert.ErrorIs(t, err, report.ErrTooFewPoints)
		})
	}
}

// TestBuild_ReferenceFixture checks per-point invariants on the 20-point set.
func TestBuild_ReferenceFixture(t *testing.T) {
	pts := points(
		[2]int{6, 6}, [2]int{0, 6}, [2]int{2, 7}, [2]int{4, 8}, [2]int{5, 10},
		[2]int{7, 10}, [2]int{8, 8}, [2]int{10, 7}, [2]int{10, 5}, [2]int{8, 4},
		[2]int{7, 2}, [2]int{6, 0}, [2]int{5, 2}, [2]int{4, 4}, [2]int{2, 5},
		[2]int{7, 5}, [2]int{7, 3}, [2]int{6, 5}, [2]int{6, 12}, [2]int{12, 6},
	)
	entries, err := report.Build(pts, report.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, entries, len(pts))

	first := entries[0]
	assert.Equal(t, geom.MustPoint(6, 6), first.Point)
	assert.Equal(t, geom.MustPoint(6, 5), first.Nearest)
	assert.Equal(t, 1.0, first.Radius)
	assert.Equal(t, 2, first.Neighbors, "(6,5) and (7,5) lie within distance 2")
	assert.Equal(t, "{x=6, y=6} radius = 1.00, has 2 neighbor(s)", first.Format(2))

	for i, e := range entries {
		assert.Equal(t, pts[i], e.Point, "entries keep input order")
		assert.NotEqual(t, e.Point, e.Nearest)
		assert.Greater(t, e.Radius, 0.0)
		assert.GreaterOrEqual(t, e.Neighbors, 1, "the nearest point is always a neighbor")
	}
}

// TestBuild_DuplicatesReportedPerOccurrence keeps one entry per input line.
func TestBuild_DuplicatesReportedPerOccurrence(t *testing.T) {
	pts := points([2]int{1, 1}, [2]int{1, 1}, [2]int{2, 2})
	entries, err := report.Build(pts, report.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, e := range entries {
		assert.InDelta(t, math.Sqrt2, e.Radius, 1e-12)
		assert.Equal(t, 1, e.Neighbors)
	}
}

// TestBuild_RadiusFactor widens the neighbor search.
func TestBuild_RadiusFactor(t *testing.T) {
	pts := points([2]int{0, 0}, [2]int{1, 0}, [2]int{3, 0}, [2]int{10, 0})

	opts := report.DefaultOptions()
	opts.RadiusFactor = 1
	entries, err := report.Build(pts, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, entries[0].Neighbors)

	opts.RadiusFactor = 10
	entries, err = report.Build(pts, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, entries[0].Neighbors)
}

// TestEntry_Format honors the precision argument.
func TestEntry_Format(t *testing.T) {
	e := report.Entry{Point: geom.MustPoint(-3, 4), Radius: math.Sqrt(260), Neighbors: 0}

	assert.Equal(t, "{x=-3, y=4} radius = 16.12, has 0 neighbor(s)", e.Format(2))
	assert.Equal(t, "{x=-3, y=4} radius = 16, has 0 neighbor(s)", e.Format(0))
	assert.Equal(t, "{x=-3, y=4} radius = 16.1245, has 0 neighbor(s)", e.Format(4))
}

// TestWrite_Notice prints the single notice line for degenerate input.
func TestWrite_Notice(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, points([2]int{4, 4}, [2]int{4, 4}), report.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, report.Notice+"\n", buf.String())
}

// TestWrite_Lines writes one line per input point.
func TestWrite_Lines(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, points([2]int{0, 0}, [2]int{3, 4}), report.DefaultOptions())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"{x=0, y=0} radius = 5.00, has 1 neighbor(s)",
		"{x=3, y=4} radius = 5.00, has 1 neighbor(s)",
	}, lines)
}

// TestWrite_BadOptions does not write anything.
func TestWrite_BadOptions(t *testing.T) {
	var buf bytes.Buffer
	err := report.Write(&buf, points([2]int{0, 0}, [2]int{3, 4}), report.Options{RadiusFactor: -2})
	assert.ErrorIs(t, err, report.ErrBadOptions)
	assert.Empty(t, buf.String())
}
