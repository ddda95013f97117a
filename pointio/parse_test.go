package pointio_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkarpachev/neighbors/geom"
	"github.com/vkarpachev/neighbors/pointio"
)

// TestParseLine_Valid accepts well-formed lines with arbitrary spacing.
func TestParseLine_Valid(t *testing.T) {
	cases := []struct {
		line string
		want geom.Point
	}{
		{"1 2", geom.MustPoint(1, 2)},
		{"-99000 99000", geom.MustPoint(-99000, 99000)},
		{"  7\t-3  ", geom.MustPoint(7, -3)},
		{"0    0", geom.MustPoint(0, 0)},
		{"+5 6", geom.MustPoint(5, 6)},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := pointio.ParseLine(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestParseLine_Invalid rejects malformed lines and keeps the cause.
func TestParseLine_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		cause error
	}{
		{"Empty", "", nil},
		{"OneField", "12", nil},
		{"ThreeFields", "1 2 3", nil},
		{"NotInteger", "1 two", strconv.ErrSyntax},
		{"Float", "1.5 2", strconv.ErrSyntax},
		{"OutOfRange", "99001 0", geom.ErrOutOfRange},
		{"Overflow", "1 99999999999999999999", strconv.ErrRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := pointio.ParseLine(tc.line)
			require.ErrorIs(t, err, pointio.ErrParse)
			assert.True(t, p.IsZero())
			if tc.cause != nil {
				assert.True(t, errors.Is(err, tc.cause), "error %v should wrap %v", err, tc.cause)
			}
		})
	}
}

// TestReadPoints reads a whole file in order, duplicates included.
func TestReadPoints(t *testing.T) {
	in := "1 2\n3 4\n1 2\n-5 -6"
	got, err := pointio.ReadPoints(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{
		geom.MustPoint(1, 2), geom.MustPoint(3, 4), geom.MustPoint(1, 2), geom.MustPoint(-5, -6),
	}, got)
}

// TestReadPoints_AbortsOnFirstBadLine returns no partial result.
func TestReadPoints_AbortsOnFirstBadLine(t *testing.T) {
	in := "1 2\n3 4\nbad line here\n5 6\n"
	got, err := pointio.ReadPoints(strings.NewReader(in))
	require.ErrorIs(t, err, pointio.ErrParse)
	assert.Contains(t, err.Error(), "line 3")
	assert.Nil(t, got)
}

// TestReadPoints_Empty yields no points and no error.
func TestReadPoints_Empty(t *testing.T) {
	got, err := pointio.ReadPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
