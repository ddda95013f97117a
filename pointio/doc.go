// Package pointio turns text into validated geom.Point values.
//
// Format:
//
//	One point per line: two integers separated by whitespace, e.g. "12 -7".
//	Interactive input ends at a line reading "end" (or at end of input).
//
// Policies:
//
//   - ReadPoints (file input) is all-or-nothing: the first malformed line
//     aborts the read and no points are returned.
//   - ReadInteractive reports each malformed line through a callback and
//     keeps reading.
//
// Errors:
//
//   - ErrParse: a line is not two in-range integers. The cause (field count,
//     integer syntax, or a geom range error) is wrapped alongside.
package pointio
