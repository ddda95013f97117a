package pointio

import "errors"

// ErrParse indicates a malformed point line.
var ErrParse = errors.New("pointio: malformed point line")
