package format

import "errors"

// ErrMalformed is returned when a file does not match its expected shape.
var ErrMalformed = errors.New("format: malformed instance file")
