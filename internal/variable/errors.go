package variable

import "errors"

// ErrInvalidShape is returned when data does not fit the requested shape.
var ErrInvalidShape = errors.New("invalid shape")
