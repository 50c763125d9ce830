package arch

import "errors"

// Architecture errors.
var (
	ErrInvalidSpec = errors.New("invalid architecture")
	ErrUnknownType = errors.New("unknown module type")
)
