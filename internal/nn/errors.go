package nn

import "errors"

// Module errors.
var (
	// ErrNoAttribute is returned when a name is neither a plain attribute,
	// a registered parameter, nor a registered child.
	ErrNoAttribute = errors.New("no such attribute")

	// ErrForwardNotImplemented is the panic value (wrapped) raised by Call
	// when a module type has no Forward method.
	ErrForwardNotImplemented = errors.New("forward not implemented")
)
