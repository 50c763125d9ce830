package nn

import (
	"fmt"
	"reflect"
)

// GradRequirer is implemented by values that can be tracked for
// differentiation by an external computation engine.
type GradRequirer interface {
	RequiresGrad(enabled bool)
}

// Namer is implemented by values that carry a settable diagnostic name.
type Namer interface {
	SetName(name string)
}

// Parameter is a named, mutable slot holding one learnable value.
//
// The value is opaque: any Go value is accepted, nil included. When the value implements
// GradRequirer, gradient tracking is switched on every time the value is set,
// and if the parameter is named and the value implements Namer, the value is
// renamed to match.
//
// Example:
//
//	w := variable.Zeros(variable.Shape{3})
//	p := nn.NewParameter(w, "weight")
//	// w.RequiresGradEnabled() == true, w.Name() == "weight"
type Parameter struct {
	value any
	name  string // empty means unnamed; never changes after construction
}

// NewParameter wraps value in a new Parameter.
//
// Pass an empty name for an unnamed parameter. Modules name the parameters
// they create through AddParameter.
func NewParameter(value any, name string) *Parameter {
	p := &Parameter{name: name}
	p.Update(value)
	return p
}

// Update replaces the held value.
//
// The new value receives the same gradient and name propagation as on
// construction. No compatibility check against the previous value is made.
func (p *Parameter) Update(value any) {
	p.value = value

	req, ok := value.(GradRequirer)
	if !ok || isNilPointer(value) {
		return
	}
	req.RequiresGrad(true)

	if p.name == "" {
		return
	}
	if n, ok := value.(Namer); ok {
		n.SetName(p.name)
	}
}

// isNilPointer reports whether value is a typed nil pointer, which satisfies
// the capability interfaces but cannot receive calls.
func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Value returns the held value.
func (p *Parameter) Value() any {
	return p.value
}

// Name returns the parameter name, or "" if unnamed.
func (p *Parameter) Name() string {
	return p.name
}

// String renders the held value.
func (p *Parameter) String() string {
	return fmt.Sprint(p.value)
}

// ValueAs returns the parameter's value asserted to T.
func ValueAs[T any](p *Parameter) (T, bool) {
	v, ok := p.value.(T)
	return v, ok
}
