// Package nn implements the module tree for the modtree framework.
//
// This package provides the composition mechanism for building models out
// of smaller named pieces:
//   - Parameter: named slot around one learnable value
//   - Module: embeddable node owning named parameters and named children
//   - Component: interface satisfied by every type that embeds Module
//   - Traversal: NamedParameters, Parameters, NamedModules, Train, Eval
//   - Reference modules: Linear, ReLU, Dropout, Sequential, Block
//
// Design inspired by PyTorch's nn.Module, with explicit registration in
// place of attribute interception.
package nn

import (
	"fmt"
	"strings"
)

// Component is implemented by every module in a tree.
//
// Concrete module types embed Module and get Base through promotion:
//
//	type MLP struct {
//	    nn.Module
//	}
//
//	func NewMLP(rng *rand.Rand) *MLP {
//	    m := &MLP{}
//	    m.RegisterChild("fc1", nn.NewLinear(4, 8, true, rng))
//	    m.RegisterChild("fc2", nn.NewLinear(8, 2, true, rng))
//	    return m
//	}
type Component interface {
	// Base returns the embedded tree node.
	Base() *Module
}

// Forwarder is the computation capability of a concrete module type.
//
// Module itself has no Forward; types that embed it and want to be callable
// must supply one. See Call.
type Forwarder interface {
	Forward(inputs ...any) any
}

// TypeNamer overrides the reflected type name used by Repr.
type TypeNamer interface {
	TypeName() string
}

// NamedParameter pairs a parameter with its (possibly qualified) name.
type NamedParameter struct {
	Name      string
	Parameter *Parameter
}

// NamedModule pairs a module with its (possibly qualified) name.
type NamedModule struct {
	Name   string
	Module Component
}

// Module is a tree node holding direct parameters, direct child modules and
// plain attributes, plus a training/evaluation mode flag.
//
// The zero value is an empty module in training mode, ready to use.
//
// Attaching a value under a name that is already in use replaces the earlier
// entry (last write wins); this is never an error. Local names are joined
// with "." and are not escaped, so a local name that itself contains "."
// yields a qualified name indistinguishable from a deeper nesting.
//
// A Module is not safe for concurrent use. Building and traversing a tree
// from several goroutines requires one exclusive lock per tree held by the
// caller.
type Module struct {
	params   registry[*Parameter]
	children registry[Component]
	attrs    registry[any]
	eval     bool // zero value means training mode
}

// Base returns m. It makes every type embedding Module a Component.
func (m *Module) Base() *Module {
	return m
}

// Training reports whether the module is in training mode.
func (m *Module) Training() bool {
	return !m.eval
}

// Set attaches value under name, classifying it:
//   - *Parameter: stored as a direct parameter
//   - Component: stored as a direct child module
//   - anything else: stored as a plain attribute, outside the tree
//
// The name is removed from the other two stores, so a name is held by
// exactly one of them after Set returns.
func (m *Module) Set(name string, value any) {
	switch v := value.(type) {
	case *Parameter:
		m.RegisterParameter(name, v)
	case Component:
		m.RegisterChild(name, v)
	default:
		m.params.remove(name)
		m.children.remove(name)
		m.attrs.set(name, value)
	}
}

// RegisterParameter stores p as the direct parameter name and returns it.
func (m *Module) RegisterParameter(name string, p *Parameter) *Parameter {
	m.children.remove(name)
	m.attrs.remove(name)
	m.params.set(name, p)
	return p
}

// RegisterChild stores c as the direct child name and returns it.
func (m *Module) RegisterChild(name string, c Component) Component {
	m.params.remove(name)
	m.attrs.remove(name)
	m.children.set(name, c)
	return c
}

// AddParameter wraps value in a new Parameter named name, stores it as a
// direct parameter and returns it.
//
// Use this when a raw value, not already wrapped, should become a tracked
// parameter, e.g. for programmatically generated names.
func (m *Module) AddParameter(name string, value any) *Parameter {
	return m.RegisterParameter(name, NewParameter(value, name))
}

// Param returns the direct parameter registered under name.
func (m *Module) Param(name string) (*Parameter, bool) {
	return m.params.get(name)
}

// Child returns the direct child registered under name.
func (m *Module) Child(name string) (Component, bool) {
	return m.children.get(name)
}

// MustParam is like Param but panics with an ErrNoAttribute error when name
// is not a direct parameter. Concrete types use it for field-style accessors.
func (m *Module) MustParam(name string) *Parameter {
	p, ok := m.params.get(name)
	if !ok {
		panic(m.missing(name))
	}
	return p
}

// MustChild is like Child but panics with an ErrNoAttribute error when name
// is not a direct child.
func (m *Module) MustChild(name string) Component {
	c, ok := m.children.get(name)
	if !ok {
		panic(m.missing(name))
	}
	return c
}

// Attr looks name up as a plain attribute, then as a direct parameter, then
// as a direct child.
//
// Returns an error wrapping ErrNoAttribute if name is in none of them. A
// parameter is returned as its *Parameter wrapper, not its value.
func (m *Module) Attr(name string) (any, error) {
	if v, ok := m.attrs.get(name); ok {
		return v, nil
	}
	if p, ok := m.params.get(name); ok {
		return p, nil
	}
	if c, ok := m.children.get(name); ok {
		return c, nil
	}
	return nil, m.missing(name)
}

// DirectParameters returns the module's own parameters in insertion order.
func (m *Module) DirectParameters() []NamedParameter {
	out := make([]NamedParameter, 0, m.params.len())
	m.params.each(func(name string, p *Parameter) {
		out = append(out, NamedParameter{Name: name, Parameter: p})
	})
	return out
}

// DirectChildren returns the module's own children in insertion order.
func (m *Module) DirectChildren() []NamedModule {
	out := make([]NamedModule, 0, m.children.len())
	m.children.each(func(name string, c Component) {
		out = append(out, NamedModule{Name: name, Module: c})
	})
	return out
}

// Modules returns the direct children in insertion order. Not recursive.
func (m *Module) Modules() []Component {
	out := make([]Component, 0, m.children.len())
	m.children.each(func(_ string, c Component) {
		out = append(out, c)
	})
	return out
}

// missing builds the error for an unknown attribute, suggesting the closest
// registered name when there is one.
func (m *Module) missing(name string) error {
	var known []string
	m.attrs.each(func(k string, _ any) { known = append(known, k) })
	m.params.each(func(k string, _ *Parameter) { known = append(known, k) })
	m.children.each(func(k string, _ Component) { known = append(known, k) })

	if s := suggest(name, known); s != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrNoAttribute, name, s)
	}
	return fmt.Errorf("%w: %q", ErrNoAttribute, name)
}

// Call runs c's Forward with inputs.
//
// Panics with an error wrapping ErrForwardNotImplemented when c does not
// implement Forwarder: calling a module type without a computation is a
// programming error.
func Call(c Component, inputs ...any) any {
	f, ok := c.(Forwarder)
	if !ok {
		panic(fmt.Errorf("%s: %w", TypeNameOf(c), ErrForwardNotImplemented))
	}
	return f.Forward(inputs...)
}

// qualify joins a parent's qualified name and a local name.
// The root has an empty prefix, so its entries are not prefixed.
func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	var b strings.Builder
	b.Grow(len(prefix) + 1 + len(name))
	b.WriteString(prefix)
	b.WriteByte('.')
	b.WriteString(name)
	return b.String()
}
