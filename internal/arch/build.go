package arch

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"

	"github.com/born-ml/modtree/internal/nn"
	"github.com/born-ml/modtree/internal/variable"
)

// DefaultRootName is the type name of the root when the description has none.
const DefaultRootName = "Model"

// Build constructs the module tree described by spec.
//
// The root is a Block named after spec.Name. Declared parameters are
// initialized from N(0, 1) and linear weights with Xavier, all drawn from a
// source seeded with spec.Seed, so the same description always yields the
// same values.
//
// Unlike Module registration, a description may not use the same name twice
// within one module; Build reports it as ErrInvalidSpec.
func Build(spec *Spec) (*nn.Block, error) {
	name := spec.Name
	if name == "" {
		name = DefaultRootName
	}

	b := &builder{rng: rand.New(rand.NewSource(spec.Seed))}
	root := nn.NewBlock(name)

	if err := b.addParameters(root.Base(), spec.Parameters, ""); err != nil {
		return nil, err
	}
	if err := b.addChildren(root.Base(), spec.Modules, ""); err != nil {
		return nil, err
	}
	return root, nil
}

// builder carries the shared random source through a build.
type builder struct {
	rng *rand.Rand
}

func (b *builder) addParameters(m *nn.Module, params ParamShapes, path string) error {
	for _, ps := range params {
		at := join(path, ps.Name)
		if ps.Name == "" {
			return fmt.Errorf("%w: %s: parameter name is empty", ErrInvalidSpec, location(path))
		}
		if taken(m, ps.Name) {
			return fmt.Errorf("%w: %s: duplicate name", ErrInvalidSpec, at)
		}
		for _, d := range ps.Shape {
			if d < 0 {
				return fmt.Errorf("%w: %s: negative dimension in shape %v", ErrInvalidSpec, at, ps.Shape)
			}
		}
		m.AddParameter(ps.Name, variable.Randn(variable.Shape(ps.Shape), b.rng))
	}
	return nil
}

func (b *builder) addChildren(m *nn.Module, mods []ModuleSpec, path string) error {
	for i, ms := range mods {
		if ms.Name == "" {
			return fmt.Errorf("%w: %s: module %d has no name", ErrInvalidSpec, location(path), i)
		}
		at := join(path, ms.Name)
		if taken(m, ms.Name) {
			return fmt.Errorf("%w: %s: duplicate name", ErrInvalidSpec, at)
		}

		child, err := b.build(ms, at)
		if err != nil {
			return err
		}
		m.RegisterChild(ms.Name, child)
	}
	return nil
}

func (b *builder) build(ms ModuleSpec, at string) (nn.Component, error) {
	switch ms.Type {
	case TypeLinear:
		if err := leafOnly(ms, at); err != nil {
			return nil, err
		}
		if err := onlyFields(ms, at, "in", "out", "bias"); err != nil {
			return nil, err
		}
		if ms.In <= 0 || ms.Out <= 0 {
			return nil, fmt.Errorf("%w: %s: Linear needs positive in and out, got in=%d out=%d",
				ErrInvalidSpec, at, ms.In, ms.Out)
		}
		useBias := ms.Bias == nil || *ms.Bias
		return nn.NewLinear(ms.In, ms.Out, useBias, b.rng), nil

	case TypeReLU, TypeSigmoid, TypeTanh:
		if err := leafOnly(ms, at); err != nil {
			return nil, err
		}
		if err := onlyFields(ms, at); err != nil {
			return nil, err
		}
		switch ms.Type {
		case TypeReLU:
			return nn.NewReLU(), nil
		case TypeSigmoid:
			return nn.NewSigmoid(), nil
		default:
			return nn.NewTanh(), nil
		}

	case TypeDropout:
		if err := leafOnly(ms, at); err != nil {
			return nil, err
		}
		if err := onlyFields(ms, at, "p"); err != nil {
			return nil, err
		}
		if ms.P < 0 || ms.P > 1 {
			return nil, fmt.Errorf("%w: %s: Dropout p must be in [0, 1], got %g", ErrInvalidSpec, at, ms.P)
		}
		return nn.NewDropout(ms.P, b.rng), nil

	case TypeSequential:
		if len(ms.Parameters) > 0 || ms.Class != "" {
			return nil, fmt.Errorf("%w: %s: Sequential takes only modules", ErrInvalidSpec, at)
		}
		if err := onlyFields(ms, at); err != nil {
			return nil, err
		}
		seq := nn.NewSequential()
		for i, child := range ms.Modules {
			c, err := b.build(child, join(at, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			seq.Add(c)
		}
		return seq, nil

	case TypeBlock:
		if err := onlyFields(ms, at); err != nil {
			return nil, err
		}
		block := nn.NewBlock(ms.Class)
		if err := b.addParameters(block.Base(), ms.Parameters, at); err != nil {
			return nil, err
		}
		if err := b.addChildren(block.Base(), ms.Modules, at); err != nil {
			return nil, err
		}
		return block, nil

	case "":
		return nil, fmt.Errorf("%w: %s: missing type", ErrInvalidSpec, at)

	default:
		return nil, fmt.Errorf("%w: %s: %q", ErrUnknownType, at, ms.Type)
	}
}

// leafOnly rejects Block-only and container fields on leaf module types.
func leafOnly(ms ModuleSpec, at string) error {
	if len(ms.Parameters) > 0 || len(ms.Modules) > 0 || ms.Class != "" {
		return fmt.Errorf("%w: %s: %s takes no parameters, modules or class",
			ErrInvalidSpec, at, ms.Type)
	}
	return nil
}

// onlyFields rejects the type-specific fields (in, out, bias, p) that are set
// on ms but not listed in allowed.
func onlyFields(ms ModuleSpec, at string, allowed ...string) error {
	set := []struct {
		field string
		isSet bool
	}{
		{"in", ms.In != 0},
		{"out", ms.Out != 0},
		{"bias", ms.Bias != nil},
		{"p", ms.P != 0},
	}
	for _, f := range set {
		if f.isSet && !slices.Contains(allowed, f.field) {
			return fmt.Errorf("%w: %s: %s does not take %q", ErrInvalidSpec, at, ms.Type, f.field)
		}
	}
	return nil
}

// taken reports whether name is already a parameter or child of m.
// Builders never attach plain attributes.
func taken(m *nn.Module, name string) bool {
	if _, ok := m.Param(name); ok {
		return true
	}
	_, ok := m.Child(name)
	return ok
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func location(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
