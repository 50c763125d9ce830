package nn

import (
	"testing"

	"github.com/born-ml/modtree/internal/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradValue exposes both value capabilities.
type gradValue struct {
	requiresGrad bool
	name         string
}

func (g *gradValue) RequiresGrad(enabled bool) { g.requiresGrad = enabled }
func (g *gradValue) SetName(name string)       { g.name = name }

// nameOnly exposes a settable name but no requires-grad capability.
type nameOnly struct {
	name string
}

func (n *nameOnly) SetName(name string) { n.name = name }

func TestNewParameter_PropagatesGradAndName(t *testing.T) {
	v := &gradValue{}
	p := NewParameter(v, "w")

	assert.Same(t, v, p.Value())
	assert.Equal(t, "w", p.Name())
	assert.True(t, v.requiresGrad)
	assert.Equal(t, "w", v.name)
}

func TestParameterUpdate_PropagatesGradAndName(t *testing.T) {
	p := NewParameter(&gradValue{}, "w")

	v2 := &gradValue{}
	p.Update(v2)

	assert.Same(t, v2, p.Value())
	assert.True(t, v2.requiresGrad)
	assert.Equal(t, "w", v2.name)
	assert.Equal(t, "w", p.Name(), "name never changes")
}

func TestNewParameter_Unnamed(t *testing.T) {
	v := &gradValue{name: "keep"}
	p := NewParameter(v, "")

	assert.Empty(t, p.Name())
	assert.True(t, v.requiresGrad)
	assert.Equal(t, "keep", v.name, "unnamed parameter must not rename its value")
}

func TestNewParameter_PlainValues(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"int", 42},
		{"string", "hello"},
		{"nil", nil},
		{"slice", []float64{1, 2}},
		{"nil variable", (*variable.Variable)(nil)},
		{"nil capability value", (*gradValue)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParameter(tt.value, "x")
			assert.Equal(t, tt.value, p.Value())
		})
	}
}

func TestModule_AddParameterNilVariable(t *testing.T) {
	var m Module
	var w *variable.Variable

	require.NotPanics(t, func() { m.AddParameter("w", w) })

	got, ok := ValueAs[*variable.Variable](m.MustParam("w"))
	require.True(t, ok)
	assert.Nil(t, got)

	v := variable.Zeros(variable.Shape{2})
	m.MustParam("w").Update(v)
	assert.True(t, v.RequiresGradEnabled())
	assert.Equal(t, "w", v.Name())
}

func TestNewParameter_NameOnlyValueIsNotRenamed(t *testing.T) {
	v := &nameOnly{}
	NewParameter(v, "w")
	assert.Empty(t, v.name)
}

func TestParameter_Variable(t *testing.T) {
	v := variable.Scalar(2)
	p := NewParameter(v, "scale")

	assert.True(t, v.RequiresGradEnabled())
	assert.Equal(t, "scale", v.Name())
	assert.Equal(t, "Variable(2)", p.String())

	got, ok := ValueAs[*variable.Variable](p)
	require.True(t, ok)
	assert.Same(t, v, got)

	_, ok = ValueAs[int](p)
	assert.False(t, ok)
}
