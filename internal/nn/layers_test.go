package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/born-ml/modtree/internal/variable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func mustVariable(t *testing.T, shape variable.Shape, data []float64) *variable.Variable {
	t.Helper()
	v, err := variable.New(shape, data)
	require.NoError(t, err)
	return v
}

func TestLinear_Parameters(t *testing.T) {
	l := NewLinear(3, 2, true, newRNG())

	assert.Equal(t, []string{"weight", "bias"}, paramNames(l.NamedParameters()))
	assert.Equal(t, 3, l.InFeatures())
	assert.Equal(t, 2, l.OutFeatures())

	w, ok := ValueAs[*variable.Variable](l.Weight())
	require.True(t, ok)
	assert.Equal(t, variable.Shape{2, 3}, w.Shape())
	assert.True(t, w.RequiresGradEnabled())
	assert.Equal(t, "weight", w.Name())

	b, ok := ValueAs[*variable.Variable](l.Bias())
	require.True(t, ok)
	assert.Equal(t, variable.Shape{2}, b.Shape())
	assert.Equal(t, "bias", b.Name())

	noBias := NewLinear(3, 2, false, newRNG())
	assert.Nil(t, noBias.Bias())
	assert.Equal(t, 1, noBias.NumParameters())
}

func TestLinear_Forward(t *testing.T) {
	l := NewLinear(2, 2, true, newRNG())
	l.Weight().Update(mustVariable(t, variable.Shape{2, 2}, []float64{1, 2, 3, 4}))
	l.Bias().Update(mustVariable(t, variable.Shape{2}, []float64{0.5, -0.5}))

	// Single vector.
	y := Call(l, mustVariable(t, variable.Shape{2}, []float64{1, 1})).(*variable.Variable)
	assert.Equal(t, variable.Shape{2}, y.Shape())
	assert.InDeltaSlice(t, []float64{3.5, 6.5}, y.Data(), 1e-12)

	// Batch.
	x := mustVariable(t, variable.Shape{2, 2}, []float64{1, 0, 0, 1})
	y = Call(l, x).(*variable.Variable)
	assert.Equal(t, variable.Shape{2, 2}, y.Shape())
	assert.InDeltaSlice(t, []float64{1.5, 2.5, 2.5, 3.5}, y.Data(), 1e-12)
}

func TestLinear_ForwardShapeMismatch(t *testing.T) {
	l := NewLinear(3, 2, true, newRNG())
	assert.Panics(t, func() {
		Call(l, variable.Zeros(variable.Shape{4}))
	})
	assert.Panics(t, func() {
		Call(l, 3.0)
	})
}

func TestLinear_UpdatedWeightKeepsName(t *testing.T) {
	l := NewLinear(2, 2, false, newRNG())
	w := variable.Zeros(variable.Shape{2, 2})

	l.Weight().Update(w)

	assert.True(t, w.RequiresGradEnabled())
	assert.Equal(t, "weight", w.Name())
}

func TestActivations(t *testing.T) {
	x := func() *variable.Variable {
		return mustVariable(t, variable.Shape{3}, []float64{-1, 0, 2})
	}

	tests := []struct {
		name   string
		module Component
		want   []float64
	}{
		{"ReLU", NewReLU(), []float64{0, 0, 2}},
		{"Sigmoid", NewSigmoid(), []float64{1 / (1 + math.E), 0.5, 1 / (1 + math.Exp(-2))}},
		{"Tanh", NewTanh(), []float64{math.Tanh(-1), 0, math.Tanh(2)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Call(tt.module, x()).(*variable.Variable)
			assert.InDeltaSlice(t, tt.want, out.Data(), 1e-9)
			assert.Empty(t, tt.module.Base().Parameters())
		})
	}
}

func TestDropout_TrainingAndEval(t *testing.T) {
	d := NewDropout(0.5, newRNG())
	x := variable.Ones(variable.Shape{1000})

	out := Call(d, x).(*variable.Variable)
	zeros := 0
	for _, v := range out.Data() {
		if v == 0 {
			zeros++
		} else {
			assert.InDelta(t, 2.0, v, 1e-12)
		}
	}
	assert.Greater(t, zeros, 350)
	assert.Less(t, zeros, 650)

	d.Eval()
	assert.Same(t, x, Call(d, x))
}

func TestDropout_FollowsRootMode(t *testing.T) {
	d := NewDropout(1, newRNG())
	model := NewSequential(NewLinear(2, 2, true, newRNG()), d)
	x := variable.Ones(variable.Shape{2})

	out := Call(model, x).(*variable.Variable)
	assert.Equal(t, []float64{0, 0}, out.Data())

	model.Eval()
	out = Call(model, x).(*variable.Variable)
	assert.NotEqual(t, []float64{0, 0}, out.Data())
}

func TestNewDropout_InvalidProbability(t *testing.T) {
	assert.Panics(t, func() { NewDropout(-0.1, newRNG()) })
	assert.Panics(t, func() { NewDropout(1.5, newRNG()) })
}

func TestSequential(t *testing.T) {
	rng := newRNG()
	model := NewSequential(
		NewLinear(4, 3, true, rng),
		NewReLU(),
	)
	model.Add(NewLinear(3, 2, true, rng))

	assert.Equal(t, 3, model.Len())
	assert.IsType(t, &ReLU{}, model.At(1))
	assert.Panics(t, func() { model.At(3) })
	assert.Panics(t, func() { model.At(-1) })

	assert.Equal(t,
		[]string{"0.weight", "0.bias", "2.weight", "2.bias"},
		paramNames(model.NamedParameters()))

	out := Call(model, variable.Ones(variable.Shape{4})).(*variable.Variable)
	assert.Equal(t, variable.Shape{2}, out.Shape())
}

func TestSequential_AtCountsNamedChildren(t *testing.T) {
	s := NewSequential()
	head := NewReLU()
	tail := NewTanh()

	s.RegisterChild("head", head)
	s.Add(tail)

	assert.Equal(t, []string{"head", "1"}, childNames(s))
	assert.Same(t, head, s.At(0))
	assert.Same(t, tail, s.At(1))
	assert.Panics(t, func() { s.At(2) })
}

func TestSequential_Empty(t *testing.T) {
	s := NewSequential()
	x := variable.Scalar(1)

	assert.Same(t, x, Call(s, x))
	assert.Panics(t, func() { Call(s) })
}

func TestSequential_BlockWithoutForwardPanics(t *testing.T) {
	s := NewSequential(NewBlock("Head"))
	assert.Panics(t, func() {
		Call(s, variable.Scalar(1))
	})
}
