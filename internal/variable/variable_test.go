package variable

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v, err := New(Shape{2, 3}, data)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, v.Shape())
	assert.Equal(t, 6, v.NumElements())
	assert.Equal(t, data, v.Data())

	// Input slice is copied.
	data[0] = 42
	assert.InDelta(t, 1.0, v.Data()[0], 1e-12)
}

func TestNew_InvalidShape(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		data  []float64
	}{
		{"too few elements", Shape{2, 2}, []float64{1, 2, 3}},
		{"too many elements", Shape{1}, []float64{1, 2}},
		{"negative dimension", Shape{-1, 2}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.shape, tt.data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidShape))
		})
	}
}

func TestCapabilities(t *testing.T) {
	v := Scalar(3)
	assert.False(t, v.RequiresGradEnabled())
	assert.Empty(t, v.Name())

	v.RequiresGrad(true)
	v.SetName("w")

	assert.True(t, v.RequiresGradEnabled())
	assert.Equal(t, "w", v.Name())
	assert.InDelta(t, 3.0, v.Item(), 1e-12)
}

func TestClone(t *testing.T) {
	v := Ones(Shape{3})
	v.RequiresGrad(true)
	v.SetName("bias")

	c := v.Clone()
	c.Data()[0] = 7

	assert.InDelta(t, 1.0, v.Data()[0], 1e-12)
	assert.Equal(t, "bias", c.Name())
	assert.False(t, c.RequiresGradEnabled())
}

func TestItem_PanicsOnVector(t *testing.T) {
	assert.Panics(t, func() {
		_ = Zeros(Shape{2}).Item()
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Variable(1.5)", Scalar(1.5).String())
	assert.Equal(t, "Variable[2 3]", Zeros(Shape{2, 3}).String())
}

func TestXavierBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	v := Xavier(4, 8, Shape{8, 4}, rng)
	bound := math.Sqrt(6.0 / 12.0)

	require.Equal(t, 32, v.NumElements())
	for _, x := range v.Data() {
		assert.LessOrEqual(t, math.Abs(x), bound)
	}
}

func TestInitializersAreReproducible(t *testing.T) {
	a := Randn(Shape{5}, rand.New(rand.NewSource(7)))
	b := Randn(Shape{5}, rand.New(rand.NewSource(7)))
	assert.Equal(t, a.Data(), b.Data())
}

func TestGrad(t *testing.T) {
	v := Zeros(Shape{3})
	assert.Nil(t, v.Grad())

	g := []float64{1, 2, 3}
	require.NoError(t, v.SetGrad(g))
	g[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, v.Grad(), "gradient is copied")

	err := v.SetGrad([]float64{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	assert.Nil(t, v.Clone().Grad())

	v.ZeroGrad()
	assert.Nil(t, v.Grad())
}
