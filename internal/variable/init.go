package variable

import (
	"math"
	"math/rand"
)

// Zeros creates a variable filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(shape Shape) *Variable {
	return &Variable{
		shape: shape.Clone(),
		data:  make([]float64, shape.NumElements()),
	}
}

// Ones creates a variable filled with ones.
func Ones(shape Shape) *Variable {
	v := Zeros(shape)
	for i := range v.data {
		v.data[i] = 1
	}
	return v
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// Parameters:
//   - fanIn: Number of input units
//   - fanOut: Number of output units
//   - shape: Shape of the weight variable
//   - rng: Random source; pass a seeded source for reproducible trees
func Xavier(fanIn, fanOut int, shape Shape, rng *rand.Rand) *Variable {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	v := Zeros(shape)
	for i := range v.data {
		v.data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return v
}

// Randn creates a variable with values drawn from N(0, 1).
func Randn(shape Shape, rng *rand.Rand) *Variable {
	v := Zeros(shape)
	for i := range v.data {
		v.data[i] = rng.NormFloat64()
	}
	return v
}
