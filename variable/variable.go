// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package variable provides the public API for the value type held by
// parameters.
//
// A Variable is a shaped block of float64 data carrying the two optional
// capabilities a Parameter pushes onto its value: gradient tracking and a
// settable name.
//
// Example:
//
//	w := variable.Xavier(4, 8, variable.Shape{8, 4}, rng)
//	p := nn.NewParameter(w, "weight")
//	// w.RequiresGradEnabled() == true, w.Name() == "weight"
package variable

import (
	"math/rand"

	"github.com/born-ml/modtree/internal/variable"
)

// Variable is a named block of data with an optional gradient flag.
type Variable = variable.Variable

// Shape is the dimensions of a Variable.
type Shape = variable.Shape

// ErrInvalidShape is returned when data does not fit the requested shape.
var ErrInvalidShape = variable.ErrInvalidShape

// New creates a Variable from a shape and a data slice. The slice is copied.
func New(shape Shape, data []float64) (*Variable, error) {
	return variable.New(shape, data)
}

// Scalar creates a 0-D Variable holding x.
func Scalar(x float64) *Variable {
	return variable.Scalar(x)
}

// Zeros creates a variable filled with zeros.
func Zeros(shape Shape) *Variable {
	return variable.Zeros(shape)
}

// Ones creates a variable filled with ones.
func Ones(shape Shape) *Variable {
	return variable.Ones(shape)
}

// Xavier creates a variable with Xavier/Glorot uniform initialization.
func Xavier(fanIn, fanOut int, shape Shape, rng *rand.Rand) *Variable {
	return variable.Xavier(fanIn, fanOut, shape, rng)
}

// Randn creates a variable with values drawn from N(0, 1).
func Randn(shape Shape, rng *rand.Rand) *Variable {
	return variable.Randn(shape, rng)
}
