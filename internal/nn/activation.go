package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/modtree/internal/variable"
)

// ReLU is a Rectified Linear Unit activation module.
//
// Applies the element-wise function: f(x) = max(0, x)
//
// Example:
//
//	relu := nn.NewReLU()
//	output := nn.Call(relu, input)  // All negative values become 0
type ReLU struct {
	Module
}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU activation: f(x) = max(0, x).
func (r *ReLU) Forward(inputs ...any) any {
	return mapVariable("ReLU", inputs, func(x float64) float64 {
		return math.Max(0, x)
	})
}

func (r *ReLU) String() string { return Repr(r) }

// Sigmoid is a sigmoid activation module.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct {
	Module
}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies Sigmoid activation.
func (s *Sigmoid) Forward(inputs ...any) any {
	return mapVariable("Sigmoid", inputs, func(x float64) float64 {
		return 1 / (1 + math.Exp(-x))
	})
}

func (s *Sigmoid) String() string { return Repr(s) }

// Tanh is a hyperbolic tangent activation module.
type Tanh struct {
	Module
}

// NewTanh creates a new Tanh activation module.
func NewTanh() *Tanh {
	return &Tanh{}
}

// Forward applies Tanh activation.
func (t *Tanh) Forward(inputs ...any) any {
	return mapVariable("Tanh", inputs, math.Tanh)
}

func (t *Tanh) String() string { return Repr(t) }

// singleVariable extracts the one *variable.Variable input of op.
// Panics on anything else.
func singleVariable(op string, inputs []any) *variable.Variable {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("%s.Forward: expected 1 input, got %d", op, len(inputs)))
	}
	v, ok := inputs[0].(*variable.Variable)
	if !ok {
		panic(fmt.Sprintf("%s.Forward: expected *variable.Variable, got %T", op, inputs[0]))
	}
	return v
}

// mapVariable applies fn element-wise to the single input and returns a new
// variable of the same shape.
func mapVariable(op string, inputs []any, fn func(float64) float64) *variable.Variable {
	x := singleVariable(op, inputs)
	out := variable.Zeros(x.Shape())
	data := out.Data()
	for i, v := range x.Data() {
		data[i] = fn(v)
	}
	return out
}
