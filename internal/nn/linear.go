package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/modtree/internal/variable"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - x is the input with shape [in_features] or [batch_size, in_features]
//   - W is the "weight" parameter with shape [out_features, in_features]
//   - b is the optional "bias" parameter with shape [out_features]
//
// Weights are initialized using Xavier/Glorot initialization.
// Biases are initialized to zeros.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLinear(784, 128, true, rng)
//	output := nn.Call(layer, input)
type Linear struct {
	Module
	inFeatures  int
	outFeatures int
}

// NewLinear creates a new Linear layer.
//
// Parameters:
//   - inFeatures: Number of input features
//   - outFeatures: Number of output features
//   - useBias: Whether to register a "bias" parameter
//   - rng: Random source for weight initialization
func NewLinear(inFeatures, outFeatures int, useBias bool, rng *rand.Rand) *Linear {
	l := &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
	}

	weightShape := variable.Shape{outFeatures, inFeatures}
	l.AddParameter("weight", variable.Xavier(inFeatures, outFeatures, weightShape, rng))

	if useBias {
		l.AddParameter("bias", variable.Zeros(variable.Shape{outFeatures}))
	}

	return l
}

// Forward computes y = x @ W.T + b.
//
// Panics if the input is not a *variable.Variable with in_features columns,
// or if the weight or bias parameter no longer holds a *variable.Variable.
func (l *Linear) Forward(inputs ...any) any {
	x := singleVariable("Linear", inputs)

	shape := x.Shape()
	var batch int
	switch {
	case len(shape) == 1 && shape[0] == l.inFeatures:
		batch = 1
	case len(shape) == 2 && shape[1] == l.inFeatures:
		batch = shape[0]
	default:
		panic(fmt.Sprintf("Linear.Forward: expected input [%d] or [batch, %d], got shape %v",
			l.inFeatures, l.inFeatures, []int(shape)))
	}

	w := l.variableParam("weight")
	var b *variable.Variable
	if _, ok := l.Param("bias"); ok {
		b = l.variableParam("bias")
	}

	outShape := variable.Shape{batch, l.outFeatures}
	if len(shape) == 1 {
		outShape = variable.Shape{l.outFeatures}
	}
	out := variable.Zeros(outShape)

	xd, wd, od := x.Data(), w.Data(), out.Data()
	for n := 0; n < batch; n++ {
		row := xd[n*l.inFeatures : (n+1)*l.inFeatures]
		for o := 0; o < l.outFeatures; o++ {
			sum := 0.0
			for i, xv := range row {
				sum += wd[o*l.inFeatures+i] * xv
			}
			if b != nil {
				sum += b.Data()[o]
			}
			od[n*l.outFeatures+o] = sum
		}
	}

	return out
}

// variableParam returns the value of the named parameter as a variable.
func (l *Linear) variableParam(name string) *variable.Variable {
	v, ok := ValueAs[*variable.Variable](l.MustParam(name))
	if !ok {
		panic(fmt.Sprintf("Linear.Forward: %s must hold *variable.Variable, got %T",
			name, l.MustParam(name).Value()))
	}
	return v
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.MustParam("weight")
}

// Bias returns the bias parameter, or nil if the layer has no bias.
func (l *Linear) Bias() *Parameter {
	p, _ := l.Param("bias")
	return p
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

func (l *Linear) String() string { return Repr(l) }
