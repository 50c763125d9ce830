// Package optim implements optimizers that update the parameters of a
// module tree.
//
// Optimizers work on the flat parameter list produced by Module.Parameters.
// Only parameters holding a *variable.Variable that requires gradients and
// carries a gradient take part in a step; every other parameter is left
// untouched. Gradients are attached to variables by the caller (or by an
// external autodiff engine) through Variable.SetGrad.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for range epochs {
//	    optimizer.ZeroGrad()
//	    computeGradients(model)
//	    optimizer.Step()
//	}
package optim

import (
	"github.com/born-ml/modtree/internal/nn"
	"github.com/born-ml/modtree/internal/variable"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all trainable parameters.
	Step()

	// ZeroGrad clears all parameter gradients.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// trainable returns the variable held by param if it takes part in a step:
// it must require gradients and carry a gradient.
func trainable(param *nn.Parameter) (*variable.Variable, bool) {
	if param == nil {
		return nil, false
	}
	v, ok := nn.ValueAs[*variable.Variable](param)
	if !ok || v == nil || !v.RequiresGradEnabled() || v.Grad() == nil {
		return nil, false
	}
	return v, true
}

// zeroGrad clears the gradient of every variable-valued parameter.
func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		if v, ok := nn.ValueAs[*variable.Variable](param); ok && v != nil {
			v.ZeroGrad()
		}
	}
}

// buffer returns the per-parameter state slice for param, allocating a
// zeroed one when missing or when the parameter's value changed size.
func buffer(state map[*nn.Parameter][]float64, param *nn.Parameter, n int) []float64 {
	buf, ok := state[param]
	if !ok || len(buf) != n {
		buf = make([]float64, n)
		state[param] = buf
	}
	return buf
}
