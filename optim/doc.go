// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for the parameters of a module tree.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers consume the flat list returned by Module.Parameters. A parameter
// takes part in a step only when it holds a *variable.Variable that requires
// gradients and carries one; other parameters are left as they are.
//
// # Training Loop Pattern
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	for range numEpochs {
//	    optimizer.ZeroGrad()
//	    computeGradients(model) // calls Variable.SetGrad
//	    optimizer.Step()
//	}
package optim
