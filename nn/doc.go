// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the module tree used to compose models.
//
// # Overview
//
// This package contains:
//   - Module: embeddable tree node owning named parameters and children
//   - Parameter: named slot around one learnable value
//   - Traversal: NamedParameters, Parameters, NamedModules, Train, Eval
//   - Layers: Linear, Dropout, Sequential, Block
//   - Activations: ReLU, Sigmoid, Tanh
//
// # Defining a module
//
// Concrete module types embed nn.Module and register their pieces during
// construction:
//
//	type MLP struct {
//	    nn.Module
//	}
//
//	func NewMLP(rng *rand.Rand) *MLP {
//	    m := &MLP{}
//	    m.RegisterChild("fc1", nn.NewLinear(784, 128, true, rng))
//	    m.RegisterChild("act", nn.NewReLU())
//	    m.RegisterChild("fc2", nn.NewLinear(128, 10, true, rng))
//	    return m
//	}
//
//	func (m *MLP) Forward(inputs ...any) any {
//	    h := nn.Call(m.MustChild("fc1"), inputs...)
//	    h = nn.Call(m.MustChild("act"), h)
//	    return nn.Call(m.MustChild("fc2"), h)
//	}
//
// Set classifies a value the way attribute assignment would: parameters and
// modules join the tree, anything else is kept as a plain attribute.
// Attaching under a name already in use replaces the earlier entry.
//
// # Parameter Management
//
// Parameters are collected breadth-first with dotted qualified names:
//
//	for _, np := range model.NamedParameters() {
//	    fmt.Println(np.Name, np.Parameter) // "fc1.weight", "fc1.bias", ...
//	}
//
// # Training and evaluation
//
// Train and Eval switch the whole subtree:
//
//	model.Eval()  // every module reports Training() == false
//	model.Train()
//
// # Diagnostics
//
// Repr renders the module structure:
//
//	fmt.Println(nn.Repr(model))
//	// MLP(
//	//   (fc1): Linear()
//	//   (act): ReLU()
//	//   (fc2): Linear()
//	// )
package nn
