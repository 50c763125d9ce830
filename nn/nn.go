// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/modtree/internal/nn"
)

// Core types

// Module is the embeddable tree node of every module type.
type Module = nn.Module

// Component is implemented by every type that embeds Module.
type Component = nn.Component

// Forwarder is the computation capability of a concrete module type.
type Forwarder = nn.Forwarder

// TypeNamer overrides the type name shown by Repr.
type TypeNamer = nn.TypeNamer

// Parameter is a named, mutable slot holding one learnable value.
type Parameter = nn.Parameter

// GradRequirer is implemented by values that can be tracked for differentiation.
type GradRequirer = nn.GradRequirer

// Namer is implemented by values with a settable name.
type Namer = nn.Namer

// NamedParameter pairs a parameter with its qualified name.
type NamedParameter = nn.NamedParameter

// NamedModule pairs a module with its qualified name.
type NamedModule = nn.NamedModule

// Errors

var (
	// ErrNoAttribute is returned for names that are not registered on a module.
	ErrNoAttribute = nn.ErrNoAttribute

	// ErrForwardNotImplemented is wrapped by the panic of Call on a module
	// type without a Forward method.
	ErrForwardNotImplemented = nn.ErrForwardNotImplemented
)

// NewParameter wraps value in a new Parameter. An empty name means unnamed.
func NewParameter(value any, name string) *Parameter {
	return nn.NewParameter(value, name)
}

// ValueAs returns the parameter's value asserted to T.
func ValueAs[T any](p *Parameter) (T, bool) {
	return nn.ValueAs[T](p)
}

// Call runs c's Forward with inputs. Panics if c has no Forward.
func Call(c Component, inputs ...any) any {
	return nn.Call(c, inputs...)
}

// Repr renders the structure of the tree rooted at c.
func Repr(c Component) string {
	return nn.Repr(c)
}

// TypeNameOf returns the display name of c's concrete type.
func TypeNameOf(c Component) string {
	return nn.TypeNameOf(c)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	rng := rand.New(rand.NewSource(1))
//	layer := nn.NewLinear(784, 128, true, rng)
func NewLinear(inFeatures, outFeatures int, useBias bool, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, useBias, rng)
}

// Dropout zeroes random elements in training mode.
type Dropout = nn.Dropout

// NewDropout creates a Dropout module with drop probability p.
func NewDropout(p float64, rng *rand.Rand) *Dropout {
	return nn.NewDropout(p, rng)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the sigmoid activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh represents the hyperbolic tangent activation function.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation layer.
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// Containers

// Sequential chains modules, registering them as "0", "1", ...
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, true, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, true, rng),
//	)
func NewSequential(modules ...Component) *Sequential {
	return nn.NewSequential(modules...)
}

// Block is a plain container with a configurable type name.
type Block = nn.Block

// NewBlock creates an empty Block rendered as typeName.
func NewBlock(typeName string) *Block {
	return nn.NewBlock(typeName)
}
