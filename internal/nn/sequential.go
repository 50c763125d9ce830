package nn

import (
	"fmt"
	"strconv"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input. Modules are
// registered as children named by their position ("0", "1", ...), so their
// parameters are qualified as "0.weight", "2.bias", and so on.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, true, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, true, rng),
//	)
//
//	output := nn.Call(model, input)
type Sequential struct {
	Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Component) *Sequential {
	s := &Sequential{}
	for _, m := range modules {
		s.Add(m)
	}
	return s
}

// Forward applies all modules in sequence.
//
// The inputs go to the first module; its output is passed on alone. An
// empty Sequential returns its single input unchanged.
func (s *Sequential) Forward(inputs ...any) any {
	mods := s.Modules()
	if len(mods) == 0 {
		if len(inputs) != 1 {
			panic(fmt.Sprintf("Sequential.Forward: empty sequence expects 1 input, got %d", len(inputs)))
		}
		return inputs[0]
	}

	output := Call(mods[0], inputs...)
	for _, m := range mods[1:] {
		output = Call(m, output)
	}
	return output
}

// Add appends a module to the sequence under the name of its position.
//
// This allows building models incrementally:
//
//	model := nn.NewSequential()
//	model.Add(nn.NewLinear(784, 128, true, rng))
//	model.Add(nn.NewReLU())
func (s *Sequential) Add(module Component) {
	s.RegisterChild(strconv.Itoa(s.Len()), module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return s.children.len()
}

// At returns the module at the given position in the sequence, counting
// every child in insertion order, including ones attached with Set or
// RegisterChild under other names.
//
// Panics if index is out of bounds.
func (s *Sequential) At(index int) Component {
	mods := s.Modules()
	if index < 0 || index >= len(mods) {
		panic("Sequential.At: index out of bounds")
	}
	return mods[index]
}

func (s *Sequential) String() string { return Repr(s) }
