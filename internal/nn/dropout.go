package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/modtree/internal/variable"
)

// Dropout randomly zeroes elements during training.
//
// In training mode each element is zeroed with probability p and the
// survivors are scaled by 1/(1-p). In evaluation mode the input is returned
// unchanged. Use Train and Eval on the root to switch the whole tree.
type Dropout struct {
	Module
	p   float64
	rng *rand.Rand
}

// NewDropout creates a Dropout module with drop probability p.
//
// Panics if p is outside [0, 1].
func NewDropout(p float64, rng *rand.Rand) *Dropout {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("NewDropout: probability must be in [0, 1], got %g", p))
	}
	return &Dropout{p: p, rng: rng}
}

// Forward applies dropout in training mode and is the identity in
// evaluation mode.
func (d *Dropout) Forward(inputs ...any) any {
	x := singleVariable("Dropout", inputs)
	if !d.Training() || d.p == 0 {
		return x
	}

	out := variable.Zeros(x.Shape())
	if d.p == 1 {
		return out
	}

	scale := 1 / (1 - d.p)
	data := out.Data()
	for i, v := range x.Data() {
		if d.rng.Float64() >= d.p {
			data[i] = v * scale
		}
	}
	return out
}

// P returns the drop probability.
func (d *Dropout) P() float64 {
	return d.p
}

func (d *Dropout) String() string { return Repr(d) }
