// Package variable provides a minimal differentiable value for module trees.
//
// A Variable is what a Parameter usually holds: a named, shaped block of
// float64 data that can be marked for gradient tracking. The actual autodiff
// engine lives elsewhere; this type only carries the capabilities a
// Parameter pushes onto its value.
package variable

import "fmt"

// Shape is the dimensions of a Variable.
type Shape []int

// NumElements returns the product of all dimensions.
// A scalar (empty shape) has one element.
func (s Shape) NumElements() int {
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have identical dimensions.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Variable is a named block of data with an optional gradient flag.
//
// Example:
//
//	v, err := variable.New(variable.Shape{2, 2}, []float64{1, 2, 3, 4})
//	v.RequiresGrad(true)
//	v.SetName("weight")
type Variable struct {
	name         string
	shape        Shape
	data         []float64
	grad         []float64
	requiresGrad bool
}

// New creates a Variable from a shape and a data slice.
// The slice is copied.
func New(shape Shape, data []float64) (*Variable, error) {
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %v", ErrInvalidShape, shape)
		}
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrInvalidShape, shape, shape.NumElements(), len(data))
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Variable{
		shape: shape.Clone(),
		data:  buf,
	}, nil
}

// Scalar creates a 0-D Variable holding x.
func Scalar(x float64) *Variable {
	return &Variable{shape: Shape{}, data: []float64{x}}
}

// RequiresGrad sets whether this variable is tracked for differentiation.
func (v *Variable) RequiresGrad(enabled bool) {
	v.requiresGrad = enabled
}

// RequiresGradEnabled reports whether the variable is tracked for differentiation.
func (v *Variable) RequiresGradEnabled() bool {
	return v.requiresGrad
}

// SetName sets the diagnostic name of the variable.
func (v *Variable) SetName(name string) {
	v.name = name
}

// Name returns the diagnostic name of the variable.
func (v *Variable) Name() string {
	return v.name
}

// Shape returns the variable's shape.
func (v *Variable) Shape() Shape {
	return v.shape
}

// NumElements returns the total number of elements.
func (v *Variable) NumElements() int {
	return len(v.data)
}

// Data returns the underlying data slice.
//
// WARNING: Modifications to the returned slice will modify the variable.
func (v *Variable) Data() []float64 {
	return v.data
}

// Grad returns the accumulated gradient, or nil if none has been set.
func (v *Variable) Grad() []float64 {
	return v.grad
}

// SetGrad replaces the gradient. The slice is copied.
func (v *Variable) SetGrad(grad []float64) error {
	if len(grad) != len(v.data) {
		return fmt.Errorf("%w: gradient has %d elements, variable %v has %d",
			ErrInvalidShape, len(grad), []int(v.shape), len(v.data))
	}
	if v.grad == nil {
		v.grad = make([]float64, len(grad))
	}
	copy(v.grad, grad)
	return nil
}

// ZeroGrad drops the gradient.
func (v *Variable) ZeroGrad() {
	v.grad = nil
}

// Item returns the value of a single-element variable.
// Panics if the variable holds more than one element.
func (v *Variable) Item() float64 {
	if len(v.data) != 1 {
		panic(fmt.Sprintf("Item() only works for single-element variables, got shape %v", v.shape))
	}
	return v.data[0]
}

// Clone creates a deep copy of the variable.
// The copy keeps the name but neither tracks nor carries gradients.
func (v *Variable) Clone() *Variable {
	buf := make([]float64, len(v.data))
	copy(buf, v.data)
	return &Variable{
		name:  v.name,
		shape: v.shape.Clone(),
		data:  buf,
	}
}

// String returns a short human-readable description.
func (v *Variable) String() string {
	if len(v.shape) == 0 && len(v.data) == 1 {
		return fmt.Sprintf("Variable(%g)", v.data[0])
	}
	return fmt.Sprintf("Variable%v", []int(v.shape))
}
