// Package arch builds module trees from YAML architecture descriptions.
//
// A description names the root, an optional seed for parameter
// initialization, the root's own parameters and an ordered list of child
// modules:
//
//	name: MLP
//	seed: 1
//	parameters:
//	  scale: [1]
//	modules:
//	  - name: encoder
//	    type: Linear
//	    in: 4
//	    out: 8
//	  - name: act
//	    type: ReLU
//	  - name: head
//	    type: Block
//	    class: Head
//	    parameters:
//	      gate: [8]
//	    modules:
//	      - name: proj
//	        type: Linear
//	        in: 8
//	        out: 2
//	        bias: false
//
// Parameter maps keep the order they are written in.
package arch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Module types understood by Build.
const (
	TypeLinear     = "Linear"
	TypeReLU       = "ReLU"
	TypeSigmoid    = "Sigmoid"
	TypeTanh       = "Tanh"
	TypeDropout    = "Dropout"
	TypeSequential = "Sequential"
	TypeBlock      = "Block"
)

// Spec is a parsed architecture description.
type Spec struct {
	Name       string       `yaml:"name"`
	Seed       int64        `yaml:"seed,omitempty"`
	Parameters ParamShapes  `yaml:"parameters,omitempty"`
	Modules    []ModuleSpec `yaml:"modules,omitempty"`
}

// ModuleSpec describes one child module.
type ModuleSpec struct {
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type"`

	// Block
	Class      string      `yaml:"class,omitempty"`
	Parameters ParamShapes `yaml:"parameters,omitempty"`

	// Linear
	In   int   `yaml:"in,omitempty"`
	Out  int   `yaml:"out,omitempty"`
	Bias *bool `yaml:"bias,omitempty"`

	// Dropout
	P float64 `yaml:"p,omitempty"`

	// Block and Sequential
	Modules []ModuleSpec `yaml:"modules,omitempty"`
}

// ParamShape is one named parameter shape.
type ParamShape struct {
	Name  string
	Shape []int
}

// ParamShapes is an ordered name -> shape mapping.
type ParamShapes []ParamShape

// UnmarshalYAML decodes a mapping while keeping its key order.
func (p *ParamShapes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: parameters must be a mapping of name to shape",
			ErrInvalidSpec, node.Line)
	}

	out := make(ParamShapes, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		var shape []int
		if err := val.Decode(&shape); err != nil {
			return fmt.Errorf("%w: line %d: parameter %q: shape must be a list of integers",
				ErrInvalidSpec, val.Line, key.Value)
		}
		out = append(out, ParamShape{Name: key.Value, Shape: shape})
	}

	*p = out
	return nil
}

// MarshalYAML encodes the shapes as an ordered mapping.
func (p ParamShapes) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ps := range p {
		var val yaml.Node
		if err := val.Encode(ps.Shape); err != nil {
			return nil, err
		}
		val.Style = yaml.FlowStyle
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ps.Name},
			&val,
		)
	}
	return node, nil
}

// Parse decodes an architecture description. Unknown fields are rejected.
func Parse(data []byte) (*Spec, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads an architecture description from r.
func Decode(r io.Reader) (*Spec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
		}
		if errors.Is(err, ErrInvalidSpec) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return &spec, nil
}

// LoadFile reads and parses the architecture description at path.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read architecture file: %w", err)
	}

	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Marshal encodes spec back to YAML.
func Marshal(spec *Spec) ([]byte, error) {
	return yaml.Marshal(spec)
}
