package nn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type box[T any] struct {
	Module
	item T
}

func TestRepr_Empty(t *testing.T) {
	assert.Equal(t, "testNet()", Repr(&testNet{}))
	assert.Equal(t, "Module()", Repr(&Module{}))
	assert.Equal(t, "box()", Repr(&box[int]{item: 1}))
}

func TestRepr_ParametersAreNotListed(t *testing.T) {
	m := &testNet{}
	m.AddParameter("w", 1)
	m.Set("note", "plain")

	assert.Equal(t, "testNet()", Repr(m))
}

func TestRepr_Nested(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	root := &testNet{}
	root.RegisterChild("fc1", NewLinear(2, 3, true, rng))
	root.RegisterChild("seq", NewSequential(NewReLU(), NewBlock("Head")))

	want := "testNet(\n" +
		"  (fc1): Linear()\n" +
		"  (seq): Sequential(\n" +
		"    (0): ReLU()\n" +
		"    (1): Head()\n" +
		"  )\n" +
		")"
	assert.Equal(t, want, Repr(root))
}

func TestRepr_StringMethods(t *testing.T) {
	seq := NewSequential(NewTanh())
	assert.Equal(t, "Sequential(\n  (0): Tanh()\n)", seq.String())
	assert.Equal(t, "Block()", NewBlock("").String())
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "single", indent("single", 2))
	assert.Equal(t, "a\n  b\n  c", indent("a\nb\nc", 2))
}
