package nn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree builds:
//
//	root: params a, b; children left, right
//	left: param w; child inner
//	right: param w
//	inner: param deep
func buildTree() (*testNet, map[string]*Parameter) {
	params := map[string]*Parameter{}

	inner := &testNet{}
	params["left.inner.deep"] = inner.AddParameter("deep", 4)

	left := &testNet{}
	params["left.w"] = left.AddParameter("w", 2)
	left.RegisterChild("inner", inner)

	right := &testNet{}
	params["right.w"] = right.AddParameter("w", 3)

	root := &testNet{}
	params["a"] = root.AddParameter("a", 0)
	root.RegisterChild("left", left)
	root.RegisterChild("right", right)
	params["b"] = root.AddParameter("b", 1)

	return root, params
}

func TestNamedParameters_QualifiedNames(t *testing.T) {
	child := &testNet{}
	p := child.AddParameter("p", 1)
	root := &testNet{}
	root.RegisterChild("c", child)

	named := root.NamedParameters()
	require.Len(t, named, 1)
	assert.Equal(t, "c.p", named[0].Name)
	assert.Same(t, p, named[0].Parameter)

	direct := &testNet{}
	q := direct.AddParameter("p", 1)
	named = direct.NamedParameters()
	require.Len(t, named, 1)
	assert.Equal(t, "p", named[0].Name, "no leading separator at the root")
	assert.Same(t, q, named[0].Parameter)
}

func TestNamedParameters_BreadthFirstOrder(t *testing.T) {
	root, params := buildTree()

	named := root.NamedParameters()
	assert.Equal(t, []string{"a", "b", "left.w", "right.w", "left.inner.deep"}, paramNames(named))
	for _, np := range named {
		assert.Same(t, params[np.Name], np.Parameter, np.Name)
	}
}

func TestParameters_MatchesNamedParameters(t *testing.T) {
	root, _ := buildTree()

	named := root.NamedParameters()
	plain := root.Parameters()
	require.Len(t, plain, len(named))
	for i := range named {
		assert.Same(t, named[i].Parameter, plain[i])
	}
	assert.Equal(t, len(named), root.NumParameters())
}

func TestNamedParameters_SubtreeIsRelative(t *testing.T) {
	root, _ := buildTree()
	left, ok := root.Child("left")
	require.True(t, ok)

	assert.Equal(t, []string{"w", "inner.deep"}, paramNames(left.Base().NamedParameters()))
}

func TestNamedModules(t *testing.T) {
	root, _ := buildTree()

	var names []string
	for _, nm := range root.NamedModules() {
		names = append(names, nm.Name)
	}
	assert.Equal(t, []string{"left", "right", "left.inner"}, names)
}

func TestOrderDeterminism(t *testing.T) {
	build := func() *testNet {
		root := &testNet{}
		for i := 0; i < 5; i++ {
			child := &testNet{}
			child.AddParameter(fmt.Sprintf("p%d", 4-i), i)
			child.AddParameter("shared", i)
			root.RegisterChild(fmt.Sprintf("m%d", (i*3)%5), child)
			root.AddParameter(fmt.Sprintf("r%d", (i*2)%5), i)
		}
		return root
	}

	a, b := build(), build()

	assert.Equal(t, paramNames(a.NamedParameters()), paramNames(b.NamedParameters()))

	pa, pb := a.Parameters(), b.Parameters()
	require.Len(t, pb, len(pa))
	for i := range pa {
		assert.Equal(t, pa[i].Value(), pb[i].Value())
		assert.Equal(t, pa[i].Name(), pb[i].Name())
	}

	ma, mb := a.DirectChildren(), b.DirectChildren()
	require.Len(t, mb, len(ma))
	for i := range ma {
		assert.Equal(t, ma[i].Name, mb[i].Name)
	}
}

func TestTrainEval_PropagatesThroughTree(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		fanout int
	}{
		{"single node", 0, 0},
		{"chain", 6, 1},
		{"wide", 1, 8},
		{"bushy", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := &testNet{}
			var all []*Module
			var grow func(m *testNet, depth int)
			grow = func(m *testNet, depth int) {
				all = append(all, m.Base())
				if depth == 0 {
					return
				}
				for i := 0; i < tt.fanout; i++ {
					c := &testNet{}
					m.RegisterChild(fmt.Sprintf("c%d", i), c)
					grow(c, depth-1)
				}
			}
			grow(root, tt.depth)

			root.Eval()
			for _, m := range all {
				assert.False(t, m.Training())
			}

			root.Train()
			for _, m := range all {
				assert.True(t, m.Training())
			}
		})
	}
}

func TestEval_DoesNotTouchParent(t *testing.T) {
	root, _ := buildTree()
	left, _ := root.Child("left")

	left.Base().Eval()

	assert.True(t, root.Training())
	right, _ := root.Child("right")
	assert.True(t, right.Base().Training())
	inner, _ := left.Base().Child("inner")
	assert.False(t, inner.Base().Training())
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "p", qualify("", "p"))
	assert.Equal(t, "a.p", qualify("a", "p"))
	// Names containing the separator are not escaped.
	assert.Equal(t, "a.b.c", qualify("a", "b.c"))
}
