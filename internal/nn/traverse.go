package nn

// visit is a queued node of a breadth-first walk.
type visit struct {
	prefix string
	module *Module
}

// walk visits m and every descendant breadth-first.
//
// Within a level, children are visited in their parent's insertion order.
// fn sees each module before its children are enqueued.
func (m *Module) walk(fn func(prefix string, node *Module)) {
	queue := []visit{{prefix: "", module: m}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		fn(cur.prefix, cur.module)

		cur.module.children.each(func(name string, c Component) {
			queue = append(queue, visit{prefix: qualify(cur.prefix, name), module: c.Base()})
		})
	}
}

// NamedParameters collects every parameter of m and its descendants with
// its qualified name.
//
// Order is breadth-first by level. A module's own parameters are emitted in
// insertion order before any of its children are visited. Parameters of the
// receiver itself are not prefixed:
//
//	root.AddParameter("p", x)         // "p"
//	child.AddParameter("p", y)
//	root.RegisterChild("c", child)    // "c.p"
func (m *Module) NamedParameters() []NamedParameter {
	var out []NamedParameter
	m.walk(func(prefix string, node *Module) {
		node.params.each(func(name string, p *Parameter) {
			out = append(out, NamedParameter{Name: qualify(prefix, name), Parameter: p})
		})
	})
	return out
}

// Parameters returns the parameters of NamedParameters in the same order,
// without names.
func (m *Module) Parameters() []*Parameter {
	named := m.NamedParameters()
	out := make([]*Parameter, len(named))
	for i, np := range named {
		out[i] = np.Parameter
	}
	return out
}

// NamedModules returns every descendant of m (m itself excluded) with its
// qualified name, in the same breadth-first order as NamedParameters.
func (m *Module) NamedModules() []NamedModule {
	var out []NamedModule
	m.walk(func(prefix string, node *Module) {
		node.children.each(func(name string, c Component) {
			out = append(out, NamedModule{Name: qualify(prefix, name), Module: c})
		})
	})
	return out
}

// NumParameters returns the number of parameters in the tree rooted at m.
func (m *Module) NumParameters() int {
	n := 0
	m.walk(func(_ string, node *Module) {
		n += node.params.len()
	})
	return n
}

// Train puts m and every descendant into training mode.
func (m *Module) Train() {
	m.walk(func(_ string, node *Module) {
		node.eval = false
	})
}

// Eval puts m and every descendant into evaluation mode.
func (m *Module) Eval() {
	m.walk(func(_ string, node *Module) {
		node.eval = true
	})
}
