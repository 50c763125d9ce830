package nn

import (
	"reflect"
	"strings"
)

// Repr renders the structure of the tree rooted at c.
//
// A module without children renders as "TypeName()". Otherwise each child is
// listed on its own line as "(name): <child repr>", indented by two spaces:
//
//	MLP(
//	  (fc1): Linear()
//	  (act): ReLU()
//	)
func Repr(c Component) string {
	var lines []string
	c.Base().children.each(func(name string, child Component) {
		lines = append(lines, "("+name+"): "+indent(Repr(child), 2))
	})

	var b strings.Builder
	b.WriteString(TypeNameOf(c))
	b.WriteByte('(')
	if len(lines) > 0 {
		b.WriteString("\n  ")
		b.WriteString(strings.Join(lines, "\n  "))
		b.WriteByte('\n')
	}
	b.WriteByte(')')
	return b.String()
}

// indent prefixes every line of s but the first with n spaces.
func indent(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) == 1 {
		return s
	}
	pad := strings.Repeat(" ", n)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// TypeNameOf returns the display name of c's concrete type: its TypeName
// method if it implements TypeNamer, else the Go type name.
func TypeNameOf(c Component) string {
	if tn, ok := c.(TypeNamer); ok {
		return tn.TypeName()
	}
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	// Generic instantiations look like "Box[int]".
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
