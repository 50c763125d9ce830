package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/born-ml/modtree/internal/nn"
	"github.com/born-ml/modtree/internal/variable"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// rootLabel names the root module in mode listings.
const rootLabel = "(root)"

// paramRow describes one parameter of the tree.
type paramRow struct {
	Name         string `json:"name"`
	Shape        []int  `json:"shape"`
	Elements     int    `json:"elements"`
	RequiresGrad bool   `json:"requires_grad"`
}

// moduleRow describes one module of the tree.
type moduleRow struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Training bool   `json:"training"`
}

// report is the data behind every command's output.
type report struct {
	Root          string      `json:"root"`
	Structure     string      `json:"structure,omitempty"`
	Parameters    []paramRow  `json:"parameters,omitempty"`
	Modules       []moduleRow `json:"modules,omitempty"`
	TotalElements int         `json:"total_elements"`
}

func newReport(root nn.Component) *report {
	base := root.Base()
	rep := &report{Root: nn.TypeNameOf(root)}

	for _, np := range base.NamedParameters() {
		row := paramRow{Name: np.Name}
		if v, ok := nn.ValueAs[*variable.Variable](np.Parameter); ok {
			row.Shape = []int(v.Shape())
			row.Elements = v.NumElements()
			row.RequiresGrad = v.RequiresGradEnabled()
		}
		rep.TotalElements += row.Elements
		rep.Parameters = append(rep.Parameters, row)
	}

	rep.Modules = append(rep.Modules, moduleRow{
		Name:     rootLabel,
		Type:     nn.TypeNameOf(root),
		Training: base.Training(),
	})
	for _, nm := range base.NamedModules() {
		rep.Modules = append(rep.Modules, moduleRow{
			Name:     nm.Name,
			Type:     nn.TypeNameOf(nm.Module),
			Training: nm.Module.Base().Training(),
		})
	}
	return rep
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printer renders reports for humans, styled when writing to a terminal.
type printer struct {
	w      io.Writer
	styled bool

	heading lipgloss.Style
	name    lipgloss.Style
	dim     lipgloss.Style
	train   lipgloss.Style
	eval    lipgloss.Style
}

func newPrinter(w io.Writer, noColor bool) *printer {
	return &printer{
		w:       w,
		styled:  !noColor && isTerminal(w),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		train:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		eval:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

func (p *printer) structure(rep *report) {
	fmt.Fprintln(p.w, p.render(p.heading, "Structure"))
	fmt.Fprintln(p.w, rep.Structure)
	fmt.Fprintln(p.w)
}

func (p *printer) parameters(rep *report) {
	fmt.Fprintln(p.w, p.render(p.heading, "Parameters"))
	if len(rep.Parameters) == 0 {
		fmt.Fprintln(p.w, p.render(p.dim, "  (none)"))
		return
	}

	width := 0
	for _, row := range rep.Parameters {
		width = max(width, len(row.Name))
	}
	for _, row := range rep.Parameters {
		name := fmt.Sprintf("%-*s", width, row.Name)
		fmt.Fprintf(p.w, "  %s  %-12s %s\n",
			p.render(p.name, name),
			formatShape(row.Shape),
			p.render(p.dim, fmt.Sprintf("%d", row.Elements)))
	}
}

func (p *printer) summary(rep *report) {
	fmt.Fprintf(p.w, "\n%s %d parameters, %d elements\n",
		p.render(p.heading, "Total:"), len(rep.Parameters), rep.TotalElements)
}

func (p *printer) modes(rep *report) {
	width := 0
	for _, row := range rep.Modules {
		width = max(width, len(row.Name))
	}
	for _, row := range rep.Modules {
		mode := p.render(p.train, "train")
		if !row.Training {
			mode = p.render(p.eval, "eval")
		}
		name := fmt.Sprintf("%-*s", width, row.Name)
		fmt.Fprintf(p.w, "%s  %s  %s\n", p.render(p.name, name), mode, p.render(p.dim, row.Type))
	}
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
