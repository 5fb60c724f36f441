package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"scar/internal/graph"
)

type DOTGenerator struct {
	graph        *graph.Graph
	condensation *graph.Condensation
}

func NewDOTGenerator(g *graph.Graph, c *graph.Condensation) *DOTGenerator {
	return &DOTGenerator{graph: g, condensation: c}
}

// Generate renders the condensed DAG: one node per component, cycle
// components highlighted, edges following the include direction.
func (d *DOTGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("digraph includes {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=8];\n")
	buf.WriteString("  splines=polyline;\n")
	buf.WriteString("  overlap=false;\n\n")

	for id, comp := range d.condensation.Components {
		name := fmt.Sprintf("c%d", id)
		if len(comp) == 1 {
			label := filepath.Base(comp[0])
			if d.graph.HasEdge(comp[0], comp[0]) {
				buf.WriteString(fmt.Sprintf("  %s [label=\"%s\\n(self-include)\", fillcolor=\"mistyrose\", color=\"red\", style=\"rounded,filled\"];\n", name, label))
			} else {
				buf.WriteString(fmt.Sprintf("  %s [label=\"%s\"];\n", name, label))
			}
			continue
		}

		members := make([]string, 0, len(comp))
		for _, p := range comp {
			members = append(members, filepath.Base(p))
		}
		label := fmt.Sprintf("cycle (%d files)\\n%s", len(comp), strings.Join(members, "\\n"))
		buf.WriteString(fmt.Sprintf("  %s [label=\"%s\", fillcolor=\"mistyrose\", color=\"red\", penwidth=2.0, style=\"rounded,filled\"];\n", name, label))
	}
	buf.WriteString("\n")

	for from := range d.condensation.Components {
		targets := make([]int, 0, len(d.condensation.Edges[from]))
		for to := range d.condensation.Edges[from] {
			targets = append(targets, to)
		}
		sort.Ints(targets)
		for _, to := range targets {
			buf.WriteString(fmt.Sprintf("  c%d -> c%d;\n", from, to))
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}
