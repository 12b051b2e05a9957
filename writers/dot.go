// Package writers holds the built-in output format plugins.
package writers

import (
	"fmt"
	"strings"

	"github.com/SamJakob/agtool2/graph"
)

// Dot writes an account graph as a Graphviz digraph. Arrows point from
// each dependency to the vertex it grants access to. It satisfies the
// plugin Writer contract.
type Dot struct {
	theme *Theme
}

// NewDot creates the dot writer. A nil theme uses DefaultTheme.
func NewDot(theme *Theme) *Dot {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Dot{theme: theme}
}

func (*Dot) ID() string      { return "dotwriter" }
func (*Dot) Name() string    { return "agtool Graphviz Writer (dot)" }
func (*Dot) Version() string { return "1.0.0" }

func (*Dot) DefaultFileExtension() string { return "dot" }

// WriteGraph renders the graph as DOT text.
//
// Recovery edges are dashed; hidden edges are emitted with style=invis so
// layout is preserved without drawing them. Edges of one conjunction
// group are joined through a point-shaped junction node, making the
// multi-factor requirement legible as a single merged arrow.
func (w *Dot) WriteGraph(g *graph.Graph, destinationLabel string) ([]byte, error) {
	var b strings.Builder

	b.WriteString("digraph accountgraph {\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&b, "\t%s [label=%s, colorscheme=\"%s\", style=\"filled\", penwidth=\"0\", fillcolor=\"%s\"];\n",
			quote(v.Name), quote(nodeLabel(v)), w.theme.NodeColorScheme, w.theme.NodeFill(v.Type, v.Name))
	}

	for _, v := range g.Vertices() {
		w.writeEdges(&b, v)
	}

	b.WriteString("}\n")
	return []byte(b.String()), nil
}

// writeEdges emits the incoming edges of one vertex, bundling conjunction
// groups through a junction node.
func (w *Dot) writeEdges(b *strings.Builder, v *graph.Vertex) {
	// Preserve edge order while collecting conjunction groups.
	groups := make(map[int][]*graph.Edge)
	var groupOrder []int
	for _, e := range v.Edges {
		if _, seen := groups[e.GroupID]; !seen {
			groupOrder = append(groupOrder, e.GroupID)
		}
		groups[e.GroupID] = append(groups[e.GroupID], e)
	}

	for _, id := range groupOrder {
		edges := groups[id]
		if len(edges) > 1 && edges[0].Conjunction {
			w.writeConjunction(b, v, id, edges)
			continue
		}
		for _, e := range edges {
			color := w.theme.EdgeColor(e.UniqueGroupID)
			fmt.Fprintf(b, "\t%s -> %s [%s];\n",
				quote(e.Dependency.Name), quote(v.Name), edgeAttrs(e, color, ""))
		}
	}
}

// writeConjunction joins a group of jointly-required edges through a
// synthetic point node so they render as one merged arrow into the sink.
func (w *Dot) writeConjunction(b *strings.Builder, v *graph.Vertex, groupID int, edges []*graph.Edge) {
	junction := fmt.Sprintf("%s__g%d", v.Name, groupID)
	color := w.theme.EdgeColor(edges[0].UniqueGroupID)

	fmt.Fprintf(b, "\t%s [shape=point, width=0.01, height=0.01];\n", quote(junction))
	for _, e := range edges {
		fmt.Fprintf(b, "\t%s -> %s [%s];\n",
			quote(e.Dependency.Name), quote(junction), edgeAttrs(e, color, "none"))
	}
	// The shared tail inherits the group's style from its first edge.
	fmt.Fprintf(b, "\t%s -> %s [%s];\n",
		quote(junction), quote(v.Name), edgeAttrs(edges[0], color, ""))
}

// edgeAttrs renders the DOT attribute list for one edge. arrowhead
// overrides the default head when non-empty (used for junction inlets).
func edgeAttrs(e *graph.Edge, color, arrowhead string) string {
	attrs := []string{fmt.Sprintf("color=\"%s\"", color)}

	switch {
	case e.IsHidden():
		attrs = append(attrs, "style=invis")
	case e.IsRecovery():
		attrs = append(attrs, "style=dashed")
	}

	if label := displayLabel(e.Label); label != "" {
		attrs = append(attrs, fmt.Sprintf("label=%s", quote(label)))
	}
	if arrowhead != "" {
		attrs = append(attrs, fmt.Sprintf("arrowhead=%s", arrowhead))
	}
	return strings.Join(attrs, ", ")
}

// displayLabel strips the reserved markers from an edge label, leaving
// only the text worth printing.
func displayLabel(label string) string {
	parts := strings.Split(label, ",")
	kept := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "rec" || p == "invis" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ",")
}

// nodeLabel renders the node text: the vertex name, with the description
// attribute on a second line when present.
func nodeLabel(v *graph.Vertex) string {
	if desc, ok := v.Attribute("description"); ok && desc != "" {
		return v.Name + "\n" + desc
	}
	return v.Name
}

// quote wraps s in DOT double quotes, escaping embedded quotes and
// newlines.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
