// Package render turns solved tours into Graphviz visualizations.
//
// ToDOT emits the closed cycle as a DOT digraph with cost-annotated
// edges; RenderSVG and RenderPNG rasterize it through Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/zwilder/tsp/pkg/tsp"
)

// ToDOT converts a solved tour on matrix m to Graphviz DOT format.
// Nodes carry their display labels; each edge of the cycle is annotated
// with its cost, including the closing edge back to the start.
func ToDOT(m *tsp.Matrix, tour tsp.Tour) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tour {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for k := 0; k < m.Size(); k++ {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", k, NodeLabel(k))
	}

	buf.WriteString("\n")
	n := len(tour.Path)
	for i := 0; i < n; i++ {
		from := tour.Path[i]
		to := tour.Path[(i+1)%n]
		fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", from, to, m.At(from, to))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// NodeLabel maps node identifier k to its display label: single letters
// A..Z, then A2, B2, ... for larger instances.
func NodeLabel(k int) string {
	letter := rune('A' + k%26)
	if k < 26 {
		return string(letter)
	}
	return fmt.Sprintf("%c%d", letter, k/26+1)
}

// PathString formats a tour path as "A->B->C->A", closing the cycle.
func PathString(path []int) string {
	var buf bytes.Buffer
	for _, k := range path {
		buf.WriteString(NodeLabel(k))
		buf.WriteString("->")
	}
	if len(path) > 0 {
		buf.WriteString(NodeLabel(path[0]))
	}
	return buf.String()
}
