package preview

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/aslanistan/schemtex/pkg/schematic"
)

// Options configures connectivity diagram generation.
type Options struct {
	// Detailed includes the component's option string in its label.
	Detailed bool
}

// ToDOT converts a schematic's electrical connectivity to Graphviz DOT
// format. Components appear as boxes, nodes as small circles, with an
// undirected edge for every terminal. The resulting DOT string can be
// rendered using [RenderSVG] or [RenderPNG].
func ToDOT(sch *schematic.Schematic, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, name := range sch.NodeNames() {
		fmt.Fprintf(&buf, "  %q [shape=circle, width=0.25, fixedsize=true, fontsize=10];\n",
			nodeID(name))
	}

	buf.WriteString("\n")
	for _, c := range sch.Components() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", c.Name(), fmtLabel(c, opts.Detailed))
		for _, n := range c.VNodes() {
			fmt.Fprintf(&buf, "  %q -- %q;\n", c.Name(), nodeID(n))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeID namespaces node names so a node called "R1" cannot collide with a
// component of the same name.
func nodeID(name string) string {
	return "n:" + name
}

func fmtLabel(c schematic.Component, detailed bool) string {
	if !detailed {
		return c.Name()
	}
	opts := c.Opts()
	if len(opts) == 0 {
		return c.Name()
	}
	parts := make([]string, 0, len(opts))
	for _, k := range slices.Sorted(maps.Keys(opts)) {
		if v := opts[k]; v == "" {
			parts = append(parts, k)
		} else {
			parts = append(parts, k+"="+v)
		}
	}
	return c.Name() + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
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
