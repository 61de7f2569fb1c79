package render

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/sortnet/network"
)

// Options configures DOT, SVG and JSON output.
type Options struct {
	// Title labels the graph and is stored in the JSON document.
	Title string
	// Descending colors comparators with A > B differently in DOT output.
	Descending bool
}

// DOT converts nw to Graphviz source. Each comparator is a node ranked by its
// layer; an edge joins the previous stage of a wire (or its input node) to
// the next comparator touching it, and the last stage to the output node.
func DOT(nw *network.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	n := nw.N()
	last := make([]string, n)
	buf.WriteString("  { rank=source;")
	for p := 0; p < n; p++ {
		last[p] = fmt.Sprintf("in%d", p)
		fmt.Fprintf(&buf, " %q [shape=plaintext, label=\"%d\"];", last[p], p)
	}
	buf.WriteString(" }\n")

	var edges bytes.Buffer
	for li, layer := range nw.Layers() {
		buf.WriteString("  { rank=same;")
		for ci, c := range layer {
			id := fmt.Sprintf("c%d_%d", li, ci)
			attrs := fmt.Sprintf("label=%q", c.String())
			if opts.Descending && c.Descending() {
				attrs += ", fillcolor=lightgrey"
			}
			fmt.Fprintf(&buf, " %q [%s];", id, attrs)
			for _, p := range [2]int{c.A, c.B} {
				fmt.Fprintf(&edges, "  %q -> %q [label=\"%d\"];\n", last[p], id, p)
				last[p] = id
			}
		}
		buf.WriteString(" }\n")
	}

	buf.WriteString("  { rank=sink;")
	for p := 0; p < n; p++ {
		fmt.Fprintf(&buf, " \"out%d\" [shape=plaintext, label=\"%d\"];", p, p)
		fmt.Fprintf(&edges, "  %q -> \"out%d\" [label=\"%d\"];\n", last[p], p, p)
	}
	buf.WriteString(" }\n\n")

	buf.Write(edges.Bytes())
	buf.WriteString("}\n")

	return buf.String()
}
