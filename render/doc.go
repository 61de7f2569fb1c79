// Package render draws sorting networks and encodes them for other tools.
//
// # Formats
//
//   - [Text]: a Knuth-style wire diagram in plain ASCII. Wires run left to
//     right; a comparator is a vertical bar between two 'o' endpoints.
//     Comparators of one layer whose spans overlap are drawn in separate
//     sub-columns, and layers are separated by a double dash.
//   - [DOT]: Graphviz source of the comparator dependency graph, one rank
//     per layer, edges labelled with the wire they carry.
//   - [JSON]: an indented document with the network statistics and layers.
//   - [SVG]: [DOT] rendered in-process with Graphviz.
//
// # Usage
//
//	nw, _ := generate.BoseNelson(3)
//	fmt.Print(render.Text(nw))
//
//	0 ----o--o-
//	1 -o--|--o-
//	2 -o--o----
//
// # Dependencies
//
// [SVG] uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly; no system Graphviz installation is needed.
package render
