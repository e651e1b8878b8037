package render

import (
	"bytes"
	"fmt"

	"schemascope/internal/traverse"
)

// DOT renders the traversal result as a Graphviz digraph of
// type -> type edges labeled by field name, for piping into dot(1).
// Edges repeated across branches are emitted once, in traversal order.
func DOT(res *traverse.Result) []byte {
	var buf bytes.Buffer
	buf.WriteString("digraph schema {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, fontname=\"Helvetica\"];\n")

	type edge struct{ from, field, to string }
	seen := map[edge]struct{}{}

	var walk func(from string, nodes []traverse.Node)
	walk = func(from string, nodes []traverse.Node) {
		for _, n := range nodes {
			e := edge{from: from, field: n.Field, to: n.Type}
			if _, ok := seen[e]; !ok {
				seen[e] = struct{}{}
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.from, e.to, e.field)
			}
			walk(n.Type, n.Fields)
		}
	}
	for _, root := range res.Roots() {
		walk(root, res.Nodes(root))
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}
