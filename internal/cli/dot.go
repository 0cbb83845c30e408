package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"seehuhn.de/go/linebreak"
)

// linesToDOT renders the chosen break sequence as a Graphviz DOT digraph:
// one node per line, labelled with its item range and adjustment ratio, in
// a left-to-right chain. It is a diagnostic for --dot, not a typesetting
// preview.
func linesToDOT(items []linebreak.Item, lines []linebreak.Line) string {
	var buf bytes.Buffer
	buf.WriteString("digraph lines {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=white, fontsize=12];\n")

	for i, ln := range lines {
		fmt.Fprintf(&buf, "  l%d [label=%q];\n", i,
			fmt.Sprintf("line %d\n[%d,%d)\nr=%+.3f", i+1, ln.Start, ln.End, ln.Ratio))
		if i > 0 {
			fmt.Fprintf(&buf, "  l%d -> l%d;\n", i-1, i)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderDOT converts a DOT digraph to SVG via Graphviz.
func renderDOT(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render SVG: %w", err)
	}
	return buf.Bytes(), nil
}
