// Package calltree renders the call structure of the naive Fibonacci
// recursion as a Graphviz diagram.
//
// Two views are supported: the full call tree, which makes the
// exponential blowup of F(n)=F(n-1)+F(n-2) visible, and the memoized
// view, which collapses repeated subproblems into a DAG of n+1 nodes.
// Comparing the two is the whole point of the feature.
package calltree

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// Options configures DOT generation.
type Options struct {
	// Memoized collapses repeated subproblems: one node per index,
	// edges F(k) -> F(k-1) and F(k) -> F(k-2). When false the full
	// call tree is emitted, one node per recursive call.
	Memoized bool
}

// MaxTreeIndex bounds the full-tree view. The tree for index n has
// 2·F(n+1)−1 nodes, so anything much larger produces an unreadable
// diagram and a very slow layout pass.
const MaxTreeIndex = 16

// ToDOT converts the recursion structure for index n to Graphviz DOT.
func ToDOT(n uint32, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph fib {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=\"#FFE18C\", fontsize=14];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	if opts.Memoized {
		writeMemoDAG(&buf, n)
	} else {
		id := 0
		writeCallTree(&buf, n, &id)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// writeCallTree emits one node per recursive call. Returns the node id
// assigned to this call so the parent can draw its edge.
func writeCallTree(buf *bytes.Buffer, n uint32, next *int) int {
	id := *next
	*next++

	fmt.Fprintf(buf, "  n%d [label=\"F(%d)\"];\n", id, n)
	if n < 2 {
		return id
	}

	left := writeCallTree(buf, n-1, next)
	fmt.Fprintf(buf, "  n%d -> n%d;\n", id, left)
	right := writeCallTree(buf, n-2, next)
	fmt.Fprintf(buf, "  n%d -> n%d;\n", id, right)
	return id
}

// writeMemoDAG emits one node per index with shared subproblem edges.
func writeMemoDAG(buf *bytes.Buffer, n uint32) {
	for i := int64(n); i >= 0; i-- {
		fmt.Fprintf(buf, "  f%d [label=\"F(%d)\"];\n", i, i)
	}
	buf.WriteString("\n")
	for i := int64(n); i >= 2; i-- {
		fmt.Fprintf(buf, "  f%d -> f%d;\n", i, i-1)
		fmt.Fprintf(buf, "  f%d -> f%d;\n", i, i-2)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
