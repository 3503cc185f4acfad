package calltree

import (
	"strings"
	"testing"
)

func TestToDOTTreeLeaves(t *testing.T) {
	for _, n := range []uint32{0, 1} {
		dot := ToDOT(n, Options{})
		if got := strings.Count(dot, "label="); got != 1 {
			t.Errorf("ToDOT(%d) node count = %d, want 1", n, got)
		}
		if strings.Contains(dot, "->") {
			t.Errorf("ToDOT(%d) should have no edges", n)
		}
	}
}

func TestToDOTTreeNodeCount(t *testing.T) {
	// The call tree for F(n) has 2·F(n+1)−1 nodes.
	tests := []struct {
		n    uint32
		want int
	}{
		{2, 3},
		{3, 5},
		{4, 9},
		{5, 15},
	}

	for _, tt := range tests {
		dot := ToDOT(tt.n, Options{})
		if got := strings.Count(dot, "label="); got != tt.want {
			t.Errorf("ToDOT(%d) node count = %d, want %d", tt.n, got, tt.want)
		}
		// Every internal node has exactly two children.
		if got, want := strings.Count(dot, "->"), tt.want-1; got != want {
			t.Errorf("ToDOT(%d) edge count = %d, want %d", tt.n, got, want)
		}
	}
}

func TestToDOTTreeRootChildren(t *testing.T) {
	dot := ToDOT(5, Options{})
	// Root is n0; its children are F(4) and F(3).
	if !strings.Contains(dot, `n0 [label="F(5)"]`) {
		t.Errorf("missing root node: %s", dot)
	}
	if !strings.Contains(dot, `n1 [label="F(4)"]`) {
		t.Errorf("first child should be F(4)")
	}
	if !strings.Contains(dot, "n0 -> n1;") {
		t.Errorf("missing edge to first child")
	}
}

func TestToDOTMemoized(t *testing.T) {
	dot := ToDOT(10, Options{Memoized: true})

	// One node per index.
	if got := strings.Count(dot, "label="); got != 11 {
		t.Errorf("node count = %d, want 11", got)
	}
	// Two edges per index >= 2.
	if got := strings.Count(dot, "->"); got != 18 {
		t.Errorf("edge count = %d, want 18", got)
	}
	for _, want := range []string{"f10 -> f9;", "f10 -> f8;", "f2 -> f1;", "f2 -> f0;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing edge %q", want)
		}
	}
}

func TestToDOTIsValidDigraph(t *testing.T) {
	dot := ToDOT(6, Options{})
	if !strings.HasPrefix(dot, "digraph fib {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed digraph:\n%s", dot)
	}
}
