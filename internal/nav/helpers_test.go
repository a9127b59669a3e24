package nav

import (
	"fmt"
	"strings"
	"testing"
)

// sampleSpecs is a tree with one branch A (A1, A2), a second branch B (B1)
// and a top-level leaf L.
func sampleSpecs() []NodeSpec {
	return []NodeSpec{
		{ID: "a", Label: "A", HasChildren: true, Children: []NodeSpec{
			{ID: "a1", Label: "A1"},
			{ID: "a2", Label: "A2"},
		}},
		{ID: "b", Label: "B", Children: []NodeSpec{{ID: "b1", Label: "B1"}}},
		{ID: "l", Label: "L", Href: "/l"},
	}
}

func mustTree(t *testing.T) *Tree {
	t.Helper()
	tree, err := NewTree(sampleSpecs())
	if err != nil {
		t.Fatalf("new tree: %v", err)
	}
	return tree
}

type recordingSink struct {
	calls []string
}

func (r *recordingSink) OnActivationChanged(next, prev *Node) {
	r.calls = append(r.calls, fmt.Sprintf("active %s<-%s", next, prev))
}

func (r *recordingSink) OnExpansionChanged(branch *Node, expanded bool, affected []*Node) {
	addrs := make([]string, len(affected))
	for i, n := range affected {
		addrs[i] = n.Address
	}
	r.calls = append(r.calls, fmt.Sprintf("expand %s=%t [%s]", branch, expanded, strings.Join(addrs, " ")))
}

func newTestWidget(t *testing.T) (*Widget, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	w, err := NewWidget("nav", mustTree(t), sink)
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}
	return w, sink
}

func mustNode(t *testing.T, tree *Tree, addr string) *Node {
	t.Helper()
	n, err := tree.NodeAt(addr)
	if err != nil {
		t.Fatalf("node %s: %v", addr, err)
	}
	return n
}

func reachable(w *Widget) string {
	nodes := w.Reachable()
	addrs := make([]string, len(nodes))
	for i, n := range nodes {
		addrs[i] = n.Address
	}
	return strings.Join(addrs, ",")
}

// countActive checks the single-active invariant from the outside by asking
// the selection about every node.
func countActive(w *Widget) int {
	count := 0
	w.Tree().Walk(func(n *Node) bool {
		if w.Selection().IsActive(n) {
			count++
		}
		return true
	})
	return count
}
