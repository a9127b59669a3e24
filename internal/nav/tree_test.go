package nav

import (
	"errors"
	"testing"
)

func TestNewTreeBuildsAddresses(t *testing.T) {
	tree := mustTree(t)
	if tree.Len() != 6 {
		t.Fatalf("expected 6 nodes, got %d", tree.Len())
	}
	var order []string
	tree.Walk(func(n *Node) bool {
		order = append(order, n.Address)
		return true
	})
	want := []string{"a", "a:a1", "a:a2", "b", "b:b1", "l"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected walk order %v, got %v", want, order)
		}
	}
	a2 := mustNode(t, tree, "a:a2")
	if a2.Depth() != 2 || a2.Parent.Address != "a" || !a2.IsNested() {
		t.Fatalf("unexpected nested node %+v", a2)
	}
	b := mustNode(t, tree, "b")
	if !b.IsBranch() {
		t.Fatalf("expected node with children to be a branch")
	}
	if l := mustNode(t, tree, "l"); !tree.IsLeaf(l) || l.Depth() != 1 || l.Href != "/l" {
		t.Fatalf("unexpected leaf %+v", l)
	}
	if got := len(tree.Branches()); got != 2 {
		t.Fatalf("expected 2 branches, got %d", got)
	}
	if got := len(tree.Roots()); got != 3 {
		t.Fatalf("expected 3 roots, got %d", got)
	}
}

func TestNewTreeDefaultsLabelToID(t *testing.T) {
	tree, err := NewTree([]NodeSpec{{ID: "home"}})
	if err != nil {
		t.Fatalf("new tree: %v", err)
	}
	if n := mustNode(t, tree, "home"); n.Label != "home" {
		t.Fatalf("expected label home, got %q", n.Label)
	}
}

func TestNewTreeRejectsBadStructure(t *testing.T) {
	cases := map[string][]NodeSpec{
		"branch without children": {{ID: "a", HasChildren: true}},
		"too deep": {{ID: "a", Children: []NodeSpec{
			{ID: "a1", Children: []NodeSpec{{ID: "x"}}},
		}}},
		"empty id":        {{ID: " "}},
		"separator in id": {{ID: "a:b"}},
		"duplicate":       {{ID: "a"}, {ID: "a"}},
		"duplicate child": {{ID: "a", Children: []NodeSpec{{ID: "x"}, {ID: "x"}}}},
	}
	for name, specs := range cases {
		_, err := NewTree(specs)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var structure *StructureError
		if !errors.As(err, &structure) || !errors.Is(err, ErrStructure) {
			t.Fatalf("%s: expected structure error, got %v", name, err)
		}
	}
}

func TestNodeAtUnknown(t *testing.T) {
	tree := mustTree(t)
	_, err := tree.NodeAt("zz")
	if !errors.Is(err, ErrUnknownNode) {
		t.Fatalf("expected unknown node error, got %v", err)
	}
	var unknown *UnknownNodeError
	if !errors.As(err, &unknown) || unknown.Address != "zz" {
		t.Fatalf("expected address on error, got %v", err)
	}
}

func TestContainsUsesIdentity(t *testing.T) {
	tree := mustTree(t)
	other := mustTree(t)
	if !tree.Contains(mustNode(t, tree, "a")) {
		t.Fatalf("expected own node to be contained")
	}
	if tree.Contains(mustNode(t, other, "a")) {
		t.Fatalf("expected node from another tree to be rejected")
	}
}

func TestSplitJoinAddress(t *testing.T) {
	if got := JoinAddress("a", "a1"); got != "a:a1" {
		t.Fatalf("unexpected join %q", got)
	}
	if got := JoinAddress("", "a"); got != "a" {
		t.Fatalf("unexpected top-level join %q", got)
	}
	parent, key := SplitAddress("a:a1")
	if parent != "a" || key != "a1" {
		t.Fatalf("unexpected split %q %q", parent, key)
	}
	parent, key = SplitAddress("l")
	if parent != "" || key != "l" {
		t.Fatalf("unexpected top-level split %q %q", parent, key)
	}
}
