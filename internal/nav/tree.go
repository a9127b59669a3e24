package nav

import "strings"

// AddressSeparator joins a branch address and a nested item key.
const AddressSeparator = ":"

// NodeSpec describes a node before the tree is built.
type NodeSpec struct {
	ID          string
	Label       string
	Href        string
	HasChildren bool
	Children    []NodeSpec
}

// Node is a single entry of the navigation tree. Nodes are created by NewTree
// and never change afterwards.
type Node struct {
	Address     string
	Label       string
	Href        string
	HasChildren bool
	Parent      *Node
	Children    []*Node
}

// Depth returns 1 for top-level items and 2 for nested items.
func (n *Node) Depth() int {
	if n.Parent == nil {
		return 1
	}
	return 2
}

// IsBranch reports whether the node owns a nested list.
func (n *Node) IsBranch() bool {
	return n != nil && n.HasChildren
}

// IsNested reports whether the node lives inside a branch.
func (n *Node) IsNested() bool {
	return n != nil && n.Parent != nil
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Address
}

// Tree is a read-only view over a two-level navigation structure.
type Tree struct {
	roots []*Node
	index map[string]*Node
	order []*Node
}

// NewTree validates the specs and builds the immutable tree.
func NewTree(specs []NodeSpec) (*Tree, error) {
	t := &Tree{index: make(map[string]*Node)}
	for _, spec := range specs {
		node, err := t.add(spec, nil)
		if err != nil {
			return nil, err
		}
		t.roots = append(t.roots, node)
		if !spec.HasChildren && len(spec.Children) == 0 {
			continue
		}
		if len(spec.Children) == 0 {
			return nil, &StructureError{Address: node.Address, Reason: "branch declares children but has no child list"}
		}
		node.HasChildren = true
		for _, childSpec := range spec.Children {
			if childSpec.HasChildren || len(childSpec.Children) > 0 {
				return nil, &StructureError{Address: JoinAddress(node.Address, childSpec.ID), Reason: "nested items cannot own children"}
			}
			child, err := t.add(childSpec, node)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
	}
	return t, nil
}

func (t *Tree) add(spec NodeSpec, parent *Node) (*Node, error) {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		return nil, &StructureError{Address: parentAddress(parent), Reason: "item has no identifier"}
	}
	if strings.Contains(id, AddressSeparator) {
		return nil, &StructureError{Address: id, Reason: "identifier contains " + AddressSeparator}
	}
	addr := id
	if parent != nil {
		addr = JoinAddress(parent.Address, id)
	}
	if _, ok := t.index[addr]; ok {
		return nil, &StructureError{Address: addr, Reason: "duplicate address"}
	}
	node := &Node{
		Address: addr,
		Label:   spec.Label,
		Href:    spec.Href,
		Parent:  parent,
	}
	if node.Label == "" {
		node.Label = id
	}
	t.index[addr] = node
	t.order = append(t.order, node)
	return node, nil
}

func parentAddress(parent *Node) string {
	if parent == nil {
		return ""
	}
	return parent.Address
}

// JoinAddress builds the address of a nested item.
func JoinAddress(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + AddressSeparator + key
}

// SplitAddress returns the branch address and the nested key. Top-level
// addresses return an empty parent.
func SplitAddress(addr string) (string, string) {
	idx := strings.LastIndex(addr, AddressSeparator)
	if idx < 0 {
		return "", addr
	}
	return addr[:idx], addr[idx+1:]
}

// NodeAt resolves an address.
func (t *Tree) NodeAt(addr string) (*Node, error) {
	if t != nil {
		if node, ok := t.index[addr]; ok {
			return node, nil
		}
	}
	return nil, &UnknownNodeError{Address: addr}
}

// Contains reports whether the node belongs to this tree instance.
func (t *Tree) Contains(n *Node) bool {
	if t == nil || n == nil {
		return false
	}
	found, ok := t.index[n.Address]
	return ok && found == n
}

// Roots returns the top-level nodes in document order.
func (t *Tree) Roots() []*Node {
	return cloneNodes(t.roots)
}

// Children returns the nested items of a node in document order.
func (t *Tree) Children(n *Node) []*Node {
	if n == nil {
		return nil
	}
	return cloneNodes(n.Children)
}

// IsLeaf reports whether the node has no nested list.
func (t *Tree) IsLeaf(n *Node) bool {
	return n == nil || !n.HasChildren
}

// Branches returns every branch node in document order.
func (t *Tree) Branches() []*Node {
	branches := make([]*Node, 0, len(t.roots))
	for _, node := range t.roots {
		if node.HasChildren {
			branches = append(branches, node)
		}
	}
	return branches
}

// Walk visits every node in document order until fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t == nil {
		return
	}
	for _, node := range t.order {
		if !fn(node) {
			return
		}
	}
}

// Len returns the number of nodes at both depths.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

func cloneNodes(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	dup := make([]*Node, len(nodes))
	copy(dup, nodes)
	return dup
}
