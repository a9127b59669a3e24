package nav

import "github.com/atomicstack/inline-left-nav/internal/logging/events"

// Expansion tracks which branches have their nested list open. Branches are
// independent of each other and start collapsed.
type Expansion struct {
	tree     *Tree
	sink     Sink
	expanded map[*Node]struct{}
}

// NewExpansion starts with every branch collapsed.
func NewExpansion(tree *Tree, sink Sink) *Expansion {
	if sink == nil {
		sink = NopSink{}
	}
	return &Expansion{tree: tree, sink: sink, expanded: make(map[*Node]struct{})}
}

// Toggle flips the branch, or sets it to force[0] when given, and reports the
// resulting state. Focus reachability of the branch children is updated before
// Toggle returns.
func (e *Expansion) Toggle(branch *Node, force ...bool) (bool, error) {
	if !e.tree.Contains(branch) {
		return false, &UnknownNodeError{Address: branch.String()}
	}
	if !branch.HasChildren {
		return false, &InvalidNodeError{Address: branch.Address}
	}
	_, open := e.expanded[branch]
	next := !open
	if len(force) > 0 {
		next = force[0]
	}
	if next {
		e.expanded[branch] = struct{}{}
	} else {
		delete(e.expanded, branch)
	}
	events.Nav.Toggle(branch.Address, next, len(branch.Children))
	e.sink.OnExpansionChanged(branch, next, e.tree.Children(branch))
	return next, nil
}

// IsExpanded reports whether the branch is open. Leaves are never expanded.
func (e *Expansion) IsExpanded(branch *Node) bool {
	if branch == nil {
		return false
	}
	_, ok := e.expanded[branch]
	return ok
}

// IsReachable reports whether the node link is in the tab order: top-level
// items always are, nested items only while their branch is expanded.
func (e *Expansion) IsReachable(n *Node) bool {
	if n == nil {
		return false
	}
	if n.Parent == nil {
		return true
	}
	return e.IsExpanded(n.Parent)
}

// Expanded returns the open branches in document order.
func (e *Expansion) Expanded() []*Node {
	if len(e.expanded) == 0 {
		return nil
	}
	open := make([]*Node, 0, len(e.expanded))
	for _, branch := range e.tree.Branches() {
		if e.IsExpanded(branch) {
			open = append(open, branch)
		}
	}
	return open
}
