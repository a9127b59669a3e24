package nav

import "github.com/atomicstack/inline-left-nav/internal/logging/events"

// Selection tracks the single active node of a tree.
type Selection struct {
	tree   *Tree
	sink   Sink
	active *Node
}

// NewSelection starts with no active node.
func NewSelection(tree *Tree, sink Sink) *Selection {
	if sink == nil {
		sink = NopSink{}
	}
	return &Selection{tree: tree, sink: sink}
}

// Activate marks n as the only active node. Activating the current node again
// leaves state untouched and emits nothing.
func (s *Selection) Activate(n *Node) error {
	if !s.tree.Contains(n) {
		return &UnknownNodeError{Address: n.String()}
	}
	prev := s.active
	if prev == n {
		return nil
	}
	s.active = n
	events.Nav.Activate(n.Address, addressOf(prev))
	s.sink.OnActivationChanged(n, prev)
	return nil
}

// Current returns the active node or nil.
func (s *Selection) Current() *Node {
	return s.active
}

// IsActive reports whether n is the active node.
func (s *Selection) IsActive(n *Node) bool {
	return n != nil && s.active == n
}

func addressOf(n *Node) string {
	if n == nil {
		return ""
	}
	return n.Address
}
