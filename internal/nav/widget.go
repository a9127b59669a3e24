package nav

// Snapshot captures the state of a widget by address.
type Snapshot struct {
	Active   string
	Expanded []string
}

// Widget bundles a tree with its selection and expansion state. All methods
// run to completion on the caller's goroutine; a widget must only be driven
// from one event loop.
type Widget struct {
	root       string
	tree       *Tree
	sink       Sink
	selection  *Selection
	expansion  *Expansion
	dispatcher *Dispatcher
}

// NewWidget creates a widget with nothing active and every branch collapsed.
func NewWidget(root string, tree *Tree, sink Sink) (*Widget, error) {
	if root == "" {
		return nil, ErrConstruction
	}
	if tree == nil {
		return nil, &StructureError{Address: root, Reason: "no navigation tree"}
	}
	if sink == nil {
		sink = NopSink{}
	}
	selection := NewSelection(tree, sink)
	expansion := NewExpansion(tree, sink)
	return &Widget{
		root:       root,
		tree:       tree,
		sink:       sink,
		selection:  selection,
		expansion:  expansion,
		dispatcher: NewDispatcher(tree, selection, expansion),
	}, nil
}

// Root returns the identifier of the element the widget is bound to.
func (w *Widget) Root() string { return w.root }

// Tree exposes the read-only tree.
func (w *Widget) Tree() *Tree { return w.tree }

// Selection exposes the selection state.
func (w *Widget) Selection() *Selection { return w.selection }

// Expansion exposes the expansion state.
func (w *Widget) Expansion() *Expansion { return w.expansion }

// Dispatch routes an interaction event.
func (w *Widget) Dispatch(ev Event) (Outcome, error) {
	return w.dispatcher.Dispatch(ev)
}

// Activate marks the node at addr as active.
func (w *Widget) Activate(addr string) error {
	node, err := w.tree.NodeAt(addr)
	if err != nil {
		return err
	}
	return w.selection.Activate(node)
}

// Toggle flips or forces the branch at addr.
func (w *Widget) Toggle(addr string, force ...bool) (bool, error) {
	node, err := w.tree.NodeAt(addr)
	if err != nil {
		return false, err
	}
	return w.expansion.Toggle(node, force...)
}

// Active returns the active node or nil.
func (w *Widget) Active() *Node {
	return w.selection.Current()
}

// IsExpanded reports whether the branch at addr is open.
func (w *Widget) IsExpanded(addr string) bool {
	node, err := w.tree.NodeAt(addr)
	if err != nil {
		return false
	}
	return w.expansion.IsExpanded(node)
}

// Reachable returns every node currently in the tab order, in document order.
func (w *Widget) Reachable() []*Node {
	nodes := make([]*Node, 0, w.tree.Len())
	w.tree.Walk(func(n *Node) bool {
		if w.expansion.IsReachable(n) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// Snapshot records the active and expanded addresses.
func (w *Widget) Snapshot() Snapshot {
	snap := Snapshot{Active: addressOf(w.selection.Current())}
	for _, branch := range w.expansion.Expanded() {
		snap.Expanded = append(snap.Expanded, branch.Address)
	}
	return snap
}

// Restore reapplies a snapshot taken from an earlier widget over the same
// markup. Addresses that no longer resolve to a suitable node are skipped and
// returned.
func (w *Widget) Restore(snap Snapshot) []string {
	var skipped []string
	for _, addr := range snap.Expanded {
		if _, err := w.Toggle(addr, true); err != nil {
			skipped = append(skipped, addr)
		}
	}
	if snap.Active != "" {
		if err := w.Activate(snap.Active); err != nil {
			skipped = append(skipped, snap.Active)
		}
	}
	return skipped
}
