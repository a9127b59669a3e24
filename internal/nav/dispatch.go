package nav

import (
	"errors"

	"github.com/atomicstack/inline-left-nav/internal/logging"
	"github.com/atomicstack/inline-left-nav/internal/logging/events"
)

// Kind distinguishes pointer activation from keyboard activation.
type Kind int

const (
	// KindActivate is a click or any activation of the item element.
	KindActivate Kind = iota
	// KindKeyActivate is the Enter key pressed on an item.
	KindKeyActivate
)

func (k Kind) String() string {
	switch k {
	case KindActivate:
		return "activate"
	case KindKeyActivate:
		return "key-activate"
	default:
		return "unknown"
	}
}

// Event is an interaction already resolved to the nearest tree node.
type Event struct {
	Origin          string
	Kind            Kind
	RawTargetIsLink bool
}

// Outcome records which routing rule handled an event.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeActivated
	OutcomeToggled
	OutcomeSuppressed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeActivated:
		return "activated"
	case OutcomeToggled:
		return "toggled"
	case OutcomeSuppressed:
		return "suppressed"
	default:
		return "ignored"
	}
}

// Dispatcher routes events to the selection and expansion state.
type Dispatcher struct {
	tree      *Tree
	selection *Selection
	expansion *Expansion
}

// NewDispatcher wires a dispatcher over existing state.
func NewDispatcher(tree *Tree, selection *Selection, expansion *Expansion) *Dispatcher {
	return &Dispatcher{tree: tree, selection: selection, expansion: expansion}
}

// Dispatch applies one event. Nested items are activated, branches toggle
// unless the event came from the branch's own link, and top-level leaves are
// activated. Keyboard activation only toggles branches. Events for addresses
// outside the tree are ignored; any other error indicates a routing bug and is
// returned.
func (d *Dispatcher) Dispatch(ev Event) (Outcome, error) {
	node, err := d.tree.NodeAt(ev.Origin)
	if err != nil {
		events.Nav.Ignored(ev.Origin, ev.Kind.String(), "unknown node")
		return OutcomeIgnored, nil
	}
	outcome, err := d.route(node, ev)
	if err != nil {
		var unknown *UnknownNodeError
		if errors.As(err, &unknown) {
			events.Nav.Ignored(ev.Origin, ev.Kind.String(), err.Error())
			return OutcomeIgnored, nil
		}
		logging.Error(err)
		return OutcomeIgnored, err
	}
	events.Nav.Dispatch(ev.Origin, ev.Kind.String(), ev.RawTargetIsLink, outcome.String())
	return outcome, nil
}

func (d *Dispatcher) route(node *Node, ev Event) (Outcome, error) {
	if ev.Kind == KindKeyActivate {
		if node.Parent != nil || !node.HasChildren {
			return OutcomeIgnored, nil
		}
		if _, err := d.expansion.Toggle(node); err != nil {
			return OutcomeIgnored, err
		}
		return OutcomeToggled, nil
	}
	switch {
	case node.Parent != nil:
		if err := d.selection.Activate(node); err != nil {
			return OutcomeIgnored, err
		}
		return OutcomeActivated, nil
	case node.HasChildren:
		if ev.RawTargetIsLink {
			return OutcomeSuppressed, nil
		}
		if _, err := d.expansion.Toggle(node); err != nil {
			return OutcomeIgnored, err
		}
		return OutcomeToggled, nil
	default:
		if err := d.selection.Activate(node); err != nil {
			return OutcomeIgnored, err
		}
		return OutcomeActivated, nil
	}
}
