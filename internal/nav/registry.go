package nav

import (
	"fmt"
	"strings"
)

// Builder produces a widget for a root that is not registered yet.
type Builder func(root string) (*Widget, error)

// Registry maps root identifiers to their single widget instance. Entries stay
// until Release is called.
type Registry struct {
	widgets map[string]*Widget
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]*Widget)}
}

// Create returns the widget registered for root, building it when absent.
// Nothing is registered when build fails.
func (r *Registry) Create(root string, build Builder) (*Widget, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, fmt.Errorf("%w: empty root identifier", ErrConstruction)
	}
	if w, ok := r.widgets[root]; ok {
		return w, nil
	}
	if build == nil {
		return nil, fmt.Errorf("%w: no builder for %q", ErrConstruction, root)
	}
	w, err := build(root)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: builder returned no widget for %q", ErrConstruction, root)
	}
	r.widgets[root] = w
	return w, nil
}

// Get looks up the widget bound to root.
func (r *Registry) Get(root string) (*Widget, bool) {
	w, ok := r.widgets[root]
	return w, ok
}

// Release drops the widget bound to root and reports whether one existed.
func (r *Registry) Release(root string) bool {
	if _, ok := r.widgets[root]; !ok {
		return false
	}
	delete(r.widgets, root)
	return true
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.widgets)
}
