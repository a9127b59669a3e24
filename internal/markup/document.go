// Package markup discovers navigation trees in HTML through data attributes
// and mirrors widget state back onto the elements.
package markup

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/inline-left-nav/internal/nav"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document holding one or more navigation roots.
type Document struct {
	opts     Options
	doc      *html.Node
	roots    []*html.Node
	ids      []string
	bindings map[string]*Binding
}

// Parse reads HTML and locates every navigation root.
func Parse(r io.Reader, opts Options) (*Document, error) {
	opts = opts.normalized()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	d := &Document{opts: opts, doc: node, bindings: make(map[string]*Binding)}
	roots := find(node, opts.SelectorInit, false)
	ids := newIDSet(roots)
	for i, el := range roots {
		id := strings.TrimSpace(attr(el, "id"))
		if id == "" {
			id = ids.claim("nav-"+strconv.Itoa(i), true)
		} else {
			id = ids.claim(id, false)
		}
		d.roots = append(d.roots, el)
		d.ids = append(d.ids, id)
	}
	return d, nil
}

// idSet hands out identifiers unique among a group of sibling elements.
// Generated and suffixed candidates never take an id some element declares.
type idSet struct {
	declared map[string]bool
	used     map[string]bool
}

func newIDSet(nodes []*html.Node) *idSet {
	s := &idSet{declared: make(map[string]bool), used: make(map[string]bool)}
	for _, n := range nodes {
		if id := strings.TrimSpace(attr(n, "id")); id != "" {
			s.declared[id] = true
		}
	}
	return s
}

func (s *idSet) claim(base string, generated bool) string {
	id := base
	for n := 1; s.used[id] || (generated || id != base) && s.declared[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	s.used[id] = true
	return id
}

// Options returns the options the document was parsed with.
func (d *Document) Options() Options { return d.opts }

// Roots lists root identifiers in document order.
func (d *Document) Roots() []string {
	return append([]string(nil), d.ids...)
}

// Element returns the root element registered under id.
func (d *Document) Element(id string) (*html.Node, bool) {
	for i, rid := range d.ids {
		if rid == id {
			return d.roots[i], true
		}
	}
	return nil, false
}

// Bind builds the navigation tree for a root and returns the binding that
// applies widget state to its elements. Bindings are cached per root.
func (d *Document) Bind(root string) (*Binding, error) {
	if b, ok := d.bindings[root]; ok {
		return b, nil
	}
	el, ok := d.Element(root)
	if !ok {
		return nil, fmt.Errorf("%w: no element for root %q", nav.ErrConstruction, root)
	}
	b, err := newBinding(d.opts, root, el)
	if err != nil {
		return nil, err
	}
	d.bindings[root] = b
	return b, nil
}

// Resolve maps a DOM target to an interaction event. The nearest nested item
// wins over its enclosing top-level item.
func (d *Document) Resolve(target *html.Node, kind nav.Kind) (string, nav.Event, bool) {
	if target != nil && target.Type == html.TextNode {
		target = target.Parent
	}
	for i, el := range d.roots {
		if !isAncestor(el, target) {
			continue
		}
		b, err := d.Bind(d.ids[i])
		if err != nil {
			return "", nav.Event{}, false
		}
		ev, ok := b.resolve(target, kind)
		return d.ids[i], ev, ok
	}
	return "", nav.Event{}, false
}

// Render writes the document, including applied state, as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.doc)
}

// Init creates one widget per root through the registry. Existing widgets are
// reused. extra receives notifications after the markup binding.
func Init(d *Document, registry *nav.Registry, extra nav.Sink) ([]*nav.Widget, error) {
	widgets := make([]*nav.Widget, 0, len(d.ids))
	for _, id := range d.ids {
		w, err := registry.Create(id, d.Builder(extra))
		if err != nil {
			return nil, err
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}

// Builder returns a registry builder binding widgets to this document.
func (d *Document) Builder(extra nav.Sink) nav.Builder {
	return func(root string) (*nav.Widget, error) {
		b, err := d.Bind(root)
		if err != nil {
			return nil, err
		}
		sinks := nav.Sinks{b}
		if extra != nil {
			sinks = append(sinks, extra)
		}
		return nav.NewWidget(root, b.Tree(), sinks)
	}
}

// Binding ties one root element to its navigation tree.
type Binding struct {
	opts      Options
	root      string
	element   *html.Node
	tree      *nav.Tree
	items     map[string]*html.Node
	links     map[string]*html.Node
	addresses map[*html.Node]string
}

func newBinding(opts Options, root string, el *html.Node) (*Binding, error) {
	list := findFirst(el, opts.SelectorList)
	if list == nil {
		return nil, &nav.StructureError{Address: root, Reason: "root has no " + opts.SelectorList + " list"}
	}
	b := &Binding{
		opts:      opts,
		root:      root,
		element:   el,
		items:     make(map[string]*html.Node),
		links:     make(map[string]*html.Node),
		addresses: make(map[*html.Node]string),
	}
	var specs []nav.NodeSpec
	items := find(list, opts.SelectorItem, true)
	ids := newIDSet(items)
	for i, item := range items {
		spec := b.spec(item, ids.positional(item, i), opts.SelectorNestedList)
		addr := spec.ID
		b.record(addr, item, firstOf(findOutside(item, opts.SelectorItemLink, opts.SelectorNestedList)))
		spec.HasChildren = hasClass(item, opts.ClassHasChildren)
		if nested := findFirst(item, opts.SelectorNestedList); nested != nil {
			children := find(nested, opts.SelectorNestedItem, true)
			childIDs := newIDSet(children)
			for j, child := range children {
				childSpec := b.spec(child, childIDs.positional(child, j), "")
				b.record(nav.JoinAddress(addr, childSpec.ID), child, findFirst(child, opts.SelectorItemLink))
				spec.Children = append(spec.Children, childSpec)
			}
		}
		specs = append(specs, spec)
	}
	tree, err := nav.NewTree(specs)
	if err != nil {
		return nil, err
	}
	b.tree = tree
	b.reset()
	return b, nil
}

func (b *Binding) spec(item *html.Node, id string, fence string) nav.NodeSpec {
	var link *html.Node
	if fence != "" {
		link = firstOf(findOutside(item, b.opts.SelectorItemLink, fence))
	} else {
		link = findFirst(item, b.opts.SelectorItemLink)
	}
	label := textContent(link)
	if label == "" && link == nil {
		label = textOutside(item, fence)
	}
	return nav.NodeSpec{ID: id, Label: label, Href: attr(link, "href")}
}

func (b *Binding) record(addr string, item, link *html.Node) {
	b.items[addr] = item
	b.addresses[item] = addr
	if link != nil {
		b.links[addr] = link
	}
}

// reset clears state classes and removes collapsed nested links from the tab
// order so the markup matches a freshly constructed widget.
func (b *Binding) reset() {
	b.tree.Walk(func(n *nav.Node) bool {
		toggleClass(b.items[n.Address], b.opts.ClassActive, false)
		if n.HasChildren {
			toggleClass(b.items[n.Address], b.opts.ClassExpanded, false)
		}
		if n.Parent != nil {
			b.setReachable(n, false)
		}
		return true
	})
}

// Root returns the root identifier.
func (b *Binding) Root() string { return b.root }

// Tree returns the navigation tree discovered in the markup.
func (b *Binding) Tree() *nav.Tree { return b.tree }

// Item returns the element of the node at addr.
func (b *Binding) Item(addr string) *html.Node { return b.items[addr] }

// Link returns the link element of the node at addr, if any.
func (b *Binding) Link(addr string) *html.Node { return b.links[addr] }

// OnActivationChanged moves the active class to next and strips it from every
// other item of the root.
func (b *Binding) OnActivationChanged(next, _ *nav.Node) {
	for addr, el := range b.items {
		toggleClass(el, b.opts.ClassActive, next != nil && addr == next.Address)
	}
}

// OnExpansionChanged updates the branch class and the tab order of its links.
func (b *Binding) OnExpansionChanged(branch *nav.Node, expanded bool, affected []*nav.Node) {
	toggleClass(b.items[branch.Address], b.opts.ClassExpanded, expanded)
	for _, child := range affected {
		b.setReachable(child, expanded)
	}
}

func (b *Binding) setReachable(n *nav.Node, reachable bool) {
	link, ok := b.links[n.Address]
	if !ok {
		return
	}
	if reachable {
		setAttr(link, "tabindex", "0")
	} else {
		setAttr(link, "tabindex", "-1")
	}
}

func (b *Binding) resolve(target *html.Node, kind nav.Kind) (nav.Event, bool) {
	var item, nested *html.Node
	for cur := target; cur != nil && cur != b.element.Parent; cur = cur.Parent {
		if nested == nil && hasAttr(cur, b.opts.SelectorNestedItem) {
			nested = cur
		}
		if item == nil && hasAttr(cur, b.opts.SelectorItem) {
			item = cur
		}
	}
	origin := item
	if nested != nil {
		origin = nested
	}
	if origin == nil {
		return nav.Event{}, false
	}
	addr, ok := b.addresses[origin]
	if !ok {
		return nav.Event{}, false
	}
	return nav.Event{
		Origin:          addr,
		Kind:            kind,
		RawTargetIsLink: hasAttr(target, b.opts.SelectorItemLink),
	}, true
}

// positional returns the declared id of item, or its index when it has none.
// Declared ids are kept as is so duplicates still fail tree construction.
func (s *idSet) positional(item *html.Node, index int) string {
	if id := strings.TrimSpace(attr(item, "id")); id != "" {
		s.used[id] = true
		return id
	}
	return s.claim(strconv.Itoa(index), true)
}

func firstOf(nodes []*html.Node) *html.Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}
