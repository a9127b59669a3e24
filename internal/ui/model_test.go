package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/inline-left-nav/internal/backend"
	"github.com/atomicstack/inline-left-nav/internal/logging"
	"github.com/atomicstack/inline-left-nav/internal/markup"
	"github.com/atomicstack/inline-left-nav/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"
)

const fixture = `<!doctype html>
<html><body>
<nav id="docs" data-inline-left-nav>
  <ul data-inline-left-nav-list>
    <li id="a" class="left-nav-list__item left-nav-list__item--has-children" data-inline-left-nav-item>
      <a href="#a" data-inline-left-nav-item-link>Alpha</a>
      <ul data-inline-left-nav-nested-list>
        <li id="a1" data-inline-left-nav-nested-item><a href="#a1" data-inline-left-nav-item-link>Alpha One</a></li>
        <li id="a2" data-inline-left-nav-nested-item><a href="#a2" data-inline-left-nav-item-link>Alpha Two</a></li>
      </ul>
    </li>
    <li id="l" class="left-nav-list__item" data-inline-left-nav-item><a href="#l" data-inline-left-nav-item-link>Leaf</a></li>
  </ul>
</nav>
</body></html>`

func newTestModel(t *testing.T, cfg Config) (*Model, *markup.Document) {
	t.Helper()
	doc, err := markup.Parse(strings.NewReader(fixture), markup.DefaultOptions())
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	m, err := NewModel(cfg, nav.NewRegistry(), doc, "docs")
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m, doc
}

func rowAddresses(m *Model) []string {
	out := make([]string, len(m.panel.Rows))
	for i, row := range m.panel.Rows {
		out[i] = row.Address
	}
	return out
}

func assertRows(t *testing.T, m *Model, want ...string) {
	t.Helper()
	got := rowAddresses(m)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected rows %v, got %v", want, got)
	}
}

func classOf(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func TestNewModelShowsOnlyReachableRows(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	assertRows(t, m, "a", "l")
	if m.panel.Cursor != 0 {
		t.Fatalf("expected cursor on first row, got %d", m.panel.Cursor)
	}
	if m.Widget().Active() != nil {
		t.Fatalf("expected nothing active initially")
	}
}

func TestEnterOnBranchTogglesOnce(t *testing.T) {
	m, doc := newTestModel(t, Config{})
	h := NewHarness(m)

	h.Press("enter")
	if !m.Widget().IsExpanded("a") {
		t.Fatalf("expected branch expanded after enter")
	}
	assertRows(t, m, "a", "a:a1", "a:a2", "l")
	if m.Widget().Active() != nil {
		t.Fatalf("expected link activation on a branch to be suppressed")
	}
	b, _ := doc.Bind("docs")
	if !strings.Contains(classOf(b.Item("a")), "left-nav-list__item--expanded") {
		t.Fatalf("expected expanded class on branch element, got %q", classOf(b.Item("a")))
	}

	h.Press("enter")
	if m.Widget().IsExpanded("a") {
		t.Fatalf("expected second enter to collapse the branch")
	}
	assertRows(t, m, "a", "l")
}

func TestSpaceActivatesNestedAndLeafRows(t *testing.T) {
	m, doc := newTestModel(t, Config{})
	h := NewHarness(m)

	h.Press("space", "down", "space")
	if got := m.Widget().Active(); got == nil || got.Address != "a:a1" {
		t.Fatalf("expected a:a1 active, got %v", got)
	}
	if !m.Widget().IsExpanded("a") {
		t.Fatalf("expected activation to leave expansion untouched")
	}
	if !strings.Contains(h.View(), "Active: Alpha One") {
		t.Fatalf("expected info line for activation, got:\n%s", h.View())
	}

	h.Press("end", "enter")
	if got := m.Widget().Active(); got == nil || got.Address != "l" {
		t.Fatalf("expected leaf active after enter, got %v", got)
	}
	b, _ := doc.Bind("docs")
	if strings.Contains(classOf(b.Item("a:a1")), "left-nav-list__item--active") {
		t.Fatalf("expected previous active class removed")
	}
	if !strings.Contains(classOf(b.Item("l")), "left-nav-list__item--active") {
		t.Fatalf("expected active class on leaf")
	}
}

func TestCollapseMovesCursorToBranch(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	h := NewHarness(m)
	h.Press("enter", "down", "down")
	if row, _ := m.panel.Current(); row.Address != "a:a2" {
		t.Fatalf("expected cursor on a:a2, got %q", row.Address)
	}
	if _, err := m.Widget().Toggle("a"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if row, _ := m.panel.Current(); row.Address != "a" {
		t.Fatalf("expected cursor back on branch, got %q", row.Address)
	}
}

func TestMouseClickOnLinkDoesNotToggle(t *testing.T) {
	m, _ := newTestModel(t, Config{Width: 40})
	h := NewHarness(m)

	start, _ := labelSpan(m.panel.Rows[0])
	h.Send(tea.MouseMsg{X: start, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if m.Widget().IsExpanded("a") {
		t.Fatalf("expected click on branch link to be suppressed")
	}

	h.Send(tea.MouseMsg{X: 0, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if !m.Widget().IsExpanded("a") {
		t.Fatalf("expected click on branch body to expand")
	}

	h.Send(tea.MouseMsg{X: 0, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.Widget().Active(); got == nil || got.Address != "a:a2" {
		t.Fatalf("expected click to activate a:a2, got %v", got)
	}
	if !m.Widget().IsExpanded("a") {
		t.Fatalf("expected nested activation to keep branch expanded")
	}

	h.Send(tea.MouseMsg{X: 0, Y: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.Widget().Active(); got == nil || got.Address != "a:a2" {
		t.Fatalf("expected click below rows to be ignored, got %v", got)
	}
}

func TestJumpQueryAndEscape(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	h := NewHarness(m)

	h.Press("l", "e")
	if row, _ := m.panel.Current(); row.Address != "l" {
		t.Fatalf("expected jump to Leaf, got %q", row.Address)
	}
	if !strings.Contains(h.View(), "> le") {
		t.Fatalf("expected query prompt in view, got:\n%s", h.View())
	}
	if h.Press("esc") {
		t.Fatalf("expected first esc to clear the query, not quit")
	}
	if m.panel.Query != "" {
		t.Fatalf("expected query cleared, got %q", m.panel.Query)
	}
	if !h.Press("esc") {
		t.Fatalf("expected esc with empty query to quit")
	}
	if !h.Press("ctrl+c") {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestStaleAddressIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	outcome := m.dispatch(nav.Event{Origin: "gone", Kind: nav.KindActivate})
	if outcome != nav.OutcomeIgnored {
		t.Fatalf("expected ignored outcome, got %v", outcome)
	}
	if m.errMsg != "" {
		t.Fatalf("expected no error for stale address, got %q", m.errMsg)
	}
}

func TestReloadRestoresState(t *testing.T) {
	m, _ := newTestModel(t, Config{})
	h := NewHarness(m)
	h.Press("enter", "down", "down", "space")

	updated := strings.Replace(fixture, `<li id="a2" data-inline-left-nav-nested-item><a href="#a2" data-inline-left-nav-item-link>Alpha Two</a></li>`, "", 1)
	updated = strings.Replace(updated, ">Leaf<", ">Leaf Renamed<", 1)
	old := m.Widget()
	if err := m.reload("nav.html", []byte(updated)); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if m.Widget() == old {
		t.Fatalf("expected a new widget after reload")
	}
	if got, ok := m.registry.Get("docs"); !ok || got != m.Widget() {
		t.Fatalf("expected registry to hold the new widget")
	}
	if !m.Widget().IsExpanded("a") {
		t.Fatalf("expected expansion restored")
	}
	if m.Widget().Active() != nil {
		t.Fatalf("expected stale active address to be dropped")
	}
	assertRows(t, m, "a", "a:a1", "l")
	if !strings.Contains(h.View(), "Leaf Renamed") {
		t.Fatalf("expected new labels in view, got:\n%s", h.View())
	}
}

func TestReloadFailureKeepsWidget(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	defer logging.Configure("")
	m, _ := newTestModel(t, Config{})
	old := m.Widget()
	broken := strings.Replace(fixture, `<ul data-inline-left-nav-nested-list>`, `<ul>`, 1)
	h := NewHarness(m)
	h.Send(backendEventMsg{event: backend.Event{Kind: backend.KindMarkup, Path: "nav.html", Data: []byte(broken)}})
	if m.Widget() != old {
		t.Fatalf("expected widget kept after failed reload")
	}
	if m.errMsg == "" {
		t.Fatalf("expected error message after failed reload")
	}
	if got, ok := m.registry.Get("docs"); !ok || got != old {
		t.Fatalf("expected registry untouched after failed reload")
	}
}

func TestViewportKeepsCursorVisible(t *testing.T) {
	m, _ := newTestModel(t, Config{Width: 30, Height: 5})
	h := NewHarness(m)
	h.Press("enter", "end")
	if m.maxVisibleItems() != 2 {
		t.Fatalf("expected 2 visible rows, got %d", m.maxVisibleItems())
	}
	view := h.View()
	if !strings.Contains(view, "Leaf") {
		t.Fatalf("expected last row visible, got:\n%s", view)
	}
	if strings.Contains(view, "Alpha One") {
		t.Fatalf("expected first nested row scrolled away, got:\n%s", view)
	}
	for _, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w > 30 {
			t.Fatalf("expected rows clipped to width 30, got %d: %q", w, line)
		}
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m, _ := newTestModel(t, Config{Width: 20})
	NewHarness(m).Send(tea.WindowSizeMsg{Width: 80, Height: 10})
	if m.width != 20 {
		t.Fatalf("expected fixed width 20, got %d", m.width)
	}
	if m.height != 10 {
		t.Fatalf("expected height from terminal, got %d", m.height)
	}
}
