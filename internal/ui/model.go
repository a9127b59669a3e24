package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/inline-left-nav/internal/backend"
	"github.com/atomicstack/inline-left-nav/internal/markup"
	"github.com/atomicstack/inline-left-nav/internal/nav"
	"github.com/atomicstack/inline-left-nav/internal/theme"
	uistate "github.com/atomicstack/inline-left-nav/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "navigation"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Config describes how the panel is laid out.
type Config struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Source     string
	Watcher    *backend.Watcher
}

// Model implements the Bubble Tea model for the navigation panel.
type Model struct {
	widget   *nav.Widget
	registry *nav.Registry
	opts     markup.Options
	root     string
	source   string

	panel *uistate.Panel
	keys  keyMap
	help  help.Model

	title       string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	errMsg      string
	infoMsg     string
	infoExpire  time.Time

	backend  *backend.Watcher
	handlers map[reflect.Type]msgHandler
}

// NewModel binds a widget for root in doc through the registry. The model
// receives every state change of that widget.
func NewModel(cfg Config, registry *nav.Registry, doc *markup.Document, root string) (*Model, error) {
	if registry == nil {
		registry = nav.NewRegistry()
	}
	m := &Model{
		registry:   registry,
		opts:       doc.Options(),
		root:       root,
		source:     cfg.Source,
		keys:       defaultKeyMap(),
		help:       help.New(),
		title:      strings.TrimSpace(cfg.Title),
		showFooter: cfg.ShowFooter,
		backend:    cfg.Watcher,
	}
	if m.title == "" {
		m.title = defaultTitle
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	w, err := registry.Create(root, doc.Builder(m))
	if err != nil {
		return nil, err
	}
	m.widget = w
	m.panel = uistate.NewPanel(root, nil)
	m.refreshRows()
	m.registerHandlers()
	return m, nil
}

// Widget exposes the bound widget.
func (m *Model) Widget() *nav.Widget {
	return m.widget
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// OnActivationChanged is part of the nav.Sink interface.
func (m *Model) OnActivationChanged(next, _ *nav.Node) {
	if next == nil {
		m.forceClearInfo()
		return
	}
	m.setInfo("Active: " + next.Label)
}

// OnExpansionChanged is part of the nav.Sink interface. Nested rows appear or
// disappear with their branch, keeping the cursor inside the tab order.
func (m *Model) OnExpansionChanged(*nav.Node, bool, []*nav.Node) {
	m.refreshRows()
}

func (m *Model) refreshRows() {
	if m.widget == nil || m.panel == nil {
		return
	}
	nodes := m.widget.Reachable()
	rows := make([]uistate.Row, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, uistate.Row{
			Address: n.Address,
			Label:   n.Label,
			Depth:   n.Depth(),
			Branch:  n.HasChildren,
		})
	}
	m.panel.SetRows(rows)
	m.syncViewport()
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
