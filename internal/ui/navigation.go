package ui

import (
	"unicode"

	"github.com/atomicstack/inline-left-nav/internal/logging/events"
	"github.com/atomicstack/inline-left-nav/internal/nav"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Enter):
		m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Toggle):
		m.handleSpaceKey()
	case key.Matches(keyMsg, m.keys.Up, m.keys.Prev):
		m.moveCursor(m.panel.MoveCursorUp)
	case key.Matches(keyMsg, m.keys.Down, m.keys.Next):
		m.moveCursor(m.panel.MoveCursorDown)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func() bool { return m.panel.MoveCursorPageUp(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func() bool { return m.panel.MoveCursorPageDown(m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.panel.MoveCursorHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.panel.MoveCursorEnd)
	default:
		m.handleJumpInput(keyMsg)
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	if m.panel.ClearQuery() {
		events.Jump.Cleared(m.root)
		return nil
	}
	return tea.Quit
}

// handleEnterKey mirrors a browser: Enter on an expandable item toggles it,
// then the focused link performs its own activation.
func (m *Model) handleEnterKey() {
	row, ok := m.panel.Current()
	if !ok {
		return
	}
	m.panel.ClearQuery()
	if row.Branch {
		m.dispatch(nav.Event{Origin: row.Address, Kind: nav.KindKeyActivate})
	}
	m.dispatch(nav.Event{Origin: row.Address, Kind: nav.KindActivate, RawTargetIsLink: true})
}

func (m *Model) handleSpaceKey() {
	row, ok := m.panel.Current()
	if !ok {
		return
	}
	m.panel.ClearQuery()
	m.dispatch(nav.Event{Origin: row.Address, Kind: nav.KindActivate})
}

func (m *Model) dispatch(ev nav.Event) nav.Outcome {
	outcome, err := m.widget.Dispatch(ev)
	if err != nil {
		m.errMsg = err.Error()
		return outcome
	}
	m.errMsg = ""
	return outcome
}

func (m *Model) moveCursor(move func() bool) {
	if move() {
		row, _ := m.panel.Current()
		events.UI.Cursor(m.root, m.panel.Cursor, row.Address)
	}
	m.syncViewport()
}

func (m *Model) handleJumpInput(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.panel.BackspaceQuery() {
			events.Jump.Backspace(m.root, m.panel.Query)
			m.syncViewport()
		}
		return
	case tea.KeyCtrlU:
		if m.panel.ClearQuery() {
			events.Jump.Cleared(m.root)
		}
		return
	case tea.KeyRunes:
	default:
		return
	}
	if msg.Alt || len(msg.Runes) == 0 {
		return
	}
	for _, r := range msg.Runes {
		if unicode.IsControl(r) {
			return
		}
	}
	if m.panel.AppendQuery(string(msg.Runes)) {
		events.Jump.Append(m.root, m.panel.Query)
		m.syncViewport()
	}
}

func (m *Model) syncViewport() {
	if m.panel == nil {
		return
	}
	m.panel.EnsureCursorVisible(m.maxVisibleItems())
}

// handleMouseMsg turns a left click into an activation of the row under the
// pointer. Clicks on the label count as clicks on the item's link.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(m.panel.MoveCursorUp)
		return nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(m.panel.MoveCursorDown)
		return nil
	case tea.MouseButtonLeft:
	default:
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	idx, ok := m.rowAt(ev.Y)
	if !ok {
		return nil
	}
	row := m.panel.Rows[idx]
	start, end := labelSpan(row)
	link := ev.X >= start && ev.X < end
	m.panel.Cursor = idx
	m.panel.ClearQuery()
	events.UI.Click(row.Address, idx, ev.X, link)
	m.dispatch(nav.Event{Origin: row.Address, Kind: nav.KindActivate, RawTargetIsLink: link})
	return nil
}

// rowAt maps a screen line to a row index.
func (m *Model) rowAt(y int) (int, bool) {
	line := y - m.headerRows()
	if line < 0 {
		return 0, false
	}
	start, end := m.visibleRange()
	idx := start + line
	if idx >= end {
		return 0, false
	}
	return idx, true
}
