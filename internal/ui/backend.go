package ui

import (
	"bytes"
	"fmt"

	"github.com/atomicstack/inline-left-nav/internal/backend"
	"github.com/atomicstack/inline-left-nav/internal/logging"
	"github.com/atomicstack/inline-left-nav/internal/logging/events"
	"github.com/atomicstack/inline-left-nav/internal/markup"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Kind != backend.KindMarkup {
		return
	}
	if evt.Err != nil {
		events.Markup.ReloadFailed(evt.Path, evt.Err)
		m.errMsg = fmt.Sprintf("reload %s: %v", evt.Path, evt.Err)
		return
	}
	if err := m.reload(evt.Path, evt.Data); err != nil {
		logging.Error(err)
		events.Markup.ReloadFailed(evt.Path, err)
		m.errMsg = err.Error()
	}
}

// reload swaps the widget for one built from new markup. The old widget stays
// in place when the new markup does not produce a valid tree.
func (m *Model) reload(path string, data []byte) error {
	doc, err := markup.Parse(bytes.NewReader(data), m.opts)
	if err != nil {
		return err
	}
	if _, err := doc.Bind(m.root); err != nil {
		return fmt.Errorf("reload %s: %w", m.root, err)
	}
	snapshot := m.widget.Snapshot()
	m.registry.Release(m.root)
	w, err := m.registry.Create(m.root, doc.Builder(m))
	if err != nil {
		return err
	}
	m.widget = w
	m.refreshRows()
	skipped := w.Restore(snapshot)
	m.refreshRows()
	events.Markup.Reload(path, skipped)
	m.errMsg = ""
	m.setInfo("Reloaded " + path)
	return nil
}
