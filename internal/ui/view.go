package ui

import (
	"fmt"
	"strings"

	uistate "github.com/atomicstack/inline-left-nav/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
	nestedIndent    = "    "
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.title, style: styles.Header})
	if len(m.panel.Rows) == 0 {
		lines = append(lines, styledLine{text: "(no entries)", style: styles.Info})
	} else {
		start, end := m.visibleRange()
		for idx := start; idx < end; idx++ {
			lines = append(lines, m.buildRowLine(m.panel.Rows[idx], idx))
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.ShortHelpView(m.keys.ShortHelp()), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	bottom := applyWidth([]styledLine{statusLine, m.queryLine()}, m.width)
	lines = append(lines, bottom...)
	return padRows(renderLines(lines), m.width)
}

// rowPrefix returns the text drawn before a row label.
func (m *Model) rowPrefix(row uistate.Row) string {
	indent := ""
	marker := " "
	if row.Depth > 1 {
		indent = nestedIndent
	}
	if row.Branch {
		marker = markerCollapsed
		if m.widget.IsExpanded(row.Address) {
			marker = markerExpanded
		}
	}
	return "▌ " + indent + marker + " "
}

// labelSpan returns the half-open column range of a row label.
func labelSpan(row uistate.Row) (int, int) {
	prefix := 2 + 2
	if row.Depth > 1 {
		prefix += len(nestedIndent)
	}
	return prefix, prefix + ansi.StringWidth(row.Label)
}

func (m *Model) buildRowLine(row uistate.Row, idx int) styledLine {
	active := false
	if current := m.widget.Active(); current != nil && current.Address == row.Address {
		active = true
	}
	lineStyle := styles.Item
	if row.Depth > 1 {
		lineStyle = styles.NestedItem
	}
	indicatorStyle := styles.ItemIndicator
	switch {
	case idx == m.panel.Cursor && active:
		lineStyle = styles.ActiveCursor
		indicatorStyle = styles.CursorIndicator
	case idx == m.panel.Cursor:
		lineStyle = styles.CursorItem
		indicatorStyle = styles.CursorIndicator
	case active:
		lineStyle = styles.ActiveItem
	}
	text := m.rowPrefix(row) + row.Label
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) queryLine() styledLine {
	if m.panel.Query == "" {
		return styledLine{text: "> ", style: styles.QueryPrompt}
	}
	return styledLine{
		text:          "> " + m.panel.Query,
		style:         styles.Query,
		prefixStyle:   styles.QueryPrompt,
		highlightFrom: 2,
	}
}

func (m *Model) headerRows() int {
	return 1
}

// visibleRange returns the half-open row range inside the viewport.
func (m *Model) visibleRange() (int, int) {
	total := len(m.panel.Rows)
	maxItems := m.maxVisibleItems()
	if maxItems <= 0 || total <= maxItems {
		return 0, total
	}
	start := m.panel.ViewportOffset
	if start < 0 {
		start = 0
	}
	if start+maxItems > total {
		start = total - maxItems
		m.panel.ViewportOffset = start
	}
	return start, start + maxItems
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewport()
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 + m.headerRows()
	if m.infoMsg != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// padRows makes every rendered row exactly width visible columns wide so the
// panel keeps a straight right edge when embedded beside other content.
func padRows(rendered string, width int) string {
	if width <= 0 {
		return rendered
	}
	rows := strings.Split(rendered, "\n")
	for i, row := range rows {
		w := ansi.StringWidth(row)
		if w > width {
			rows[i] = truncate.StringWithTail(row, uint(width-1), "…")
		} else if w < width {
			rows[i] = row + strings.Repeat(" ", width-w)
		}
	}
	return strings.Join(rows, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
