package state

// Cursor movement over the visible rows. Every move reports whether the
// cursor changed so callers only trace real movement.

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// moveTo places the cursor on idx, clamped to the rows.
func (p *Panel) moveTo(idx int) bool {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = clamp(idx, 0, len(p.Rows)-1)
	return old != p.Cursor
}

// MoveCursorHome moves the cursor to the first row.
func (p *Panel) MoveCursorHome() bool { return p.moveTo(0) }

// MoveCursorEnd moves the cursor to the last row.
func (p *Panel) MoveCursorEnd() bool { return p.moveTo(len(p.Rows) - 1) }

// MoveCursorPageUp moves up by one viewport.
func (p *Panel) MoveCursorPageUp(maxVisible int) bool {
	return p.moveTo(clamp(p.Cursor, 0, len(p.Rows)) - p.pageSize(maxVisible))
}

// MoveCursorPageDown moves down by one viewport.
func (p *Panel) MoveCursorPageDown(maxVisible int) bool {
	return p.moveTo(clamp(p.Cursor, 0, len(p.Rows)) + p.pageSize(maxVisible))
}

// MoveCursorUp moves one row up. The first row wraps to the last, the way
// shift+tab cycles through a page's links.
func (p *Panel) MoveCursorUp() bool { return p.step(-1) }

// MoveCursorDown moves one row down, wrapping from the last row to the first.
func (p *Panel) MoveCursorDown() bool { return p.step(1) }

func (p *Panel) step(delta int) bool {
	n := len(p.Rows)
	if n == 0 {
		return false
	}
	cur := clamp(p.Cursor, 0, n-1)
	return p.moveTo(((cur+delta)%n + n) % n)
}

// pageSize is the viewport height, or every row when there is no viewport.
func (p *Panel) pageSize(maxVisible int) int {
	total := len(p.Rows)
	if maxVisible <= 0 || maxVisible > total {
		return max(total, 1)
	}
	return maxVisible
}

// EnsureCursorVisible normalizes the cursor and scrolls the viewport the
// least amount needed to show it.
func (p *Panel) EnsureCursorVisible(maxVisible int) {
	if len(p.Rows) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.Cursor = clamp(p.Cursor, 0, len(p.Rows)-1)
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := max(len(p.Rows)-maxVisible, 0)
	offset := clamp(p.ViewportOffset, 0, maxOffset)
	switch {
	case p.Cursor < offset:
		offset = p.Cursor
	case p.Cursor >= offset+maxVisible:
		offset = p.Cursor - maxVisible + 1
	}
	p.ViewportOffset = clamp(offset, 0, maxOffset)
}
