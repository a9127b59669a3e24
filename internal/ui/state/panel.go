package state

// Row is one visible line of the navigation panel.
type Row struct {
	Address string
	Label   string
	Depth   int
	Branch  bool
}

// Panel tracks cursor, viewport, and jump query over the visible rows.
type Panel struct {
	ID             string
	Rows           []Row
	Cursor         int
	ViewportOffset int
	Query          string
}

// NewPanel constructs a Panel with the cursor on the first row.
func NewPanel(id string, rows []Row) *Panel {
	p := &Panel{ID: id}
	p.SetRows(rows)
	return p
}

// IndexOf returns the row index for an address, or -1.
func (p *Panel) IndexOf(addr string) int {
	if addr == "" {
		return -1
	}
	for i, row := range p.Rows {
		if row.Address == addr {
			return i
		}
	}
	return -1
}

// Current returns the row under the cursor.
func (p *Panel) Current() (Row, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Rows) {
		return Row{}, false
	}
	return p.Rows[p.Cursor], true
}

// SetRows replaces the rows, keeping the cursor on the same address when it is
// still visible. Otherwise the cursor falls back to the nearest row above.
func (p *Panel) SetRows(rows []Row) {
	prev, hadPrev := p.Current()
	p.Rows = cloneRows(rows)
	if len(p.Rows) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if hadPrev {
		if idx := p.IndexOf(prev.Address); idx >= 0 {
			p.Cursor = idx
			return
		}
		if parent := parentOf(prev.Address); parent != "" {
			if idx := p.IndexOf(parent); idx >= 0 {
				p.Cursor = idx
				return
			}
		}
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Rows) {
		p.Cursor = len(p.Rows) - 1
	}
	if p.ViewportOffset > len(p.Rows)-1 {
		p.ViewportOffset = 0
	}
}

func parentOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
	}
	return ""
}

func cloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}
