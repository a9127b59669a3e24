package state

import "testing"

func newTestPanel(ids ...string) *Panel {
	rows := make([]Row, len(ids))
	for i, id := range ids {
		rows[i] = Row{Address: id, Label: id, Depth: 1}
	}
	return NewPanel("test", rows)
}

func TestMoveCursorHomeEnd(t *testing.T) {
	p := newTestPanel("a", "b", "c")
	p.Cursor = 1
	if !p.MoveCursorEnd() || p.Cursor != 2 {
		t.Fatalf("expected cursor on last row, got %d", p.Cursor)
	}
	if p.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at the end")
	}
	if !p.MoveCursorHome() || p.Cursor != 0 {
		t.Fatalf("expected cursor on first row, got %d", p.Cursor)
	}

	empty := newTestPanel()
	empty.Cursor = 5
	if empty.MoveCursorHome() || empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty panel")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorPaging(t *testing.T) {
	p := newTestPanel("a", "b", "c", "d", "e")
	steps := []struct {
		down  bool
		size  int
		moved bool
		want  int
	}{
		{true, 2, true, 2},
		{true, 2, true, 4},
		{true, 2, false, 4},
		{false, 2, true, 2},
		{false, 10, true, 0},
		{true, 0, true, 4},
	}
	for i, step := range steps {
		var moved bool
		if step.down {
			moved = p.MoveCursorPageDown(step.size)
		} else {
			moved = p.MoveCursorPageUp(step.size)
		}
		if moved != step.moved || p.Cursor != step.want {
			t.Fatalf("step %d: expected moved=%t cursor=%d, got %t %d", i, step.moved, step.want, moved, p.Cursor)
		}
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	p := newTestPanel("a", "b", "c", "d", "e")
	p.Cursor = 4
	p.EnsureCursorVisible(2)
	if p.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", p.ViewportOffset)
	}

	p.Cursor = -1
	p.EnsureCursorVisible(2)
	if p.Cursor != 0 || p.ViewportOffset != 0 {
		t.Fatalf("expected cursor and offset normalized, got %d %d", p.Cursor, p.ViewportOffset)
	}

	p.ViewportOffset = 4
	p.EnsureCursorVisible(0)
	if p.ViewportOffset != 0 {
		t.Fatalf("expected offset reset without a viewport, got %d", p.ViewportOffset)
	}

	p.ViewportOffset = 4
	p.Cursor = 1
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected offset aligned with cursor, got %d", p.ViewportOffset)
	}

	p.Cursor = 2
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 1 {
		t.Fatalf("expected no scroll while cursor is visible, got %d", p.ViewportOffset)
	}
}

func TestMoveCursorUpDownWraps(t *testing.T) {
	p := newTestPanel("a", "b", "c")
	if !p.MoveCursorUp() || p.Cursor != 2 {
		t.Fatalf("expected wrap from first row, got %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 0 {
		t.Fatalf("expected wrap from last row, got %d", p.Cursor)
	}
	if !p.MoveCursorDown() || p.Cursor != 1 {
		t.Fatalf("expected plain step down, got %d", p.Cursor)
	}

	single := newTestPanel("only")
	if single.MoveCursorDown() || single.MoveCursorUp() {
		t.Fatalf("expected no movement with a single row")
	}
	empty := newTestPanel()
	if empty.MoveCursorUp() || empty.MoveCursorDown() {
		t.Fatalf("expected no movement for empty panel")
	}
}
