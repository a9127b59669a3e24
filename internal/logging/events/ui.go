package events

import "github.com/atomicstack/inline-left-nav/internal/logging"

type UITracer struct{}

type NavTracer struct{}

type JumpTracer struct{}

var (
	UI   = UITracer{}
	Nav  = NavTracer{}
	Jump = JumpTracer{}
)

func (UITracer) Cursor(root string, cursor int, address string) {
	logging.Trace("ui.cursor", map[string]interface{}{"root": root, "cursor": cursor, "address": address})
}

func (UITracer) Click(address string, row, col int, link bool) {
	logging.Trace("ui.click", map[string]interface{}{"address": address, "row": row, "col": col, "link": link})
}

func (NavTracer) Activate(address, previous string) {
	logging.Trace("nav.activate", map[string]interface{}{"address": address, "previous": previous})
}

func (NavTracer) Toggle(address string, expanded bool, children int) {
	logging.Trace("nav.toggle", map[string]interface{}{"address": address, "expanded": expanded, "children": children})
}

func (NavTracer) Dispatch(origin, kind string, link bool, outcome string) {
	logging.Trace("nav.dispatch", map[string]interface{}{
		"origin":  origin,
		"kind":    kind,
		"link":    link,
		"outcome": outcome,
	})
}

func (NavTracer) Ignored(origin, kind, reason string) {
	logging.Trace("nav.ignored", map[string]interface{}{"origin": origin, "kind": kind, "reason": reason})
}

func (JumpTracer) Append(root, query string) {
	logging.Trace("jump.append", map[string]interface{}{"root": root, "query": query})
}

func (JumpTracer) Backspace(root, query string) {
	logging.Trace("jump.backspace", map[string]interface{}{"root": root, "query": query})
}

func (JumpTracer) Cleared(root string) {
	logging.Trace("jump.clear", map[string]interface{}{"root": root})
}
