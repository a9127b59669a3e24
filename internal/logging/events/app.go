package events

import "github.com/atomicstack/inline-left-nav/internal/logging"

type AppTracer struct{}

type MarkupTracer struct{}

var (
	App    = AppTracer{}
	Markup = MarkupTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (MarkupTracer) Parsed(path string, roots, nodes int) {
	logging.Trace("markup.parsed", map[string]interface{}{"path": path, "roots": roots, "nodes": nodes})
}

func (MarkupTracer) Reload(path string, skipped []string) {
	logging.Trace("markup.reload", map[string]interface{}{"path": path, "skipped": skipped})
}

func (MarkupTracer) ReloadFailed(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("markup.reload-failed", map[string]interface{}{"path": path, "error": err.Error()})
}
