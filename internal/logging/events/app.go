package events

import "github.com/burrowpick/burrow/internal/logging"

type AppTracer struct{}

type WatchTracer struct{}

var (
	App   = AppTracer{}
	Watch = WatchTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) TreeLoaded(path string, roots int) {
	logging.Trace("app.tree-loaded", map[string]interface{}{"path": path, "roots": roots})
}

func (WatchTracer) Changed(path string) {
	logging.Trace("watch.changed", map[string]interface{}{"path": path})
}

func (WatchTracer) ReloadFailed(path string, err error) {
	payload := map[string]interface{}{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("watch.reload-failed", payload)
}
