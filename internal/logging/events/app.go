package events

import "github.com/atomicstack/polyglot-popup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Host(kind string, capabilities []string) {
	logging.Trace("app.host", map[string]interface{}{"kind": kind, "capabilities": capabilities})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
