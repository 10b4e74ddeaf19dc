package events

import "github.com/atomicstack/polyglot-popup/internal/logging"

type HostTracer struct{}

var Host = HostTracer{}

func (HostTracer) QueryTab() {
	logging.Trace("host.tab.query", nil)
}

func (HostTracer) LoadSelection() {
	logging.Trace("host.selection.load", nil)
}

func (HostTracer) SaveSelection(codes []string) {
	logging.Trace("host.selection.save", map[string]interface{}{"codes": codes})
}

func (HostTracer) OpenTab(url string) {
	logging.Trace("host.tab.open", map[string]interface{}{"url": url})
}

func (HostTracer) Connect(endpoint string) {
	logging.Trace("host.connect", map[string]interface{}{"endpoint": endpoint})
}

func (HostTracer) Error(op, target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("host.error", map[string]interface{}{"op": op, "target": target, "error": err.Error()})
}
