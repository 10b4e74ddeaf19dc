package events

import "github.com/atomicstack/polyglot-popup/internal/logging"

type SessionTracer struct{}

type bulkKind string

const (
	BulkAll  bulkKind = "all"
	BulkNone bulkKind = "none"
)

var Session = SessionTracer{}

func (SessionTracer) Init(url string, standalone bool) {
	logging.Trace("session.init", map[string]interface{}{"url": url, "standalone": standalone})
}

func (SessionTracer) ActiveTab(url string) {
	logging.Trace("session.tab.resolved", map[string]interface{}{"url": url})
}

func (SessionTracer) SelectionLoaded(codes []string, found bool) {
	logging.Trace("session.selection.resolved", map[string]interface{}{"codes": codes, "found": found})
}

func (SessionTracer) EditURL(url string, mode string, segments int) {
	logging.Trace("session.url.edit", map[string]interface{}{"url": url, "mode": mode, "segments": segments})
}

func (SessionTracer) ChangeMode(from, to string) {
	logging.Trace("session.mode.change", map[string]interface{}{"from": from, "to": to})
}

func (SessionTracer) ModeRefused(mode string) {
	logging.Trace("session.mode.refused", map[string]interface{}{"mode": mode})
}

func (SessionTracer) PickSegment(index int, segment string) {
	logging.Trace("session.segment.pick", map[string]interface{}{"index": index, "segment": segment})
}

func (SessionTracer) Toggle(code string, enabled bool) {
	logging.Trace("session.code.toggle", map[string]interface{}{"code": code, "enabled": enabled})
}

func (SessionTracer) Bulk(kind bulkKind, codes []string) {
	logging.Trace("session.selection.bulk", map[string]interface{}{"kind": string(kind), "codes": codes})
}

func (SessionTracer) Confirm(urls []string, opened bool) {
	logging.Trace("session.confirm", map[string]interface{}{"urls": urls, "opened": opened})
}

func (SessionTracer) ConfirmFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.confirm.error", map[string]interface{}{"error": err.Error()})
}
