package events

import "github.com/atomicstack/polyglot-popup/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(area string) {
	logging.Trace("ui.focus", map[string]interface{}{"area": area})
}

func (UITracer) Cursor(area string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"area": area, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(area string) {
	logging.Trace("filter.clear", map[string]interface{}{"area": area})
}

func (FilterTracer) Append(area, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"area": area, "filter": filter})
}

func (FilterTracer) Backspace(area, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"area": area, "filter": filter})
}

func (CommandTracer) Queue(id string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id})
}

func (CommandTracer) Result(id, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "msg": msgType})
}
