package ui

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/polyglot-popup/internal/catalog"
	"github.com/atomicstack/polyglot-popup/internal/host"
	"github.com/atomicstack/polyglot-popup/internal/session"
	"github.com/atomicstack/polyglot-popup/internal/theme"
	"github.com/atomicstack/polyglot-popup/internal/ui/command"
	uistate "github.com/atomicstack/polyglot-popup/internal/ui/state"
)

type level = uistate.Level

// Focus names the area that receives key presses.
type Focus int

const (
	FocusURL Focus = iota
	FocusMode
	FocusSegments
	FocusCodes
	FocusConfirm
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusURL:
		return "url"
	case FocusMode:
		return "mode"
	case FocusSegments:
		return "segments"
	case FocusCodes:
		return "codes"
	case FocusConfirm:
		return "confirm"
	default:
		return "focus(" + strconv.Itoa(int(f)) + ")"
	}
}

const popupTitle = "Multi-Language URL Opener"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the URL opener popup.
type Model struct {
	session    *session.Session
	dispatcher *host.Dispatcher
	caps       host.Capabilities
	bus        *command.Bus

	focus     Focus
	urlInput  textinput.Model
	segments  *level
	codes     *level
	filtering bool

	pendingTab       bool
	pendingSelection bool

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	previewRows [][]string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a session to the UI. d may be nil for a standalone session.
func NewModel(sess *session.Session, d *host.Dispatcher, width, height int, showFooter bool, verbose bool) *Model {
	m := &Model{
		session:    sess,
		dispatcher: d,
		bus:        command.New(),
		showFooter: showFooter,
		verbose:    verbose,
	}
	if d != nil {
		m.caps = d.Capabilities()
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}

	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "https://…"
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(sess.URL())
	m.urlInput = in

	m.codes = uistate.NewLevel("codes", codeItems(sess.Catalog()))
	m.syncSegments()

	for _, req := range sess.Requests() {
		switch req {
		case session.RequestActiveTab:
			m.pendingTab = true
		case session.RequestSelection:
			m.pendingSelection = true
		}
	}

	m.focus = FocusSegments
	if sess.URL() == "" && !m.pendingTab {
		m.focus = FocusURL
	}
	m.applyFocus()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	for _, req := range m.session.Requests() {
		switch req {
		case session.RequestActiveTab:
			cmds = append(cmds, m.queryActiveTabCmd(m.caps.Tabs))
		case session.RequestSelection:
			cmds = append(cmds, m.loadSelectionCmd(m.caps.Store))
		}
	}
	if m.dispatcher != nil {
		cmds = append(cmds, waitForDispatcherEvent(m.dispatcher))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(activeTabMsg{}):       m.handleActiveTabMsg,
		reflect.TypeOf(selectionLoadedMsg{}): m.handleSelectionLoadedMsg,
		reflect.TypeOf(dispatcherEventMsg{}): m.handleDispatcherEventMsg,
		reflect.TypeOf(dispatcherDoneMsg{}):  m.handleDispatcherDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Focus reports the focused area.
func (m *Model) Focus() Focus {
	return m.focus
}

// Session exposes the underlying session state.
func (m *Model) Session() *session.Session {
	return m.session
}

func (m *Model) setFocus(f Focus) {
	if f == m.focus {
		return
	}
	m.focus = f
	m.applyFocus()
}

func (m *Model) applyFocus() {
	if m.focus == FocusURL {
		m.urlInput.Focus()
		m.urlInput.CursorEnd()
	} else {
		m.urlInput.Blur()
	}
	if m.focus != FocusCodes {
		m.filtering = false
	}
}

// syncSegments rebuilds the segment row from the session. Segment ids are
// ordinals because the same text may repeat.
func (m *Model) syncSegments() {
	segs := m.session.Segments()
	items := make([]uistate.Item, len(segs))
	for i, seg := range segs {
		items[i] = uistate.Item{ID: strconv.Itoa(i), Label: seg, Index: i}
	}
	m.segments = uistate.NewLevel("segments", items)
	if idx, ok := m.session.SegmentIndex(); ok {
		m.segments.SetCursor(idx)
	}
}

func codeItems(cat *catalog.Catalog) []uistate.Item {
	full := cat.Full()
	items := make([]uistate.Item, len(full))
	for i, code := range full {
		label := strings.ToUpper(code)
		if name := catalog.Name(code); name != "" {
			label += " " + name
		}
		items[i] = uistate.Item{ID: code, Label: label, Index: i}
	}
	return items
}
