package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/polyglot-popup/internal/logging/events"
	"github.com/atomicstack/polyglot-popup/internal/urlseg"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+o":
		return m.confirm()
	}
	if m.filtering {
		return m.handleFilterKey(key)
	}
	switch key.String() {
	case "tab":
		m.cycleFocus(1)
		return nil
	case "shift+tab":
		m.cycleFocus(-1)
		return nil
	case "esc":
		if m.codes.ClearFilter() {
			events.Filter.Cleared(m.codes.ID)
			return nil
		}
		return tea.Quit
	}
	if m.focus == FocusURL {
		return m.handleURLKey(key)
	}
	if idx, ok := digitIndex(key); ok {
		m.pickSegment(idx)
		return nil
	}
	if key.String() == "m" {
		m.toggleMode()
		return nil
	}
	switch m.focus {
	case FocusMode:
		switch key.String() {
		case " ", "enter", "left", "right", "h", "l":
			m.toggleMode()
		}
	case FocusSegments:
		m.handleSegmentKey(key)
	case FocusCodes:
		m.handleCodeKey(key)
	case FocusConfirm:
		switch key.String() {
		case " ", "enter":
			return m.confirm()
		}
	}
	return nil
}

func (m *Model) cycleFocus(delta int) {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	m.setFocus(Focus(next))
	events.UI.Focus(m.focus.String())
}

func (m *Model) handleURLKey(key tea.KeyMsg) tea.Cmd {
	if key.Type == tea.KeyEnter {
		m.cycleFocus(1)
		return nil
	}
	before := m.urlInput.Value()
	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(key)
	if after := m.urlInput.Value(); after != before {
		m.editURL(after)
	}
	return cmd
}

// editURL pushes a new URL text into the session and resets dependent views.
func (m *Model) editURL(text string) {
	m.session.EditURL(text)
	m.previewRows = nil
	m.errMsg = ""
	m.syncSegments()
}

func (m *Model) toggleMode() {
	next := urlseg.ModeQueryItem
	if m.session.Mode() == urlseg.ModeQueryItem {
		next = urlseg.ModePath
	}
	if !m.session.SetMode(next) {
		if next == urlseg.ModeQueryItem {
			m.errMsg = "URL has no item parameter"
		}
		return
	}
	m.errMsg = ""
	m.previewRows = nil
	m.syncSegments()
}

func (m *Model) pickSegment(idx int) {
	if !m.session.PickSegment(idx) {
		return
	}
	m.errMsg = ""
	m.previewRows = nil
	m.segments.SetCursor(idx)
}

func (m *Model) handleSegmentKey(key tea.KeyMsg) {
	switch key.String() {
	case "left", "h":
		if m.segments.MoveCursor(-1) {
			events.UI.Cursor(m.segments.ID, m.segments.Cursor)
		}
	case "right", "l":
		if m.segments.MoveCursor(1) {
			events.UI.Cursor(m.segments.ID, m.segments.Cursor)
		}
	case "home":
		m.segments.MoveCursorHome()
	case "end":
		m.segments.MoveCursorEnd()
	case " ", "enter":
		if item, ok := m.segments.Current(); ok {
			m.pickSegment(item.Index)
		}
	}
}

func (m *Model) handleCodeKey(key tea.KeyMsg) {
	switch key.String() {
	case "up", "k":
		if m.codes.MoveCursor(-1) {
			events.UI.Cursor(m.codes.ID, m.codes.Cursor)
		}
	case "down", "j":
		if m.codes.MoveCursor(1) {
			events.UI.Cursor(m.codes.ID, m.codes.Cursor)
		}
	case "home", "g":
		m.codes.MoveCursorHome()
	case "end", "G":
		m.codes.MoveCursorEnd()
	case " ", "enter":
		m.toggleCurrentCode()
	case "a":
		m.session.SelectAll()
		m.previewRows = nil
	case "n":
		m.session.SelectNone()
		m.previewRows = nil
	case "/":
		m.filtering = true
	}
}

func (m *Model) toggleCurrentCode() {
	item, ok := m.codes.Current()
	if !ok {
		return
	}
	if _, err := m.session.Toggle(item.ID); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.previewRows = nil
}

// handleFilterKey edits the code filter while it has focus. enter or tab
// keeps the filter and returns to the grid; esc drops it.
func (m *Model) handleFilterKey(key tea.KeyMsg) tea.Cmd {
	id := m.codes.ID
	switch key.String() {
	case "esc":
		m.filtering = false
		if m.codes.ClearFilter() {
			events.Filter.Cleared(id)
		}
		return nil
	case "enter", "tab":
		m.filtering = false
		return nil
	case "up":
		m.codes.MoveCursor(-1)
		return nil
	case "down":
		m.codes.MoveCursor(1)
		return nil
	case "ctrl+u":
		if m.codes.ClearFilter() {
			events.Filter.Cleared(id)
		}
		return nil
	case "ctrl+w":
		if m.codes.DeleteFilterWord() {
			events.Filter.Backspace(id, m.codes.Filter)
		}
		return nil
	}
	switch key.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.codes.DeleteFilterRune() {
			events.Filter.Backspace(id, m.codes.Filter)
		}
	case tea.KeySpace:
		if m.codes.AppendFilter(" ") {
			events.Filter.Append(id, m.codes.Filter)
		}
	case tea.KeyRunes:
		if key.Alt {
			return nil
		}
		for _, r := range key.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		if m.codes.AppendFilter(string(key.Runes)) {
			events.Filter.Append(id, m.codes.Filter)
		}
	}
	return nil
}

// digitIndex maps the keys 1-9 to a zero-based segment index.
func digitIndex(key tea.KeyMsg) (int, bool) {
	if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
		return 0, false
	}
	r := key.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
