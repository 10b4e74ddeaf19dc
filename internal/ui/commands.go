package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/polyglot-popup/internal/host"
	"github.com/atomicstack/polyglot-popup/internal/logging"
	"github.com/atomicstack/polyglot-popup/internal/logging/events"
	"github.com/atomicstack/polyglot-popup/internal/ui/command"
)

// activeTabMsg carries the host's answer to the active tab lookup.
type activeTabMsg struct {
	url string
	err error
}

// selectionLoadedMsg carries the persisted selection lookup result.
type selectionLoadedMsg struct {
	codes []string
	found bool
	err   error
}

type dispatcherEventMsg struct {
	event host.Event
}

type dispatcherDoneMsg struct{}

func (m *Model) queryActiveTabCmd(tabs host.TabQuerier) tea.Cmd {
	if tabs == nil {
		return nil
	}
	return m.bus.Execute(command.Request{ID: "tab.query", Run: func(ctx context.Context) tea.Msg {
		events.Host.QueryTab()
		url, err := tabs.ActiveTabURL(ctx)
		if err != nil {
			err = fmt.Errorf("active tab: %w", err)
			logging.Error(err)
			events.Host.Error("tab.query", "", err)
		}
		return activeTabMsg{url: url, err: err}
	}})
}

func (m *Model) loadSelectionCmd(store host.SelectionStore) tea.Cmd {
	if store == nil {
		return nil
	}
	return m.bus.Execute(command.Request{ID: "selection.load", Run: func(ctx context.Context) tea.Msg {
		events.Host.LoadSelection()
		codes, found, err := store.LoadSelection(ctx)
		if err != nil {
			err = fmt.Errorf("load selection: %w", err)
			logging.Error(err)
			events.Host.Error("selection.load", "", err)
		}
		return selectionLoadedMsg{codes: codes, found: found, err: err}
	}})
}

func waitForDispatcherEvent(d *host.Dispatcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-d.Events()
		if !ok {
			return dispatcherDoneMsg{}
		}
		return dispatcherEventMsg{event: evt}
	}
}

func (m *Model) handleActiveTabMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(activeTabMsg)
	if !ok {
		return nil
	}
	m.pendingTab = false
	if res.err != nil {
		m.errMsg = res.err.Error()
		m.setFocus(FocusURL)
		return nil
	}
	m.session.ResolveActiveTab(res.url)
	m.urlInput.SetValue(res.url)
	m.urlInput.CursorEnd()
	m.previewRows = nil
	m.syncSegments()
	if res.url == "" {
		m.setFocus(FocusURL)
	}
	return nil
}

func (m *Model) handleSelectionLoadedMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(selectionLoadedMsg)
	if !ok {
		return nil
	}
	m.pendingSelection = false
	if res.err != nil {
		m.errMsg = res.err.Error()
		m.session.FailSelection()
		return nil
	}
	m.session.ResolveSelection(res.codes, res.found)
	return nil
}

func (m *Model) handleDispatcherEventMsg(msg tea.Msg) tea.Cmd {
	evtMsg, ok := msg.(dispatcherEventMsg)
	if !ok {
		return nil
	}
	if err := evtMsg.event.Err; err != nil {
		m.errMsg = fmt.Sprintf("%s failed: %v", evtMsg.event.Kind, err)
	}
	if m.dispatcher == nil {
		return nil
	}
	return waitForDispatcherEvent(m.dispatcher)
}

func (m *Model) handleDispatcherDoneMsg(msg tea.Msg) tea.Cmd {
	m.dispatcher = nil
	return nil
}

// Close abandons host lookups still in flight.
func (m *Model) Close() {
	m.bus.Cancel()
}
