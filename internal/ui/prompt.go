package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/polyglot-popup/internal/logging/events"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the action flow: reset transient messages, run the
// action, then surface its error or info and hand back its follow-up command.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		events.Action.Error(result.Err)
		return nil
	}
	events.Action.Success(result.Info)
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

// confirm opens one tab per enabled code. With a tab opener the popup closes
// afterwards; without one the computed URLs are listed instead.
func (m *Model) confirm() tea.Cmd {
	if !m.session.CanConfirm() {
		m.errMsg = m.confirmBlocker()
		return nil
	}
	codes := m.session.Selection()
	return m.withPrompt(func() promptResult {
		out, err := m.session.Confirm()
		if err != nil {
			return promptResult{Err: err}
		}
		if out.Opened {
			return promptResult{Cmd: tea.Quit, Info: fmt.Sprintf("Opened %s", pluralTabs(len(out.URLs)))}
		}
		rows := make([][]string, 0, len(out.URLs))
		for i, u := range out.URLs {
			code := ""
			if i < len(codes) {
				code = strings.ToUpper(codes[i])
			}
			rows = append(rows, []string{code, u})
		}
		m.previewRows = rows
		return promptResult{Info: fmt.Sprintf("Would open %s", pluralTabs(len(out.URLs)))}
	})
}

// confirmBlocker explains why the open action is disabled.
func (m *Model) confirmBlocker() string {
	if msg := m.session.Message(); msg != "" {
		return msg
	}
	switch {
	case m.session.URL() == "":
		return "No URL to open"
	case !m.session.SelectionReady():
		return "Still loading saved languages"
	case m.session.SelectedCount() == 0:
		return "Select at least one language"
	default:
		return "Nothing to open"
	}
}

func pluralTabs(n int) string {
	if n == 1 {
		return "1 tab"
	}
	return fmt.Sprintf("%d tabs", n)
}
