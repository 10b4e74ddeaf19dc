package command

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ err error }

func TestExecuteRunsRequest(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "probe", Run: func(ctx context.Context) tea.Msg {
		return doneMsg{err: ctx.Err()}
	}})
	msg, ok := cmd().(doneMsg)
	if !ok {
		t.Fatalf("expected doneMsg")
	}
	if msg.err != nil {
		t.Fatalf("expected live context, got %v", msg.err)
	}
}

func TestCancelReachesRequests(t *testing.T) {
	bus := New()
	cmd := bus.Execute(Request{ID: "probe", Run: func(ctx context.Context) tea.Msg {
		return doneMsg{err: ctx.Err()}
	}})
	bus.Cancel()
	msg := cmd().(doneMsg)
	if !errors.Is(msg.err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", msg.err)
	}
}

func TestExecuteWithoutRun(t *testing.T) {
	if msg := New().Execute(Request{ID: "empty"})(); msg != nil {
		t.Fatalf("expected nil msg, got %#v", msg)
	}
}
