package command

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/polyglot-popup/internal/logging/events"
)

// Request encapsulates one asynchronous host lookup.
type Request struct {
	ID  string
	Run func(ctx context.Context) tea.Msg
}

// Bus turns host lookups into Bubble Tea commands sharing one context, so a
// closing popup can abandon lookups still in flight.
type Bus struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// New initialises a command bus instance.
func New() *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	return &Bus{ctx: ctx, cancel: cancel}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID)
	return func() tea.Msg {
		if req.Run == nil {
			return nil
		}
		msg := req.Run(b.ctx)
		events.Command.Result(req.ID, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Cancel aborts every lookup started through the bus.
func (b *Bus) Cancel() {
	b.cancel()
}
