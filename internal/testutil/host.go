package testutil

import (
	"context"
	"sync"

	"github.com/atomicstack/polyglot-popup/internal/host"
)

// Host is an in-memory browser host that records every request. Fields may
// be set before use to script responses.
type Host struct {
	mu sync.Mutex

	URL    string
	TabErr error

	Stored  []string
	Found   bool
	LoadErr error
	SaveErr error
	saved   [][]string

	OpenErr error
	opened  []string
}

// NewHost returns a host whose active tab shows url.
func NewHost(url string) *Host {
	return &Host{URL: url}
}

// Capabilities exposes every capability of the fake.
func (h *Host) Capabilities() host.Capabilities {
	return host.Capabilities{Tabs: h, Store: h, Opener: h}
}

func (h *Host) ActiveTabURL(ctx context.Context) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.TabErr != nil {
		return "", h.TabErr
	}
	return h.URL, nil
}

func (h *Host) LoadSelection(ctx context.Context) ([]string, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.LoadErr != nil {
		return nil, false, h.LoadErr
	}
	return append([]string(nil), h.Stored...), h.Found, nil
}

func (h *Host) SaveSelection(ctx context.Context, codes []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.saved = append(h.saved, append([]string(nil), codes...))
	if h.SaveErr != nil {
		return h.SaveErr
	}
	h.Stored = append([]string(nil), codes...)
	h.Found = true
	return nil
}

func (h *Host) OpenTab(ctx context.Context, url string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opened = append(h.opened, url)
	return h.OpenErr
}

// Saved returns every selection written so far, oldest first.
func (h *Host) Saved() [][]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([][]string, len(h.saved))
	copy(out, h.saved)
	return out
}

// Opened returns every URL passed to OpenTab, in call order.
func (h *Host) Opened() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.opened...)
}
