// Package chrome talks to a running Chrome or Chromium over the DevTools
// protocol. The browser must have been started with --remote-debugging-port.
package chrome

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/atomicstack/polyglot-popup/internal/logging/events"
)

// Host implements host.TabQuerier and host.TabOpener.
type Host struct {
	browser *rod.Browser
	cancel  context.CancelFunc
}

// Connect dials endpoint, which may be an http(s) debugging address
// ("http://127.0.0.1:9222") or a ws:// browser URL.
func Connect(ctx context.Context, endpoint string) (*Host, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("chrome: empty devtools url")
	}
	wsURL := endpoint
	if !strings.HasPrefix(endpoint, "ws://") && !strings.HasPrefix(endpoint, "wss://") {
		resolved, err := launcher.ResolveURL(endpoint)
		if err != nil {
			return nil, fmt.Errorf("chrome: resolve %s: %w", endpoint, err)
		}
		wsURL = resolved
	}

	connCtx, cancel := context.WithCancel(ctx)
	b := rod.New().Context(connCtx).ControlURL(wsURL)
	if err := b.Connect(); err != nil {
		cancel()
		return nil, fmt.Errorf("chrome: connect: %w", err)
	}
	events.Host.Connect(wsURL)
	return &Host{browser: b, cancel: cancel}, nil
}

// ActiveTabURL returns the URL of the first page target. Chrome lists
// targets most recently focused first.
func (h *Host) ActiveTabURL(ctx context.Context) (string, error) {
	res, err := proto.TargetGetTargets{}.Call(h.browser.Context(ctx))
	if err != nil {
		return "", fmt.Errorf("chrome: list targets: %w", err)
	}
	for _, info := range res.TargetInfos {
		if info.Type == proto.TargetTargetInfoTypePage {
			return info.URL, nil
		}
	}
	return "", nil
}

// OpenTab creates a new page target showing url.
func (h *Host) OpenTab(ctx context.Context, url string) error {
	_, err := proto.TargetCreateTarget{URL: url}.Call(h.browser.Context(ctx))
	if err != nil {
		return fmt.Errorf("chrome: create target: %w", err)
	}
	return nil
}

// Close drops the DevTools connection. The browser keeps running.
func (h *Host) Close() error {
	if h.cancel != nil {
		h.cancel()
	}
	return nil
}
