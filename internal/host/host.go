// Package host defines the browser capabilities the popup depends on. Each
// capability is optional and checked on its own, so a caller may supply any
// subset; supplying none puts the popup in standalone demo mode.
package host

import (
	"context"
	"errors"
)

var (
	ErrUnsupported       = errors.New("capability not available")
	ErrDispatcherStopped = errors.New("dispatcher stopped")
)

// TabQuerier reports the URL of the focused browser tab.
type TabQuerier interface {
	ActiveTabURL(ctx context.Context) (string, error)
}

// SelectionStore persists the enabled replacement codes between sessions.
// LoadSelection reports found=false when nothing was stored yet.
type SelectionStore interface {
	LoadSelection(ctx context.Context) (codes []string, found bool, err error)
	SaveSelection(ctx context.Context, codes []string) error
}

// TabOpener opens a new browser tab.
type TabOpener interface {
	OpenTab(ctx context.Context, url string) error
}

// Capabilities bundles the optional host collaborators.
type Capabilities struct {
	Tabs   TabQuerier
	Store  SelectionStore
	Opener TabOpener
}

// Standalone reports whether no capability at all is present.
func (c Capabilities) Standalone() bool {
	return c.Tabs == nil && c.Store == nil && c.Opener == nil
}

// Names lists the present capabilities for trace output.
func (c Capabilities) Names() []string {
	names := make([]string, 0, 3)
	if c.Tabs != nil {
		names = append(names, "tabs")
	}
	if c.Store != nil {
		names = append(names, "store")
	}
	if c.Opener != nil {
		names = append(names, "opener")
	}
	return names
}
