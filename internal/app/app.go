package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/polyglot-popup/internal/catalog"
	"github.com/atomicstack/polyglot-popup/internal/host"
	"github.com/atomicstack/polyglot-popup/internal/host/chrome"
	"github.com/atomicstack/polyglot-popup/internal/host/store"
	"github.com/atomicstack/polyglot-popup/internal/host/system"
	"github.com/atomicstack/polyglot-popup/internal/logging"
	"github.com/atomicstack/polyglot-popup/internal/logging/events"
	"github.com/atomicstack/polyglot-popup/internal/session"
	"github.com/atomicstack/polyglot-popup/internal/ui"
)

// HostKind selects which browser host backs the popup.
type HostKind string

const (
	HostAuto   HostKind = "auto"
	HostChrome HostKind = "chrome"
	HostSystem HostKind = "system"
	HostNone   HostKind = "none"
)

var ErrUnknownHost = errors.New("unknown host kind")

// ParseHostKind accepts the names used on the command line. Empty means auto.
func ParseHostKind(raw string) (HostKind, error) {
	switch kind := HostKind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case "":
		return HostAuto, nil
	case HostAuto, HostChrome, HostSystem, HostNone:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownHost, raw)
	}
}

// Config describes user-provided application options.
type Config struct {
	Host         HostKind
	DevToolsURL  string
	URL          string
	Clipboard    bool
	StorePath    string
	Codes        []string
	Defaults     []string
	OpenInterval time.Duration
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
}

// ResolvedHost turns HostAuto into a concrete kind based on which sources
// were configured.
func (c Config) ResolvedHost() HostKind {
	if c.Host != HostAuto && c.Host != "" {
		return c.Host
	}
	switch {
	case strings.TrimSpace(c.DevToolsURL) != "":
		return HostChrome
	case strings.TrimSpace(c.URL) != "" || c.Clipboard:
		return HostSystem
	default:
		return HostNone
	}
}

// Catalog builds the code catalog, falling back to the built-in list.
func (c Config) Catalog() (*catalog.Catalog, error) {
	full := c.Codes
	if len(full) == 0 {
		full = catalog.Builtin
	}
	return catalog.New(full, c.Defaults)
}

// hostEnv owns the adapters opened for one run.
type hostEnv struct {
	caps    host.Capabilities
	closers []func() error
}

func (e *hostEnv) close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			logging.Error(err)
		}
	}
}

func openHost(kind HostKind, cfg Config) (*hostEnv, error) {
	env := &hostEnv{}
	switch kind {
	case HostNone:
		return env, nil
	case HostChrome:
		// The connection lives as long as this context, so it must outlast
		// the program rather than be scoped to the dial.
		h, err := chrome.Connect(context.Background(), cfg.DevToolsURL)
		if err != nil {
			return nil, err
		}
		env.caps.Tabs = h
		env.caps.Opener = h
		env.closers = append(env.closers, func() error { h.Close(); return nil })
	case HostSystem:
		env.caps.Opener = system.NewOpener()
		switch {
		case strings.TrimSpace(cfg.URL) != "":
			env.caps.Tabs = system.Fixed(cfg.URL)
		case cfg.Clipboard:
			if !system.ClipboardAvailable() {
				return nil, fmt.Errorf("clipboard: %w", system.ErrNoURL)
			}
			env.caps.Tabs = system.NewClipboard()
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHost, kind)
	}
	if cfg.StorePath != "" {
		st, err := store.Open(cfg.StorePath)
		if err != nil {
			env.close()
			return nil, err
		}
		env.caps.Store = st
		env.closers = append(env.closers, st.Close)
	}
	return env, nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	cat, err := cfg.Catalog()
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	kind := cfg.ResolvedHost()
	env, err := openHost(kind, cfg)
	if err != nil {
		return fmt.Errorf("open %s host: %w", kind, err)
	}
	defer env.close()
	events.App.Host(string(kind), env.caps.Names())

	// A nil *host.Dispatcher must not reach session.New as a non-nil Host.
	var (
		dispatcher *host.Dispatcher
		sessHost   session.Host
	)
	if !env.caps.Standalone() {
		dispatcher = host.NewDispatcher(env.caps, cfg.OpenInterval)
		sessHost = dispatcher
	}
	sess := session.New(cat, sessHost)
	model := ui.NewModel(sess, dispatcher, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	model.Close()
	if dispatcher != nil {
		// queued saves and tab opens still run before we return
		dispatcher.Stop()
		dispatcher.Wait()
	}
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
