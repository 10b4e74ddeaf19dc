// Package session holds the state of one popup session: the URL being
// edited, the parse mode, the chosen segment, and the enabled replacement
// codes. Every transition is synchronous; the asynchronous host lookups are
// issued by the caller (see Requests) and fed back through ResolveActiveTab
// and ResolveSelection.
package session

import (
	"errors"
	"fmt"

	"github.com/atomicstack/polyglot-popup/internal/catalog"
	"github.com/atomicstack/polyglot-popup/internal/host"
	"github.com/atomicstack/polyglot-popup/internal/logging"
	"github.com/atomicstack/polyglot-popup/internal/logging/events"
	"github.com/atomicstack/polyglot-popup/internal/urlseg"
)

// DevURL seeds standalone sessions.
const DevURL = "https://example.com/de/products/category/item"

var (
	ErrCannotConfirm = errors.New("nothing to open")
	ErrUnknownCode   = errors.New("code not in catalog")
)

// Host is the fire-and-forget half of the browser host. *host.Dispatcher
// satisfies it.
type Host interface {
	Capabilities() host.Capabilities
	SaveSelection(codes []string) error
	OpenTab(url string) error
}

// Prompt is the contextual guidance state shown under the segment row.
type Prompt int

const (
	PromptNoURL Prompt = iota
	PromptInvalidURL
	PromptNoSegments
	PromptAwaitingPick
	PromptPicked
)

// Request names an asynchronous host lookup a new session wants issued.
type Request int

const (
	RequestActiveTab Request = iota
	RequestSelection
)

// Outcome describes a confirmed open-all action. Opened is false when no tab
// opener exists; URLs then only serve as diagnostic output.
type Outcome struct {
	URLs   []string
	Opened bool
}

type Session struct {
	catalog *catalog.Catalog
	host    Host
	caps    host.Capabilities

	url      string
	mode     urlseg.Mode
	segments []string
	index    int
	picked   bool

	selection      *Selection
	selectionReady bool
}

// New creates a session. A nil host, or one without any capability, yields a
// standalone session seeded with DevURL.
func New(cat *catalog.Catalog, h Host) *Session {
	if cat == nil {
		cat = catalog.Default()
	}
	s := &Session{
		catalog:   cat,
		host:      h,
		mode:      urlseg.ModePath,
		selection: NewSelection(cat.Defaults()),
	}
	if h != nil {
		s.caps = h.Capabilities()
	}
	if s.caps.Standalone() {
		s.url = DevURL
		s.selectionReady = true
	} else {
		s.selectionReady = s.caps.Store == nil
	}
	s.refresh()
	events.Session.Init(s.url, s.caps.Standalone())
	return s
}

// Requests lists the host lookups to issue once, at startup.
func (s *Session) Requests() []Request {
	var reqs []Request
	if s.caps.Tabs != nil {
		reqs = append(reqs, RequestActiveTab)
	}
	if s.caps.Store != nil {
		reqs = append(reqs, RequestSelection)
	}
	return reqs
}

// ResolveActiveTab applies the host's active tab URL. The mode always resets
// to path on a fresh load.
func (s *Session) ResolveActiveTab(url string) {
	s.url = url
	s.mode = urlseg.ModePath
	s.refresh()
	events.Session.ActiveTab(url)
}

// ResolveSelection applies the persisted selection. A stored list replaces
// the default wholesale; absence keeps the default subset.
func (s *Session) ResolveSelection(codes []string, found bool) {
	if found {
		s.selection.Replace(codes)
	} else {
		s.selection.Replace(s.catalog.Defaults())
	}
	s.selectionReady = true
	events.Session.SelectionLoaded(s.selection.Codes(), found)
}

// FailSelection marks the selection usable after a failed lookup, keeping
// whatever is currently enabled.
func (s *Session) FailSelection() {
	s.selectionReady = true
}

// EditURL replaces the URL text. Query-item mode falls back to path mode when
// the new text has no item parameter.
func (s *Session) EditURL(text string) {
	s.url = text
	if s.mode == urlseg.ModeQueryItem && !urlseg.HasQueryItem(text) {
		s.mode = urlseg.ModePath
	}
	s.refresh()
	events.Session.EditURL(text, s.mode.String(), len(s.segments))
}

// SetMode switches the parse mode. Query-item mode is refused unless the URL
// carries an item parameter. Reports whether the mode changed.
func (s *Session) SetMode(mode urlseg.Mode) bool {
	if mode == s.mode {
		return false
	}
	switch mode {
	case urlseg.ModePath:
	case urlseg.ModeQueryItem:
		if !urlseg.HasQueryItem(s.url) {
			events.Session.ModeRefused(mode.String())
			return false
		}
	default:
		return false
	}
	events.Session.ChangeMode(s.mode.String(), mode.String())
	s.mode = mode
	s.refresh()
	return true
}

// PickSegment chooses the segment to replace.
func (s *Session) PickSegment(index int) bool {
	if index < 0 || index >= len(s.segments) {
		return false
	}
	s.index = index
	s.picked = true
	events.Session.PickSegment(index, s.segments[index])
	return true
}

// Toggle flips code and persists the new selection. It reports whether code
// is enabled afterwards.
func (s *Session) Toggle(code string) (bool, error) {
	if !s.catalog.Contains(code) {
		return false, fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
	enabled := s.selection.Toggle(code)
	events.Session.Toggle(code, enabled)
	s.persist()
	return enabled, nil
}

// SelectAll enables the full catalog.
func (s *Session) SelectAll() {
	s.selection.Replace(s.catalog.Full())
	events.Session.Bulk(events.BulkAll, s.selection.Codes())
	s.persist()
}

// SelectNone disables every code.
func (s *Session) SelectNone() {
	s.selection.Replace(nil)
	events.Session.Bulk(events.BulkNone, nil)
	s.persist()
}

// Confirm substitutes every enabled code, in selection order, into the chosen
// segment. Any substitution failure aborts before a single tab is requested.
func (s *Session) Confirm() (Outcome, error) {
	if !s.CanConfirm() {
		return Outcome{}, ErrCannotConfirm
	}
	codes := s.selection.Codes()
	urls := make([]string, 0, len(codes))
	for _, code := range codes {
		u, err := urlseg.Substitute(s.url, s.mode, s.index, code)
		if err != nil {
			err = fmt.Errorf("substitute %q: %w", code, err)
			events.Session.ConfirmFailed(err)
			return Outcome{}, err
		}
		urls = append(urls, u)
	}
	if s.host == nil || s.caps.Opener == nil {
		events.Session.Confirm(urls, false)
		return Outcome{URLs: urls}, nil
	}
	for _, u := range urls {
		if err := s.host.OpenTab(u); err != nil {
			err = fmt.Errorf("open %s: %w", u, err)
			events.Session.ConfirmFailed(err)
			return Outcome{URLs: urls}, err
		}
	}
	events.Session.Confirm(urls, true)
	return Outcome{URLs: urls, Opened: true}, nil
}

func (s *Session) refresh() {
	s.segments = urlseg.Segments(s.url, s.mode)
	s.index = 0
	s.picked = false
}

func (s *Session) persist() {
	if s.host == nil || s.caps.Store == nil {
		return
	}
	if err := s.host.SaveSelection(s.selection.Codes()); err != nil {
		logging.Error(fmt.Errorf("persist selection: %w", err))
	}
}
