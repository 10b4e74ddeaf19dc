package session

import (
	"fmt"

	"github.com/atomicstack/polyglot-popup/internal/catalog"
	"github.com/atomicstack/polyglot-popup/internal/urlseg"
)

// Derived values are recomputed from state on every call.

func (s *Session) URL() string               { return s.url }
func (s *Session) Mode() urlseg.Mode         { return s.mode }
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }
func (s *Session) Standalone() bool          { return s.caps.Standalone() }
func (s *Session) SelectionReady() bool      { return s.selectionReady }
func (s *Session) Selection() []string       { return s.selection.Codes() }
func (s *Session) Selected(code string) bool { return s.selection.Has(code) }
func (s *Session) SelectedCount() int        { return s.selection.Len() }
func (s *Session) Valid() bool               { return urlseg.IsValid(s.url) }

// CanOpenTabs reports whether confirming opens real tabs.
func (s *Session) CanOpenTabs() bool {
	return s.host != nil && s.caps.Opener != nil
}

// Segments returns the segments of the URL under the current mode.
func (s *Session) Segments() []string {
	return append([]string(nil), s.segments...)
}

// SegmentIndex returns the chosen segment, if any.
func (s *Session) SegmentIndex() (int, bool) {
	if !s.picked {
		return 0, false
	}
	return s.index, true
}

// QueryItemAllowed reports whether switching to query-item mode is permitted.
func (s *Session) QueryItemAllowed() bool {
	return urlseg.HasQueryItem(s.url)
}

// CanConfirm reports whether the open-all action is enabled.
func (s *Session) CanConfirm() bool {
	return s.Valid() && s.picked && s.index < len(s.segments) && !s.selection.Empty() && s.selectionReady
}

// Prompt derives the guidance state in priority order.
func (s *Session) Prompt() Prompt {
	switch {
	case s.url == "":
		return PromptNoURL
	case !s.Valid():
		return PromptInvalidURL
	case len(s.segments) == 0:
		return PromptNoSegments
	case !s.picked:
		return PromptAwaitingPick
	default:
		return PromptPicked
	}
}

// Message returns the user-facing text for the current prompt, or "".
func (s *Session) Message() string {
	noun := "path"
	if s.mode == urlseg.ModeQueryItem {
		noun = "item"
	}
	switch s.Prompt() {
	case PromptInvalidURL:
		return "Please enter a valid URL"
	case PromptNoSegments:
		return fmt.Sprintf("URL has no %s segments to replace", noun)
	case PromptAwaitingPick:
		return fmt.Sprintf("Click a %s segment above to select it", noun)
	default:
		return ""
	}
}

// ConfirmLabel is the open-all caption with the live tab count.
func (s *Session) ConfirmLabel() string {
	n := s.selection.Len()
	if n == 1 {
		return "Open 1 Tab"
	}
	return fmt.Sprintf("Open %d Tabs", n)
}

func (p Prompt) String() string {
	switch p {
	case PromptNoURL:
		return "no-url"
	case PromptInvalidURL:
		return "invalid-url"
	case PromptNoSegments:
		return "no-segments"
	case PromptAwaitingPick:
		return "awaiting-pick"
	case PromptPicked:
		return "picked"
	default:
		return fmt.Sprintf("prompt(%d)", int(p))
	}
}
