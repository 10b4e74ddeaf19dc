package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/polyglot-popup/internal/host"
	"github.com/atomicstack/polyglot-popup/internal/session"
	"github.com/atomicstack/polyglot-popup/internal/testutil"
)

func TestViewStandalone(t *testing.T) {
	view := newStandaloneModel().View()
	for _, want := range []string{
		"Multi-Language URL Opener",
		"DEMO MODE",
		"1 de",
		"4 item",
		"[path]",
		"[query-item]",
		"Click a path segment above to select it",
		"[x] EN English",
		"[x] DE German",
		"Open 10 Tabs",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewHostedHasNoDemoBadge(t *testing.T) {
	fake := testutil.NewHost("https://example.com/a")
	h, _ := newHostedHarness(t, fake, fake.Capabilities())
	if strings.Contains(h.View(), "DEMO MODE") {
		t.Fatalf("expected no demo badge with a host")
	}
}

func TestViewMessages(t *testing.T) {
	m := newStandaloneModel()
	m.editURL("not-a-valid-url")
	if view := m.View(); !strings.Contains(view, "Please enter a valid URL") {
		t.Fatalf("expected invalid url message:\n%s", view)
	}
	m.editURL("https://example.com")
	if view := m.View(); !strings.Contains(view, "URL has no path segments to replace") || !strings.Contains(view, "(none)") {
		t.Fatalf("expected no segments message:\n%s", view)
	}
}

func TestViewConfirmLabelTracksSelection(t *testing.T) {
	h := NewHarness(newStandaloneModel())
	h.Press(tea.KeyTab)
	h.Type("n")
	h.Press(tea.KeyDown)
	h.Type(" ")
	view := h.View()
	if !strings.Contains(view, "Open 1 Tab") || strings.Contains(view, "Open 1 Tabs") {
		t.Fatalf("expected singular label:\n%s", view)
	}
	if !strings.Contains(view, "[x] FR French") || !strings.Contains(view, "[ ] EN English") {
		t.Fatalf("expected toggles to reflect selection:\n%s", view)
	}
}

func TestViewRespectsSize(t *testing.T) {
	m := NewModel(session.New(nil, nil), nil, 30, 12, true, false)
	lines := strings.Split(m.View(), "\n")
	if len(lines) > 12 {
		t.Fatalf("expected at most 12 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if w := lipgloss.Width(line); w > 30 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
}

func TestViewFollowsWindowSize(t *testing.T) {
	m := newStandaloneModel()
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	if m.width != 50 || m.height != 40 {
		t.Fatalf("expected size applied, got %dx%d", m.width, m.height)
	}
	fixed := NewModel(session.New(nil, nil), nil, 20, 10, false, false)
	fixed.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	if fixed.width != 20 || fixed.height != 10 {
		t.Fatalf("expected fixed size kept, got %dx%d", fixed.width, fixed.height)
	}
}

func TestViewFooter(t *testing.T) {
	m := NewModel(session.New(nil, nil), nil, 0, 0, true, false)
	if !strings.Contains(m.View(), "ctrl+o open") {
		t.Fatalf("expected footer hints")
	}
}

func TestViewShowsError(t *testing.T) {
	m := newStandaloneModel()
	m.errMsg = "boom"
	if !strings.Contains(m.View(), "Error: boom") {
		t.Fatalf("expected status line")
	}
}

func TestViewNoOpenerListsURLs(t *testing.T) {
	fake := testutil.NewHost("https://example.com/de/p")
	h, _ := newHostedHarness(t, fake, host.Capabilities{Tabs: fake})
	h.Type("1")
	h.Press(tea.KeyCtrlO)
	view := h.View()
	if !strings.Contains(view, "Not opened (no tab opener):") || !strings.Contains(view, "https://example.com/nl/p") {
		t.Fatalf("expected url list:\n%s", view)
	}
}

func TestDemoURLListGolden(t *testing.T) {
	h := NewHarness(newStandaloneModel())
	h.Type("1")
	h.Press(tea.KeyCtrlO)
	lines := h.Model().previewLines()
	testutil.AssertGolden(t, "demo_urls.golden", strings.Join(lines, "\n")+"\n")
}

func TestTruncateText(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"abcdef", 4, "abc…"},
		{"abc", 4, "abc"},
		{"abc", 1, "a"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncateText(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncateText(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestLimitHeight(t *testing.T) {
	lines := []styledLine{{text: "a"}, {text: "b"}, {text: "c"}}
	got := limitHeight(lines, 2, 10)
	if len(got) != 2 || got[1].text != "…" {
		t.Fatalf("unexpected limit result %#v", got)
	}
	if got := limitHeight(lines, 0, 10); len(got) != 3 {
		t.Fatalf("expected no limit for zero height")
	}
}
