package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/polyglot-popup/internal/format/table"
	"github.com/atomicstack/polyglot-popup/internal/session"
	"github.com/atomicstack/polyglot-popup/internal/urlseg"
)

const footerText = "tab focus  m mode  1-9 segment  space toggle  a all  n none  / filter  ctrl+o open  esc quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text already carries ANSI styling; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	top := m.topLines()
	bottom := m.bottomLines()

	maxCodes := -1
	if m.height > 0 {
		// one row for the code heading, one for the status line
		maxCodes = m.height - len(top) - len(bottom) - 2
		if maxCodes < 1 {
			maxCodes = 1
		}
	}
	lines := append(top, m.codeLines(maxCodes)...)
	lines = append(lines, bottom...)
	lines = limitHeight(lines, m.height-1, m.width)
	lines = applyWidth(lines, m.width)

	var status styledLine
	if m.errMsg != "" {
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines = append(lines, applyWidth([]styledLine{status}, m.width)...)
	return renderLines(lines)
}

func (m *Model) topLines() []styledLine {
	lines := make([]styledLine, 0, 12)
	header := styles.Header.Render(popupTitle)
	if m.session.Standalone() {
		header += "  " + styles.Badge.Render("DEMO MODE")
	}
	lines = append(lines, styledLine{text: header, raw: true}, styledLine{})

	lines = append(lines, styledLine{text: m.label(FocusURL, "URL") + m.urlField(), raw: true})
	lines = append(lines, styledLine{text: m.label(FocusMode, "Mode") + m.modeRow(), raw: true})
	lines = append(lines, styledLine{text: m.label(FocusSegments, "Segment") + m.segmentRow(), raw: true})
	if msg := m.session.Message(); msg != "" {
		style := styles.Hint
		if m.session.Prompt() == session.PromptInvalidURL {
			style = styles.Error
		}
		lines = append(lines, styledLine{text: msg, style: style})
	}
	lines = append(lines, styledLine{})
	return lines
}

func (m *Model) label(area Focus, text string) string {
	const labelWidth = 11
	padded := text + strings.Repeat(" ", labelWidth-len(text))
	if m.focus == area {
		return styles.FocusedLabel.Render(padded)
	}
	return styles.Label.Render(padded)
}

func (m *Model) urlField() string {
	if m.pendingTab {
		return styles.Loading.Render("loading active tab…")
	}
	switch {
	case m.session.URL() == "":
		m.urlInput.TextStyle = lipgloss.NewStyle()
	case m.session.Valid():
		m.urlInput.TextStyle = *styles.URLValid
	default:
		m.urlInput.TextStyle = *styles.URLInvalid
	}
	if m.width > 0 {
		m.urlInput.Width = m.width - 12
	}
	return m.urlInput.View()
}

func (m *Model) modeRow() string {
	render := func(mode urlseg.Mode, enabled bool) string {
		text := "[" + mode.String() + "]"
		switch {
		case m.session.Mode() == mode:
			return styles.ActiveOption.Render(text)
		case !enabled:
			return styles.DisabledOption.Render(text)
		default:
			return styles.Option.Render(text)
		}
	}
	return render(urlseg.ModePath, true) + " " + render(urlseg.ModeQueryItem, m.session.QueryItemAllowed())
}

func (m *Model) segmentRow() string {
	if len(m.segments.Items) == 0 {
		return styles.Label.Render("(none)")
	}
	picked, hasPick := m.session.SegmentIndex()
	tokens := make([]string, 0, len(m.segments.Items))
	for i, item := range m.segments.Items {
		text := fmt.Sprintf("%d %s", item.Index+1, item.Label)
		style := styles.Segment
		switch {
		case hasPick && item.Index == picked:
			style = styles.PickedSegment
		case m.focus == FocusSegments && i == m.segments.Cursor:
			style = styles.SegmentCursor
		}
		tokens = append(tokens, style.Render(text))
	}
	return strings.Join(tokens, "  ")
}

func (m *Model) codeLines(maxVisible int) []styledLine {
	heading := m.label(FocusCodes, "Languages")
	if m.pendingSelection {
		heading += styles.Loading.Render("loading saved selection…")
	} else if m.filtering || m.codes.Filter != "" {
		heading += styles.FilterPrompt.Render("» ") + styles.Filter.Render(m.codes.Filter)
		if m.filtering {
			heading += styles.Cursor.Render(" ")
		}
	}
	lines := []styledLine{{text: heading, raw: true}}

	if len(m.codes.Items) == 0 {
		msg := "(no languages)"
		if m.codes.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", m.codes.Filter)
		}
		return append(lines, styledLine{text: msg, style: styles.Info})
	}
	start, visible := m.codes.Visible(maxVisible)
	for i, item := range visible {
		lines = append(lines, m.buildCodeLine(item.ID, item.Label, start+i))
	}
	return lines
}

// buildCodeLine renders one toggle row. The cursor row is marked with a bar
// in the indicator column.
func (m *Model) buildCodeLine(code, label string, idx int) styledLine {
	mark := " "
	if m.session.Selected(code) {
		mark = "x"
	}
	indicator := " "
	lineStyle := styles.Item
	indicatorStyle := styles.Item
	if m.focus == FocusCodes && idx == m.codes.Cursor {
		indicator = "▌"
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.ItemIndicator
	}
	return styledLine{
		text:          fmt.Sprintf("%s [%s] %s", indicator, mark, label),
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) bottomLines() []styledLine {
	lines := []styledLine{{}}
	button := " " + m.session.ConfirmLabel() + " "
	style := styles.Button
	switch {
	case !m.session.CanConfirm():
		style = styles.DisabledButton
	case m.focus == FocusConfirm:
		style = styles.FocusedButton
	}
	prefix := "  "
	if m.focus == FocusConfirm {
		prefix = styles.FocusedLabel.Render("▶ ")
	}
	lines = append(lines, styledLine{text: prefix + style.Render(button), raw: true})

	if len(m.previewRows) > 0 {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Not opened (no tab opener):", style: styles.URLListHeading})
		for _, row := range m.previewLines() {
			lines = append(lines, styledLine{text: "  " + row, style: styles.URLListItem})
		}
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footerText, style: styles.Footer})
	}
	return lines
}

// previewLines lays out the code/URL pairs of the last demo confirm.
func (m *Model) previewLines() []string {
	return table.Format(m.previewRows, []table.Alignment{table.AlignLeft, table.AlignLeft})
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
