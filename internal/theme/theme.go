package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading        *lipgloss.Style
	Header         *lipgloss.Style
	Badge          *lipgloss.Style
	Label          *lipgloss.Style
	FocusedLabel   *lipgloss.Style
	URLValid       *lipgloss.Style
	URLInvalid     *lipgloss.Style
	Option         *lipgloss.Style
	ActiveOption   *lipgloss.Style
	DisabledOption *lipgloss.Style
	Segment        *lipgloss.Style
	SegmentCursor  *lipgloss.Style
	PickedSegment  *lipgloss.Style
	Item           *lipgloss.Style
	ItemIndicator  *lipgloss.Style
	SelectedItem   *lipgloss.Style
	Button         *lipgloss.Style
	FocusedButton  *lipgloss.Style
	DisabledButton *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	Hint           *lipgloss.Style
	Footer         *lipgloss.Style
	Filter         *lipgloss.Style
	FilterPrompt   *lipgloss.Style
	Cursor         *lipgloss.Style
	URLListHeading *lipgloss.Style
	URLListItem    *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Bold(true).Padding(0, 1),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FocusedLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	URLValid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	URLInvalid: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Option: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ActiveOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	DisabledOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
	),
	Segment: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SegmentCursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")),
	),
	PickedSegment: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Bold(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28")).Padding(0, 1),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("34")).Bold(true).Padding(0, 1),
	),
	DisabledButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	URLListHeading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	URLListItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
