package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the terminal editor.
type Styles struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Dragging lipgloss.Style
	Prompt   lipgloss.Style
	Disabled lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the built-in palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		Row: lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
		Dragging: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98")),
		Prompt: lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#87CEEB")),
		Disabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}

// PlainStyles renders without colors or padding, for tests and dumb
// terminals.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Row:      plain,
		Cursor:   plain,
		Dragging: plain,
		Prompt:   plain,
		Disabled: plain,
		Error:    plain,
		Help:     plain,
	}
}
