package tui

import (
	"slices"
	"strings"

	"github.com/goliatone/go-itemlist/pkg/view"
)

// Host is the terminal view.Host. It keeps the rendered rows and markers and
// draws them as lines with a cursor and an optional drag marker.
type Host struct {
	rows     []view.Row
	empty    bool
	disabled bool
}

var _ view.Host = (*Host)(nil)

// NewHost returns an empty host marked empty.
func NewHost() *Host {
	return &Host{empty: true}
}

func (h *Host) Len() int { return len(h.rows) }

func (h *Host) Append(row view.Row) { h.rows = append(h.rows, row) }

func (h *Host) Replace(index int, row view.Row) {
	if index < 0 || index >= len(h.rows) {
		return
	}
	h.rows[index] = row
}

func (h *Host) Remove(index int) {
	if index < 0 || index >= len(h.rows) {
		return
	}
	h.rows = slices.Delete(h.rows, index, index+1)
}

func (h *Host) Move(from, to int) { h.rows = view.MoveRows(h.rows, from, to) }

func (h *Host) Clear() { h.rows = nil }

func (h *Host) SetEmpty(empty bool) { h.empty = empty }

func (h *Host) SetDisabled(disabled bool) { h.disabled = disabled }

// Empty reports the empty-state marker.
func (h *Host) Empty() bool { return h.empty }

// Disabled reports the disabled marker.
func (h *Host) Disabled() bool { return h.disabled }

// Lines returns the row text in order.
func (h *Host) Lines() []string {
	out := make([]string, len(h.rows))
	for idx, row := range h.rows {
		out[idx] = row.Markup
	}
	return out
}

// Frame describes what Draw highlights.
type Frame struct {
	Cursor   int
	Dragging bool
	Prompt   string
}

// Draw renders the rows. The row under the cursor is marked ">" or "="
// while a drag gesture carries it.
func (h *Host) Draw(styles Styles, frame Frame) string {
	if h.empty || len(h.rows) == 0 {
		return styles.Prompt.Render(frame.Prompt)
	}

	var b strings.Builder
	for idx, row := range h.rows {
		line := "  " + row.Markup
		style := styles.Row
		if idx == frame.Cursor {
			switch {
			case frame.Dragging:
				line = "= " + row.Markup
				style = styles.Dragging
			default:
				line = "> " + row.Markup
				style = styles.Cursor
			}
		}
		if h.disabled {
			style = styles.Disabled
		}
		b.WriteString(style.Render(line))
		if idx < len(h.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
