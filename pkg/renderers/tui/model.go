package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-itemlist/pkg/drag"
	"github.com/goliatone/go-itemlist/pkg/engine"
	"github.com/goliatone/go-itemlist/pkg/locale"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeDrag
)

// Model is the bubbletea program editing one list. Keyboard gestures drive
// the same entry points a pointer host would: the add affordance, row edit,
// remove, and a drag gesture carried out through a manual coordinator.
type Model struct {
	list  *engine.List
	host  *Host
	coord *drag.Manual

	title  string
	labels locale.Strings
	styles Styles

	mode       mode
	cursor     int
	dragSource int
	input      textinput.Model
	err        error
	done       bool
	aborted    bool
}

var _ tea.Model = (*Model)(nil)

// NewModel builds the editor. host must be the host the list's view renders
// into and coord the coordinator the list was built with.
func NewModel(list *engine.List, host *Host, coord *drag.Manual, options ...Option) (*Model, error) {
	switch {
	case list == nil:
		return nil, errors.New("tui: list is required")
	case host == nil:
		return nil, errors.New("tui: host is required")
	case coord == nil:
		return nil, errors.New("tui: coordinator is required")
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Width = 60

	m := &Model{
		list:   list,
		host:   host,
		coord:  coord,
		title:  "Item list",
		labels: locale.NewCatalog().Resolve(locale.DefaultLanguage, nil),
		styles: DefaultStyles(),
		input:  input,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.inputActive() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.abortGesture()
		m.aborted = true
		m.done = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeEdit:
		return m.updateInput(key)
	case modeDrag:
		m.updateDrag(key)
		return m, nil
	default:
		return m.updateBrowse(key)
	}
}

func (m *Model) updateBrowse(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch key.String() {
	case "q", "esc":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case "a", "+":
		if !m.list.RequestAdd() {
			m.err = ErrDisabled
			return m, nil
		}
		m.startInput(modeAdd, "")
		return m, textinput.Blink
	case "e", "enter":
		if m.list.Len() == 0 {
			m.err = ErrNoItems
			return m, nil
		}
		if !m.list.RequestEdit(m.cursor) {
			m.err = ErrDisabled
			return m, nil
		}
		m.startInput(modeEdit, FormatItem(m.list.Items()[m.cursor]))
		return m, textinput.Blink
	case "d", "x", "delete":
		if m.list.Len() == 0 {
			m.err = ErrNoItems
			return m, nil
		}
		removed, err := m.list.RequestRemove(m.cursor)
		if err != nil {
			m.err = err
		} else if !removed {
			m.err = ErrDisabled
		}
		m.clampCursor()
	case " ", "space":
		if m.list.Len() == 0 {
			m.err = ErrNoItems
			return m, nil
		}
		if !m.list.ArmReorder(m.cursor) {
			m.err = ErrDisabled
			return m, nil
		}
		m.dragSource = m.cursor
		m.mode = modeDrag
	}
	return m, nil
}

// updateDrag moves the carried row live, the way a pointer drag reorders the
// container before the drop is reported.
func (m *Model) updateDrag(key tea.KeyMsg) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.host.Move(m.cursor, m.cursor-1)
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.host.Len()-1 {
			m.host.Move(m.cursor, m.cursor+1)
			m.cursor++
		}
	case "enter", " ", "space":
		target := m.cursor
		m.mode = modeBrowse
		if !m.coord.Drop(target) {
			m.host.Move(target, m.dragSource)
			m.cursor = m.dragSource
			return
		}
		if err := m.list.ReorderErr(); err != nil {
			m.host.Move(target, m.dragSource)
			m.cursor = m.dragSource
			m.err = err
		}
	case "esc":
		m.abortGesture()
	}
}

func (m *Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		if m.mode == modeEdit {
			m.list.CancelEdit()
		}
		m.stopInput()
		return m, nil
	case "enter":
		text := m.input.Value()
		current := m.mode
		m.stopInput()
		if strings.TrimSpace(text) == "" {
			if current == modeEdit {
				m.list.CancelEdit()
			}
			return m, nil
		}
		m.commitInput(current, ParseItem(text))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) commitInput(current mode, item any) {
	switch current {
	case modeAdd:
		if err := m.list.Add([]any{item}); err != nil {
			m.err = err
			return
		}
		m.cursor = m.list.Len() - 1
	case modeEdit:
		if err := m.list.UpdateCurrent(item); err != nil {
			m.err = err
		}
	}
}

func (m *Model) startInput(next mode, value string) {
	m.mode = next
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *Model) stopInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) abortGesture() {
	if m.mode != modeDrag {
		return
	}
	m.host.Move(m.cursor, m.dragSource)
	m.cursor = m.dragSource
	m.list.AbortReorder()
	m.mode = modeBrowse
}

func (m *Model) inputActive() bool {
	return m.mode == modeAdd || m.mode == modeEdit
}

func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Done reports whether the user left the editor.
func (m *Model) Done() bool { return m.done }

// Aborted reports whether the editor was left with ctrl+c.
func (m *Model) Aborted() bool { return m.aborted }

// Cursor returns the highlighted row.
func (m *Model) Cursor() int { return m.cursor }

// Err returns the last interaction error shown to the user.
func (m *Model) Err() error { return m.err }

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.host.Draw(m.styles, Frame{
		Cursor:   m.cursor,
		Dragging: m.mode == modeDrag,
		Prompt:   m.labels[locale.KeyPrompt],
	}))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(m.labels[locale.KeyAddTitle])
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("enter save • esc cancel"))
	case modeEdit:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.styles.Help.Render("enter save • esc cancel"))
	case modeDrag:
		b.WriteString(m.styles.Help.Render("↑/↓ move • enter drop • esc cancel"))
	default:
		if m.err != nil {
			b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Help.Render("↑/↓ select • a add • e edit • d remove • space move • q done"))
	}
	return b.String()
}
