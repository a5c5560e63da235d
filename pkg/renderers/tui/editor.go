package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-itemlist/pkg/drag"
	"github.com/goliatone/go-itemlist/pkg/engine"
	"github.com/goliatone/go-itemlist/pkg/locale"
)

// Actions offered by the prompt editor, in menu order.
const (
	ActionAdd    = "Add"
	ActionEdit   = "Edit"
	ActionRemove = "Remove"
	ActionMove   = "Move"
	ActionDone   = "Done"
)

var editorActions = []string{ActionAdd, ActionEdit, ActionRemove, ActionMove, ActionDone}

// PromptEditor edits a list with line prompts: pick an action, then the item
// it applies to. Moves go through the drag coordinator like a pointer drop.
type PromptEditor struct {
	list   *engine.List
	host   *Host
	coord  *drag.Manual
	driver PromptDriver
	labels locale.Strings
}

// NewPromptEditor builds a line-mode editor. Without WithPromptDriver it
// prompts through survey.
func NewPromptEditor(list *engine.List, host *Host, coord *drag.Manual, options ...EditorOption) (*PromptEditor, error) {
	switch {
	case list == nil:
		return nil, errors.New("tui: list is required")
	case host == nil:
		return nil, errors.New("tui: host is required")
	case coord == nil:
		return nil, errors.New("tui: coordinator is required")
	}
	e := &PromptEditor{
		list:   list,
		host:   host,
		coord:  coord,
		labels: locale.NewCatalog().Resolve(locale.DefaultLanguage, nil),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver()
	}
	return e, nil
}

// Run loops until Done is chosen or the driver fails. ErrAborted is returned
// when the user interrupts a prompt.
func (e *PromptEditor) Run(ctx context.Context) error {
	for {
		if err := e.show(ctx); err != nil {
			return err
		}
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      "Action",
			Options:      editorActions,
			DefaultIndex: 0,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(editorActions) || editorActions[idx] == ActionDone {
			return nil
		}
		if err := e.apply(ctx, editorActions[idx]); err != nil {
			if errors.Is(err, ErrAborted) || ctx.Err() != nil {
				return err
			}
			if infoErr := e.driver.Info(ctx, fmt.Sprintf("Error: %v", err)); infoErr != nil {
				return infoErr
			}
		}
	}
}

func (e *PromptEditor) show(ctx context.Context) error {
	if e.host.Empty() || e.host.Len() == 0 {
		return e.driver.Info(ctx, e.labels[locale.KeyPrompt])
	}
	return e.driver.Info(ctx, e.host.Draw(PlainStyles(), Frame{Cursor: -1}))
}

func (e *PromptEditor) apply(ctx context.Context, action string) error {
	switch action {
	case ActionAdd:
		if !e.list.RequestAdd() {
			return ErrDisabled
		}
		text, err := e.driver.Input(ctx, InputConfig{Message: e.labels[locale.KeyAddTitle]})
		if err != nil {
			return err
		}
		return e.list.Add([]any{ParseItem(text)})

	case ActionEdit:
		index, err := e.pickItem(ctx, "Edit which item?")
		if err != nil {
			return err
		}
		if !e.list.RequestEdit(index) {
			return ErrDisabled
		}
		text, err := e.driver.Input(ctx, InputConfig{
			Message: "Value",
			Default: FormatItem(e.list.Items()[index]),
		})
		if err != nil {
			e.list.CancelEdit()
			return err
		}
		return e.list.UpdateCurrent(ParseItem(text))

	case ActionRemove:
		index, err := e.pickItem(ctx, "Remove which item?")
		if err != nil {
			return err
		}
		confirmed, err := e.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Remove %q?", e.host.Lines()[index]),
			Default: true,
		})
		if err != nil || !confirmed {
			return err
		}
		removed, err := e.list.RequestRemove(index)
		if err != nil {
			return err
		}
		if !removed {
			return ErrDisabled
		}
		return nil

	case ActionMove:
		source, err := e.pickItem(ctx, "Move which item?")
		if err != nil {
			return err
		}
		if !e.list.ArmReorder(source) {
			return ErrDisabled
		}
		target, err := e.pickItem(ctx, "Move to position")
		if err != nil {
			e.list.AbortReorder()
			return err
		}
		e.host.Move(source, target)
		e.coord.Drop(target)
		if err := e.list.ReorderErr(); err != nil {
			e.host.Move(target, source)
			return err
		}
		return nil
	}
	return fmt.Errorf("tui: unknown action %q", action)
}

func (e *PromptEditor) pickItem(ctx context.Context, message string) (int, error) {
	lines := e.host.Lines()
	if len(lines) == 0 {
		return -1, ErrNoItems
	}
	options := make([]string, len(lines))
	for idx, line := range lines {
		options[idx] = fmt.Sprintf("%d. %s", idx+1, line)
	}
	idx, err := e.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return -1, err
	}
	if idx < 0 || idx >= len(options) {
		return -1, fmt.Errorf("tui: no item selected")
	}
	return idx, nil
}
