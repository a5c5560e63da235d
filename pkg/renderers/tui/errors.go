package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoItems is returned when an action needs an item and the list is
	// empty.
	ErrNoItems = errors.New("tui: list has no items")
	// ErrDisabled is returned when the list refuses an interaction.
	ErrDisabled = errors.New("tui: list is disabled")
)
