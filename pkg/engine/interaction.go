package engine

import "go.uber.org/zap"

// Interaction entry points are what a host wires to its affordances (add
// button, row click, remove link, drag handle). They are suppressed while the
// list is disabled or destroyed; the mutation methods are not.

// RequestAdd announces that the add affordance was used. The host is expected
// to collect the new item and call Add. Reports whether the request was
// accepted.
func (l *List) RequestAdd() bool {
	if !l.interactive() {
		return false
	}
	l.trigger(EventAdd)
	return true
}

// RequestEdit records index as the edit cursor and fires EventEdit with it.
// The host completes the interaction with UpdateCurrent or CancelEdit.
func (l *List) RequestEdit(index int) bool {
	if !l.interactive() || l.checkIndex(index) != nil {
		return false
	}
	l.editCursor = index
	l.trigger(EventEdit, index)
	return true
}

// CancelEdit drops the edit cursor without mutating.
func (l *List) CancelEdit() {
	l.editCursor = -1
}

// RequestRemove handles the remove affordance of the row at index.
func (l *List) RequestRemove(index int) (bool, error) {
	if !l.interactive() {
		return false, nil
	}
	if err := l.Remove(index); err != nil {
		return false, err
	}
	return true, nil
}

// ArmReorder engages the drag affordance of the row at source, activating the
// coordinator. Any previous gesture is released first.
func (l *List) ArmReorder(source int) bool {
	if !l.interactive() || l.checkIndex(source) != nil {
		return false
	}
	l.session.Arm(source)
	l.logger.Debug("reorder armed", zap.Int("source", source))
	return true
}

// AbortReorder leaves the drag affordance without a drop.
func (l *List) AbortReorder() {
	l.session.Abort()
}

// ReorderErr returns the error of the last gesture commit, if any.
func (l *List) ReorderErr() error {
	return l.session.Err()
}

func (l *List) interactive() bool {
	return !l.disabled && !l.destroyed && l.notifying == 0
}
