// Package drag models the single pointer (or keyboard) gesture that reorders
// list rows. The reordering primitive itself lives behind Coordinator; this
// package only guarantees that at most one coordinator handle is active and
// that it is released on every exit path.
package drag

// Handle identifies an active coordinator binding.
type Handle any

// Coordinator wraps a reordering primitive bound to a list container. When a
// drag completes it calls onCommit with the row's new index.
type Coordinator interface {
	Activate(container any, onCommit func(newIndex int)) Handle
	Deactivate(handle Handle)
}

// Manual is a Coordinator driven by code: callers report the drop position
// with Drop. Terminal hosts and tests use it in place of a pointer library.
type Manual struct {
	active    *manualHandle
	nextID    int
	activated int
}

type manualHandle struct {
	id        int
	container any
	onCommit  func(int)
}

var _ Coordinator = (*Manual)(nil)

// NewManual returns an idle manual coordinator.
func NewManual() *Manual {
	return &Manual{}
}

// Activate binds the coordinator to container. A previous binding is dropped.
func (m *Manual) Activate(container any, onCommit func(newIndex int)) Handle {
	m.nextID++
	m.activated++
	m.active = &manualHandle{id: m.nextID, container: container, onCommit: onCommit}
	return m.active
}

// Deactivate releases handle if it is the active binding.
func (m *Manual) Deactivate(handle Handle) {
	h, ok := handle.(*manualHandle)
	if !ok || m.active == nil || h.id != m.active.id {
		return
	}
	m.active = nil
}

// Active reports whether a binding is currently active.
func (m *Manual) Active() bool {
	return m.active != nil
}

// Activations reports how many times Activate was called.
func (m *Manual) Activations() int {
	return m.activated
}

// Container returns the container of the active binding.
func (m *Manual) Container() any {
	if m.active == nil {
		return nil
	}
	return m.active.container
}

// Drop completes the active gesture at newIndex. It returns false when no
// gesture is active.
func (m *Manual) Drop(newIndex int) bool {
	if m.active == nil || m.active.onCommit == nil {
		return false
	}
	m.active.onCommit(newIndex)
	return true
}
