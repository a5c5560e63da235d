package drag

import "fmt"

// State is the position of the current gesture.
type State int

const (
	// StateIdle means no coordinator handle is active.
	StateIdle State = iota
	// StateArmed means a drag affordance is engaged and the coordinator is
	// waiting for a drop.
	StateArmed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MoveFunc applies a committed gesture.
type MoveFunc func(source, target int) error

// Session runs the Idle -> Armed -> (Committed | Idle) state machine for one
// list. It is not safe for concurrent use.
type Session struct {
	coordinator Coordinator
	container   any
	move        MoveFunc

	state      State
	source     int
	handle     Handle
	generation int
	err        error
}

// NewSession binds a session to a coordinator and the list container handle.
func NewSession(coordinator Coordinator, container any, move MoveFunc) *Session {
	return &Session{
		coordinator: coordinator,
		container:   container,
		move:        move,
	}
}

// Arm captures source and activates the coordinator. An already armed
// gesture is released first so handlers never stack up.
func (s *Session) Arm(source int) {
	if s == nil || s.coordinator == nil {
		return
	}
	s.release()

	s.generation++
	generation := s.generation
	s.source = source
	s.err = nil
	s.state = StateArmed
	s.handle = s.coordinator.Activate(s.container, func(newIndex int) {
		s.commit(generation, newIndex)
	})
}

// Abort leaves the affordance without a drop. No move is applied.
func (s *Session) Abort() {
	if s == nil {
		return
	}
	s.release()
}

// Release deactivates any active handle and detaches the coordinator. The
// session ignores further calls.
func (s *Session) Release() {
	if s == nil {
		return
	}
	s.release()
	s.coordinator = nil
	s.move = nil
}

// State returns the current gesture state.
func (s *Session) State() State {
	if s == nil {
		return StateIdle
	}
	return s.state
}

// Source returns the index captured by the last Arm.
func (s *Session) Source() int {
	if s == nil {
		return -1
	}
	return s.source
}

// Err returns the error produced by the last committed move, if any.
func (s *Session) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

func (s *Session) commit(generation, target int) {
	if s.state != StateArmed || generation != s.generation {
		return
	}
	if s.move != nil {
		s.err = s.move(s.source, target)
	}
	s.release()
}

func (s *Session) release() {
	if s.state != StateArmed {
		return
	}
	handle := s.handle
	s.handle = nil
	s.state = StateIdle
	if s.coordinator != nil {
		s.coordinator.Deactivate(handle)
	}
}
