package drag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type move struct{ source, target int }

type recordingCoordinator struct {
	commits     []func(int)
	activated   int
	deactivated []Handle
}

func (c *recordingCoordinator) Activate(_ any, onCommit func(int)) Handle {
	c.activated++
	c.commits = append(c.commits, onCommit)
	return c.activated
}

func (c *recordingCoordinator) Deactivate(handle Handle) {
	c.deactivated = append(c.deactivated, handle)
}

func TestSession_ArmCommitRelease(t *testing.T) {
	coord := &recordingCoordinator{}
	var moves []move
	session := NewSession(coord, "container", func(source, target int) error {
		moves = append(moves, move{source, target})
		return nil
	})

	if session.State() != StateIdle {
		t.Fatalf("initial state %s", session.State())
	}
	session.Arm(2)
	if session.State() != StateArmed || session.Source() != 2 {
		t.Fatalf("state %s source %d", session.State(), session.Source())
	}

	coord.commits[0](0)
	if diff := cmp.Diff([]move{{2, 0}}, moves, cmp.AllowUnexported(move{})); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	if session.State() != StateIdle {
		t.Fatal("commit should release the gesture")
	}
	if diff := cmp.Diff([]Handle{1}, coord.deactivated); diff != "" {
		t.Fatalf("deactivated mismatch (-want +got):\n%s", diff)
	}

	coord.commits[0](1)
	if len(moves) != 1 {
		t.Fatal("a released handle must not commit again")
	}
}

func TestSession_RearmReleasesPrevious(t *testing.T) {
	coord := &recordingCoordinator{}
	var moves []move
	session := NewSession(coord, nil, func(source, target int) error {
		moves = append(moves, move{source, target})
		return nil
	})

	session.Arm(0)
	session.Arm(1)
	if diff := cmp.Diff([]Handle{1}, coord.deactivated); diff != "" {
		t.Fatalf("first handle should be deactivated (-want +got):\n%s", diff)
	}

	coord.commits[0](3)
	if len(moves) != 0 {
		t.Fatal("stale handle committed a move")
	}
	coord.commits[1](3)
	if diff := cmp.Diff([]move{{1, 3}}, moves, cmp.AllowUnexported(move{})); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_AbortAndRelease(t *testing.T) {
	coord := &recordingCoordinator{}
	called := false
	session := NewSession(coord, nil, func(int, int) error {
		called = true
		return nil
	})

	session.Abort()
	if len(coord.deactivated) != 0 {
		t.Fatal("abort while idle must not deactivate")
	}

	session.Arm(0)
	session.Abort()
	coord.commits[0](1)
	if called {
		t.Fatal("aborted gesture committed")
	}

	session.Release()
	session.Arm(0)
	if coord.activated != 1 {
		t.Fatal("released session must not activate again")
	}
}

func TestSession_KeepsMoveError(t *testing.T) {
	boom := errors.New("boom")
	manual := NewManual()
	session := NewSession(manual, nil, func(int, int) error { return boom })

	session.Arm(0)
	if !manual.Drop(1) {
		t.Fatal("drop refused")
	}
	if !errors.Is(session.Err(), boom) {
		t.Fatalf("expected boom, got %v", session.Err())
	}
	if manual.Active() {
		t.Fatal("manual coordinator should be released")
	}

	session.Arm(0)
	if session.Err() != nil {
		t.Fatal("arming clears the previous error")
	}
}

func TestManual(t *testing.T) {
	manual := NewManual()
	if manual.Drop(0) {
		t.Fatal("drop without activation")
	}

	var got []int
	first := manual.Activate("a", func(i int) { got = append(got, i) })
	manual.Activate("b", func(i int) { got = append(got, i*10) })
	manual.Deactivate(first)
	if !manual.Active() || manual.Container() != "b" {
		t.Fatal("stale deactivate dropped the current binding")
	}
	manual.Drop(2)
	if diff := cmp.Diff([]int{20}, got); diff != "" {
		t.Fatalf("commits mismatch (-want +got):\n%s", diff)
	}
	if manual.Activations() != 2 {
		t.Fatalf("activations = %d", manual.Activations())
	}

	var nilSession *Session
	nilSession.Arm(0)
	if nilSession.State() != StateIdle || nilSession.Source() != -1 {
		t.Fatal("nil session should be idle")
	}
}
