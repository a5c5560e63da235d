package engine

import "fmt"

// ChangeKind tags the single structural change a mutation performed.
type ChangeKind int

const (
	// ChangeReset means the sequence was replaced and the view must be rebuilt
	// from empty.
	ChangeReset ChangeKind = iota
	// ChangeAdded means items were appended starting at Change.Index.
	ChangeAdded
	// ChangeEdited means the item at Change.Index was replaced.
	ChangeEdited
	// ChangeRemoved means the item at Change.Index was removed.
	ChangeRemoved
	// ChangeMoved means the item at Change.Index moved to Change.Target.
	ChangeMoved
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeReset:
		return "reset"
	case ChangeAdded:
		return "added"
	case ChangeEdited:
		return "edited"
	case ChangeRemoved:
		return "removed"
	case ChangeMoved:
		return "moved"
	default:
		return fmt.Sprintf("change(%d)", int(k))
	}
}

// Change is the pending structural change handed to the View after a
// mutation. Exactly one is produced per mutation and it is applied before the
// mutation returns.
type Change struct {
	Kind ChangeKind
	// Index is the first appended index (Added), the edited or removed index,
	// or the source index of a move.
	Index int
	// Target is the destination index of a move.
	Target int
	// ViewSynced reports that the host already reflects a move, as happens
	// when a drag gesture moved the row before committing.
	ViewSynced bool
}

// Reset builds a ChangeReset.
func Reset() Change { return Change{Kind: ChangeReset} }

// Added builds a ChangeAdded whose first new row is from.
func Added(from int) Change { return Change{Kind: ChangeAdded, Index: from} }

// Edited builds a ChangeEdited for index.
func Edited(index int) Change { return Change{Kind: ChangeEdited, Index: index} }

// Removed builds a ChangeRemoved for index.
func Removed(index int) Change { return Change{Kind: ChangeRemoved, Index: index} }

// Moved builds a ChangeMoved.
func Moved(from, to int, viewSynced bool) Change {
	return Change{Kind: ChangeMoved, Index: from, Target: to, ViewSynced: viewSynced}
}

func (c Change) String() string {
	switch c.Kind {
	case ChangeReset:
		return "reset"
	case ChangeMoved:
		return fmt.Sprintf("moved(%d->%d)", c.Index, c.Target)
	default:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	}
}
