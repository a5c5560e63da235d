package engine

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"

	"github.com/goliatone/go-itemlist/pkg/drag"
)

// MutationOption tunes a single mutation call.
type MutationOption func(*mutation)

type mutation struct {
	notify bool
}

// Silent suppresses the field write and the change notification for one
// mutation. The view is still reconciled.
func Silent() MutationOption {
	return func(m *mutation) {
		m.notify = false
	}
}

// Notify sets whether the mutation re-emits the field value and fires
// EventChange. Mutations notify by default.
func Notify(notify bool) MutationOption {
	return func(m *mutation) {
		m.notify = notify
	}
}

func mutationOptions(opts []MutationOption) mutation {
	m := mutation{notify: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Initialize replaces the sequence with the parse of raw. A parse error or a
// nil result yields an empty sequence.
func (l *List) Initialize(raw string, opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	items, err := l.adapter.Parse(raw)
	if err != nil {
		l.logger.Warn("raw value rejected by adapter, treating as empty", zap.Error(err))
		items = nil
	}
	return l.replace("initialize", items, opts)
}

// SetVal parses raw and replaces the sequence with the result, or clears the
// list when the adapter rejects the value.
func (l *List) SetVal(raw string, opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	items, err := l.adapter.Parse(raw)
	if err != nil || items == nil {
		if err != nil {
			l.logger.Warn("raw value rejected by adapter, clearing", zap.Error(err))
		}
		return l.Clear(opts...)
	}
	return l.SetAll(items, opts...)
}

// Val returns the processed value of the current sequence.
func (l *List) Val() (string, error) {
	if l.destroyed {
		return "", ErrDestroyed
	}
	raw, err := l.adapter.Process(l.Items())
	if err != nil {
		return "", fmt.Errorf("engine: process value: %w", err)
	}
	return raw, nil
}

// SetAll replaces the sequence with candidate when it is a slice or array.
// Any other value, nil included, yields an empty sequence.
func (l *List) SetAll(candidate any, opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	items, ok := asSequence(candidate)
	if !ok && candidate != nil {
		l.logger.Warn("candidate is not a sequence, using empty list", zap.String("type", fmt.Sprintf("%T", candidate)))
	}
	return l.replace("set", items, opts)
}

// Clear empties the sequence.
func (l *List) Clear(opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	return l.replace("clear", nil, opts)
}

// Add appends items in order.
func (l *List) Add(items []any, opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	from := len(l.items)
	next := append(slices.Clone(l.items), items...)
	return l.commit("add", next, Added(from), opts)
}

// AddKeyed appends the values of c in order, discarding keys.
func (l *List) AddKeyed(c Keyed, opts ...MutationOption) error {
	return l.Add(c.Values(), opts...)
}

// Remove deletes the item at index. Later items shift down by one. An index
// outside the sequence returns ErrIndexOutOfRange and changes nothing.
func (l *List) Remove(index int, opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	if err := l.checkIndex(index); err != nil {
		return err
	}
	next := slices.Delete(slices.Clone(l.items), index, index+1)
	return l.commit("remove", next, Removed(index), opts)
}

// Update replaces the item at index and re-renders its row. An index outside
// the sequence returns ErrIndexOutOfRange; the sequence is never extended.
func (l *List) Update(index int, item any, opts ...MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.editCursor = index
	defer func() { l.editCursor = -1 }()

	next := slices.Clone(l.items)
	next[index] = item
	return l.commit("update", next, Edited(index), opts)
}

// UpdateCurrent replaces the item targeted by the last RequestEdit.
func (l *List) UpdateCurrent(item any, opts ...MutationOption) error {
	index, ok := l.EditCursor()
	if !ok {
		return fmt.Errorf("%w: no edit in progress", ErrIndexOutOfRange)
	}
	return l.Update(index, item, opts...)
}

// Reorder removes the item at source and reinserts it at target. The view is
// moved to match.
func (l *List) Reorder(source, target int, opts ...MutationOption) error {
	return l.reorder(source, target, false, opts)
}

func (l *List) reorder(source, target int, viewSynced bool, opts []MutationOption) error {
	if err := l.guard(); err != nil {
		return err
	}
	if err := l.checkIndex(source); err != nil {
		return err
	}
	if err := l.checkIndex(target); err != nil {
		return err
	}
	next := slices.Clone(l.items)
	item := next[source]
	next = slices.Delete(next, source, source+1)
	next = slices.Insert(next, target, item)
	return l.commit("reorder", next, Moved(source, target, viewSynced), opts)
}

func (l *List) replace(op string, items []any, opts []MutationOption) error {
	next := slices.Clone(items)
	if next == nil {
		next = []any{}
	}
	return l.commit(op, next, Reset(), opts)
}

// commit installs next as the sequence. A notifying mutation processes next
// first; when the adapter rejects it the sequence, view and field are left
// as they were.
func (l *List) commit(op string, next []any, change Change, opts []MutationOption) error {
	m := mutationOptions(opts)

	var raw string
	if m.notify {
		var err error
		if raw, err = l.adapter.Process(slices.Clone(next)); err != nil {
			l.logger.Error("process value failed, mutation discarded", zap.String("op", op), zap.Stringer("change", change), zap.Error(err))
			return fmt.Errorf("engine: process value: %w", err)
		}
	}

	if shiftsIndices(change) && l.session.State() == drag.StateArmed {
		l.logger.Debug("aborting armed gesture", zap.String("op", op), zap.Int("source", l.session.Source()))
		l.session.Abort()
	}
	l.items = next

	var errs []error
	if err := l.view.Reconcile(change, l.items); err != nil {
		l.logger.Error("view reconcile failed", zap.String("op", op), zap.Stringer("change", change), zap.Error(err))
		errs = append(errs, fmt.Errorf("engine: %s: %w", op, err))
	}
	l.logger.Debug("list mutated",
		zap.String("op", op),
		zap.Stringer("change", change),
		zap.Int("len", len(l.items)),
		zap.Bool("notify", m.notify),
	)

	if m.notify {
		l.field.SetValue(raw)
		l.trigger(EventChange, l.Items(), l.name)
	}
	return errors.Join(errs...)
}

// shiftsIndices reports whether change can move the item an armed gesture
// captured. A synced move is the gesture's own commit.
func shiftsIndices(change Change) bool {
	switch change.Kind {
	case ChangeReset, ChangeRemoved:
		return true
	case ChangeMoved:
		return !change.ViewSynced
	default:
		return false
	}
}

func (l *List) guard() error {
	if l.destroyed {
		return ErrDestroyed
	}
	if l.notifying > 0 {
		return ErrReentrant
	}
	return nil
}

func (l *List) checkIndex(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(l.items))
	}
	return nil
}

func asSequence(candidate any) ([]any, bool) {
	switch v := candidate.(type) {
	case nil:
		return nil, false
	case []any:
		return v, true
	}

	rv := reflect.ValueOf(candidate)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, true
	}
	out := make([]any, rv.Len())
	for idx := range out {
		out[idx] = rv.Index(idx).Interface()
	}
	return out, true
}
