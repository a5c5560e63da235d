package view

import "slices"

// Row is one rendered list row.
type Row struct {
	// Fragment is the adapter's rendering of the item, sanitised when a
	// sanitiser is configured.
	Fragment string
	// Markup is the fragment wrapped in row chrome (drag handle, remove
	// affordance). Hosts without chrome get Markup == Fragment.
	Markup string
}

// Host is the concrete row container a Renderer drives. Indices are always in
// range; the Renderer validates them against the sequence first.
type Host interface {
	Len() int
	Append(row Row)
	Replace(index int, row Row)
	Remove(index int)
	Move(from, to int)
	Clear()
	SetEmpty(empty bool)
	SetDisabled(disabled bool)
}

// MemoryHost is a Host backed by a slice. It is the reference host used by
// tests and by callers that only need the rendered rows.
type MemoryHost struct {
	rows     []Row
	empty    bool
	disabled bool
}

var _ Host = (*MemoryHost)(nil)

// NewMemoryHost returns an empty host marked empty.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{empty: true}
}

func (h *MemoryHost) Len() int { return len(h.rows) }

func (h *MemoryHost) Append(row Row) { h.rows = append(h.rows, row) }

func (h *MemoryHost) Replace(index int, row Row) {
	if index < 0 || index >= len(h.rows) {
		return
	}
	h.rows[index] = row
}

func (h *MemoryHost) Remove(index int) {
	if index < 0 || index >= len(h.rows) {
		return
	}
	h.rows = slices.Delete(h.rows, index, index+1)
}

func (h *MemoryHost) Move(from, to int) {
	h.rows = moveRow(h.rows, from, to)
}

func (h *MemoryHost) Clear() { h.rows = nil }

func (h *MemoryHost) SetEmpty(empty bool) { h.empty = empty }

func (h *MemoryHost) SetDisabled(disabled bool) { h.disabled = disabled }

// Rows returns a copy of the rendered rows.
func (h *MemoryHost) Rows() []Row { return slices.Clone(h.rows) }

// Fragments returns the rendered fragments in order.
func (h *MemoryHost) Fragments() []string {
	out := make([]string, len(h.rows))
	for idx, row := range h.rows {
		out[idx] = row.Fragment
	}
	return out
}

// Empty reports the empty-state marker.
func (h *MemoryHost) Empty() bool { return h.empty }

// Disabled reports the disabled marker.
func (h *MemoryHost) Disabled() bool { return h.disabled }

// MoveRows applies remove-then-reinsert to rows and returns the result. Out of
// range indices leave rows unchanged.
func MoveRows(rows []Row, from, to int) []Row {
	return moveRow(rows, from, to)
}

func moveRow[T any](rows []T, from, to int) []T {
	if from < 0 || from >= len(rows) || to < 0 || to >= len(rows) || from == to {
		return rows
	}
	row := rows[from]
	rows = slices.Delete(rows, from, from+1)
	return slices.Insert(rows, to, row)
}
