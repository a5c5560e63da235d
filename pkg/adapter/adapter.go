package adapter

import (
	"errors"
	"fmt"
)

// Adapter converts between the raw field value and the ordered item sequence
// and renders single items for display. Implementations must be pure: the
// list engine calls them synchronously during every mutation.
//
// Parse returning a nil slice or an error means "no items".
type Adapter interface {
	Parse(raw string) ([]any, error)
	Process(items []any) (string, error)
	Render(item any) (string, error)
}

// ErrNotSequence is returned by Parse when the raw value decodes to something
// other than an ordered sequence.
var ErrNotSequence = errors.New("adapter: value is not a sequence")

// ParseFunc decodes a raw field value.
type ParseFunc func(raw string) ([]any, error)

// ProcessFunc encodes the item sequence.
type ProcessFunc func(items []any) (string, error)

// RenderFunc renders one item as a display fragment.
type RenderFunc func(item any) (string, error)

// Funcs adapts plain functions to the Adapter interface. A nil Render falls
// back to DefaultRender.
type Funcs struct {
	ParseFn   ParseFunc
	ProcessFn ProcessFunc
	RenderFn  RenderFunc
}

var _ Adapter = Funcs{}

// Validate reports whether both codec functions are present.
func (f Funcs) Validate() error {
	if f.ParseFn == nil {
		return fmt.Errorf("adapter: parse function is required")
	}
	if f.ProcessFn == nil {
		return fmt.Errorf("adapter: process function is required")
	}
	return nil
}

func (f Funcs) Parse(raw string) ([]any, error) {
	if f.ParseFn == nil {
		return nil, fmt.Errorf("adapter: parse function is required")
	}
	return f.ParseFn(raw)
}

func (f Funcs) Process(items []any) (string, error) {
	if f.ProcessFn == nil {
		return "", fmt.Errorf("adapter: process function is required")
	}
	return f.ProcessFn(items)
}

func (f Funcs) Render(item any) (string, error) {
	if f.RenderFn == nil {
		return DefaultRender(item)
	}
	return f.RenderFn(item)
}

// WithRender returns a copy of base whose Render is replaced by fn.
func WithRender(base Adapter, fn RenderFunc) Adapter {
	if base == nil || fn == nil {
		return base
	}
	return Funcs{
		ParseFn:   base.Parse,
		ProcessFn: base.Process,
		RenderFn:  fn,
	}
}
