package view

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-itemlist/pkg/adapter"
	"github.com/goliatone/go-itemlist/pkg/engine"
)

// ErrViewOutOfSync is logged when a host's row count disagrees with the
// sequence after a change was applied. The renderer rebuilds the host when it
// happens.
var ErrViewOutOfSync = errors.New("view: rendered rows out of sync with sequence")

// Chrome wraps a rendered fragment in row markup.
type Chrome func(fragment string) (string, error)

// Option configures a Renderer.
type Option func(*Renderer)

// WithChrome sets the row wrapper.
func WithChrome(chrome Chrome) Option {
	return func(r *Renderer) {
		if chrome != nil {
			r.chrome = chrome
		}
	}
}

// WithSanitizer cleans each fragment before chrome is applied.
func WithSanitizer(s Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Renderer is the view side of the list engine. It receives the tagged change
// from each mutation and applies that structural change to its Host, using
// the adapter's render function for every row it creates or replaces.
type Renderer struct {
	host      Host
	render    adapter.RenderFunc
	chrome    Chrome
	sanitizer Sanitizer
	logger    *zap.Logger
}

var _ engine.View = (*Renderer)(nil)

// New builds a renderer over host. render is usually Adapter.Render.
func New(host Host, render adapter.RenderFunc, options ...Option) (*Renderer, error) {
	if host == nil {
		return nil, fmt.Errorf("view: host is required")
	}
	if render == nil {
		return nil, fmt.Errorf("view: render function is required")
	}
	r := &Renderer{
		host:   host,
		render: render,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Host returns the host the renderer drives.
func (r *Renderer) Host() Host { return r.host }

// Rows returns the rendered row count.
func (r *Renderer) Rows() int { return r.host.Len() }

// SetDisabled forwards the disabled marker to the host.
func (r *Renderer) SetDisabled(disabled bool) { r.host.SetDisabled(disabled) }

// Reconcile applies change to the host. Rows that fail to render are still
// created with an empty fragment so the row count keeps matching the
// sequence; the render errors are returned joined.
func (r *Renderer) Reconcile(change engine.Change, items []any) error {
	var err error
	switch change.Kind {
	case engine.ChangeReset:
		err = r.rebuild(items)
	case engine.ChangeAdded:
		if r.host.Len() != change.Index {
			return r.resync(change, items)
		}
		err = r.appendFrom(change.Index, items)
		r.host.SetEmpty(len(items) == 0)
	case engine.ChangeEdited:
		if change.Index < 0 || change.Index >= len(items) || r.host.Len() != len(items) {
			return r.resync(change, items)
		}
		var row Row
		row, err = r.row(change.Index, items[change.Index])
		r.host.Replace(change.Index, row)
	case engine.ChangeRemoved:
		if change.Index < 0 || change.Index >= r.host.Len() {
			return r.resync(change, items)
		}
		r.host.Remove(change.Index)
		if len(items) == 0 {
			r.host.SetEmpty(true)
		}
	case engine.ChangeMoved:
		if !change.ViewSynced {
			r.host.Move(change.Index, change.Target)
		}
	default:
		return fmt.Errorf("view: unknown change %s", change)
	}

	if r.host.Len() != len(items) {
		return errors.Join(err, r.resync(change, items))
	}
	return err
}

func (r *Renderer) rebuild(items []any) error {
	r.host.Clear()
	err := r.appendFrom(0, items)
	r.host.SetEmpty(len(items) == 0)
	return err
}

func (r *Renderer) resync(change engine.Change, items []any) error {
	r.logger.Warn("rebuilding view",
		zap.Error(ErrViewOutOfSync),
		zap.Stringer("change", change),
		zap.Int("rows", r.host.Len()),
		zap.Int("len", len(items)),
	)
	return r.rebuild(items)
}

func (r *Renderer) appendFrom(from int, items []any) error {
	var errs []error
	for idx := from; idx < len(items); idx++ {
		row, err := r.row(idx, items[idx])
		if err != nil {
			errs = append(errs, err)
		}
		r.host.Append(row)
	}
	return errors.Join(errs...)
}

func (r *Renderer) row(index int, item any) (Row, error) {
	fragment, err := r.render(item)
	if err != nil {
		r.logger.Error("render item failed", zap.Int("index", index), zap.Error(err))
		return Row{}, fmt.Errorf("view: render row %d: %w", index, err)
	}
	if r.sanitizer != nil {
		fragment = r.sanitizer.Sanitize(fragment)
	}

	markup := fragment
	if r.chrome != nil {
		markup, err = r.chrome(fragment)
		if err != nil {
			return Row{Fragment: fragment}, fmt.Errorf("view: wrap row %d: %w", index, err)
		}
	}
	return Row{Fragment: fragment, Markup: markup}, nil
}
