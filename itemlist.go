package itemlist

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-itemlist/pkg/adapter"
	"github.com/goliatone/go-itemlist/pkg/config"
	"github.com/goliatone/go-itemlist/pkg/drag"
	"github.com/goliatone/go-itemlist/pkg/engine"
	"github.com/goliatone/go-itemlist/pkg/locale"
	"github.com/goliatone/go-itemlist/pkg/renderers/tui"
	"github.com/goliatone/go-itemlist/pkg/view"
	"github.com/goliatone/go-itemlist/pkg/view/html"
)

// List is the list state engine.
type List = engine.List

// Listeners are the typed hooks fixed at construction.
type Listeners = engine.Listeners

// Config is the widget configuration document.
type Config = config.Config

// Option configures the constructors of this package.
type Option func(*options)

type options struct {
	config    config.Config
	registry  *adapter.Registry
	adapter   adapter.Adapter
	listeners engine.Listeners
	bus       *engine.Bus
	logger    *zap.Logger
	selector  theme.ThemeSelector
}

// WithConfig applies a configuration document. Defaults to config.Default.
func WithConfig(cfg config.Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithRegistry resolves the configured format from registry instead of the
// built-in formats.
func WithRegistry(registry *adapter.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithAdapter bypasses format resolution and uses a directly.
func WithAdapter(a adapter.Adapter) Option {
	return func(o *options) {
		o.adapter = a
	}
}

// WithListeners sets the typed hooks.
func WithListeners(l engine.Listeners) Option {
	return func(o *options) {
		o.listeners = l
	}
}

// WithBus publishes notifications on bus.
func WithBus(bus *engine.Bus) Option {
	return func(o *options) {
		o.bus = bus
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithThemeSelector resolves the configured theme and variant for HTML
// widgets.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *options) {
		o.selector = selector
	}
}

func collect(opts []Option) options {
	o := options{
		config: config.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}
	return o
}

func (o options) resolveAdapter(ctx context.Context) (adapter.Adapter, error) {
	if o.adapter != nil {
		return o.adapter, nil
	}
	return o.config.Adapter(ctx, o.registry, o.logger)
}

func (o options) engineOptions(a adapter.Adapter, v engine.View, coord drag.Coordinator, container any) []engine.Option {
	return append(o.config.EngineOptions(),
		engine.WithAdapter(a),
		engine.WithView(v),
		engine.WithCoordinator(coord, container),
		engine.WithListeners(o.listeners),
		engine.WithBus(o.bus),
		engine.WithLogger(o.logger),
	)
}

// New wires a list bound to field that renders into host and reorders
// through coord.
func New(ctx context.Context, field engine.Field, host view.Host, coord drag.Coordinator, opts ...Option) (*List, error) {
	if host == nil {
		return nil, errors.New("itemlist: host is required")
	}
	o := collect(opts)
	a, err := o.resolveAdapter(ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := view.New(host, a.Render, view.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return engine.New(field, o.engineOptions(a, renderer, coord, host)...)
}

// HTMLWidget pairs a list with the HTML widget it renders into. The widget is
// also the list's field.
type HTMLWidget struct {
	List        *List
	Widget      *html.Widget
	Coordinator *drag.Manual
}

// NewHTML builds a list over an HTML widget seeded with raw. Fragments are
// sanitized and wrapped in row chrome; labels, namespace, field name and
// sortable id come from the configuration.
func NewHTML(ctx context.Context, raw string, opts ...Option) (*HTMLWidget, error) {
	o := collect(opts)
	cfg := o.config

	widgetOpts := []html.Option{
		html.WithNamespace(cfg.Namespace),
		html.WithSortableID(cfg.SortableID),
		html.WithName(cfg.Name),
		html.WithValue(raw),
		html.WithStrings(cfg.Labels()),
	}
	if o.selector != nil && cfg.Theme != "" {
		selection, err := o.selector.Select(cfg.Theme, cfg.Variant)
		if err != nil {
			return nil, fmt.Errorf("itemlist: select theme: %w", err)
		}
		widgetOpts = append(widgetOpts, html.WithTheme(html.RendererConfig(selection, html.DefaultPartials())))
	}
	widget, err := html.New(widgetOpts...)
	if err != nil {
		return nil, err
	}

	a, err := o.resolveAdapter(ctx)
	if err != nil {
		return nil, err
	}
	renderer, err := view.New(widget, a.Render,
		view.WithChrome(widget.Chrome()),
		view.WithSanitizer(view.HTMLSanitizer()),
		view.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}

	coord := drag.NewManual()
	list, err := engine.New(widget, o.engineOptions(a, renderer, coord, widget)...)
	if err != nil {
		return nil, err
	}
	return &HTMLWidget{List: list, Widget: widget, Coordinator: coord}, nil
}

// Terminal pairs a list with a terminal host and its keyboard coordinator.
type Terminal struct {
	List        *List
	Field       *engine.StringField
	Host        *tui.Host
	Coordinator *drag.Manual

	labels locale.Strings
}

// NewTerminal builds a list seeded with raw for the terminal editors.
func NewTerminal(ctx context.Context, raw string, opts ...Option) (*Terminal, error) {
	field := engine.NewStringField(raw)
	host := tui.NewHost()
	coord := drag.NewManual()
	list, err := New(ctx, field, host, coord, opts...)
	if err != nil {
		return nil, err
	}
	return &Terminal{
		List:        list,
		Field:       field,
		Host:        host,
		Coordinator: coord,
		labels:      collect(opts).config.Labels(),
	}, nil
}

// Model returns a bubbletea model editing the list.
func (t *Terminal) Model(opts ...tui.Option) (*tui.Model, error) {
	return tui.NewModel(t.List, t.Host, t.Coordinator, append([]tui.Option{tui.WithLabels(t.labels)}, opts...)...)
}

// PromptEditor returns a line-mode editor for the list.
func (t *Terminal) PromptEditor(opts ...tui.EditorOption) (*tui.PromptEditor, error) {
	return tui.NewPromptEditor(t.List, t.Host, t.Coordinator, append([]tui.EditorOption{tui.WithEditorLabels(t.labels)}, opts...)...)
}
