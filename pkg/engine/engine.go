package engine

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/goliatone/go-itemlist/pkg/adapter"
	"github.com/goliatone/go-itemlist/pkg/drag"
)

// View reconciles the rendered rows with the sequence. Reconcile is called
// synchronously by every mutation with the single change it performed;
// implementations must leave Rows() equal to len(items) once it returns.
type View interface {
	Reconcile(change Change, items []any) error
	Rows() int
	SetDisabled(disabled bool)
}

// Option configures a List before construction.
type Option func(*config)

type config struct {
	adapter     adapter.Adapter
	view        View
	coordinator drag.Coordinator
	container   any
	listeners   Listeners
	bus         *Bus
	logger      *zap.Logger
	namespace   string
	name        string
	disabled    bool
}

// WithAdapter sets the serialization adapter. Required.
func WithAdapter(a adapter.Adapter) Option {
	return func(cfg *config) {
		cfg.adapter = a
	}
}

// WithView sets the view the list reconciles after each mutation. Required.
func WithView(v View) Option {
	return func(cfg *config) {
		cfg.view = v
	}
}

// WithCoordinator sets the drag coordinator and the container handle it is
// activated against. Required.
func WithCoordinator(c drag.Coordinator, container any) Option {
	return func(cfg *config) {
		cfg.coordinator = c
		cfg.container = container
	}
}

// WithListeners sets the typed callback hooks.
func WithListeners(l Listeners) Option {
	return func(cfg *config) {
		cfg.listeners = l
	}
}

// WithBus publishes notifications on a caller-owned bus.
func WithBus(bus *Bus) Option {
	return func(cfg *config) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithNamespace overrides the notification namespace.
func WithNamespace(namespace string) Option {
	return func(cfg *config) {
		if namespace != "" {
			cfg.namespace = namespace
		}
	}
}

// WithName sets the field name carried by change notifications.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithDisabled constructs the list in the disabled state.
func WithDisabled(disabled bool) Option {
	return func(cfg *config) {
		cfg.disabled = disabled
	}
}

// List is the list state engine: the single owner of the ordered item
// sequence bound to a field. A List is not safe for concurrent use; every
// method runs to completion, view reconciliation included, before returning.
type List struct {
	field       Field
	adapter     adapter.Adapter
	view        View
	coordinator drag.Coordinator
	session     *drag.Session
	listeners   Listeners
	bus         *Bus
	logger      *zap.Logger
	namespace   string
	name        string

	items      []any
	editCursor int
	disabled   bool
	destroyed  bool
	notifying  int
}

// validator is implemented by adapters that can report missing codec
// functions before first use.
type validator interface {
	Validate() error
}

// New builds a list bound to field. The field's current value is parsed into
// the initial sequence, the view is rebuilt without notifying and EventInit
// fires once construction succeeds.
func New(field Field, options ...Option) (*List, error) {
	cfg := config{
		namespace: DefaultNamespace,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	switch {
	case field == nil:
		return nil, ErrMissingField
	case cfg.adapter == nil:
		return nil, ErrMissingAdapter
	case cfg.view == nil:
		return nil, ErrMissingView
	case cfg.coordinator == nil:
		return nil, ErrMissingCoordinator
	}
	if v, ok := cfg.adapter.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMissingAdapter, err)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	l := &List{
		field:       field,
		adapter:     cfg.adapter,
		view:        cfg.view,
		coordinator: cfg.coordinator,
		listeners:   cfg.listeners,
		bus:         cfg.bus,
		logger:      cfg.logger.With(zap.String("list", cfg.name)),
		namespace:   cfg.namespace,
		name:        cfg.name,
		items:       []any{},
		editCursor:  -1,
	}
	l.session = drag.NewSession(cfg.coordinator, cfg.container, func(source, target int) error {
		return l.reorder(source, target, true, nil)
	})

	if err := l.Initialize(field.Value(), Silent()); err != nil {
		return nil, fmt.Errorf("engine: initialise: %w", err)
	}
	if cfg.disabled {
		l.Disable()
	}

	l.trigger(EventInit)
	return l, nil
}

// Items returns a copy of the current sequence.
func (l *List) Items() []any {
	return slices.Clone(l.items)
}

// Len returns the sequence length.
func (l *List) Len() int {
	return len(l.items)
}

// Rows returns the number of rows the view currently renders.
func (l *List) Rows() int {
	if l.view == nil {
		return 0
	}
	return l.view.Rows()
}

// Namespace returns the notification namespace.
func (l *List) Namespace() string { return l.namespace }

// Name returns the configured field name.
func (l *List) Name() string { return l.name }

// Enabled reports whether interactive affordances are active.
func (l *List) Enabled() bool { return !l.disabled }

// Destroyed reports whether Destroy has run.
func (l *List) Destroyed() bool { return l.destroyed }

// EditCursor returns the index targeted by the interaction in progress.
func (l *List) EditCursor() (int, bool) {
	if l.editCursor < 0 {
		return -1, false
	}
	return l.editCursor, true
}

// DragState returns the state of the reorder gesture.
func (l *List) DragState() drag.State {
	return l.session.State()
}

// Enable turns interactive affordances back on.
func (l *List) Enable() {
	l.disabled = false
	if l.view != nil {
		l.view.SetDisabled(false)
	}
}

// Disable suppresses interactive affordances. Mutations stay callable; an
// armed drag gesture is aborted.
func (l *List) Disable() {
	l.disabled = true
	l.session.Abort()
	if l.view != nil {
		l.view.SetDisabled(true)
	}
}

// Destroy releases the drag coordinator and adapter and fires EventDestroy.
// Later mutations return ErrDestroyed.
func (l *List) Destroy() {
	if l.destroyed {
		return
	}
	l.session.Release()
	l.trigger(EventDestroy)

	l.destroyed = true
	l.adapter = nil
	l.coordinator = nil
	l.editCursor = -1
	l.logger.Debug("list destroyed", zap.Int("len", len(l.items)))
}

func (l *List) trigger(event Event, args ...any) {
	n := Notification{
		Event: event,
		Topic: event.Topic(l.namespace),
		List:  l,
		Args:  args,
	}

	l.notifying++
	defer func() { l.notifying-- }()

	l.bus.Publish(n)
	l.listeners.call(n)
}
