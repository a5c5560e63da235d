package openapi

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"

	"github.com/goliatone/go-itemlist/pkg/adapter"
)

// ErrInvalidItem wraps schema violations.
var ErrInvalidItem = errors.New("openapi: item does not match schema")

// Option configures a validating adapter.
type Option func(*Adapter)

// WithLabelProperty renders objects by the first non-empty property among
// keys.
func WithLabelProperty(keys ...string) Option {
	return func(a *Adapter) {
		if len(keys) > 0 {
			a.render = adapter.LabelRender(keys...)
		}
	}
}

// WithStrict makes Parse fail on the first invalid item instead of dropping
// it. A failed parse yields an empty list in the engine.
func WithStrict(strict bool) Option {
	return func(a *Adapter) {
		a.strict = strict
	}
}

// WithLogger reports dropped items. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Adapter validates every item against schema around a base adapter that
// owns the wire format.
type Adapter struct {
	base   adapter.Adapter
	schema *openapi3.Schema
	render adapter.RenderFunc
	strict bool
	logger *zap.Logger
}

var _ adapter.Adapter = (*Adapter)(nil)

// New wraps base with item validation.
func New(base adapter.Adapter, schema *openapi3.Schema, options ...Option) (*Adapter, error) {
	if base == nil {
		return nil, errors.New("openapi: base adapter is required")
	}
	if schema == nil {
		return nil, errors.New("openapi: item schema is required")
	}
	a := &Adapter{
		base:   base,
		schema: schema,
		render: base.Render,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a, nil
}

// Schema returns the item schema.
func (a *Adapter) Schema() *openapi3.Schema { return a.schema }

// Validate checks a single item.
func (a *Adapter) Validate(item any) error {
	value, err := normalize(item)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	if err := a.schema.VisitJSON(value); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	return nil
}

// Parse decodes raw with the base adapter and keeps the items that match the
// schema.
func (a *Adapter) Parse(raw string) ([]any, error) {
	items, err := a.base.Parse(raw)
	if err != nil || items == nil {
		return items, err
	}

	valid := make([]any, 0, len(items))
	for idx, item := range items {
		if err := a.Validate(item); err != nil {
			if a.strict {
				return nil, fmt.Errorf("openapi: item %d: %w", idx, err)
			}
			a.logger.Warn("dropping invalid item", zap.Int("index", idx), zap.Error(err))
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}

// Process refuses to encode a sequence holding an invalid item, so the field
// never receives a value the schema rejects.
func (a *Adapter) Process(items []any) (string, error) {
	for idx, item := range items {
		if err := a.Validate(item); err != nil {
			return "", fmt.Errorf("openapi: item %d: %w", idx, err)
		}
	}
	return a.base.Process(items)
}

func (a *Adapter) Render(item any) (string, error) {
	return a.render(item)
}

// normalize converts item to the plain JSON value tree the validator walks.
func normalize(item any) (any, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
