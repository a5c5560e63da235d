package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// JSONOption configures the JSON adapter.
type JSONOption func(*JSONAdapter)

// WithJSONIndent pretty prints processed values using indent.
func WithJSONIndent(indent string) JSONOption {
	return func(a *JSONAdapter) {
		a.indent = indent
	}
}

// WithJSONRender overrides how items are rendered.
func WithJSONRender(fn RenderFunc) JSONOption {
	return func(a *JSONAdapter) {
		if fn != nil {
			a.render = fn
		}
	}
}

// JSONAdapter stores the sequence as a JSON array. Numbers are decoded as
// json.Number so processing a parsed value reproduces the original digits.
type JSONAdapter struct {
	indent string
	render RenderFunc
}

var _ Adapter = (*JSONAdapter)(nil)

// JSON constructs the JSON adapter.
func JSON(options ...JSONOption) *JSONAdapter {
	a := &JSONAdapter{render: DefaultRender}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

func (a *JSONAdapter) Parse(raw string) ([]any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("adapter: decode json: %w", err)
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("adapter: decode json: trailing data after value")
	}

	switch v := decoded.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: json %T", ErrNotSequence, decoded)
	}
}

func (a *JSONAdapter) Process(items []any) (string, error) {
	if items == nil {
		items = []any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if a.indent != "" {
		enc.SetIndent("", a.indent)
	}
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("adapter: encode json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (a *JSONAdapter) Render(item any) (string, error) {
	if a.render == nil {
		return DefaultRender(item)
	}
	return a.render(item)
}
