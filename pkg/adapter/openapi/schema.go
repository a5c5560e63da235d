package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ErrSchemaNotFound is returned when a document has no component with the
// requested name.
var ErrSchemaNotFound = errors.New("openapi: schema component not found")

// LoadComponent loads an OpenAPI document and returns the schema registered
// under components.schemas[name]. The document is validated with examples
// validation disabled.
func LoadComponent(ctx context.Context, raw []byte, name string) (*openapi3.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("openapi: component name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return ref.Value, nil
}

// ParseSchema decodes a standalone schema object in JSON form.
func ParseSchema(raw []byte) (*openapi3.Schema, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: schema payload is empty")
	}
	schema := openapi3.NewSchema()
	if err := json.Unmarshal(raw, schema); err != nil {
		return nil, fmt.Errorf("openapi: decode schema: %w", err)
	}
	return schema, nil
}
