package openapi

import (
	"context"
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-itemlist/pkg/adapter"
)

const tagDocument = `{
  "openapi": "3.0.3",
  "info": {"title": "tags", "version": "1.0.0"},
  "paths": {},
  "components": {
    "schemas": {
      "Tag": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "weight": {"type": "integer", "minimum": 0}
        }
      }
    }
  }
}`

func tagAdapter(t *testing.T, opts ...Option) *Adapter {
	t.Helper()

	schema, err := LoadComponent(context.Background(), []byte(tagDocument), "Tag")
	if err != nil {
		t.Fatalf("load component: %v", err)
	}
	a, err := New(adapter.JSON(), schema, opts...)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	return a
}

func TestAdapter_ParseDropsInvalidItems(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	a := tagAdapter(t, WithLogger(zap.New(core)))

	items, err := a.Parse(`[{"name":"go","weight":2},{"weight":1},{"name":"cli"}]`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 valid items, got %d: %v", len(items), items)
	}
	if logs.FilterMessage("dropping invalid item").Len() != 1 {
		t.Fatalf("expected one warning, got %v", logs.All())
	}
}

func TestAdapter_StrictParseFails(t *testing.T) {
	a := tagAdapter(t, WithStrict(true))

	if _, err := a.Parse(`[{"name":"go"},{"name":""}]`); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestAdapter_ProcessRejectsInvalidItems(t *testing.T) {
	a := tagAdapter(t)

	raw, err := a.Process([]any{map[string]any{"name": "go"}})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if raw != `[{"name":"go"}]` {
		t.Fatalf("unexpected raw value %q", raw)
	}

	if _, err := a.Process([]any{map[string]any{"name": "go", "weight": -1}}); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestAdapter_LabelRender(t *testing.T) {
	a := tagAdapter(t, WithLabelProperty("title", "name"))

	got, err := a.Render(map[string]any{"name": "go", "weight": 3})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff("go", got); diff != "" {
		t.Fatalf("label mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSchema(t *testing.T) {
	schema, err := ParseSchema([]byte(`{"type":"string","maxLength":3}`))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	a, err := New(adapter.YAML(nil), schema)
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	items, err := a.Parse("- abc\n- toolong\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]any{"abc"}, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadComponent_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := LoadComponent(ctx, []byte(tagDocument), "Missing"); !errors.Is(err, ErrSchemaNotFound) {
		t.Fatalf("expected ErrSchemaNotFound, got %v", err)
	}
	if _, err := LoadComponent(ctx, nil, "Tag"); err == nil {
		t.Fatal("expected error for empty document")
	}
	if _, err := New(nil, openapiStringSchema(t)); err == nil {
		t.Fatal("expected error for nil base adapter")
	}
}

func openapiStringSchema(t *testing.T) *openapi3.Schema {
	t.Helper()
	schema, err := ParseSchema([]byte(`{"type":"string"}`))
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	return schema
}
