package adapter

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		adapter Adapter
		raw     string
	}{
		{name: "json scalars", adapter: JSON(), raw: `["a",1.50,true,null]`},
		{name: "json objects", adapter: JSON(), raw: `[{"k":"v"},["nested"]]`},
		{name: "json empty", adapter: JSON(), raw: `[]`},
		{name: "json indent", adapter: JSON(WithJSONIndent("  ")), raw: "[\n  \"a\",\n  \"b\"\n]"},
		{name: "yaml", adapter: YAML(nil), raw: "- a\n- 2\n- k: v"},
		{name: "yaml empty", adapter: YAML(nil), raw: "[]"},
		{name: "hcl", adapter: HCL(nil), raw: `["a", "b"]`},
		{name: "hcl empty", adapter: HCL(nil), raw: `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := tt.adapter.Parse(tt.raw)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got, err := tt.adapter.Process(items)
			if err != nil {
				t.Fatalf("process: %v", err)
			}
			if diff := cmp.Diff(tt.raw, got); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_NoItems(t *testing.T) {
	for name, a := range map[string]Adapter{"json": JSON(), "yaml": YAML(nil), "hcl": HCL(nil)} {
		for _, raw := range []string{"", "   ", "null"} {
			items, err := a.Parse(raw)
			if err != nil {
				t.Fatalf("%s %q: %v", name, raw, err)
			}
			if items != nil {
				t.Fatalf("%s %q: expected no items, got %v", name, raw, items)
			}
		}
	}
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		adapter Adapter
		raw     string
		want    error
	}{
		{name: "json object", adapter: JSON(), raw: `{"a":1}`, want: ErrNotSequence},
		{name: "json scalar", adapter: JSON(), raw: `42`, want: ErrNotSequence},
		{name: "yaml mapping", adapter: YAML(nil), raw: "a: 1", want: ErrNotSequence},
		{name: "hcl string", adapter: HCL(nil), raw: `"a"`, want: ErrNotSequence},
		{name: "json trailing", adapter: JSON(), raw: `[1] [2]`},
		{name: "json syntax", adapter: JSON(), raw: `[1,`},
		{name: "yaml syntax", adapter: YAML(nil), raw: "- [a"},
		{name: "hcl variables", adapter: HCL(nil), raw: `[var.x]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.adapter.Parse(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestHCL_ObjectsSurviveRoundTrip(t *testing.T) {
	a := HCL(nil)
	items, err := a.Parse(`["a", { name = "b", size = 3 }]`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []any{"a", map[string]any{"name": "b", "size": json.Number("3")}}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	raw, err := a.Process(items)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	again, err := a.Parse(raw)
	if err != nil {
		t.Fatalf("parse processed value %q: %v", raw, err)
	}
	if diff := cmp.Diff(items, again); diff != "" {
		t.Fatalf("second parse mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_JSONKeepsMarkup(t *testing.T) {
	raw, err := JSON().Process([]any{"<b>&</b>"})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if raw != `["<b>&</b>"]` {
		t.Fatalf("unexpected escaping %q", raw)
	}
	if raw, _ := JSON().Process(nil); raw != "[]" {
		t.Fatalf("nil items = %q", raw)
	}
}

func TestDefaultRender(t *testing.T) {
	tests := []struct {
		item any
		want string
	}{
		{item: nil, want: ""},
		{item: "plain", want: "plain"},
		{item: json.Number("1.50"), want: "1.50"},
		{item: 7, want: "7"},
		{item: true, want: "true"},
		{item: map[string]any{"b": "x", "a": 1}, want: "a: 1, b: x"},
		{item: []any{"a", 1}, want: `["a",1]`},
	}
	for _, tt := range tests {
		got, err := DefaultRender(tt.item)
		if err != nil {
			t.Fatalf("render %v: %v", tt.item, err)
		}
		if got != tt.want {
			t.Fatalf("render %v = %q, want %q", tt.item, got, tt.want)
		}
	}
}

func TestLabelRender(t *testing.T) {
	render := LabelRender("name", "title")

	got, err := render(map[string]any{"title": "T", "name": "N"})
	if err != nil || got != "N" {
		t.Fatalf("label = %q %v", got, err)
	}
	got, _ = render(map[string]any{"title": "T", "name": "  "})
	if got != "T" {
		t.Fatalf("blank label should fall through, got %q", got)
	}
	got, _ = render(map[string]any{"other": "x"})
	if got != "other: x" {
		t.Fatalf("fallback = %q", got)
	}
	got, _ = render("scalar")
	if got != "scalar" {
		t.Fatalf("scalar = %q", got)
	}
}

func TestWithRenderAndFuncs(t *testing.T) {
	shout := WithRender(JSON(), func(item any) (string, error) {
		s, _ := DefaultRender(item)
		return strings.ToUpper(s), nil
	})
	items, err := shout.Parse(`["go"]`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, _ := shout.Render(items[0]); got != "GO" {
		t.Fatalf("render = %q", got)
	}

	empty := Funcs{}
	if err := empty.Validate(); err == nil {
		t.Fatal("expected validate error")
	}
	if _, err := empty.Parse("x"); err == nil {
		t.Fatal("expected parse error")
	}
	if got, _ := empty.Render("x"); got != "x" {
		t.Fatalf("default render = %q", got)
	}
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	if diff := cmp.Diff([]string{FormatHCL, FormatJSON, FormatYAML}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	a, err := registry.New(" YAML ", LabelRender("name"))
	if err != nil {
		t.Fatalf("new yaml: %v", err)
	}
	if got, _ := a.Render(map[string]any{"name": "n"}); got != "n" {
		t.Fatalf("render = %q", got)
	}

	if _, err := registry.New("toml", nil); err == nil {
		t.Fatal("expected unknown format error")
	}
	if err := registry.Register("", func(RenderFunc) Adapter { return JSON() }); err == nil {
		t.Fatal("expected empty name error")
	}
	if err := registry.Register("lines", nil); err == nil {
		t.Fatal("expected nil factory error")
	}

	lines := Funcs{
		ParseFn: func(raw string) ([]any, error) {
			if raw == "" {
				return nil, nil
			}
			var out []any
			for _, line := range strings.Split(raw, "\n") {
				out = append(out, line)
			}
			return out, nil
		},
		ProcessFn: func(items []any) (string, error) {
			parts := make([]string, len(items))
			for idx, item := range items {
				parts[idx], _ = DefaultRender(item)
			}
			return strings.Join(parts, "\n"), nil
		},
	}
	if err := registry.Register("lines", func(RenderFunc) Adapter { return lines }); err != nil {
		t.Fatalf("register: %v", err)
	}
	custom, err := registry.New("lines", nil)
	if err != nil {
		t.Fatalf("new lines: %v", err)
	}
	raw, _ := custom.Process([]any{"a", "b"})
	if raw != "a\nb" {
		t.Fatalf("process = %q", raw)
	}

	if _, err := NewRegistry().New("lines", nil); err == nil {
		t.Fatal("registries must not share registrations")
	}
}
