package html

import (
	"fmt"
	"io"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-itemlist/pkg/engine"
	"github.com/goliatone/go-itemlist/pkg/locale"
	"github.com/goliatone/go-itemlist/pkg/render/template"
	"github.com/goliatone/go-itemlist/pkg/render/template/gotemplate"
	"github.com/goliatone/go-itemlist/pkg/view"
)

// Option configures a Widget.
type Option func(*Widget)

// WithNamespace sets the class name prefix. Defaults to engine.DefaultNamespace.
func WithNamespace(namespace string) Option {
	return func(w *Widget) {
		if namespace = strings.TrimSpace(namespace); namespace != "" {
			w.namespace = namespace
		}
	}
}

// WithSortableID sets the id attribute of the widget container.
func WithSortableID(id string) Option {
	return func(w *Widget) {
		w.sortableID = strings.TrimSpace(id)
	}
}

// WithName sets the name attribute of the hidden field.
func WithName(name string) Option {
	return func(w *Widget) {
		w.name = name
	}
}

// WithValue seeds the hidden field value.
func WithValue(raw string) Option {
	return func(w *Widget) {
		w.value = raw
	}
}

// WithStrings sets the localized labels, usually the result of
// locale.Catalog.Resolve.
func WithStrings(labels locale.Strings) Option {
	return func(w *Widget) {
		for key, value := range labels {
			w.strings[key] = value
		}
	}
}

// WithTemplateRenderer replaces the built-in pongo2 engine.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(w *Widget) {
		if renderer != nil {
			w.templates = renderer
		}
	}
}

// WithTheme applies partial overrides, tokens and the stylesheet asset of a
// resolved theme.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(w *Widget) {
		w.theme = cfg
	}
}

// Widget is the HTML Host of an item list. It also implements engine.Field
// as the widget's hidden input, so one value can back both the list and the
// rendered markup.
type Widget struct {
	namespace  string
	sortableID string
	name       string
	value      string
	strings    locale.Strings
	templates  template.TemplateRenderer
	theme      *theme.RendererConfig

	rows     []view.Row
	hover    int
	empty    bool
	disabled bool
}

var (
	_ view.Host    = (*Widget)(nil)
	_ engine.Field = (*Widget)(nil)
)

// New builds a widget. Without WithTemplateRenderer the embedded templates
// are rendered by a pongo2 engine.
func New(options ...Option) (*Widget, error) {
	w := &Widget{
		namespace: engine.DefaultNamespace,
		strings:   locale.NewCatalog().Resolve(locale.DefaultLanguage, nil),
		hover:     -1,
		empty:     true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.templates == nil {
		renderer, err := gotemplate.New(
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithSetName("itemlist-html"),
		)
		if err != nil {
			return nil, fmt.Errorf("html: template engine: %w", err)
		}
		w.templates = renderer
	}
	return w, nil
}

// Namespace returns the class name prefix.
func (w *Widget) Namespace() string { return w.namespace }

// Value implements engine.Field.
func (w *Widget) Value() string { return w.value }

// SetValue implements engine.Field.
func (w *Widget) SetValue(raw string) { w.value = raw }

func (w *Widget) Len() int { return len(w.rows) }

func (w *Widget) Append(row view.Row) { w.rows = append(w.rows, row) }

func (w *Widget) Replace(index int, row view.Row) {
	if index < 0 || index >= len(w.rows) {
		return
	}
	w.rows[index] = row
}

func (w *Widget) Remove(index int) {
	if index < 0 || index >= len(w.rows) {
		return
	}
	w.rows = slices.Delete(w.rows, index, index+1)
	switch {
	case w.hover == index:
		w.hover = -1
	case w.hover > index:
		w.hover--
	}
}

func (w *Widget) Move(from, to int) {
	hovered := w.hover == from && from >= 0
	w.rows = view.MoveRows(w.rows, from, to)
	if hovered && to >= 0 && to < len(w.rows) {
		w.hover = to
	}
}

func (w *Widget) Clear() {
	w.rows = nil
	w.hover = -1
}

func (w *Widget) SetEmpty(empty bool) { w.empty = empty }

func (w *Widget) SetDisabled(disabled bool) {
	w.disabled = disabled
	if disabled {
		w.hover = -1
	}
}

// SetHover marks the row under the pointer. Hover is ignored while disabled;
// an out of range index clears it.
func (w *Widget) SetHover(index int) {
	if w.disabled || index < 0 || index >= len(w.rows) {
		w.hover = -1
		return
	}
	w.hover = index
}

// Hover returns the hovered row index.
func (w *Widget) Hover() (int, bool) {
	return w.hover, w.hover >= 0
}

// Empty reports the empty-state marker.
func (w *Widget) Empty() bool { return w.empty }

// Disabled reports the disabled marker.
func (w *Widget) Disabled() bool { return w.disabled }

// Rows returns a copy of the rendered rows.
func (w *Widget) Rows() []view.Row { return slices.Clone(w.rows) }

// Classes returns the container classes for the current state.
func (w *Widget) Classes() []string {
	classes := []string{w.namespace + "-wrapper"}
	if w.empty {
		classes = append(classes, w.namespace+"_empty")
	}
	if w.disabled {
		classes = append(classes, w.namespace+"_disabled")
	}
	return classes
}

// Chrome returns the row wrapper rendering the drag handle, item fragment
// and remove affordance. Pass it to view.WithChrome.
func (w *Widget) Chrome() view.Chrome {
	return func(fragment string) (string, error) {
		out, err := w.templates.RenderTemplate(w.partial(PartialRow), map[string]any{
			"ns":       w.namespace,
			"fragment": fragment,
		})
		if err != nil {
			return "", fmt.Errorf("html: render row: %w", err)
		}
		return strings.TrimSpace(out), nil
	}
}

// Render writes the widget markup to out and returns it.
func (w *Widget) Render(out ...io.Writer) (string, error) {
	rows := make([]any, len(w.rows))
	for idx, row := range w.rows {
		classes := w.namespace + "-item"
		if idx == w.hover {
			classes += " " + w.namespace + "_hover"
		}
		rows[idx] = map[string]any{
			"index":   idx,
			"classes": classes,
			"markup":  row.Markup,
		}
	}

	data := map[string]any{
		"ns":          w.namespace,
		"classes":     strings.Join(w.Classes(), " "),
		"sortable_id": w.sortableID,
		"name":        w.name,
		"value":       w.value,
		"rows":        rows,
		"empty":       w.empty,
		"disabled":    w.disabled,
		"prompt":      w.strings[locale.KeyPrompt],
		"add_title":   w.strings[locale.KeyAddTitle],
		"css_vars":    "",
		"stylesheet":  "",
	}
	if w.theme != nil {
		data["css_vars"] = cssVarsStyle(w.theme.CSSVars)
		if w.theme.AssetURL != nil {
			data["stylesheet"] = w.theme.AssetURL(AssetStylesheet)
		}
	}

	html, err := w.templates.RenderTemplate(w.partial(PartialWidget), data, out...)
	if err != nil {
		return "", fmt.Errorf("html: render widget: %w", err)
	}
	return html, nil
}

func (w *Widget) partial(key string) string {
	if w.theme != nil {
		if name, ok := w.theme.Partials[key]; ok && name != "" {
			return name
		}
	}
	return DefaultPartials()[key]
}
