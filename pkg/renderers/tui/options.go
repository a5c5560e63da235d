package tui

import "github.com/goliatone/go-itemlist/pkg/locale"

// Option configures a Model.
type Option func(*Model)

// WithTitle sets the heading line.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithLabels sets the localized labels (add title and empty prompt).
func WithLabels(labels locale.Strings) Option {
	return func(m *Model) {
		for key, value := range labels {
			m.labels[key] = value
		}
	}
}

// WithStyles replaces the default palette.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// EditorOption configures a PromptEditor.
type EditorOption func(*PromptEditor)

// WithPromptDriver overrides the prompt driver used by the editor.
func WithPromptDriver(driver PromptDriver) EditorOption {
	return func(e *PromptEditor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithEditorLabels sets the localized labels.
func WithEditorLabels(labels locale.Strings) EditorOption {
	return func(e *PromptEditor) {
		for key, value := range labels {
			e.labels[key] = value
		}
	}
}
