package itemlist

import (
	"github.com/goliatone/go-itemlist/pkg/adapter"
	"github.com/goliatone/go-itemlist/pkg/config"
	"github.com/goliatone/go-itemlist/pkg/view/html"
)

// LoadConfig reads a JSON or YAML widget configuration from disk.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// ParseConfig decodes a JSON or YAML widget configuration.
func ParseConfig(data []byte) (Config, error) {
	return config.Parse(data, "inline")
}

// NewRegistry returns an adapter registry holding the json, yaml and hcl
// formats. Register custom formats on it and pass it with WithRegistry.
func NewRegistry() *adapter.Registry {
	return adapter.NewRegistry()
}

// NewThemes returns an in-memory theme selector for WithThemeSelector.
func NewThemes(defaultTheme, defaultVariant string) *html.Themes {
	return html.NewThemes(defaultTheme, defaultVariant)
}
