package html

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is returned by Themes.Select for unregistered themes.
var ErrThemeNotFound = errors.New("html: theme not found")

// Themes is a ThemeSelector over manifests registered in memory.
type Themes struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Themes)(nil)

// NewThemes returns an empty selector. defaultTheme and defaultVariant are
// used when Select receives empty names.
func NewThemes(defaultTheme, defaultVariant string) *Themes {
	return &Themes{
		manifests:      make(map[string]*theme.Manifest),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
}

// Register adds or replaces a manifest keyed by its name.
func (t *Themes) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("html: manifest is nil")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("html: manifest name is required")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.manifests[name] = manifest
	return nil
}

// Select resolves a theme and variant. An unknown variant is an error; an
// empty variant selects the base manifest.
func (t *Themes) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = t.defaultTheme
	}
	if variant = strings.TrimSpace(variant); variant == "" {
		variant = t.defaultVariant
	}

	t.mu.RLock()
	manifest, ok := t.manifests[name]
	t.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrThemeNotFound, name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// RendererConfig flattens a selection into the partials, tokens, CSS
// variables and asset resolver the widget consumes. Variant entries override
// the base manifest; fallbacks fill partials neither defines.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: make(map[string]string),
		Tokens:   make(map[string]string),
		CSSVars:  make(map[string]string),
	}
	for key, value := range fallbacks {
		cfg.Partials[key] = value
	}

	assetPrefix := ""
	assetFiles := make(map[string]string)
	if manifest := selection.Manifest; manifest != nil {
		mergeInto(cfg.Partials, manifest.Templates)
		mergeInto(cfg.Tokens, manifest.Tokens)
		mergeInto(assetFiles, manifest.Assets.Files)
		assetPrefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			mergeInto(cfg.Partials, variant.Templates)
			mergeInto(cfg.Tokens, variant.Tokens)
			mergeInto(assetFiles, variant.Assets.Files)
			if variant.Assets.Prefix != "" {
				assetPrefix = variant.Assets.Prefix
			}
		}
	}
	for key, value := range cfg.Tokens {
		cfg.CSSVars["--"+key] = value
	}

	prefix := strings.TrimRight(assetPrefix, "/")
	cfg.AssetURL = func(key string) string {
		file, ok := assetFiles[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return prefix + "/" + file
	}
	return cfg
}

func mergeInto(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

// cssVarsStyle renders CSS variables as an inline style sorted by name.
func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for idx, key := range keys {
		if idx > 0 {
			b.WriteString(" ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";")
	}
	return b.String()
}
