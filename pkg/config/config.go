package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-itemlist/pkg/adapter"
	"github.com/goliatone/go-itemlist/pkg/adapter/openapi"
	"github.com/goliatone/go-itemlist/pkg/engine"
	"github.com/goliatone/go-itemlist/pkg/locale"
)

// ErrInvalidConfig wraps validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one item list widget.
type Config struct {
	Namespace     string                       `json:"namespace" yaml:"namespace"`
	Name          string                       `json:"name" yaml:"name"`
	Lang          string                       `json:"lang" yaml:"lang"`
	Strings       map[string]string            `json:"strings" yaml:"strings"`
	Localize      map[string]map[string]string `json:"localize" yaml:"localize"`
	Format        string                       `json:"format" yaml:"format"`
	LabelProperty []string                     `json:"labelProperty" yaml:"labelProperty"`
	SortableID    string                       `json:"sortableId" yaml:"sortableId"`
	Disabled      bool                         `json:"disabled" yaml:"disabled"`
	Theme         string                       `json:"theme" yaml:"theme"`
	Variant       string                       `json:"variant" yaml:"variant"`
	Schema        *Schema                      `json:"schema" yaml:"schema"`

	files fs.FS
	dir   string
	osDir string
}

// Schema points at an OpenAPI document component used to validate items.
type Schema struct {
	Document  string `json:"document" yaml:"document"`
	Component string `json:"component" yaml:"component"`
	Strict    bool   `json:"strict" yaml:"strict"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Namespace: engine.DefaultNamespace,
		Lang:      locale.DefaultLanguage,
		Format:    adapter.FormatJSON,
	}
}

// Load reads a configuration file from disk. Relative schema documents are
// resolved against the file's directory.
func Load(filename string) (Config, error) {
	if strings.TrimSpace(filename) == "" {
		return Config{}, errors.New("config: path is required")
	}
	dir, base := filepath.Split(filepath.Clean(filename))
	if dir == "" {
		dir = "."
	}
	cfg, err := LoadFS(os.DirFS(dir), base)
	if err != nil {
		return Config{}, err
	}
	cfg.osDir = dir
	return cfg, nil
}

// LoadFS reads a configuration file from fsys.
func LoadFS(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Config{}, errors.New("config: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	cfg, err := Parse(data, name)
	if err != nil {
		return Config{}, err
	}
	cfg.files = fsys
	cfg.dir = path.Dir(name)
	return cfg, nil
}

// Parse decodes JSON or YAML over Default and validates the result.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Namespace = strings.TrimSpace(c.Namespace)
	if c.Namespace == "" {
		c.Namespace = engine.DefaultNamespace
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = adapter.FormatJSON
	}
	c.Lang = strings.ToLower(strings.TrimSpace(c.Lang))
	if c.Lang == "" {
		c.Lang = locale.DefaultLanguage
	}
	c.SortableID = strings.TrimSpace(c.SortableID)
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if strings.ContainsAny(c.Namespace, " \t\n") {
		return fmt.Errorf("%w: namespace %q contains whitespace", ErrInvalidConfig, c.Namespace)
	}
	if c.Schema != nil && strings.TrimSpace(c.Schema.Document) == "" {
		return fmt.Errorf("%w: schema.document is required", ErrInvalidConfig)
	}
	if c.Schema != nil && strings.TrimSpace(c.Schema.Component) == "" {
		return fmt.Errorf("%w: schema.component is required", ErrInvalidConfig)
	}
	return nil
}

// Catalog returns a catalog holding the defaults plus every localize entry.
func (c Config) Catalog() *locale.Catalog {
	catalog := locale.NewCatalog()
	for lang, labels := range c.Localize {
		catalog.Localize(lang, locale.Strings(labels))
	}
	return catalog
}

// Labels resolves the strings shown by hosts for the configured language.
func (c Config) Labels() locale.Strings {
	return c.Catalog().Resolve(c.Lang, locale.Strings(c.Strings))
}

// Adapter builds the configured adapter from registry. When a schema is
// configured, items are validated against it.
func (c Config) Adapter(ctx context.Context, registry *adapter.Registry, logger *zap.Logger) (adapter.Adapter, error) {
	if registry == nil {
		registry = adapter.NewRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var render adapter.RenderFunc
	if len(c.LabelProperty) > 0 {
		render = adapter.LabelRender(c.LabelProperty...)
	}
	base, err := registry.New(c.Format, render)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.Schema == nil {
		return base, nil
	}

	raw, err := c.readSchemaDocument()
	if err != nil {
		return nil, err
	}
	schema, err := openapi.LoadComponent(ctx, raw, c.Schema.Component)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	validated, err := openapi.New(base, schema,
		openapi.WithStrict(c.Schema.Strict),
		openapi.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return validated, nil
}

// EngineOptions returns the engine options the configuration implies.
func (c Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithNamespace(c.Namespace),
		engine.WithName(c.Name),
		engine.WithDisabled(c.Disabled),
	}
}

func (c Config) readSchemaDocument() ([]byte, error) {
	doc := c.Schema.Document
	if c.osDir != "" && !filepath.IsAbs(doc) {
		doc = filepath.Join(c.osDir, doc)
	} else if c.files != nil && !filepath.IsAbs(doc) {
		name := path.Join(c.dir, filepath.ToSlash(doc))
		data, err := fs.ReadFile(c.files, name)
		if err != nil {
			return nil, fmt.Errorf("config: read schema %s: %w", name, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(doc)
	if err != nil {
		return nil, fmt.Errorf("config: read schema %s: %w", doc, err)
	}
	return data, nil
}
