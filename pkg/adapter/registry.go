package adapter

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Built-in adapter formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// Factory builds an adapter that renders items with render. A nil render
// means the adapter default.
type Factory func(render RenderFunc) Adapter

// Registry tracks adapter factories keyed by format name. Callers own their
// registry; nothing is registered process-wide.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a registry holding the json, yaml and hcl formats.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.MustRegister(FormatJSON, func(render RenderFunc) Adapter {
		return JSON(WithJSONRender(render))
	})
	r.MustRegister(FormatYAML, func(render RenderFunc) Adapter {
		return YAML(render)
	})
	r.MustRegister(FormatHCL, func(render RenderFunc) Adapter {
		return HCL(render)
	})
	return r
}

// Register associates a factory with name, replacing any existing entry.
func (r *Registry) Register(name string, factory Factory) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("adapter: format name is required")
	}
	if factory == nil {
		return fmt.Errorf("adapter: factory for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, factory Factory) {
	if err := r.Register(name, factory); err != nil {
		panic(err)
	}
}

// New builds the adapter registered under name.
func (r *Registry) New(name string, render RenderFunc) (Adapter, error) {
	r.mu.RLock()
	factory, ok := r.factories[normalize(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("adapter: unknown format %q", name)
	}
	return factory(render), nil
}

// Names returns the registered formats sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
