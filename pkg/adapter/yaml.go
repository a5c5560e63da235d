package adapter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLAdapter stores the sequence as a YAML sequence document.
type YAMLAdapter struct {
	render RenderFunc
}

var _ Adapter = (*YAMLAdapter)(nil)

// YAML constructs the YAML adapter. A nil render uses DefaultRender.
func YAML(render RenderFunc) *YAMLAdapter {
	if render == nil {
		render = DefaultRender
	}
	return &YAMLAdapter{render: render}
}

func (a *YAMLAdapter) Parse(raw string) ([]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return nil, fmt.Errorf("adapter: decode yaml: %w", err)
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch {
	case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
		return nil, nil
	case root.Kind != yaml.SequenceNode:
		return nil, fmt.Errorf("%w: yaml node kind %d", ErrNotSequence, root.Kind)
	}

	items := make([]any, 0, len(root.Content))
	if err := root.Decode(&items); err != nil {
		return nil, fmt.Errorf("adapter: decode yaml sequence: %w", err)
	}
	return items, nil
}

func (a *YAMLAdapter) Process(items []any) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}
	payload, err := yaml.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("adapter: encode yaml: %w", err)
	}
	return strings.TrimSuffix(string(payload), "\n"), nil
}

func (a *YAMLAdapter) Render(item any) (string, error) {
	if a.render == nil {
		return DefaultRender(item)
	}
	return a.render(item)
}
