package adapter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// DefaultRender renders scalars with fmt, objects as "key: value" pairs
// sorted by key, and anything else as compact JSON.
func DefaultRender(item any) (string, error) {
	switch v := item.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			rendered, err := DefaultRender(v[key])
			if err != nil {
				return "", err
			}
			parts = append(parts, key+": "+rendered)
		}
		return strings.Join(parts, ", "), nil
	default:
		payload, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("adapter: render item: %w", err)
		}
		return string(payload), nil
	}
}

// LabelRender renders the first non-empty property among keys when the item
// is an object, falling back to DefaultRender.
func LabelRender(keys ...string) RenderFunc {
	return func(item any) (string, error) {
		if obj, ok := item.(map[string]any); ok {
			for _, key := range keys {
				value, exists := obj[key]
				if !exists || value == nil {
					continue
				}
				rendered, err := DefaultRender(value)
				if err != nil {
					return "", err
				}
				if strings.TrimSpace(rendered) != "" {
					return rendered, nil
				}
			}
		}
		return DefaultRender(item)
	}
}
