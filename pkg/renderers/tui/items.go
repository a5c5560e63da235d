package tui

import (
	"encoding/json"
	"strings"
)

// ParseItem turns typed text into an item. Valid JSON (objects, arrays,
// numbers, quoted strings, booleans) decodes to its value; anything else is
// kept as the trimmed string.
func ParseItem(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil || dec.More() {
		return trimmed
	}
	if value == nil {
		return trimmed
	}
	return value
}

// FormatItem is the inverse of ParseItem used to prefill edit prompts.
func FormatItem(item any) string {
	switch v := item.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	}
	payload, err := json.Marshal(item)
	if err != nil {
		return ""
	}
	return string(payload)
}
