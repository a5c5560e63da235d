// Package config loads the item list widget configuration from JSON or YAML
// and resolves it into the adapter, localized labels and engine options a
// list needs.
package config
