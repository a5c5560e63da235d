// Package adapter defines the serialization contract between a hidden field's
// raw value and the ordered item sequence managed by the list engine, along
// with JSON, YAML and HCL implementations. Items are opaque: adapters decide
// how they are decoded, encoded and rendered for display.
package adapter
