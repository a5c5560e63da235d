// Package locale holds the labels shown by item list hosts (the add button
// title and the empty-list prompt) per language, falling back to English.
package locale
