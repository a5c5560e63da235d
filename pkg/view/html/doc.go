// Package html provides the browser-facing Host for item lists. A Widget keeps
// rows, empty/disabled/hover markers and the hidden field value in memory and
// renders them as an HTML fragment through a template renderer. Class names
// derive from the list namespace and theme tokens become CSS variables.
package html
