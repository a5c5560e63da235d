// Package template defines the template renderer seam used by HTML hosts so
// row and widget markup can come from any engine. The gotemplate subpackage
// provides the default pongo2-backed implementation.
package template
