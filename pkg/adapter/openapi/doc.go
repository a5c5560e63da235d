// Package openapi decorates an item list adapter with validation against an
// OpenAPI item schema. The schema comes from a component of an OpenAPI
// document or from a standalone JSON schema object, loaded with kin-openapi.
package openapi
