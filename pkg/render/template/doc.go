// Package template defines the engine-agnostic template seam used by the
// preview page renderer and the CLI scaffolding output. Consumers depend on
// the TemplateRenderer interface; the gotemplate subpackage provides the
// pongo2-backed implementation.
package template
