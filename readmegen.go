// Package readmegen generates GitHub profile READMEs. A Template (ordered,
// toggleable sections) and a Profile (the user's data) compile into a block
// tree that serializes to GitHub-flavored markdown or to an interactive
// preview document; both outputs always agree on what is visible.
//
// The root package re-exports the types and entry points most callers need.
// The pieces live in pkg/: template and profile manifests, the compile
// engine, the block IR, and the two renderers.
package readmegen

import (
	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/engine"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/renderers/preview"
	"github.com/goliatone/go-readmegen/pkg/template"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

// Template is an ordered set of toggleable sections plus presentation
// metadata; the unit users edit and share.
type Template = template.Template

// Section is one toggleable unit of a template.
type Section = template.Section

// Profile carries the user's data: identity, projects, stats, socials.
type Profile = profile.Profile

// Output is a fully rendered document in the block intermediate
// representation, ready for any serializer.
type Output = block.Output

// RenderOptions tunes a render pass.
type RenderOptions = engine.Options

// Result is the outcome of one render pass.
type Result = engine.Result

// MarkdownOptions tunes the markdown serialization.
type MarkdownOptions = markdown.Options

// Render compiles the template against the profile into block output.
func Render(tpl Template, prof Profile, opts RenderOptions) Result {
	return engine.Render(tpl, prof, opts)
}

// ExportMarkdown renders and serializes in one call: the happy path for
// callers that just want README text. Section failures are dropped from the
// document and reported alongside it.
func ExportMarkdown(tpl Template, prof Profile, opts MarkdownOptions) (string, []error) {
	result := engine.Render(tpl, prof, RenderOptions{ContinueOnError: true})
	if !result.Success {
		return "", result.Errors
	}
	return markdown.Document(*result.Output, opts), result.Errors
}

// PreviewHTML renders the standalone preview page for the template and
// profile, themed per the template's selection.
func PreviewHTML(tpl Template, prof Profile) (string, []error) {
	result := engine.Render(tpl, prof, RenderOptions{ContinueOnError: true})
	if !result.Success {
		return "", result.Errors
	}

	ctx := preview.Context{}
	if resolved, err := theme.NewResolver().Resolve(result.Output.Theme, ""); err == nil {
		ctx.Theme = resolved
	}

	html, err := preview.HTMLDocument(*result.Output, ctx)
	if err != nil {
		return "", append(result.Errors, err)
	}
	return html, result.Errors
}

// StarterTemplates returns the built-in template catalog.
func StarterTemplates() []Template {
	return template.Catalog()
}

// LoadTemplate reads a template manifest (YAML or JSON) from disk.
func LoadTemplate(path string) (Template, error) {
	return template.LoadFile(path)
}

// LoadProfile reads a profile manifest (YAML or JSON) from disk.
func LoadProfile(path string) (Profile, error) {
	return profile.LoadFile(path)
}
