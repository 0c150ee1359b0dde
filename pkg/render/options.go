package render

import "github.com/goliatone/go-readmegen/pkg/theme"

// RenderOptions describe per-request settings renderers can use to customise
// their output without the compiled block tree changing.
type RenderOptions struct {
	// Theme is the resolved style selection. Nil means unthemed output:
	// markdown still renders fully, the preview falls back to bare defaults.
	Theme *theme.Resolved
	// BaseURL prefixes relative asset references in preview output. Markdown
	// output never rewrites URLs.
	BaseURL string
	// Attribution appends a generated-with comment to exported documents.
	Attribution bool
	// SectionMarkers wraps each section in HTML comments carrying the section
	// id so exported documents can be diffed and partially re-generated.
	SectionMarkers bool
}
