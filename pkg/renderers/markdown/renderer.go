package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/render"
)

// Options control document-level concerns; block serialization itself has no
// knobs.
type Options struct {
	// Attribution appends a generator comment to the end of the document.
	Attribution bool
	// SectionMarkers wraps each section in HTML comments so later runs can
	// splice regenerated sections into a hand-edited README.
	SectionMarkers bool
}

const attribution = "<!-- Generated with go-readmegen -->"

// Document serializes a render output into a single markdown document.
// Sections that render empty are dropped entirely, markers included. A
// non-empty document always ends with exactly one trailing newline.
func Document(output block.Output, opts Options) string {
	var parts []string
	for _, sec := range output.VisibleSections() {
		md := SectionMarkdown(sec)
		if md == "" {
			continue
		}
		if opts.SectionMarkers {
			md = fmt.Sprintf("<!-- readmegen:section:%s -->\n\n%s\n\n<!-- readmegen:/section:%s -->", sec.ID, md, sec.ID)
		}
		parts = append(parts, md)
	}

	doc := strings.Join(parts, "\n\n")
	if doc == "" {
		return ""
	}
	if opts.Attribution {
		doc += "\n\n" + attribution
	}
	return strings.TrimRight(doc, " \t\n") + "\n"
}

// Renderer adapts the markdown serializer to the render registry.
type Renderer struct{}

// NewRenderer returns a markdown renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "markdown"
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render implements render.Renderer.
func (r *Renderer) Render(_ context.Context, output block.Output, options render.RenderOptions) ([]byte, error) {
	return []byte(Document(output, Options{
		Attribution:    options.Attribution,
		SectionMarkers: options.SectionMarkers,
	})), nil
}
