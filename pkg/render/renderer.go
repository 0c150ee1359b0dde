package render

import (
	"context"

	"github.com/goliatone/go-readmegen/pkg/block"
)

// Renderer serializes a compiled block output into one byte representation
// (markdown document, preview HTML page). Both shipped renderers handle every
// block kind; a kind without a mapping is a defect caught by tests, not a
// runtime branch.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, output block.Output, options RenderOptions) ([]byte, error)
}
