// Package preview maps block trees onto an HTML node tree for interactive
// display, mirroring the markdown serializer's semantics so what a user
// previews matches what they export. Remote card images follow a bounded
// loading lifecycle instead of blocking the page.
package preview

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/render"
	rendertemplate "github.com/goliatone/go-readmegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-readmegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

// Context carries the per-render inputs of the preview mapping.
type Context struct {
	// Theme supplies CSS variables for the page wrapper. Optional.
	Theme *theme.Resolved
	// AsMarkdown switches the tree to the markdown-source view: each section
	// renders its exact export text instead of rich elements.
	AsMarkdown bool
	// BaseURL prefixes relative image sources.
	BaseURL string
	// Images gates remote card rendering. Nil reports everything loaded,
	// which static page generation wants.
	Images *ImageTracker
}

// BlockNode maps one block to a preview node, or nil when it contributes
// nothing.
func BlockNode(b block.Block, ctx Context) *Node {
	if ctx.AsMarkdown {
		md := markdown.BlockMarkdown(b)
		if md == "" {
			return nil
		}
		return sourceNode(md)
	}
	return blockNode(b, ctx)
}

// SectionNode maps one rendered section to a <section> element. Sections
// whose blocks all map to nothing collapse to nil, heading included.
func SectionNode(s block.RenderedSection, ctx Context) *Node {
	if !s.Visible {
		return nil
	}

	sec := Element("section").
		Class("preview-section").
		Attr("data-section", s.ID).
		Attr("data-type", s.Type)

	if ctx.AsMarkdown {
		md := markdown.SectionMarkdown(s)
		if md == "" {
			return nil
		}
		return sec.Append(sourceNode(md))
	}

	children := make([]*Node, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		if n := blockNode(b, ctx); n != nil {
			children = append(children, n)
		}
	}
	if len(children) == 0 {
		return nil
	}
	if s.Title != "" {
		sec.Append(Element("h2", TextNode(s.Title)).Class("section-title"))
	}
	return sec.Append(children...)
}

// DocumentNode assembles the full preview tree under a stable root element.
func DocumentNode(output block.Output, ctx Context) *Node {
	root := Element("main").Class("readme-preview")
	if output.Theme != "" {
		root.Attr("data-theme", output.Theme)
	}
	for _, sec := range output.VisibleSections() {
		root.Append(SectionNode(sec, ctx))
	}
	return root
}

func sourceNode(md string) *Node {
	return Element("pre", TextNode(md)).Class("markdown-source")
}

// Option configures the preview renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	images           *ImageTracker
}

// WithTemplatesFS supplies an alternate page template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads page templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithImageTracker attaches a shared tracker used for registry-driven renders.
func WithImageTracker(tracker *ImageTracker) Option {
	return func(cfg *config) {
		cfg.images = tracker
	}
}

// Renderer wraps node trees into standalone HTML pages.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	images    *ImageTracker
}

// New constructs the preview renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
		)
		if err != nil {
			return nil, fmt.Errorf("preview renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, images: cfg.images}, nil
}

// Name implements render.Renderer.
func (r *Renderer) Name() string {
	return "preview"
}

// ContentType implements render.Renderer.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render implements render.Renderer, producing a standalone preview page.
func (r *Renderer) Render(_ context.Context, output block.Output, options render.RenderOptions) ([]byte, error) {
	page, err := r.Page(output, Context{
		Theme:   options.Theme,
		BaseURL: options.BaseURL,
		Images:  r.images,
	})
	if err != nil {
		return nil, err
	}
	return []byte(page), nil
}

// Page wraps the document tree in the HTML page template with theme CSS vars.
func (r *Renderer) Page(output block.Output, ctx Context) (string, error) {
	if r == nil || r.templates == nil {
		return "", fmt.Errorf("preview renderer: template renderer is nil")
	}

	themeName := output.Theme
	cssVars := ""
	if ctx.Theme != nil {
		themeName = ctx.Theme.Name
		cssVars = ctx.Theme.CSSVarsStyle()
	}

	result, err := r.templates.RenderTemplate("templates/page.tpl", map[string]any{
		"title":      pageTitle(output),
		"theme":      themeName,
		"css_vars":   cssVars,
		"stylesheet": defaultStylesheet(),
		"body":       DocumentNode(output, ctx).HTML(),
	})
	if err != nil {
		return "", fmt.Errorf("preview renderer: render page: %w", err)
	}
	return result, nil
}

// HTMLDocument renders a standalone preview page with the default template
// bundle. Convenience wrapper over New + Page.
func HTMLDocument(output block.Output, ctx Context) (string, error) {
	renderer, err := New()
	if err != nil {
		return "", err
	}
	return renderer.Page(output, ctx)
}

func pageTitle(output block.Output) string {
	if output.TemplateID != "" {
		return "README preview · " + output.TemplateID
	}
	return "README preview"
}
