// Package engine compiles a template plus a profile into the block output
// both serializers consume. Compilation is synchronous and pure: block ids
// derive from section ids and positions, nothing reads the clock or random
// state, and identical inputs produce structurally identical outputs.
package engine

import (
	"fmt"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/template"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

// Options adjust a single render call.
type Options struct {
	// Theme overrides the template's theme name. Empty keeps the template's
	// choice, which itself falls back to the default theme.
	Theme string
	// SkipValidation compiles the template as-is. Sections that cannot be
	// compiled still fail individually.
	SkipValidation bool
	// ContinueOnError drops failing sections and keeps rendering. When false
	// the first section failure aborts the whole render.
	ContinueOnError bool
}

// Result is the outcome of one render. Success with recorded section errors
// means a partial document: the failing sections were dropped, the rest
// compiled normally.
type Result struct {
	Success bool
	Output  *block.Output
	Errors  []error
}

// Engine holds the pieces shared across renders. The zero value is not
// usable; construct with New.
type Engine struct {
	themes *theme.Resolver
}

// Option configures an Engine.
type Option func(*Engine)

// WithThemeResolver replaces the built-in theme resolver.
func WithThemeResolver(resolver *theme.Resolver) Option {
	return func(e *Engine) {
		if resolver != nil {
			e.themes = resolver
		}
	}
}

// New constructs an engine with the built-in themes unless overridden.
func New(opts ...Option) *Engine {
	e := &Engine{themes: theme.NewResolver()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render compiles the template against the profile. See Options for the
// failure policy; see the package comment for the purity guarantees.
func (e *Engine) Render(tpl template.Template, prof profile.Profile, opts Options) Result {
	if !opts.SkipValidation {
		if issues := template.Validate(tpl); len(issues) > 0 {
			errs := make([]error, len(issues))
			for i, issue := range issues {
				errs[i] = &ValidationError{Field: issue.Field, Reason: issue.Reason}
			}
			return Result{Success: false, Errors: errs}
		}
	}

	themeName := opts.Theme
	if themeName == "" {
		themeName = tpl.Theme
	}
	resolved, err := e.themes.Resolve(themeName, "")
	if err != nil {
		return Result{Success: false, Errors: []error{
			&ValidationError{Field: "theme", Reason: err.Error()},
		}}
	}

	ctx := compileContext{profile: prof, theme: resolved}
	output := &block.Output{
		TemplateID: tpl.Metadata.ID,
		Theme:      resolved.Name,
	}

	var errs []error
	for _, sec := range tpl.EnabledSections() {
		blocks, err := compileSection(ctx, sec)
		if err != nil {
			secErr := &SectionError{SectionID: sec.ID, SectionType: sec.Type, Err: err}
			if !opts.ContinueOnError {
				return Result{Success: false, Errors: []error{secErr}}
			}
			errs = append(errs, secErr)
			continue
		}
		output.Sections = append(output.Sections, block.RenderedSection{
			ID:      sec.ID,
			Type:    string(sec.Type),
			Title:   sec.DisplayTitle(),
			Visible: true,
			Blocks:  blocks,
		})
	}

	return Result{Success: true, Output: output, Errors: errs}
}

// Render compiles with a default engine. Callers that render repeatedly or
// need a custom theme resolver should construct an Engine instead.
func Render(tpl template.Template, prof profile.Profile, opts Options) Result {
	return New().Render(tpl, prof, opts)
}

// compileContext carries the read-only inputs every section compiler sees.
type compileContext struct {
	profile profile.Profile
	theme   *theme.Resolved
}

// compileSection dispatches to the per-type compiler and converts panics
// into ordinary section failures so one bad section cannot take down the
// render loop.
func compileSection(ctx compileContext, sec template.Section) (blocks []block.Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			blocks = nil
			err = fmt.Errorf("engine: compiler panic: %v", r)
		}
	}()

	fn, ok := compilers[sec.Type]
	if !ok {
		return nil, fmt.Errorf("engine: no compiler for section type %q", sec.Type)
	}
	return fn(ctx, sec, newIDs(sec.ID))
}

// idAllocator hands out deterministic block ids within one section:
// "<section>-b0", "<section>-b1", ... in creation order.
type idAllocator struct {
	prefix string
	n      int
}

func newIDs(sectionID string) *idAllocator {
	return &idAllocator{prefix: sectionID}
}

func (a *idAllocator) next() string {
	id := fmt.Sprintf("%s-b%d", a.prefix, a.n)
	a.n++
	return id
}
