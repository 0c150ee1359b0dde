// Package theme resolves style theme names into the concrete values both
// serializers consume: remote card service theme ids for markdown output and
// CSS variable sets for the preview. Palettes are go-theme manifests; the
// resolver implements the go-theme selector contract so callers can swap in
// their own theme source.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// DefaultTheme is selected when a template names no theme.
const DefaultTheme = "default"

// ErrUnknownTheme is wrapped when a selection names a theme or variant the
// resolver does not hold.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Resolved is a fully evaluated theme selection. CardTheme feeds the stats,
// streak, and language card URLs; GraphTheme feeds the activity graph, which
// uses its own theme id scheme; BadgeStyle is the default shields style;
// Tokens and CSSVars drive the preview document.
type Resolved struct {
	Name       string
	Variant    string
	CardTheme  string
	GraphTheme string
	BadgeStyle string
	Tokens     map[string]string
	CSSVars    map[string]string
}

// RendererConfig converts the selection into the go-theme renderer shape for
// callers that integrate with that contract directly.
func (r *Resolved) RendererConfig() *gotheme.RendererConfig {
	if r == nil {
		return nil
	}
	return &gotheme.RendererConfig{
		Theme:   r.Name,
		Variant: r.Variant,
		Tokens:  copyStringMap(r.Tokens),
		CSSVars: copyStringMap(r.CSSVars),
	}
}

// Resolver holds theme manifests and answers selections. The zero value is
// unusable; construct with NewResolver.
type Resolver struct {
	manifests map[string]*gotheme.Manifest
	names     []string
}

// NewResolver returns a resolver over the built-in palettes plus any extra
// manifests. Extras override built-ins sharing a name.
func NewResolver(extras ...*gotheme.Manifest) *Resolver {
	r := &Resolver{manifests: make(map[string]*gotheme.Manifest)}
	for _, m := range builtinManifests() {
		r.add(m)
	}
	for _, m := range extras {
		r.add(m)
	}
	sort.Strings(r.names)
	return r
}

func (r *Resolver) add(m *gotheme.Manifest) {
	if m == nil || strings.TrimSpace(m.Name) == "" {
		return
	}
	if _, exists := r.manifests[m.Name]; !exists {
		r.names = append(r.names, m.Name)
	}
	r.manifests[m.Name] = m
}

// Names returns the available theme names in sorted order.
func (r *Resolver) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Has reports whether a theme name is registered.
func (r *Resolver) Has(name string) bool {
	_, ok := r.manifests[name]
	return ok
}

// Select implements the go-theme selector contract. An empty name selects
// the default theme; an empty variant selects the manifest base.
func (r *Resolver) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultTheme
	}
	manifest, ok := r.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q has no variant %q", ErrUnknownTheme, name, variant)
		}
	}
	return &gotheme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Resolve evaluates a selection into the values renderers consume: base
// tokens overlaid with variant tokens, CSS variables derived from the merged
// tokens, and per-service theme ids.
func (r *Resolver) Resolve(name, variant string) (*Resolved, error) {
	selection, err := r.Select(name, variant)
	if err != nil {
		return nil, err
	}

	manifest := selection.Manifest
	tokens := copyStringMap(manifest.Tokens)
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			if tokens == nil {
				tokens = make(map[string]string, len(v.Tokens))
			}
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}

	resolved := &Resolved{
		Name:       selection.Theme,
		Variant:    selection.Variant,
		CardTheme:  selection.Theme,
		GraphTheme: graphThemes[selection.Theme],
		BadgeStyle: badgeStyles[selection.Theme],
		Tokens:     tokens,
		CSSVars:    cssVars(tokens),
	}
	if resolved.GraphTheme == "" {
		resolved.GraphTheme = "github-compact"
	}
	if resolved.BadgeStyle == "" {
		resolved.BadgeStyle = "for-the-badge"
	}
	return resolved, nil
}

func cssVars(tokens map[string]string) map[string]string {
	if len(tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	return vars
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

// CSSVarsStyle renders the variables as a :root block for inline embedding,
// keys sorted for stable output.
func (r *Resolved) CSSVarsStyle() string {
	if r == nil || len(r.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(r.CSSVars))
	for key := range r.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(r.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
