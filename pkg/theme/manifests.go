package theme

import gotheme "github.com/goliatone/go-theme"

// Built-in palettes. Names align with the theme ids the remote card services
// accept, so a selection drives markdown card URLs and preview CSS variables
// from the same place.
func builtinManifests() []*gotheme.Manifest {
	return []*gotheme.Manifest{
		{
			Name:    "default",
			Version: "1.0.0",
			Tokens: map[string]string{
				"bg":     "#ffffff",
				"fg":     "#24292f",
				"accent": "#0969da",
				"muted":  "#57606a",
				"border": "#d0d7de",
			},
		},
		{
			Name:    "dark",
			Version: "1.0.0",
			Tokens: map[string]string{
				"bg":     "#0d1117",
				"fg":     "#c9d1d9",
				"accent": "#58a6ff",
				"muted":  "#8b949e",
				"border": "#30363d",
			},
			Variants: map[string]gotheme.Variant{
				"dimmed": {
					Tokens: map[string]string{
						"bg": "#22272e",
						"fg": "#adbac7",
					},
				},
			},
		},
		{
			Name:    "radical",
			Version: "1.0.0",
			Tokens: map[string]string{
				"bg":     "#141321",
				"fg":     "#a9fef7",
				"accent": "#fe428e",
				"muted":  "#f8d847",
				"border": "#1f1b3a",
			},
		},
		{
			Name:    "tokyonight",
			Version: "1.0.0",
			Tokens: map[string]string{
				"bg":     "#1a1b26",
				"fg":     "#a9b1d6",
				"accent": "#70a5fd",
				"muted":  "#bf91f3",
				"border": "#24283b",
			},
		},
		{
			Name:    "gruvbox",
			Version: "1.0.0",
			Tokens: map[string]string{
				"bg":     "#282828",
				"fg":     "#ebdbb2",
				"accent": "#fabd2f",
				"muted":  "#fe8019",
				"border": "#3c3836",
			},
		},
	}
}

// graphThemes maps built-in theme names onto the activity graph service's own
// theme ids, which use a different naming scheme than the card services.
var graphThemes = map[string]string{
	"default":    "github-compact",
	"dark":       "github-compact",
	"radical":    "redical",
	"tokyonight": "tokyo-night",
	"gruvbox":    "gruvbox",
}

// badgeStyles maps built-in theme names onto a default shields badge style.
var badgeStyles = map[string]string{
	"default":    "for-the-badge",
	"dark":       "for-the-badge",
	"radical":    "for-the-badge",
	"tokyonight": "flat-square",
	"gruvbox":    "flat-square",
}
