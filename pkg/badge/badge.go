// Package badge computes external image-service URLs from semantic fields.
// Every function is pure and deterministic: query parameters are emitted in
// sorted order and path segments use the escaping rules of the upstream badge
// grammar, so identical inputs always produce byte-identical URLs. Nothing
// here performs network I/O; callers embed the strings into their output.
package badge

import (
	"net/url"
	"strings"
)

const shieldsBase = "https://img.shields.io/badge/"

// Options are the semantic fields of a static shields-style badge.
type Options struct {
	Label     string
	Message   string
	Color     string
	Style     string
	Logo      string
	LogoColor string
}

// URL builds a static badge URL. Label is optional; when present the path is
// "label-message-color", otherwise "message-color". Literal dashes and
// underscores inside label/message are doubled so they survive the service's
// own field separator, and spaces become single underscores.
func URL(opts Options) string {
	color := strings.TrimSpace(opts.Color)
	if color == "" {
		color = "blue"
	}

	var path strings.Builder
	if label := strings.TrimSpace(opts.Label); label != "" {
		path.WriteString(Escape(label))
		path.WriteByte('-')
	}
	path.WriteString(Escape(strings.TrimSpace(opts.Message)))
	path.WriteByte('-')
	path.WriteString(Escape(color))

	query := url.Values{}
	setNonEmpty(query, "logo", opts.Logo)
	setNonEmpty(query, "logoColor", opts.LogoColor)
	setNonEmpty(query, "style", opts.Style)

	raw := shieldsBase + path.String()
	if encoded := query.Encode(); encoded != "" {
		raw += "?" + encoded
	}
	return raw
}

// Escape prepares one badge path field: "-" → "--", "_" → "__", space → "_",
// then percent-encodes whatever remains unsafe in a path segment.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	s = strings.ReplaceAll(s, " ", "_")
	return url.PathEscape(s)
}

func setNonEmpty(query url.Values, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		query.Set(key, trimmed)
	}
}
