package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a template manifest from JSON or YAML, fills defaulted
// configs, and validates the result. The source string only labels errors.
func Parse(data []byte, source string) (Template, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Template{}, fmt.Errorf("template: manifest %s is empty", source)
	}

	normalized, err := normalizeJSON(data)
	if err != nil {
		return Template{}, fmt.Errorf("template: parse %s: %w", source, err)
	}

	var tpl Template
	if err := json.Unmarshal(normalized, &tpl); err != nil {
		return Template{}, fmt.Errorf("template: parse %s: %w", source, err)
	}

	tpl = Normalize(tpl)
	if issues := Validate(tpl); len(issues) > 0 {
		return Template{}, issuesError(source, issues)
	}
	return tpl, nil
}

// LoadFile reads and parses a template manifest from disk.
func LoadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("template: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Library is a set of templates keyed by metadata id, preserving the order
// in which manifests were discovered.
type Library struct {
	templates map[string]Template
	order     []string
}

// Template returns the template with the given id.
func (l *Library) Template(id string) (Template, bool) {
	if l == nil {
		return Template{}, false
	}
	tpl, ok := l.templates[id]
	return tpl, ok
}

// IDs returns the template ids in discovery order.
func (l *Library) IDs() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Empty reports whether the library holds any templates.
func (l *Library) Empty() bool {
	return l == nil || len(l.order) == 0
}

func (l *Library) add(tpl Template, source string) error {
	id := tpl.Metadata.ID
	if _, exists := l.templates[id]; exists {
		return fmt.Errorf("template: duplicate template id %q (file %s)", id, source)
	}
	l.templates[id] = tpl
	l.order = append(l.order, id)
	return nil
}

// LoadFS walks the filesystem and parses every JSON/YAML manifest it finds.
// A nil filesystem yields an empty library. Duplicate template ids across
// files are an error.
func LoadFS(fsys fs.FS) (*Library, error) {
	lib := &Library{templates: make(map[string]Template)}
	if fsys == nil {
		return lib, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", path, err)
		}
		tpl, err := Parse(data, path)
		if err != nil {
			return err
		}
		return lib.add(tpl, path)
	})
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// normalizeJSON returns the input unchanged when it already is valid JSON,
// otherwise round-trips it through the YAML parser into JSON so one decode
// path handles both formats.
func normalizeJSON(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed) {
		return trimmed, nil
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON or YAML: %w", err)
	}
	return json.Marshal(doc)
}

func isManifestFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
