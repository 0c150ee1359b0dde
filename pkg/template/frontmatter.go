package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// customFront is the YAML frontmatter accepted at the top of an imported
// section file. Every field is optional; the body below the frontmatter
// becomes the section content verbatim.
type customFront struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Order   *int   `yaml:"order"`
	Enabled *bool  `yaml:"enabled"`
	Format  string `yaml:"format"`
}

// LoadCustomSections walks the filesystem and turns every markdown file into
// a custom section. Frontmatter supplies id, title, order, enabled, and
// format; missing ids derive from the file name and missing orders follow
// discovery order. Content below the frontmatter stays opaque.
func LoadCustomSections(fsys fs.FS) ([]Section, error) {
	if fsys == nil {
		return nil, nil
	}

	var sections []Section
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("template: read %s: %w", path, err)
		}

		var front customFront
		body, err := frontmatter.Parse(bytes.NewReader(data), &front)
		if err != nil {
			return fmt.Errorf("template: frontmatter %s: %w", path, err)
		}

		sec := customSection(front, body, path, len(sections))
		if prev, dup := seen[sec.ID]; dup {
			return fmt.Errorf("template: duplicate custom section id %q (%s and %s)", sec.ID, prev, path)
		}
		seen[sec.ID] = path

		sections = append(sections, sec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func customSection(front customFront, body []byte, path string, position int) Section {
	id := strings.TrimSpace(front.ID)
	if id == "" {
		id = slugFromPath(path)
	}

	order := position
	if front.Order != nil {
		order = *front.Order
	}
	enabled := true
	if front.Enabled != nil {
		enabled = *front.Enabled
	}
	format := strings.TrimSpace(front.Format)
	if format == "" {
		format = "markdown"
	}

	return Section{
		ID:      id,
		Type:    TypeCustom,
		Title:   strings.TrimSpace(front.Title),
		Enabled: enabled,
		Order:   order,
		Config:  CustomConfig{Format: format},
		Data:    CustomData{Content: string(bytes.TrimSpace(body))},
	}
}

func slugFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ToLower(strings.TrimSpace(stem))
	stem = strings.ReplaceAll(stem, " ", "-")
	stem = strings.ReplaceAll(stem, "_", "-")
	return stem
}
