package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Parse decodes a profile document from JSON or YAML. JSON is attempted first
// so strict payloads keep strict errors; YAML covers the rest.
func Parse(data []byte, source string) (Profile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Profile{}, fmt.Errorf("profile: file %s is empty", source)
	}

	var prof Profile
	if err := json.Unmarshal(data, &prof); err == nil {
		return normalize(prof), nil
	}
	if err := yaml.Unmarshal(data, &prof); err == nil {
		return normalize(prof), nil
	}
	return Profile{}, fmt.Errorf("profile: parse %s: invalid JSON or YAML", source)
}

// LoadFile reads and parses a profile document from disk.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// FileSource returns a Source backed by a document on disk. The file is read
// on every Load so watchers observe edits without re-wiring.
func FileSource(path string) Source {
	return SourceFunc(func(ctx context.Context) (Profile, error) {
		if err := ctx.Err(); err != nil {
			return Profile{}, err
		}
		return LoadFile(path)
	})
}

func normalize(p Profile) Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.GitHubUsername = strings.TrimSpace(p.GitHubUsername)
	for i, item := range p.TechStack {
		p.TechStack[i].Name = strings.TrimSpace(item.Name)
		p.TechStack[i].Category = strings.ToLower(strings.TrimSpace(item.Category))
	}
	for i, link := range p.Socials {
		p.Socials[i].Platform = strings.ToLower(strings.TrimSpace(link.Platform))
	}
	if p.UpdatedAt.IsZero() && !p.CreatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	}
	return p
}

// Touch stamps UpdatedAt (and CreatedAt when unset) with the supplied time.
// Callers own the clock; the render pipeline never reads it.
func (p Profile) Touch(now time.Time) Profile {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return p
}
