package template

import (
	"fmt"
	"strings"
)

// Issue is a single validation finding. Field locates the problem in the
// template ("sections[2].id" style paths).
type Issue struct {
	Field  string
	Reason string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Reason
}

// Validate checks structural invariants and returns every violation found.
// An empty slice means the template is renderable: it has at least one
// section, section ids are unique and non-empty, every type is known and
// admitted by the capability set, and payload tags agree with section types.
func Validate(tpl Template) []Issue {
	var issues []Issue

	if strings.TrimSpace(tpl.Metadata.ID) == "" {
		issues = append(issues, Issue{Field: "metadata.id", Reason: "must not be empty"})
	}
	if len(tpl.Sections) == 0 {
		issues = append(issues, Issue{Field: "sections", Reason: "template has no sections"})
		return issues
	}

	seen := make(map[string]int, len(tpl.Sections))
	for i, sec := range tpl.Sections {
		field := func(name string) string { return fmt.Sprintf("sections[%d].%s", i, name) }

		id := strings.TrimSpace(sec.ID)
		if id == "" {
			issues = append(issues, Issue{Field: field("id"), Reason: "must not be empty"})
		} else if prev, dup := seen[id]; dup {
			issues = append(issues, Issue{
				Field:  field("id"),
				Reason: fmt.Sprintf("duplicate id %q (first used by sections[%d])", id, prev),
			})
		} else {
			seen[id] = i
		}

		if !sec.Type.Valid() {
			issues = append(issues, Issue{Field: field("type"), Reason: fmt.Sprintf("unknown section type %q", sec.Type)})
			continue
		}
		if !tpl.Capabilities.Supports(sec.Type) {
			issues = append(issues, Issue{Field: field("type"), Reason: fmt.Sprintf("type %q not in supported set", sec.Type)})
		}
		if sec.Config != nil && sec.Config.configType() != sec.Type {
			issues = append(issues, Issue{
				Field:  field("config"),
				Reason: fmt.Sprintf("config tag %q does not match type %q", sec.Config.configType(), sec.Type),
			})
		}
		if sec.Data != nil && sec.Data.dataType() != sec.Type {
			issues = append(issues, Issue{
				Field:  field("data"),
				Reason: fmt.Sprintf("data tag %q does not match type %q", sec.Data.dataType(), sec.Type),
			})
		}
	}

	return issues
}

// Normalize fills gaps a hand-built template may have: sections with nil
// configs receive their type's default config. The input is not modified.
func Normalize(tpl Template) Template {
	out := tpl.clone()
	for i, sec := range out.Sections {
		if sec.Config == nil && sec.Type.Valid() {
			cfg, _ := DefaultConfig(sec.Type)
			out.Sections[i].Config = cfg
		}
	}
	return out
}

func issuesError(source string, issues []Issue) error {
	parts := make([]string, len(issues))
	for i, issue := range issues {
		parts[i] = issue.String()
	}
	return fmt.Errorf("template: %s invalid: %s", source, strings.Join(parts, "; "))
}
