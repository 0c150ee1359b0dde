package template

import (
	"errors"
	"fmt"
)

// ErrSectionNotFound is wrapped by mutation helpers when the target id does
// not exist in the template.
var ErrSectionNotFound = errors.New("template: section not found")

func (t Template) clone() Template {
	out := t
	out.Sections = make([]Section, len(t.Sections))
	copy(out.Sections, t.Sections)
	if len(t.Capabilities.SupportedSections) > 0 {
		out.Capabilities.SupportedSections = make([]SectionType, len(t.Capabilities.SupportedSections))
		copy(out.Capabilities.SupportedSections, t.Capabilities.SupportedSections)
	}
	return out
}

func (t Template) sectionIndex(id string) (int, error) {
	for i, sec := range t.Sections {
		if sec.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrSectionNotFound, id)
}

// WithSectionEnabled returns a copy with the section's enabled flag set.
func (t Template) WithSectionEnabled(id string, enabled bool) (Template, error) {
	idx, err := t.sectionIndex(id)
	if err != nil {
		return Template{}, err
	}
	out := t.clone()
	out.Sections[idx].Enabled = enabled
	return out, nil
}

// WithSectionTitle returns a copy with the section's title override set.
// An empty title restores the per-type default.
func (t Template) WithSectionTitle(id, title string) (Template, error) {
	idx, err := t.sectionIndex(id)
	if err != nil {
		return Template{}, err
	}
	out := t.clone()
	out.Sections[idx].Title = title
	return out, nil
}

// WithSectionConfig returns a copy with the section's config replaced. The
// config's type tag must match the section's type.
func (t Template) WithSectionConfig(id string, cfg Config) (Template, error) {
	idx, err := t.sectionIndex(id)
	if err != nil {
		return Template{}, err
	}
	if cfg == nil {
		return Template{}, fmt.Errorf("template: nil config for section %q", id)
	}
	if got, want := cfg.configType(), t.Sections[idx].Type; got != want {
		return Template{}, fmt.Errorf("template: config tag %q does not match section type %q", got, want)
	}
	out := t.clone()
	out.Sections[idx].Config = cfg
	return out, nil
}

// WithSectionData returns a copy with the section's inline data replaced.
// Nil clears the override so the profile becomes the data source again.
func (t Template) WithSectionData(id string, data Data) (Template, error) {
	idx, err := t.sectionIndex(id)
	if err != nil {
		return Template{}, err
	}
	if data != nil {
		if got, want := data.dataType(), t.Sections[idx].Type; got != want {
			return Template{}, fmt.Errorf("template: data tag %q does not match section type %q", got, want)
		}
	}
	out := t.clone()
	out.Sections[idx].Data = data
	return out, nil
}

// AddSection returns a copy with the section appended at the end of the sort
// order. The section's Order field is assigned past the current maximum; its
// id must be unique and its type known. A nil Config is replaced with the
// type's default.
func (t Template) AddSection(sec Section) (Template, error) {
	if sec.ID == "" {
		return Template{}, errors.New("template: section id must not be empty")
	}
	if _, exists := t.Section(sec.ID); exists {
		return Template{}, fmt.Errorf("template: duplicate section id %q", sec.ID)
	}
	if !sec.Type.Valid() {
		return Template{}, fmt.Errorf("template: unknown section type %q", sec.Type)
	}
	if sec.Config == nil {
		cfg, _ := DefaultConfig(sec.Type)
		sec.Config = cfg
	}

	maxOrder := -1
	for _, existing := range t.Sections {
		if existing.Order > maxOrder {
			maxOrder = existing.Order
		}
	}
	sec.Order = maxOrder + 1

	out := t.clone()
	out.Sections = append(out.Sections, sec)
	return out, nil
}

// RemoveSection returns a copy without the named section. Remaining orders
// are left untouched; order values need not be contiguous.
func (t Template) RemoveSection(id string) (Template, error) {
	idx, err := t.sectionIndex(id)
	if err != nil {
		return Template{}, err
	}
	out := t.clone()
	out.Sections = append(out.Sections[:idx], out.Sections[idx+1:]...)
	return out, nil
}

// MoveSection returns a copy with the named section moved to position `to`
// in the sorted order and every order renumbered to 0..n-1. The target index
// is clamped into range, so moving past either end parks the section there.
// Moving a section to index i and back restores the original ordering.
func (t Template) MoveSection(id string, to int) (Template, error) {
	if _, err := t.sectionIndex(id); err != nil {
		return Template{}, err
	}

	sorted := t.SortedSections()
	from := 0
	for i, sec := range sorted {
		if sec.ID == id {
			from = i
			break
		}
	}

	if to < 0 {
		to = 0
	}
	if to > len(sorted)-1 {
		to = len(sorted) - 1
	}

	moved := sorted[from]
	sorted = append(sorted[:from], sorted[from+1:]...)
	sorted = append(sorted[:to], append([]Section{moved}, sorted[to:]...)...)
	for i := range sorted {
		sorted[i].Order = i
	}

	out := t.clone()
	out.Sections = sorted
	return out, nil
}
