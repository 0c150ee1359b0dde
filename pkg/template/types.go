package template

import (
	"sort"
	"strings"
)

// SectionType tags a Section with one of the closed set of section kinds the
// pipeline knows how to compile. The set is part of the wire format.
type SectionType string

const (
	TypeHero              SectionType = "hero"
	TypeAbout             SectionType = "about"
	TypeTechStack         SectionType = "tech-stack"
	TypeGitHubStats       SectionType = "github-stats"
	TypeGitHubStreak      SectionType = "github-streak"
	TypeTopLanguages      SectionType = "top-languages"
	TypeContributionGraph SectionType = "contribution-graph"
	TypeProjects          SectionType = "projects"
	TypeExperience        SectionType = "experience"
	TypeEducation         SectionType = "education"
	TypeAchievements      SectionType = "achievements"
	TypeBlogPosts         SectionType = "blog-posts"
	TypeSocials           SectionType = "socials"
	TypeContact           SectionType = "contact"
	TypeSupport           SectionType = "support"
	TypeVisitors          SectionType = "visitors"
	TypeQuote             SectionType = "quote"
	TypeMusic             SectionType = "music"
	TypeTimeTracking      SectionType = "time-tracking"
	TypeDivider           SectionType = "divider"
	TypeSpacer            SectionType = "spacer"
	TypeCustom            SectionType = "custom"
)

var allSectionTypes = []SectionType{
	TypeHero, TypeAbout, TypeTechStack,
	TypeGitHubStats, TypeGitHubStreak, TypeTopLanguages, TypeContributionGraph,
	TypeProjects, TypeExperience, TypeEducation, TypeAchievements, TypeBlogPosts,
	TypeSocials, TypeContact, TypeSupport,
	TypeVisitors, TypeQuote, TypeMusic, TypeTimeTracking,
	TypeDivider, TypeSpacer, TypeCustom,
}

// AllSectionTypes returns every section type in canonical order. The slice is
// a copy; callers may reorder it freely.
func AllSectionTypes() []SectionType {
	out := make([]SectionType, len(allSectionTypes))
	copy(out, allSectionTypes)
	return out
}

// Valid reports whether the tag names a known section type.
func (t SectionType) Valid() bool {
	_, ok := configFactories[t]
	return ok
}

// Metadata identifies a template independent of its section content.
type Metadata struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Layout carries document-level presentation hints shared by all sections.
type Layout struct {
	Width int    `json:"width,omitempty" yaml:"width,omitempty"`
	Align string `json:"align,omitempty" yaml:"align,omitempty"`
}

// Capabilities restricts what a template may contain. An empty
// SupportedSections list allows every section type.
type Capabilities struct {
	SupportedSections []SectionType `json:"supportedSections,omitempty" yaml:"supportedSections,omitempty"`
	AllowHTML         bool          `json:"allowHtml,omitempty" yaml:"allowHtml,omitempty"`
}

// Supports reports whether the capability set admits the given section type.
func (c Capabilities) Supports(t SectionType) bool {
	if len(c.SupportedSections) == 0 {
		return true
	}
	for _, supported := range c.SupportedSections {
		if supported == t {
			return true
		}
	}
	return false
}

// Template is a complete document description: identity, layout hints, a
// theme name resolved at render time, and the ordered section list.
type Template struct {
	Metadata     Metadata     `json:"metadata" yaml:"metadata"`
	Layout       Layout       `json:"layout,omitempty" yaml:"layout,omitempty"`
	Theme        string       `json:"theme,omitempty" yaml:"theme,omitempty"`
	Capabilities Capabilities `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Sections     []Section    `json:"sections" yaml:"sections"`
}

// Section is one toggleable unit of the document. Order defines the sort
// position and need not be contiguous; ties keep their array order. Title
// overrides the per-type default when non-empty. Config is never nil after
// decoding or normalization; Data is optional inline content that shadows
// profile fields during compilation.
type Section struct {
	ID      string
	Type    SectionType
	Title   string
	Enabled bool
	Order   int
	Config  Config
	Data    Data
}

// Section returns the section with the given id and whether it exists.
func (t Template) Section(id string) (Section, bool) {
	for _, sec := range t.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// SortedSections returns the sections sorted ascending by Order. The sort is
// stable: sections sharing an Order value keep their array position. The
// receiver is not modified.
func (t Template) SortedSections() []Section {
	out := make([]Section, len(t.Sections))
	copy(out, t.Sections)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// EnabledSections returns the enabled sections in sorted order.
func (t Template) EnabledSections() []Section {
	sorted := t.SortedSections()
	out := sorted[:0]
	for _, sec := range sorted {
		if sec.Enabled {
			out = append(out, sec)
		}
	}
	return out
}

// DisplayTitle returns the explicit title override or the per-type default.
func (s Section) DisplayTitle() string {
	if title := strings.TrimSpace(s.Title); title != "" {
		return title
	}
	return DefaultTitle(s.Type)
}
