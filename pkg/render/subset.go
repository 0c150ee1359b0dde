package render

import (
	"strings"

	"github.com/goliatone/go-readmegen/pkg/block"
)

// SectionSubset restricts serialization to a slice of the document: only
// sections matching one of the ids or types survive. Matching is
// case-insensitive. An empty subset keeps everything, so the zero value is
// always safe to pass.
type SectionSubset struct {
	IDs   []string
	Types []string
}

// Empty reports whether the subset filters nothing.
func (s SectionSubset) Empty() bool {
	return len(s.IDs) == 0 && len(s.Types) == 0
}

// ApplySubset returns the output restricted to the subset, preserving
// section order. The input is not modified.
func ApplySubset(output block.Output, subset SectionSubset) block.Output {
	if subset.Empty() {
		return output
	}

	matcher := newSubsetMatcher(subset)
	kept := make([]block.RenderedSection, 0, len(output.Sections))
	for _, section := range output.Sections {
		if matcher.matches(section) {
			kept = append(kept, section)
		}
	}
	output.Sections = kept
	return output
}

type subsetMatcher struct {
	ids   map[string]struct{}
	types map[string]struct{}
}

func newSubsetMatcher(subset SectionSubset) subsetMatcher {
	return subsetMatcher{
		ids:   normalizeSet(subset.IDs),
		types: normalizeSet(subset.Types),
	}
}

func (m subsetMatcher) matches(section block.RenderedSection) bool {
	if _, ok := m.ids[strings.ToLower(section.ID)]; ok {
		return true
	}
	if _, ok := m.types[strings.ToLower(section.Type)]; ok {
		return true
	}
	return false
}

func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		if value = strings.ToLower(strings.TrimSpace(value)); value != "" {
			set[value] = struct{}{}
		}
	}
	return set
}
