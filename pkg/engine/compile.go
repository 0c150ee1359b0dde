package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/template"
)

// compilerFunc turns one section into its block list. Returning an empty
// slice is fine: sections with nothing to say render nothing.
type compilerFunc func(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error)

// compilers maps every section type to its compiler. A type in the template
// tables but missing here is caught by the exhaustiveness test.
var compilers = map[template.SectionType]compilerFunc{
	template.TypeHero:              compileHero,
	template.TypeAbout:             compileAbout,
	template.TypeTechStack:         compileTechStack,
	template.TypeGitHubStats:       compileGitHubStats,
	template.TypeGitHubStreak:      compileGitHubStreak,
	template.TypeTopLanguages:      compileTopLanguages,
	template.TypeContributionGraph: compileContributionGraph,
	template.TypeProjects:          compileProjects,
	template.TypeExperience:        compileExperience,
	template.TypeEducation:         compileEducation,
	template.TypeAchievements:      compileAchievements,
	template.TypeBlogPosts:         compileBlogPosts,
	template.TypeSocials:           compileSocials,
	template.TypeContact:           compileContact,
	template.TypeSupport:           compileSupport,
	template.TypeVisitors:          compileVisitors,
	template.TypeQuote:             compileQuote,
	template.TypeMusic:             compileMusic,
	template.TypeTimeTracking:      compileTimeTracking,
	template.TypeDivider:           compileDivider,
	template.TypeSpacer:            compileSpacer,
	template.TypeCustom:            compileCustom,
}

// configOf extracts the typed config, falling back to the type's default
// when the section carries none.
func configOf[C template.Config](sec template.Section) C {
	if cfg, ok := sec.Config.(C); ok {
		return cfg
	}
	if cfg, ok := template.DefaultConfig(sec.Type); ok {
		if typed, ok := cfg.(C); ok {
			return typed
		}
	}
	var zero C
	return zero
}

// dataOf extracts the typed inline data when present.
func dataOf[D template.Data](sec template.Section) (D, bool) {
	typed, ok := sec.Data.(D)
	return typed, ok
}

// username resolves a config override against the profile's GitHub handle.
func username(override string, ctx compileContext) (string, error) {
	if name := strings.TrimSpace(override); name != "" {
		return name, nil
	}
	if name := strings.TrimSpace(ctx.profile.GitHubUsername); name != "" {
		return name, nil
	}
	return "", ErrMissingUsername
}

// cardTheme resolves a config override against the selected theme's card id.
func cardTheme(override string, ctx compileContext) string {
	if t := strings.TrimSpace(override); t != "" {
		return t
	}
	if ctx.theme != nil {
		return ctx.theme.CardTheme
	}
	return ""
}

// badgeStyle resolves a config override against the selected theme's default
// shields style.
func badgeStyle(override string, ctx compileContext) string {
	if s := strings.TrimSpace(override); s != "" {
		return s
	}
	if ctx.theme != nil {
		return ctx.theme.BadgeStyle
	}
	return "for-the-badge"
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// limited caps a slice length; limit <= 0 means everything.
func limited[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func factLine(emoji, label, value string) string {
	var b strings.Builder
	if emoji != "" {
		b.WriteString(emoji)
		b.WriteString(" ")
	}
	b.WriteString(label)
	if value != "" {
		b.WriteString(": ")
		b.WriteString(value)
	}
	return b.String()
}
