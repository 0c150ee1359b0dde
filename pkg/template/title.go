package template

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleOverrides lists the section types whose default heading is not a
// straight title-casing of the tag. An empty value means the type renders
// without a heading by default.
var titleOverrides = map[SectionType]string{
	TypeHero:         "",
	TypeAbout:        "About Me",
	TypeGitHubStats:  "GitHub Stats",
	TypeGitHubStreak: "GitHub Streak",
	TypeSocials:      "Connect With Me",
	TypeContact:      "Get in Touch",
	TypeSupport:      "Support My Work",
	TypeMusic:        "Now Playing",
	TypeTimeTracking: "Coding Activity",
	TypeVisitors:     "",
	TypeQuote:        "",
	TypeDivider:      "",
	TypeSpacer:       "",
	TypeCustom:       "",
}

// DefaultTitle returns the heading used when a section has no title override.
// Tags title-case with dashes as word breaks: "tech-stack" becomes
// "Tech Stack".
func DefaultTitle(t SectionType) string {
	if title, ok := titleOverrides[t]; ok {
		return title
	}
	words := strings.ReplaceAll(string(t), "-", " ")
	return cases.Title(language.English).String(words)
}
