package block

// Samples returns one minimally populated block per kind, in AllKinds order.
// Consumer packages iterate this table in their exhaustiveness tests: a
// serializer that ignores a sampled kind fails there instead of silently
// dropping content at runtime.
func Samples() []Block {
	return []Block{
		New("s-text", Text{Content: "hello"}),
		New("s-heading", Heading{Content: "Title", Level: 2}),
		New("s-image", Image{Src: "https://example.com/a.png", Alt: "a"}),
		New("s-badge", Badge{Label: "build", Message: "passing", Color: "brightgreen"}),
		New("s-stat", Stat{Label: "Repos", Value: "42"}),
		New("s-link", Link{Text: "site", Href: "https://example.com"}),
		New("s-divider", Divider{}),
		New("s-spacer", Spacer{Height: 1}),
		New("s-row", Row{}, New("s-row-child", Text{Content: "cell"})),
		New("s-column", Column{}, New("s-column-child", Text{Content: "line"})),
		New("s-grid", Grid{Columns: 2}, New("s-grid-child", Text{Content: "cell"})),
		New("s-paragraph", Paragraph{}, New("s-paragraph-child", Text{Content: "body"})),
		New("s-list", List{}, New("s-list-child", Text{Content: "item"})),
		New("s-badge-group", BadgeGroup{}, New("s-badge-group-child", Badge{Message: "Go", Color: "00ADD8"})),
		New("s-stat-group", StatGroup{}, New("s-stat-group-child", Stat{Label: "Stars", Value: "7"})),
		New("s-social-group", SocialGroup{}, New("s-social-group-child", Link{Text: "gh", Href: "https://github.com/octocat"})),
		New("s-stats-card", StatsCard{Username: "octocat"}),
		New("s-streak-card", StreakCard{Username: "octocat"}),
		New("s-languages-card", LanguagesCard{Username: "octocat"}),
		New("s-contribution-graph", ContributionGraph{Username: "octocat"}),
		New("s-project-card", ProjectCard{Name: "demo", Description: "sample project"}),
		New("s-experience-item", ExperienceItem{Role: "Engineer", Company: "Acme"}),
		New("s-education-item", EducationItem{School: "State University"}),
		New("s-achievement-item", AchievementItem{Title: "Certified"}),
		New("s-custom", Custom{Mode: CustomMarkdown, Content: "raw"}),
	}
}
