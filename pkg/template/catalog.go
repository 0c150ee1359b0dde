package template

// New returns an empty template with identity filled in and the default
// theme selected. Sections are added through AddSection.
func New(id, name string) Template {
	return Template{
		Metadata: Metadata{ID: id, Name: name, Version: "1"},
		Theme:    "default",
	}
}

func preset(id string, t SectionType, order int) Section {
	cfg, _ := DefaultConfig(t)
	return Section{ID: id, Type: t, Enabled: true, Order: order, Config: cfg}
}

// Minimal is a three-section starter: header, about, social links.
func Minimal() Template {
	tpl := New("minimal", "Minimal")
	tpl.Metadata.Description = "Name, a short introduction, and where to find you."
	tpl.Sections = []Section{
		preset("hero", TypeHero, 0),
		preset("about", TypeAbout, 1),
		preset("socials", TypeSocials, 2),
	}
	return tpl
}

// Classic is the familiar profile layout: intro, stack, stats cards,
// projects, and links.
func Classic() Template {
	tpl := New("classic", "Classic")
	tpl.Metadata.Description = "The canonical profile README layout."
	tpl.Sections = []Section{
		preset("hero", TypeHero, 0),
		preset("about", TypeAbout, 1),
		preset("tech-stack", TypeTechStack, 2),
		preset("github-stats", TypeGitHubStats, 3),
		preset("top-languages", TypeTopLanguages, 4),
		preset("projects", TypeProjects, 5),
		preset("socials", TypeSocials, 6),
		preset("visitors", TypeVisitors, 7),
	}
	return tpl
}

// Full enables every content section the generator offers.
func Full() Template {
	tpl := New("full", "Full")
	tpl.Metadata.Description = "Every section enabled, ready to prune."
	tpl.Sections = []Section{
		preset("hero", TypeHero, 0),
		preset("about", TypeAbout, 1),
		preset("tech-stack", TypeTechStack, 2),
		preset("github-stats", TypeGitHubStats, 3),
		preset("github-streak", TypeGitHubStreak, 4),
		preset("top-languages", TypeTopLanguages, 5),
		preset("contribution-graph", TypeContributionGraph, 6),
		preset("projects", TypeProjects, 7),
		preset("experience", TypeExperience, 8),
		preset("education", TypeEducation, 9),
		preset("achievements", TypeAchievements, 10),
		preset("blog-posts", TypeBlogPosts, 11),
		preset("divider", TypeDivider, 12),
		preset("socials", TypeSocials, 13),
		preset("contact", TypeContact, 14),
		preset("support", TypeSupport, 15),
		preset("quote", TypeQuote, 16),
		preset("music", TypeMusic, 17),
		preset("time-tracking", TypeTimeTracking, 18),
		preset("visitors", TypeVisitors, 19),
	}
	return tpl
}

// Catalog returns the built-in starter templates.
func Catalog() []Template {
	return []Template{Minimal(), Classic(), Full()}
}

// CatalogTemplate returns the starter template with the given metadata id.
func CatalogTemplate(id string) (Template, bool) {
	for _, tpl := range Catalog() {
		if tpl.Metadata.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}
