package engine

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-readmegen/pkg/badge"
	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/template"
)

func compileHero(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.HeroConfig](sec)
	data, _ := dataOf[template.HeroData](sec)

	name := firstNonEmpty(data.Name, ctx.profile.DisplayName())
	headline := firstNonEmpty(data.Headline, ctx.profile.Headline)
	avatar := firstNonEmpty(data.Avatar, ctx.profile.AvatarURL)

	var blocks []block.Block
	if cfg.ShowAvatar && avatar != "" {
		size := cfg.AvatarSize
		if size <= 0 {
			size = 96
		}
		blocks = append(blocks, block.New(ids.next(), block.Image{
			Src:   avatar,
			Alt:   name,
			Width: size,
			Align: block.AlignCenter,
		}))
	}

	greeting := "Hi there 👋"
	if name != "" {
		greeting = "Hi there 👋, I'm " + name
	}
	blocks = append(blocks, block.New(ids.next(), block.Heading{
		Content: greeting,
		Level:   1,
		Align:   block.AlignCenter,
	}))

	if cfg.Typing {
		lines := cfg.Lines
		if len(lines) == 0 && headline != "" {
			lines = []string{headline}
		}
		if len(lines) > 0 {
			blocks = append(blocks, block.New(ids.next(), block.Image{
				Src:   badge.TypingURL(badge.TypingParams{Lines: lines, Center: true}),
				Alt:   strings.Join(lines, " · "),
				Align: block.AlignCenter,
			}))
		}
	} else if headline != "" {
		blocks = append(blocks, block.New(ids.next(), block.Heading{
			Content: headline,
			Level:   3,
			Align:   block.AlignCenter,
		}))
	}

	if cfg.ShowStats {
		if stats := heroStats(ctx.profile.Stats, ids); stats != nil {
			blocks = append(blocks, *stats)
		}
	}
	return blocks, nil
}

// heroStats builds the counter row; nil when every counter is zero.
func heroStats(stats profile.Stats, ids *idAllocator) *block.Block {
	groupID := ids.next()
	var children []block.Block
	if stats.Followers > 0 {
		children = append(children, block.New(ids.next(), block.Stat{
			Label: "Followers", Value: humanize.Comma(int64(stats.Followers)),
		}))
	}
	if stats.TotalStars > 0 {
		children = append(children, block.New(ids.next(), block.Stat{
			Label: "Total Stars", Value: humanize.Comma(int64(stats.TotalStars)),
		}))
	}
	if stats.Repos > 0 {
		children = append(children, block.New(ids.next(), block.Stat{
			Label: "Repositories", Value: humanize.Comma(int64(stats.Repos)),
		}))
	}
	if len(children) == 0 {
		return nil
	}
	group := block.New(groupID, block.StatGroup{Align: block.AlignCenter}, children...)
	return &group
}

func compileAbout(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.AboutConfig](sec)
	data, _ := dataOf[template.AboutData](sec)

	paragraphs := data.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = ctx.profile.About
	}
	facts := data.Facts
	if len(facts) == 0 {
		facts = ctx.profile.Facts
	}

	var blocks []block.Block
	switch {
	case len(paragraphs) == 0:
	case cfg.Style == "list":
		listID := ids.next()
		items := make([]block.Block, 0, len(paragraphs))
		for _, para := range paragraphs {
			items = append(items, block.New(ids.next(), block.Text{Content: para}))
		}
		blocks = append(blocks, block.New(listID, block.List{}, items...))
	default:
		for _, para := range paragraphs {
			paraID := ids.next()
			child := block.New(ids.next(), block.Text{Content: para})
			blocks = append(blocks, block.New(paraID, block.Paragraph{}, child))
		}
	}

	if cfg.ShowFacts && len(facts) > 0 {
		listID := ids.next()
		items := make([]block.Block, 0, len(facts))
		for _, fact := range facts {
			items = append(items, block.New(ids.next(), block.Text{
				Content: factLine(fact.Emoji, fact.Label, fact.Value),
			}))
		}
		blocks = append(blocks, block.New(listID, block.List{}, items...))
	}
	return blocks, nil
}

func compileTechStack(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.TechStackConfig](sec)
	data, _ := dataOf[template.TechStackData](sec)

	items := data.Items
	if len(items) == 0 {
		items = ctx.profile.TechStack
	}
	if len(items) == 0 {
		return nil, nil
	}

	style := badgeStyle(cfg.BadgeStyle, ctx)
	techBadge := func(item profile.TechItem) block.Block {
		color := item.Color
		if color == "" {
			color = "555555"
		}
		return block.New(ids.next(), block.Badge{
			Message:   item.Name,
			Color:     color,
			Style:     style,
			Logo:      item.LogoSlug(),
			LogoColor: "white",
		})
	}

	if !cfg.GroupByCategory {
		groupID := ids.next()
		badges := make([]block.Block, 0, len(items))
		for _, item := range items {
			badges = append(badges, techBadge(item))
		}
		return []block.Block{block.New(groupID, block.BadgeGroup{}, badges...)}, nil
	}

	// Buckets keep first-appearance order; uncategorised items sort last.
	var order []string
	buckets := make(map[string][]profile.TechItem)
	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			category = "other"
		}
		if _, seen := buckets[category]; !seen {
			order = append(order, category)
		}
		buckets[category] = append(buckets[category], item)
	}

	var blocks []block.Block
	for _, category := range order {
		blocks = append(blocks, block.New(ids.next(), block.Heading{
			Content: titleCase(category),
			Level:   3,
		}))
		groupID := ids.next()
		badges := make([]block.Block, 0, len(buckets[category]))
		for _, item := range buckets[category] {
			badges = append(badges, techBadge(item))
		}
		blocks = append(blocks, block.New(groupID, block.BadgeGroup{}, badges...))
	}
	return blocks, nil
}

func compileProjects(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.ProjectsConfig](sec)
	data, _ := dataOf[template.ProjectsData](sec)

	projects := data.Projects
	if len(projects) == 0 {
		projects = ctx.profile.Projects
	}
	projects = limited(projects, cfg.Limit)
	if len(projects) == 0 {
		return nil, nil
	}

	gridID := ""
	if cfg.Columns > 1 {
		gridID = ids.next()
	}

	cards := make([]block.Block, 0, len(projects))
	for _, project := range projects {
		payload := block.ProjectCard{
			Name:        project.Name,
			Description: project.Description,
			RepoURL:     project.RepoURL,
			DemoURL:     project.DemoURL,
		}
		if cfg.ShowTech {
			payload.Tech = project.Tech
		}
		if cfg.ShowStars {
			payload.Stars = project.Stars
		}
		cards = append(cards, block.New(ids.next(), payload))
	}

	if gridID != "" {
		return []block.Block{block.New(gridID, block.Grid{Columns: cfg.Columns}, cards...)}, nil
	}
	return cards, nil
}

func compileExperience(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.ExperienceConfig](sec)
	data, _ := dataOf[template.ExperienceData](sec)

	entries := data.Entries
	if len(entries) == 0 {
		entries = ctx.profile.Experience
	}
	entries = limited(entries, cfg.Limit)

	blocks := make([]block.Block, 0, len(entries))
	for _, entry := range entries {
		payload := block.ExperienceItem{
			Role:    entry.Role,
			Company: entry.Company,
			Period:  entry.Period,
			Summary: entry.Summary,
		}
		if cfg.ShowHighlights {
			payload.Highlights = entry.Highlights
		}
		blocks = append(blocks, block.New(ids.next(), payload))
	}
	return blocks, nil
}

func compileEducation(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.EducationConfig](sec)
	data, _ := dataOf[template.EducationData](sec)

	entries := data.Entries
	if len(entries) == 0 {
		entries = ctx.profile.Education
	}
	entries = limited(entries, cfg.Limit)

	blocks := make([]block.Block, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, block.New(ids.next(), block.EducationItem{
			School: entry.School,
			Degree: entry.Degree,
			Period: entry.Period,
			Detail: entry.Detail,
		}))
	}
	return blocks, nil
}

func compileAchievements(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.AchievementsConfig](sec)
	data, _ := dataOf[template.AchievementsData](sec)

	entries := data.Entries
	if len(entries) == 0 {
		entries = ctx.profile.Achievements
	}
	entries = limited(entries, cfg.Limit)

	blocks := make([]block.Block, 0, len(entries))
	for _, entry := range entries {
		payload := block.AchievementItem{
			Title:       entry.Title,
			Description: entry.Description,
			URL:         entry.URL,
		}
		if cfg.ShowIcons {
			payload.Icon = entry.Icon
		}
		blocks = append(blocks, block.New(ids.next(), payload))
	}
	return blocks, nil
}

func compileBlogPosts(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.BlogPostsConfig](sec)
	data, _ := dataOf[template.BlogPostsData](sec)

	posts := data.Posts
	if len(posts) == 0 {
		posts = ctx.profile.BlogPosts
	}
	posts = limited(posts, cfg.Limit)

	if len(posts) == 0 {
		// With a feed integration the list is filled externally; emit the
		// marker pair the updater action looks for.
		if ctx.profile.Integrations.BlogFeed != "" {
			return []block.Block{block.New(ids.next(), block.Custom{
				Mode:    block.CustomMarkdown,
				Content: "<!-- BLOG-POST-LIST:START -->\n<!-- BLOG-POST-LIST:END -->",
			})}, nil
		}
		return nil, nil
	}

	listID := ids.next()
	items := make([]block.Block, 0, len(posts))
	for _, post := range posts {
		text := post.Title
		if cfg.ShowDates && post.Date != "" {
			text = post.Title + " (" + post.Date + ")"
		}
		items = append(items, block.New(ids.next(), block.Link{Text: text, Href: post.URL}))
	}
	return []block.Block{block.New(listID, block.List{}, items...)}, nil
}

func compileSocials(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.SocialsConfig](sec)
	data, _ := dataOf[template.SocialsData](sec)

	links := data.Links
	if len(links) == 0 {
		links = ctx.profile.Socials
	}
	if len(links) == 0 {
		return nil, nil
	}

	groupID := ids.next()
	style := badgeStyle("", ctx)
	children := make([]block.Block, 0, len(links))
	for _, link := range links {
		platform := lookupPlatform(link.Platform)
		href := firstNonEmpty(link.URL, platform.profileURL(link.Username))
		if href == "" {
			continue
		}
		if cfg.Style == "icons" {
			size := cfg.IconSize
			if size <= 0 {
				size = 32
			}
			children = append(children, block.New(ids.next(), block.Image{
				Src:   platform.iconURL(),
				Alt:   platform.display,
				Href:  href,
				Width: size,
			}))
			continue
		}
		children = append(children, block.New(ids.next(), block.Badge{
			Message:   platform.display,
			Color:     platform.color,
			Style:     style,
			Logo:      platform.slug,
			LogoColor: "white",
			Href:      href,
		}))
	}
	if len(children) == 0 {
		return nil, nil
	}

	group := block.SocialGroup{Align: block.AlignCenter}
	if cfg.Style == "icons" {
		group.IconSize = cfg.IconSize
	}
	return []block.Block{block.New(groupID, group, children...)}, nil
}

func compileContact(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.ContactConfig](sec)
	data, _ := dataOf[template.ContactData](sec)

	email := firstNonEmpty(data.Email, ctx.profile.Email)
	website := firstNonEmpty(data.Website, ctx.profile.Website)
	location := firstNonEmpty(data.Location, ctx.profile.Location)

	listID := ids.next()
	var items []block.Block
	if cfg.ShowEmail && email != "" {
		items = append(items, block.New(ids.next(), block.Link{
			Text: "📫 " + email,
			Href: "mailto:" + email,
		}))
	}
	if cfg.ShowWebsite && website != "" {
		items = append(items, block.New(ids.next(), block.Link{
			Text: "🌐 " + displayURL(website),
			Href: website,
		}))
	}
	if cfg.ShowLocation && location != "" {
		items = append(items, block.New(ids.next(), block.Text{Content: "📍 " + location}))
	}
	if len(items) == 0 {
		return nil, nil
	}
	return []block.Block{block.New(listID, block.List{}, items...)}, nil
}

func compileSupport(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.SupportConfig](sec)
	data, ok := dataOf[template.SupportData](sec)
	if !ok || len(data.Links) == 0 {
		return nil, nil
	}

	var blocks []block.Block
	if msg := strings.TrimSpace(data.Message); msg != "" {
		blocks = append(blocks, block.New(ids.next(), block.Text{Content: msg}))
	}

	groupID := ids.next()
	style := badgeStyle(cfg.Style, ctx)
	badges := make([]block.Block, 0, len(data.Links))
	for _, link := range data.Links {
		platform := lookupFunding(link.Platform)
		badges = append(badges, block.New(ids.next(), block.Badge{
			Message:   platform.display,
			Color:     platform.color,
			Style:     style,
			Logo:      platform.slug,
			LogoColor: "white",
			Href:      link.URL,
		}))
	}
	blocks = append(blocks, block.New(groupID, block.BadgeGroup{}, badges...))
	return blocks, nil
}

func displayURL(raw string) string {
	display := strings.TrimPrefix(raw, "https://")
	display = strings.TrimPrefix(display, "http://")
	return strings.TrimSuffix(display, "/")
}
