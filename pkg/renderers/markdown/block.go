// Package markdown serializes block trees into GitHub-flavored markdown,
// reaching for raw HTML only where markdown has no syntax (alignment, image
// sizing). Serialization is total and pure: every block kind has a mapping,
// unknown or invisible blocks yield empty strings, and no call ever panics.
package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-readmegen/pkg/badge"
	"github.com/goliatone/go-readmegen/pkg/block"
)

// BlockMarkdown renders one block (and its visible descendants) to markdown.
func BlockMarkdown(b block.Block) string {
	if !b.Visible || b.Payload == nil {
		return ""
	}

	switch p := b.Payload.(type) {
	case block.Text:
		return textMarkdown(p)
	case block.Heading:
		return headingMarkdown(p)
	case block.Image:
		return imageMarkdown(p)
	case block.Badge:
		return badgeMarkdown(p)
	case block.Stat:
		return statMarkdown(p)
	case block.Link:
		if p.Href == "" || p.Text == "" {
			return p.Text
		}
		return fmt.Sprintf("[%s](%s)", p.Text, p.Href)
	case block.Divider:
		return "---"
	case block.Spacer:
		return spacerMarkdown(p)
	case block.Row:
		return alignWrap(joinChildren(b, " "), p.Align)
	case block.Column:
		return joinChildren(b, "\n\n")
	case block.Grid:
		return joinChildren(b, "\n\n")
	case block.Paragraph:
		return alignWrap(joinChildren(b, " "), p.Align)
	case block.List:
		return listMarkdown(b, p)
	case block.BadgeGroup:
		return alignWrap(joinChildren(b, " "), p.Align)
	case block.StatGroup:
		return alignWrap(joinChildren(b, " | "), p.Align)
	case block.SocialGroup:
		return alignWrap(joinChildren(b, " "), p.Align)
	case block.StatsCard:
		return cardMarkdown("GitHub stats", badge.StatsCardURL(badge.StatsCardParams{
			Username:          p.Username,
			Title:             p.Title,
			Theme:             p.Theme,
			ShowIcons:         p.ShowIcons,
			IncludeAllCommits: p.IncludeAllCommits,
			CountPrivate:      p.CountPrivate,
			HideBorder:        p.HideBorder,
		}))
	case block.StreakCard:
		return cardMarkdown("GitHub streak", badge.StreakCardURL(badge.StreakCardParams{
			Username:   p.Username,
			Theme:      p.Theme,
			HideBorder: p.HideBorder,
		}))
	case block.LanguagesCard:
		return cardMarkdown("Top languages", badge.LanguagesCardURL(badge.LanguagesCardParams{
			Username:   p.Username,
			Theme:      p.Theme,
			Layout:     p.Layout,
			Count:      p.Count,
			Exclude:    p.Exclude,
			HideBorder: p.HideBorder,
		}))
	case block.ContributionGraph:
		return cardMarkdown("Contribution graph", badge.GraphURL(badge.GraphParams{
			Username: p.Username,
			Theme:    p.Theme,
			Area:     p.Area,
			Height:   p.Height,
		}))
	case block.ProjectCard:
		return projectMarkdown(p)
	case block.ExperienceItem:
		return experienceMarkdown(p)
	case block.EducationItem:
		return educationMarkdown(p)
	case block.AchievementItem:
		return achievementMarkdown(p)
	case block.Custom:
		if strings.TrimSpace(p.Content) == "" {
			return ""
		}
		return p.Content
	default:
		return ""
	}
}

// SectionMarkdown assembles one section: non-empty block strings joined by
// blank lines, preceded by the section heading. A section whose blocks all
// render empty yields an empty string, heading or not.
func SectionMarkdown(s block.RenderedSection) string {
	if !s.Visible {
		return ""
	}

	var parts []string
	for _, b := range s.Blocks {
		if md := BlockMarkdown(b); md != "" {
			parts = append(parts, md)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	if title := strings.TrimSpace(s.Title); title != "" {
		parts = append([]string{"## " + title}, parts...)
	}
	return strings.Join(parts, "\n\n")
}

func joinChildren(b block.Block, sep string) string {
	var parts []string
	for _, child := range b.Children {
		if md := BlockMarkdown(child); md != "" {
			parts = append(parts, md)
		}
	}
	return strings.Join(parts, sep)
}

func textMarkdown(p block.Text) string {
	if p.Content == "" {
		return ""
	}
	switch p.Emphasis {
	case block.EmphasisBold:
		return "**" + p.Content + "**"
	case block.EmphasisItalic:
		return "*" + p.Content + "*"
	case block.EmphasisCode:
		return "`" + p.Content + "`"
	case block.EmphasisStrike:
		return "~~" + p.Content + "~~"
	default:
		return p.Content
	}
}

func headingMarkdown(p block.Heading) string {
	if p.Content == "" {
		return ""
	}
	level := p.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	if p.Align != block.AlignDefault {
		return fmt.Sprintf(`<h%d align="%s">%s</h%d>`, level, p.Align, p.Content, level)
	}
	return strings.Repeat("#", level) + " " + p.Content
}

func imageMarkdown(p block.Image) string {
	if p.Src == "" {
		return ""
	}

	if p.Width <= 0 && p.Height <= 0 && p.Align == block.AlignDefault {
		md := fmt.Sprintf("![%s](%s)", p.Alt, p.Src)
		if p.Href != "" {
			md = fmt.Sprintf("[%s](%s)", md, p.Href)
		}
		return md
	}

	var img strings.Builder
	img.WriteString(`<img src="`)
	img.WriteString(p.Src)
	img.WriteString(`" alt="`)
	img.WriteString(htmlEscape(p.Alt))
	img.WriteString(`"`)
	if p.Width > 0 {
		img.WriteString(` width="` + strconv.Itoa(p.Width) + `"`)
	}
	if p.Height > 0 {
		img.WriteString(` height="` + strconv.Itoa(p.Height) + `"`)
	}
	img.WriteString(` />`)

	out := img.String()
	if p.Href != "" {
		out = fmt.Sprintf(`<a href="%s">%s</a>`, p.Href, out)
	}
	return alignWrap(out, p.Align)
}

func badgeMarkdown(p block.Badge) string {
	if p.Message == "" {
		return ""
	}
	url := badge.URL(badge.Options{
		Label:     p.Label,
		Message:   p.Message,
		Color:     p.Color,
		Style:     p.Style,
		Logo:      p.Logo,
		LogoColor: p.LogoColor,
	})
	alt := p.Label
	if alt == "" {
		alt = p.Message
	}
	md := fmt.Sprintf("![%s](%s)", alt, url)
	if p.Href != "" {
		md = fmt.Sprintf("[%s](%s)", md, p.Href)
	}
	return md
}

func statMarkdown(p block.Stat) string {
	if p.Value == "" {
		return ""
	}
	if p.Label == "" {
		return p.Value
	}
	return fmt.Sprintf("**%s:** %s", p.Label, p.Value)
}

// spacerMarkdown approximates pixel heights with hard breaks, one per
// started 24px line.
func spacerMarkdown(p block.Spacer) string {
	breaks := (p.Height + 23) / 24
	if breaks < 1 {
		breaks = 1
	}
	return strings.Repeat("<br>", breaks)
}

func listMarkdown(b block.Block, p block.List) string {
	var items []string
	for _, child := range b.Children {
		md := BlockMarkdown(child)
		if md == "" {
			continue
		}
		if p.Ordered {
			items = append(items, fmt.Sprintf("%d. %s", len(items)+1, md))
		} else {
			items = append(items, "- "+md)
		}
	}
	return strings.Join(items, "\n")
}

func cardMarkdown(alt, url string) string {
	return fmt.Sprintf("![%s](%s)", alt, url)
}

func projectMarkdown(p block.ProjectCard) string {
	if p.Name == "" {
		return ""
	}

	title := p.Name
	if p.RepoURL != "" {
		title = fmt.Sprintf("[%s](%s)", p.Name, p.RepoURL)
	}
	parts := []string{"### " + title}

	if p.Description != "" {
		parts = append(parts, p.Description)
	}
	if len(p.Tech) > 0 {
		parts = append(parts, "**Tech:** "+strings.Join(p.Tech, ", "))
	}

	var meta []string
	if p.Stars > 0 {
		meta = append(meta, "⭐ "+humanize.Comma(int64(p.Stars)))
	}
	if p.DemoURL != "" {
		meta = append(meta, fmt.Sprintf("[Live demo](%s)", p.DemoURL))
	}
	if len(meta) > 0 {
		parts = append(parts, strings.Join(meta, " · "))
	}
	return strings.Join(parts, "\n\n")
}

func experienceMarkdown(p block.ExperienceItem) string {
	var header []string
	if p.Role != "" {
		header = append(header, "**"+p.Role+"**")
	}
	if p.Company != "" {
		header = append(header, p.Company)
	}
	if len(header) == 0 {
		return ""
	}

	line := strings.Join(header, " · ")
	if p.Period != "" {
		line += " *(" + p.Period + ")*"
	}
	parts := []string{line}

	if p.Summary != "" {
		parts = append(parts, p.Summary)
	}
	if len(p.Highlights) > 0 {
		items := make([]string, len(p.Highlights))
		for i, h := range p.Highlights {
			items[i] = "- " + h
		}
		parts = append(parts, strings.Join(items, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func educationMarkdown(p block.EducationItem) string {
	if p.School == "" {
		return ""
	}

	line := "**" + p.School + "**"
	if p.Degree != "" {
		line += ", " + p.Degree
	}
	if p.Period != "" {
		line += " *(" + p.Period + ")*"
	}
	if p.Detail != "" {
		return line + "\n\n" + p.Detail
	}
	return line
}

func achievementMarkdown(p block.AchievementItem) string {
	if p.Title == "" {
		return ""
	}

	title := p.Title
	if p.URL != "" {
		title = fmt.Sprintf("[%s](%s)", p.Title, p.URL)
	}
	line := "**" + title + "**"
	if p.Icon != "" {
		line = p.Icon + " " + line
	}
	if p.Description != "" {
		line += ": " + p.Description
	}
	return line
}

// alignWrap embeds content in a raw HTML alignment container when markdown
// itself cannot express the alignment.
func alignWrap(content string, align block.Align) string {
	if content == "" || align == block.AlignDefault {
		return content
	}
	return fmt.Sprintf("<div align=\"%s\">\n\n%s\n\n</div>", align, content)
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return strings.ReplaceAll(s, `"`, "&quot;")
}
