package preview

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/goliatone/go-readmegen/pkg/badge"
	"github.com/goliatone/go-readmegen/pkg/block"
)

// blockNode maps one block to its rich preview node. Invisible blocks and
// blocks with nothing to show map to nil.
func blockNode(b block.Block, ctx Context) *Node {
	if !b.Visible || b.Payload == nil {
		return nil
	}

	switch p := b.Payload.(type) {
	case block.Text:
		return textNode(p)
	case block.Heading:
		return headingNode(p)
	case block.Image:
		return imageNode(p, ctx)
	case block.Badge:
		return badgeNode(p)
	case block.Stat:
		return statNode(p)
	case block.Link:
		if p.Text == "" {
			return nil
		}
		if p.Href == "" {
			return TextNode(p.Text)
		}
		return Element("a", TextNode(p.Text)).Attr("href", p.Href)
	case block.Divider:
		return Element("hr")
	case block.Spacer:
		return spacerNode(p)
	case block.Row:
		n := container("row", childNodes(b, ctx))
		if p.Gap > 0 {
			n.Style("gap", px(p.Gap))
		}
		return alignContainer(n, p.Align)
	case block.Column:
		n := container("column", childNodes(b, ctx))
		if p.Gap > 0 {
			n.Style("gap", px(p.Gap))
		}
		return n
	case block.Grid:
		return gridNode(b, p, ctx)
	case block.Paragraph:
		children := childNodes(b, ctx)
		if len(children) == 0 {
			return nil
		}
		n := Element("p").Append(spaced(children)...)
		if p.Align != block.AlignDefault {
			n.Style("text-align", string(p.Align))
		}
		return n
	case block.List:
		return listNode(b, p, ctx)
	case block.BadgeGroup:
		return alignContainer(container("badge-group", childNodes(b, ctx)), p.Align)
	case block.StatGroup:
		return alignContainer(container("stat-group", childNodes(b, ctx)), p.Align)
	case block.SocialGroup:
		return alignContainer(container("social-group", childNodes(b, ctx)), p.Align)
	case block.StatsCard:
		return cardNode(b.ID, "GitHub stats", badge.StatsCardURL(badge.StatsCardParams{
			Username:          p.Username,
			Title:             p.Title,
			Theme:             p.Theme,
			ShowIcons:         p.ShowIcons,
			IncludeAllCommits: p.IncludeAllCommits,
			CountPrivate:      p.CountPrivate,
			HideBorder:        p.HideBorder,
		}), ctx)
	case block.StreakCard:
		return cardNode(b.ID, "GitHub streak", badge.StreakCardURL(badge.StreakCardParams{
			Username:   p.Username,
			Theme:      p.Theme,
			HideBorder: p.HideBorder,
		}), ctx)
	case block.LanguagesCard:
		return cardNode(b.ID, "Top languages", badge.LanguagesCardURL(badge.LanguagesCardParams{
			Username:   p.Username,
			Theme:      p.Theme,
			Layout:     p.Layout,
			Count:      p.Count,
			Exclude:    p.Exclude,
			HideBorder: p.HideBorder,
		}), ctx)
	case block.ContributionGraph:
		return cardNode(b.ID, "Contribution graph", badge.GraphURL(badge.GraphParams{
			Username: p.Username,
			Theme:    p.Theme,
			Area:     p.Area,
			Height:   p.Height,
		}), ctx)
	case block.ProjectCard:
		return projectNode(p)
	case block.ExperienceItem:
		return experienceNode(p)
	case block.EducationItem:
		return educationNode(p)
	case block.AchievementItem:
		return achievementNode(p)
	case block.Custom:
		return customNode(p)
	default:
		return nil
	}
}

func childNodes(b block.Block, ctx Context) []*Node {
	var nodes []*Node
	for _, child := range b.Children {
		if n := blockNode(child, ctx); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func container(class string, children []*Node) *Node {
	if len(children) == 0 {
		return nil
	}
	return Element("div").Class(class).Append(children...)
}

func alignContainer(n *Node, align block.Align) *Node {
	if n == nil || align == block.AlignDefault {
		return n
	}
	switch align {
	case block.AlignCenter:
		return n.Style("justify-content", "center")
	case block.AlignRight:
		return n.Style("justify-content", "flex-end")
	default:
		return n
	}
}

// spaced interleaves single-space text nodes so inline children do not run
// together, matching the markdown join.
func spaced(children []*Node) []*Node {
	if len(children) < 2 {
		return children
	}
	out := make([]*Node, 0, len(children)*2-1)
	for i, child := range children {
		if i > 0 {
			out = append(out, TextNode(" "))
		}
		out = append(out, child)
	}
	return out
}

func textNode(p block.Text) *Node {
	if p.Content == "" {
		return nil
	}
	switch p.Emphasis {
	case block.EmphasisBold:
		return Element("strong", TextNode(p.Content))
	case block.EmphasisItalic:
		return Element("em", TextNode(p.Content))
	case block.EmphasisCode:
		return Element("code", TextNode(p.Content))
	case block.EmphasisStrike:
		return Element("del", TextNode(p.Content))
	default:
		return TextNode(p.Content)
	}
}

func headingNode(p block.Heading) *Node {
	if p.Content == "" {
		return nil
	}
	level := p.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	n := Element("h"+strconv.Itoa(level), TextNode(p.Content))
	if p.Align != block.AlignDefault {
		n.Style("text-align", string(p.Align))
	}
	return n
}

func imageNode(p block.Image, ctx Context) *Node {
	if p.Src == "" {
		return nil
	}

	img := Element("img").
		Attr("src", resolveSrc(p.Src, ctx.BaseURL)).
		Attr("alt", p.Alt).
		Attr("loading", "lazy")
	if p.Width > 0 {
		img.Attr("width", strconv.Itoa(p.Width))
	}
	if p.Height > 0 {
		img.Attr("height", strconv.Itoa(p.Height))
	}

	n := img
	if p.Href != "" {
		n = Element("a", img).Attr("href", p.Href)
	}
	if p.Align != block.AlignDefault {
		n = Element("div", n).Style("text-align", string(p.Align))
	}
	return n
}

func badgeNode(p block.Badge) *Node {
	if p.Message == "" {
		return nil
	}
	alt := p.Label
	if alt == "" {
		alt = p.Message
	}
	img := Element("img").
		Class("badge").
		Attr("src", badge.URL(badge.Options{
			Label:     p.Label,
			Message:   p.Message,
			Color:     p.Color,
			Style:     p.Style,
			Logo:      p.Logo,
			LogoColor: p.LogoColor,
		})).
		Attr("alt", alt)
	if p.Href == "" {
		return img
	}
	return Element("a", img).Attr("href", p.Href)
}

func statNode(p block.Stat) *Node {
	if p.Value == "" {
		return nil
	}
	n := Element("span").Class("stat")
	if p.Label != "" {
		n.Append(Element("strong", TextNode(p.Label+":")), TextNode(" "))
	}
	return n.Append(TextNode(p.Value))
}

func spacerNode(p block.Spacer) *Node {
	height := p.Height
	if height <= 0 {
		height = 24
	}
	return Element("div").
		Class("spacer").
		Style("height", px(height)).
		Attr("aria-hidden", "true")
}

func gridNode(b block.Block, p block.Grid, ctx Context) *Node {
	children := childNodes(b, ctx)
	if len(children) == 0 {
		return nil
	}
	columns := p.Columns
	if columns < 1 {
		columns = 1
	}
	n := Element("div").Class("grid").
		Style("grid-template-columns", "repeat("+strconv.Itoa(columns)+", minmax(0, 1fr))").
		Append(children...)
	if p.Gap > 0 {
		n.Style("gap", px(p.Gap))
	}
	return n
}

func listNode(b block.Block, p block.List, ctx Context) *Node {
	children := childNodes(b, ctx)
	if len(children) == 0 {
		return nil
	}
	tag := "ul"
	if p.Ordered {
		tag = "ol"
	}
	list := Element(tag)
	for _, child := range children {
		list.Append(Element("li", child))
	}
	return list
}

// cardNode gates remote card images behind the image lifecycle: only a loaded
// image renders, anything else shows an inert skeleton.
func cardNode(id, alt, src string, ctx Context) *Node {
	state := ctx.Images.Watch(id)
	if state != ImageLoaded {
		return Element("div").
			Class("card-skeleton").
			Attr("data-image", id).
			Attr("data-state", string(state)).
			Attr("aria-hidden", "true").
			Append(Element("span", TextNode(alt)))
	}
	return Element("img").
		Class("card").
		Attr("src", src).
		Attr("alt", alt).
		Attr("loading", "lazy").
		Attr("data-image", id)
}

func projectNode(p block.ProjectCard) *Node {
	if p.Name == "" {
		return nil
	}

	title := Element("h3")
	if p.RepoURL != "" {
		title.Append(Element("a", TextNode(p.Name)).Attr("href", p.RepoURL))
	} else {
		title.Append(TextNode(p.Name))
	}

	card := Element("article", title).Class("project-card")
	if p.Description != "" {
		card.Append(Element("p", TextNode(p.Description)).Class("description"))
	}
	if len(p.Tech) > 0 {
		card.Append(Element("p",
			Element("strong", TextNode("Tech:")),
			TextNode(" "+strings.Join(p.Tech, ", ")),
		).Class("tech"))
	}

	meta := Element("p").Class("meta")
	if p.Stars > 0 {
		meta.Append(Element("span", TextNode("⭐ "+humanize.Comma(int64(p.Stars)))).Class("stars"))
	}
	if p.DemoURL != "" {
		if len(meta.Children) > 0 {
			meta.Append(TextNode(" · "))
		}
		meta.Append(Element("a", TextNode("Live demo")).Attr("href", p.DemoURL))
	}
	if len(meta.Children) > 0 {
		card.Append(meta)
	}
	return card
}

func experienceNode(p block.ExperienceItem) *Node {
	header := Element("p").Class("experience-header")
	if p.Role != "" {
		header.Append(Element("strong", TextNode(p.Role)))
	}
	if p.Company != "" {
		if len(header.Children) > 0 {
			header.Append(TextNode(" · "))
		}
		header.Append(TextNode(p.Company))
	}
	if len(header.Children) == 0 {
		return nil
	}
	if p.Period != "" {
		header.Append(TextNode(" "), Element("em", TextNode("("+p.Period+")")))
	}

	item := Element("article", header).Class("experience-item")
	if p.Summary != "" {
		item.Append(Element("p", TextNode(p.Summary)).Class("summary"))
	}
	if len(p.Highlights) > 0 {
		highlights := Element("ul").Class("highlights")
		for _, h := range p.Highlights {
			highlights.Append(Element("li", TextNode(h)))
		}
		item.Append(highlights)
	}
	return item
}

func educationNode(p block.EducationItem) *Node {
	if p.School == "" {
		return nil
	}

	line := Element("p", Element("strong", TextNode(p.School))).Class("education-header")
	if p.Degree != "" {
		line.Append(TextNode(", " + p.Degree))
	}
	if p.Period != "" {
		line.Append(TextNode(" "), Element("em", TextNode("("+p.Period+")")))
	}

	item := Element("article", line).Class("education-item")
	if p.Detail != "" {
		item.Append(Element("p", TextNode(p.Detail)).Class("detail"))
	}
	return item
}

func achievementNode(p block.AchievementItem) *Node {
	if p.Title == "" {
		return nil
	}

	item := Element("p").Class("achievement")
	if p.Icon != "" {
		item.Append(TextNode(p.Icon + " "))
	}

	var title *Node
	if p.URL != "" {
		title = Element("a", TextNode(p.Title)).Attr("href", p.URL)
	} else {
		title = TextNode(p.Title)
	}
	item.Append(Element("strong", title))

	if p.Description != "" {
		item.Append(TextNode(": " + p.Description))
	}
	return item
}

// customNode admits user-authored content. HTML passes through sanitization;
// markdown and plain content stay inert text since the preview does not parse
// markdown.
func customNode(p block.Custom) *Node {
	if strings.TrimSpace(p.Content) == "" {
		return nil
	}
	switch p.Mode {
	case block.CustomHTML:
		cleaned := sanitizeCustomHTML(p.Content)
		if cleaned == "" {
			return nil
		}
		return Element("div", RawNode(cleaned)).Class("custom")
	default:
		return Element("div", TextNode(p.Content)).Class("custom").Class("custom-text")
	}
}

func resolveSrc(src, baseURL string) string {
	if baseURL == "" || strings.Contains(src, "://") || strings.HasPrefix(src, "data:") {
		return src
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(src, "/")
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}
