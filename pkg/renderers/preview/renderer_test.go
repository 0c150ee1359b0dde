package preview

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/render"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

func TestBlockNode_CoversEveryKind(t *testing.T) {
	for _, sample := range block.Samples() {
		if n := BlockNode(sample, Context{}); n == nil {
			t.Errorf("kind %q mapped to nil node", sample.Kind)
		}
	}
}

func TestBlockNode_AgreesWithMarkdownOnVisibility(t *testing.T) {
	blocks := block.Samples()
	blocks = append(blocks,
		block.New("empty-text", block.Text{}),
		block.New("empty-image", block.Image{}),
		block.New("hidden", block.Text{Content: "x"}).Hidden(),
	)
	for _, b := range blocks {
		md := markdown.BlockMarkdown(b)
		n := BlockNode(b, Context{})
		if (md == "") != (n == nil) {
			t.Errorf("block %q: markdown empty=%v but node nil=%v", b.ID, md == "", n == nil)
		}
	}
}

func TestBlockNode_EmphasisTags(t *testing.T) {
	tests := []struct {
		emphasis block.Emphasis
		want     string
	}{
		{block.EmphasisBold, "<strong>hi</strong>"},
		{block.EmphasisItalic, "<em>hi</em>"},
		{block.EmphasisCode, "<code>hi</code>"},
		{block.EmphasisStrike, "<del>hi</del>"},
		{block.EmphasisNone, "hi"},
	}
	for _, tt := range tests {
		n := BlockNode(block.New("t", block.Text{Content: "hi", Emphasis: tt.emphasis}), Context{})
		if got := n.HTML(); got != tt.want {
			t.Errorf("emphasis %q = %q, want %q", tt.emphasis, got, tt.want)
		}
	}
}

func TestBlockNode_NestedVisibilityPrunes(t *testing.T) {
	row := block.New("row", block.Row{},
		block.New("a", block.Text{Content: "visible"}),
		block.New("b", block.Text{Content: "hidden"}).Hidden(),
	)
	html := BlockNode(row, Context{}).HTML()
	if strings.Contains(html, "hidden") {
		t.Fatalf("hidden child leaked into preview: %s", html)
	}
	if !strings.Contains(html, "visible") {
		t.Fatalf("visible child missing: %s", html)
	}
}

func TestBlockNode_BaseURLResolvesRelativeSources(t *testing.T) {
	n := BlockNode(block.New("img", block.Image{Src: "avatars/ada.png", Alt: "a"}), Context{BaseURL: "https://cdn.example.com/"})
	html := n.HTML()
	if !strings.Contains(html, `src="https://cdn.example.com/avatars/ada.png"`) {
		t.Fatalf("relative src not resolved: %s", html)
	}

	absolute := BlockNode(block.New("img", block.Image{Src: "https://example.com/a.png", Alt: "a"}), Context{BaseURL: "https://cdn.example.com/"})
	if !strings.Contains(absolute.HTML(), `src="https://example.com/a.png"`) {
		t.Fatalf("absolute src rewritten: %s", absolute.HTML())
	}
}

func TestCardNode_Lifecycle(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Minute))
	defer tracker.Close()
	ctx := Context{Images: tracker}
	card := block.New("stats-1", block.StatsCard{Username: "octocat"})

	first := BlockNode(card, ctx).HTML()
	if !strings.Contains(first, "card-skeleton") || !strings.Contains(first, `data-state="loading"`) {
		t.Fatalf("pending card should render loading skeleton: %s", first)
	}
	if strings.Contains(first, "<img") {
		t.Fatalf("pending card leaked an img: %s", first)
	}

	tracker.Complete("stats-1", true)
	loaded := BlockNode(card, ctx).HTML()
	if !strings.Contains(loaded, "<img") || !strings.Contains(loaded, "github-readme-stats.vercel.app") {
		t.Fatalf("loaded card should render img: %s", loaded)
	}

	failed := block.New("stats-2", block.StatsCard{Username: "octocat"})
	tracker.Watch("stats-2")
	tracker.Complete("stats-2", false)
	errored := BlockNode(failed, ctx).HTML()
	if !strings.Contains(errored, `data-state="error"`) {
		t.Fatalf("failed card should render error skeleton: %s", errored)
	}
}

func TestCardNode_NilTrackerRendersImages(t *testing.T) {
	html := BlockNode(block.New("graph", block.ContributionGraph{Username: "octocat"}), Context{}).HTML()
	if !strings.Contains(html, "<img") {
		t.Fatalf("static render should emit img: %s", html)
	}
	if strings.Contains(html, "card-skeleton") {
		t.Fatalf("static render should not emit skeletons: %s", html)
	}
}

func TestBlockNode_BadgesExemptFromLifecycle(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Minute))
	defer tracker.Close()

	html := BlockNode(block.New("b", block.Badge{Message: "passing"}), Context{Images: tracker}).HTML()
	if !strings.Contains(html, "<img") || strings.Contains(html, "card-skeleton") {
		t.Fatalf("badge should bypass image lifecycle: %s", html)
	}
}

func TestCustomNode_SanitizesHTML(t *testing.T) {
	dirty := `<details open><summary>More</summary><script>alert(1)</script><img src="x.png" align="center"></details>`
	n := BlockNode(block.New("c", block.Custom{Mode: block.CustomHTML, Content: dirty}), Context{})
	html := n.HTML()
	if strings.Contains(html, "<script") {
		t.Fatalf("script survived sanitization: %s", html)
	}
	if !strings.Contains(html, "<details") || !strings.Contains(html, "<summary>") {
		t.Fatalf("safe elements stripped: %s", html)
	}
	if !strings.Contains(html, `align="center"`) {
		t.Fatalf("align attribute stripped: %s", html)
	}
}

func TestCustomNode_MarkdownStaysInert(t *testing.T) {
	n := BlockNode(block.New("c", block.Custom{Mode: block.CustomMarkdown, Content: "## raw <b>markdown</b>"}), Context{})
	html := n.HTML()
	if strings.Contains(html, "<b>") {
		t.Fatalf("markdown-mode content rendered as html: %s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;") {
		t.Fatalf("markdown-mode content not escaped: %s", html)
	}
}

func TestSectionNode_Assembly(t *testing.T) {
	sec := block.RenderedSection{
		ID: "about", Type: "about", Title: "About Me", Visible: true,
		Blocks: []block.Block{block.New("t", block.Text{Content: "hello"})},
	}
	html := SectionNode(sec, Context{}).HTML()
	for _, want := range []string{`data-section="about"`, `data-type="about"`, "<h2", "About Me", "hello"} {
		if !strings.Contains(html, want) {
			t.Errorf("section missing %q: %s", want, html)
		}
	}
}

func TestSectionNode_EmptyCollapses(t *testing.T) {
	sec := block.RenderedSection{
		ID: "about", Type: "about", Title: "About Me", Visible: true,
		Blocks: []block.Block{block.New("t", block.Text{Content: "x"}).Hidden()},
	}
	if n := SectionNode(sec, Context{}); n != nil {
		t.Fatalf("empty section produced %s", n.HTML())
	}

	sec.Visible = false
	if n := SectionNode(sec, Context{}); n != nil {
		t.Fatalf("invisible section produced %s", n.HTML())
	}
}

func TestSectionNode_AsMarkdownShowsExportSource(t *testing.T) {
	sec := block.RenderedSection{
		ID: "about", Type: "about", Title: "About Me", Visible: true,
		Blocks: []block.Block{block.New("t", block.Text{Content: "hello", Emphasis: block.EmphasisBold})},
	}
	n := SectionNode(sec, Context{AsMarkdown: true})
	html := n.HTML()
	if !strings.Contains(html, "markdown-source") {
		t.Fatalf("markdown view missing source container: %s", html)
	}
	if !strings.Contains(html, "## About Me") || !strings.Contains(html, "**hello**") {
		t.Fatalf("markdown view should show the exact export text: %s", html)
	}
	if got, want := html, markdown.SectionMarkdown(sec); !strings.Contains(got, want) {
		t.Fatalf("markdown view diverged from serializer:\n%s\nwant to contain\n%s", got, want)
	}
}

func TestDocumentNode_Root(t *testing.T) {
	output := block.Output{
		TemplateID: "classic",
		Theme:      "dark",
		Sections: []block.RenderedSection{
			{ID: "hero", Type: "hero", Visible: true, Blocks: []block.Block{block.New("h", block.Heading{Content: "Hi", Level: 1})}},
			{ID: "hidden", Type: "about", Visible: false},
		},
	}
	html := DocumentNode(output, Context{}).HTML()
	if !strings.HasPrefix(html, `<main class="readme-preview" data-theme="dark">`) {
		t.Fatalf("document root = %s", html)
	}
	if !strings.Contains(html, `data-section="hero"`) {
		t.Fatalf("visible section missing: %s", html)
	}
	if strings.Contains(html, `data-section="hidden"`) {
		t.Fatalf("invisible section leaked: %s", html)
	}
}

func TestRenderer_Page(t *testing.T) {
	resolved, err := theme.NewResolver().Resolve("dark", "")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}

	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output := block.Output{
		TemplateID: "classic",
		Theme:      "dark",
		Sections: []block.RenderedSection{
			{ID: "hero", Type: "hero", Visible: true, Blocks: []block.Block{block.New("h", block.Heading{Content: "Hi there", Level: 1})}},
		},
	}

	page, err := renderer.Page(output, Context{Theme: resolved})
	if err != nil {
		t.Fatalf("page: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		`data-theme="dark"`,
		"--bg:",
		"readme-preview",
		"Hi there",
		"README preview · classic",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderer_RegistryContract(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	var r render.Renderer = renderer
	if r.Name() != "preview" {
		t.Fatalf("name = %q", r.Name())
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", r.ContentType())
	}

	out, err := r.Render(context.Background(), block.Output{
		Sections: []block.RenderedSection{
			{ID: "hero", Type: "hero", Visible: true, Blocks: []block.Block{block.New("h", block.Heading{Content: "Hello", Level: 1})}},
		},
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Hello") {
		t.Fatalf("render output missing content")
	}
}

func TestHTMLDocument_Convenience(t *testing.T) {
	page, err := HTMLDocument(block.Output{
		Sections: []block.RenderedSection{
			{ID: "hero", Type: "hero", Visible: true, Blocks: []block.Block{block.New("h", block.Heading{Content: "Hi", Level: 1})}},
		},
	}, Context{})
	if err != nil {
		t.Fatalf("html document: %v", err)
	}
	if !strings.Contains(page, "<!DOCTYPE html>") || !strings.Contains(page, "Hi") {
		t.Fatalf("document incomplete:\n%s", page)
	}
}
