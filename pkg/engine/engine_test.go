package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/template"
)

func testProfile(t *testing.T) profile.Profile {
	t.Helper()
	return profile.Profile{
		Name:           "Ada Lovelace",
		Headline:       "Engine programmer",
		Location:       "London",
		Email:          "ada@example.com",
		Website:        "https://ada.dev",
		AvatarURL:      "https://example.com/ada.png",
		GitHubUsername: "adalovelace",
		About:          []string{"I write programs for machines that do not exist yet."},
		Facts: []profile.Fact{
			{Emoji: "🌱", Label: "Learning", Value: "Go"},
		},
		TechStack: []profile.TechItem{
			{Name: "Go", Category: "languages", Color: "00ADD8"},
			{Name: "Postgres", Category: "databases", Color: "4169E1"},
		},
		Projects: []profile.Project{
			{Name: "analytical-engine", Description: "A general-purpose computer", RepoURL: "https://github.com/adalovelace/analytical-engine", Stars: 1842},
		},
		Socials: []profile.SocialLink{
			{Platform: "github", Username: "adalovelace"},
			{Platform: "mastodon", URL: "https://types.pl/@ada"},
		},
		Stats: profile.Stats{Followers: 1204, TotalStars: 15430},
	}
}

func testTemplate(t *testing.T, sections ...template.Section) template.Template {
	t.Helper()
	tpl := template.New("test", "Test")
	tpl.Sections = sections
	return tpl
}

func section(id string, st template.SectionType, order int) template.Section {
	cfg, _ := template.DefaultConfig(st)
	return template.Section{ID: id, Type: st, Enabled: true, Order: order, Config: cfg}
}

func findSection(t *testing.T, out *block.Output, id string) block.RenderedSection {
	t.Helper()
	for _, sec := range out.Sections {
		if sec.ID == id {
			return sec
		}
	}
	t.Fatalf("section %q not in output", id)
	return block.RenderedSection{}
}

func TestRender_Classic(t *testing.T) {
	result := Render(template.Classic(), testProfile(t), Options{})

	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if got, want := len(result.Output.Sections), 8; got != want {
		t.Fatalf("sections = %d, want %d", got, want)
	}

	hero := findSection(t, result.Output, "hero")
	if hero.Blocks[0].Kind != block.KindImage {
		t.Errorf("hero first block = %s, want avatar image", hero.Blocks[0].Kind)
	}
	heading, ok := hero.Blocks[1].Payload.(block.Heading)
	if !ok || !strings.Contains(heading.Content, "Ada Lovelace") {
		t.Errorf("hero heading = %#v", hero.Blocks[1].Payload)
	}

	stats := findSection(t, result.Output, "github-stats")
	card, ok := stats.Blocks[0].Payload.(block.StatsCard)
	if !ok {
		t.Fatalf("stats block = %#v", stats.Blocks[0].Payload)
	}
	if card.Username != "adalovelace" {
		t.Errorf("stats username = %q, want profile fallback", card.Username)
	}
	if card.Theme != "default" {
		t.Errorf("stats theme = %q, want default card theme", card.Theme)
	}
}

func TestRender_Idempotent(t *testing.T) {
	tpl := template.Full()
	prof := testProfile(t)

	first := Render(tpl, prof, Options{})
	second := Render(tpl, prof, Options{})

	if !first.Success || !second.Success {
		t.Fatalf("renders failed: %v / %v", first.Errors, second.Errors)
	}
	if diff := cmp.Diff(first.Output, second.Output); diff != "" {
		t.Errorf("outputs differ between identical renders (-first +second):\n%s", diff)
	}
}

func TestRender_SectionOrderFollowsSortedOrder(t *testing.T) {
	tpl := testTemplate(t,
		section("c", template.TypeAbout, 5),
		section("a", template.TypeHero, 0),
		section("b", template.TypeDivider, 3),
	)

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	var ids []string
	for _, sec := range result.Output.Sections {
		ids = append(ids, sec.ID)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Errorf("section order (-want +got):\n%s", diff)
	}
}

func TestRender_DuplicateOrderKeepsArrayPosition(t *testing.T) {
	tpl := testTemplate(t,
		section("first", template.TypeDivider, 1),
		section("second", template.TypeSpacer, 1),
		section("zero", template.TypeHero, 0),
	)

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	var ids []string
	for _, sec := range result.Output.Sections {
		ids = append(ids, sec.ID)
	}
	if diff := cmp.Diff([]string{"zero", "first", "second"}, ids); diff != "" {
		t.Errorf("tie-break order (-want +got):\n%s", diff)
	}
}

func TestRender_SkipsDisabledSections(t *testing.T) {
	tpl := testTemplate(t,
		section("hero", template.TypeHero, 0),
		section("about", template.TypeAbout, 1),
	)
	tpl, err := tpl.WithSectionEnabled("about", false)
	if err != nil {
		t.Fatalf("disable: %v", err)
	}

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}
	if len(result.Output.Sections) != 1 || result.Output.Sections[0].ID != "hero" {
		t.Errorf("disabled section leaked into output: %+v", result.Output.Sections)
	}
}

func TestRender_ValidationFailure(t *testing.T) {
	tpl := testTemplate(t,
		section("dup", template.TypeHero, 0),
		section("dup", template.TypeAbout, 1),
	)

	result := Render(tpl, testProfile(t), Options{})
	if result.Success {
		t.Fatal("expected validation failure")
	}
	if result.Output != nil {
		t.Error("failed render must not produce output")
	}

	var vErr *ValidationError
	if len(result.Errors) != 1 || !errors.As(result.Errors[0], &vErr) {
		t.Fatalf("errors = %v, want one ValidationError", result.Errors)
	}
	if !strings.Contains(vErr.Reason, "duplicate") {
		t.Errorf("reason = %q", vErr.Reason)
	}
}

func TestRender_SkipValidationRendersAnyway(t *testing.T) {
	tpl := testTemplate(t,
		section("dup", template.TypeHero, 0),
		section("dup", template.TypeAbout, 1),
	)

	result := Render(tpl, testProfile(t), Options{SkipValidation: true})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}
	if len(result.Output.Sections) != 2 {
		t.Errorf("sections = %d, want 2", len(result.Output.Sections))
	}
}

func TestRender_ContinueOnErrorDropsOnlyFailingSection(t *testing.T) {
	prof := testProfile(t)
	prof.GitHubUsername = ""

	tpl := testTemplate(t,
		section("hero", template.TypeHero, 0),
		section("stats", template.TypeGitHubStats, 1),
		section("about", template.TypeAbout, 2),
	)

	result := Render(tpl, prof, Options{ContinueOnError: true})
	if !result.Success {
		t.Fatalf("expected success with recorded errors, got failure: %v", result.Errors)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", result.Errors)
	}

	var secErr *SectionError
	if !errors.As(result.Errors[0], &secErr) {
		t.Fatalf("error type = %T", result.Errors[0])
	}
	if secErr.SectionID != "stats" {
		t.Errorf("failing section = %q, want stats", secErr.SectionID)
	}
	if !errors.Is(secErr, ErrMissingUsername) {
		t.Errorf("cause = %v, want ErrMissingUsername", secErr.Err)
	}

	var ids []string
	for _, sec := range result.Output.Sections {
		ids = append(ids, sec.ID)
	}
	if diff := cmp.Diff([]string{"hero", "about"}, ids); diff != "" {
		t.Errorf("surviving sections (-want +got):\n%s", diff)
	}
}

func TestRender_AbortsOnSectionErrorByDefault(t *testing.T) {
	prof := testProfile(t)
	prof.GitHubUsername = ""

	tpl := testTemplate(t,
		section("hero", template.TypeHero, 0),
		section("stats", template.TypeGitHubStats, 1),
	)

	result := Render(tpl, prof, Options{})
	if result.Success {
		t.Fatal("expected failure")
	}
	if result.Output != nil {
		t.Error("aborted render must not produce output")
	}
	var secErr *SectionError
	if len(result.Errors) != 1 || !errors.As(result.Errors[0], &secErr) {
		t.Fatalf("errors = %v", result.Errors)
	}
}

func TestRender_RecoversCompilerPanic(t *testing.T) {
	original := compilers[template.TypeDivider]
	compilers[template.TypeDivider] = func(compileContext, template.Section, *idAllocator) ([]block.Block, error) {
		panic("exploding divider")
	}
	defer func() { compilers[template.TypeDivider] = original }()

	tpl := testTemplate(t,
		section("hero", template.TypeHero, 0),
		section("boom", template.TypeDivider, 1),
	)

	result := Render(tpl, testProfile(t), Options{ContinueOnError: true})
	if !result.Success {
		t.Fatalf("expected recovery, got failure: %v", result.Errors)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0].Error(), "panic") {
		t.Fatalf("errors = %v", result.Errors)
	}
	if len(result.Output.Sections) != 1 {
		t.Errorf("sections = %d, want 1 survivor", len(result.Output.Sections))
	}
}

func TestRender_DeterministicBlockIDs(t *testing.T) {
	tpl := testTemplate(t, section("hero", template.TypeHero, 0))

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	hero := findSection(t, result.Output, "hero")
	wantPrefix := "hero-b"
	seen := make(map[string]bool)
	for _, b := range hero.Blocks {
		block.Walk(b, func(node block.Block) bool {
			if !strings.HasPrefix(node.ID, wantPrefix) {
				t.Errorf("block id %q lacks prefix %q", node.ID, wantPrefix)
			}
			if seen[node.ID] {
				t.Errorf("duplicate block id %q", node.ID)
			}
			seen[node.ID] = true
			return true
		})
	}
	if hero.Blocks[0].ID != "hero-b0" {
		t.Errorf("first id = %q, want hero-b0", hero.Blocks[0].ID)
	}
}

func TestRender_ThemeOptionOverridesTemplate(t *testing.T) {
	tpl := testTemplate(t, section("stats", template.TypeGitHubStats, 0))
	tpl.Theme = "dark"

	result := Render(tpl, testProfile(t), Options{Theme: "radical"})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}
	if result.Output.Theme != "radical" {
		t.Errorf("output theme = %q, want radical", result.Output.Theme)
	}

	card := findSection(t, result.Output, "stats").Blocks[0].Payload.(block.StatsCard)
	if card.Theme != "radical" {
		t.Errorf("card theme = %q, want radical", card.Theme)
	}
}

func TestRender_UnknownThemeFailsValidation(t *testing.T) {
	tpl := testTemplate(t, section("hero", template.TypeHero, 0))

	result := Render(tpl, testProfile(t), Options{Theme: "neon"})
	if result.Success {
		t.Fatal("expected failure")
	}
	var vErr *ValidationError
	if len(result.Errors) != 1 || !errors.As(result.Errors[0], &vErr) || vErr.Field != "theme" {
		t.Fatalf("errors = %v", result.Errors)
	}
}

func TestRender_MusicWithoutIntegrationRendersNothing(t *testing.T) {
	tpl := testTemplate(t, section("music", template.TypeMusic, 0))

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}
	music := findSection(t, result.Output, "music")
	if len(music.Blocks) != 0 {
		t.Errorf("music blocks = %d, want 0 without a Spotify id", len(music.Blocks))
	}
}

func TestRender_BlogFeedMarkers(t *testing.T) {
	prof := testProfile(t)
	prof.Integrations.BlogFeed = "https://ada.dev/rss.xml"

	tpl := testTemplate(t, section("posts", template.TypeBlogPosts, 0))

	result := Render(tpl, prof, Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	posts := findSection(t, result.Output, "posts")
	if len(posts.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1 marker block", len(posts.Blocks))
	}
	custom, ok := posts.Blocks[0].Payload.(block.Custom)
	if !ok || !strings.Contains(custom.Content, "BLOG-POST-LIST:START") {
		t.Errorf("marker payload = %#v", posts.Blocks[0].Payload)
	}
}

func TestCompilers_CoverEverySectionType(t *testing.T) {
	for _, st := range template.AllSectionTypes() {
		if _, ok := compilers[st]; !ok {
			t.Errorf("no compiler for section type %s", st)
		}
	}
	if len(compilers) != len(template.AllSectionTypes()) {
		t.Errorf("compiler table has %d entries, want %d", len(compilers), len(template.AllSectionTypes()))
	}
}

func TestCompileTechStack_GroupsByCategory(t *testing.T) {
	tpl := testTemplate(t, section("stack", template.TypeTechStack, 0))

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	stack := findSection(t, result.Output, "stack")
	if len(stack.Blocks) != 4 {
		t.Fatalf("blocks = %d, want heading+group per category", len(stack.Blocks))
	}
	heading := stack.Blocks[0].Payload.(block.Heading)
	if heading.Content != "Languages" {
		t.Errorf("first category heading = %q", heading.Content)
	}
	group := stack.Blocks[1]
	if group.Kind != block.KindBadgeGroup || len(group.Children) != 1 {
		t.Errorf("unexpected group: %+v", group)
	}
	badge := group.Children[0].Payload.(block.Badge)
	if badge.Message != "Go" || badge.Logo != "go" {
		t.Errorf("badge = %+v", badge)
	}
}

func TestCompileSocials_SkipsUnresolvableLinks(t *testing.T) {
	prof := testProfile(t)
	prof.Socials = []profile.SocialLink{
		{Platform: "discord", Username: "ada#1234"},
		{Platform: "github", Username: "adalovelace"},
	}

	tpl := testTemplate(t, section("socials", template.TypeSocials, 0))
	result := Render(tpl, prof, Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	group := findSection(t, result.Output, "socials").Blocks[0]
	if len(group.Children) != 1 {
		t.Fatalf("children = %d, want discord (no URL pattern) skipped", len(group.Children))
	}
	b := group.Children[0].Payload.(block.Badge)
	if b.Href != "https://github.com/adalovelace" {
		t.Errorf("badge href = %q", b.Href)
	}
}

func TestHeroStats_UsesGroupedDigits(t *testing.T) {
	tpl := testTemplate(t, section("hero", template.TypeHero, 0))

	result := Render(tpl, testProfile(t), Options{})
	if !result.Success {
		t.Fatalf("render failed: %v", result.Errors)
	}

	hero := findSection(t, result.Output, "hero")
	var group *block.Block
	for i := range hero.Blocks {
		if hero.Blocks[i].Kind == block.KindStatGroup {
			group = &hero.Blocks[i]
		}
	}
	if group == nil {
		t.Fatal("stat group missing")
	}
	stat := group.Children[0].Payload.(block.Stat)
	if stat.Value != "1,204" {
		t.Errorf("stat value = %q, want comma-grouped", stat.Value)
	}
}
