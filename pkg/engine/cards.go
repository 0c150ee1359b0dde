package engine

import (
	"strings"

	"github.com/goliatone/go-readmegen/pkg/badge"
	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/template"
)

func compileGitHubStats(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.GitHubStatsConfig](sec)
	user, err := username(cfg.Username, ctx)
	if err != nil {
		return nil, err
	}
	return []block.Block{block.New(ids.next(), block.StatsCard{
		Username:          user,
		Theme:             cardTheme(cfg.Theme, ctx),
		ShowIcons:         cfg.ShowIcons,
		IncludeAllCommits: cfg.IncludeAllCommits,
		CountPrivate:      cfg.CountPrivate,
		HideBorder:        cfg.HideBorder,
	})}, nil
}

func compileGitHubStreak(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.GitHubStreakConfig](sec)
	user, err := username(cfg.Username, ctx)
	if err != nil {
		return nil, err
	}
	return []block.Block{block.New(ids.next(), block.StreakCard{
		Username:   user,
		Theme:      cardTheme(cfg.Theme, ctx),
		HideBorder: cfg.HideBorder,
	})}, nil
}

func compileTopLanguages(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.TopLanguagesConfig](sec)
	user, err := username(cfg.Username, ctx)
	if err != nil {
		return nil, err
	}
	return []block.Block{block.New(ids.next(), block.LanguagesCard{
		Username:   user,
		Theme:      cardTheme(cfg.Theme, ctx),
		Layout:     cfg.Layout,
		Count:      cfg.Count,
		Exclude:    cfg.Exclude,
		HideBorder: cfg.HideBorder,
	})}, nil
}

func compileContributionGraph(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.ContributionGraphConfig](sec)
	user, err := username(cfg.Username, ctx)
	if err != nil {
		return nil, err
	}

	graphTheme := strings.TrimSpace(cfg.Theme)
	if graphTheme == "" && ctx.theme != nil {
		graphTheme = ctx.theme.GraphTheme
	}
	return []block.Block{block.New(ids.next(), block.ContributionGraph{
		Username: user,
		Theme:    graphTheme,
		Area:     cfg.Area,
		Height:   cfg.Height,
	})}, nil
}

func compileVisitors(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.VisitorsConfig](sec)
	user, err := username(cfg.Username, ctx)
	if err != nil {
		return nil, err
	}
	return []block.Block{block.New(ids.next(), block.Image{
		Src: badge.VisitorsURL(badge.VisitorsParams{
			Username: user,
			Label:    cfg.Label,
			Color:    cfg.Color,
			Style:    cfg.Style,
		}),
		Alt:   "Profile views",
		Align: block.AlignCenter,
	})}, nil
}

func compileQuote(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.QuoteConfig](sec)

	if cfg.Random {
		return []block.Block{block.New(ids.next(), block.Image{
			Src:   badge.QuoteURL(badge.QuoteParams{Theme: cardTheme(cfg.Theme, ctx)}),
			Alt:   "Random dev quote",
			Align: block.AlignCenter,
		})}, nil
	}

	data, ok := dataOf[template.QuoteData](sec)
	if !ok || strings.TrimSpace(data.Text) == "" {
		return nil, nil
	}

	paraID := ids.next()
	children := []block.Block{
		block.New(ids.next(), block.Text{
			Content:  "“" + strings.TrimSpace(data.Text) + "”",
			Emphasis: block.EmphasisItalic,
		}),
	}
	if author := strings.TrimSpace(data.Author); author != "" {
		children = append(children, block.New(ids.next(), block.Text{Content: "(" + author + ")"}))
	}
	return []block.Block{block.New(paraID, block.Paragraph{Align: block.AlignCenter}, children...)}, nil
}

func compileMusic(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.MusicConfig](sec)

	uid := firstNonEmpty(cfg.UID, ctx.profile.Integrations.Spotify)
	if uid == "" {
		return nil, nil
	}
	return []block.Block{block.New(ids.next(), block.Image{
		Src: badge.SpotifyURL(badge.SpotifyParams{
			UID:        uid,
			Theme:      cfg.Theme,
			CoverImage: cfg.CoverImage,
		}),
		Alt:   "Now playing on Spotify",
		Align: block.AlignCenter,
	})}, nil
}

func compileTimeTracking(ctx compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.TimeTrackingConfig](sec)

	user := firstNonEmpty(cfg.Username, ctx.profile.Integrations.WakaTime)
	if user == "" {
		return nil, nil
	}
	return []block.Block{block.New(ids.next(), block.Image{
		Src: badge.WakaTimeURL(badge.WakaTimeParams{
			Username:   user,
			Theme:      cardTheme(cfg.Theme, ctx),
			HideBorder: cfg.HideBorder,
		}),
		Alt: "WakaTime coding activity",
	})}, nil
}

func compileDivider(_ compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.DividerConfig](sec)
	return []block.Block{block.New(ids.next(), block.Divider{Style: cfg.Style})}, nil
}

func compileSpacer(_ compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.SpacerConfig](sec)
	height := cfg.Height
	if height <= 0 {
		height = 24
	}
	return []block.Block{block.New(ids.next(), block.Spacer{Height: height})}, nil
}

func compileCustom(_ compileContext, sec template.Section, ids *idAllocator) ([]block.Block, error) {
	cfg := configOf[template.CustomConfig](sec)
	data, ok := dataOf[template.CustomData](sec)
	if !ok || strings.TrimSpace(data.Content) == "" {
		return nil, nil
	}

	mode := block.CustomMarkdown
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "html":
		mode = block.CustomHTML
	case "plain":
		mode = block.CustomPlain
	}
	return []block.Block{block.New(ids.next(), block.Custom{Mode: mode, Content: data.Content})}, nil
}
