package template

// Config is the per-type configuration payload of a Section. Exactly one
// concrete config struct exists per SectionType; the unexported method keeps
// the set closed so a tag-keyed table can drive decoding.
type Config interface {
	configType() SectionType
}

// HeroConfig controls the opening header: avatar, greeting, the optional
// animated typing banner built from the profile headline, and the profile
// counter row.
type HeroConfig struct {
	ShowAvatar bool     `json:"showAvatar,omitempty"`
	AvatarSize int      `json:"avatarSize,omitempty"`
	Typing     bool     `json:"typing,omitempty"`
	Lines      []string `json:"lines,omitempty"`
	ShowStats  bool     `json:"showStats,omitempty"`
}

// AboutConfig selects the prose style of the about section. Style is
// "paragraph" or "list"; ShowFacts appends the emoji fact lines.
type AboutConfig struct {
	Style     string `json:"style,omitempty"`
	ShowFacts bool   `json:"showFacts,omitempty"`
}

// TechStackConfig controls tech badge presentation.
type TechStackConfig struct {
	GroupByCategory bool   `json:"groupByCategory,omitempty"`
	BadgeStyle      string `json:"badgeStyle,omitempty"`
}

// GitHubStatsConfig configures the remote stats card. Username falls back to
// the profile's GitHub username when empty.
type GitHubStatsConfig struct {
	Username          string `json:"username,omitempty"`
	Theme             string `json:"theme,omitempty"`
	ShowIcons         bool   `json:"showIcons,omitempty"`
	IncludeAllCommits bool   `json:"includeAllCommits,omitempty"`
	CountPrivate      bool   `json:"countPrivate,omitempty"`
	HideBorder        bool   `json:"hideBorder,omitempty"`
}

// GitHubStreakConfig configures the remote streak card.
type GitHubStreakConfig struct {
	Username   string `json:"username,omitempty"`
	Theme      string `json:"theme,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
}

// TopLanguagesConfig configures the remote language breakdown card.
type TopLanguagesConfig struct {
	Username   string   `json:"username,omitempty"`
	Theme      string   `json:"theme,omitempty"`
	Layout     string   `json:"layout,omitempty"`
	Count      int      `json:"count,omitempty"`
	Exclude    []string `json:"exclude,omitempty"`
	HideBorder bool     `json:"hideBorder,omitempty"`
}

// ContributionGraphConfig configures the remote activity graph.
type ContributionGraphConfig struct {
	Username string `json:"username,omitempty"`
	Theme    string `json:"theme,omitempty"`
	Area     bool   `json:"area,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// ProjectsConfig controls the project showcase. Limit 0 means all.
type ProjectsConfig struct {
	Limit     int  `json:"limit,omitempty"`
	Columns   int  `json:"columns,omitempty"`
	ShowStars bool `json:"showStars,omitempty"`
	ShowTech  bool `json:"showTech,omitempty"`
}

// ExperienceConfig controls the work history timeline. Limit 0 means all.
type ExperienceConfig struct {
	Limit          int  `json:"limit,omitempty"`
	ShowHighlights bool `json:"showHighlights,omitempty"`
}

// EducationConfig controls the education timeline. Limit 0 means all.
type EducationConfig struct {
	Limit int `json:"limit,omitempty"`
}

// AchievementsConfig controls the achievements list. Limit 0 means all.
type AchievementsConfig struct {
	Limit     int  `json:"limit,omitempty"`
	ShowIcons bool `json:"showIcons,omitempty"`
}

// BlogPostsConfig controls the recent posts list. Limit 0 means all.
type BlogPostsConfig struct {
	Limit     int  `json:"limit,omitempty"`
	ShowDates bool `json:"showDates,omitempty"`
}

// SocialsConfig selects social link presentation. Style is "badges" or
// "icons".
type SocialsConfig struct {
	Style    string `json:"style,omitempty"`
	IconSize int    `json:"iconSize,omitempty"`
}

// ContactConfig toggles which profile contact fields appear.
type ContactConfig struct {
	ShowEmail    bool `json:"showEmail,omitempty"`
	ShowWebsite  bool `json:"showWebsite,omitempty"`
	ShowLocation bool `json:"showLocation,omitempty"`
}

// SupportConfig controls funding link presentation.
type SupportConfig struct {
	Style string `json:"style,omitempty"`
}

// VisitorsConfig configures the profile view counter badge.
type VisitorsConfig struct {
	Username string `json:"username,omitempty"`
	Label    string `json:"label,omitempty"`
	Color    string `json:"color,omitempty"`
	Style    string `json:"style,omitempty"`
}

// QuoteConfig selects between a generated random-quote image (Random) and
// fixed text supplied through QuoteData.
type QuoteConfig struct {
	Random bool   `json:"random,omitempty"`
	Theme  string `json:"theme,omitempty"`
}

// MusicConfig configures the now-playing card. UID falls back to the
// profile's Spotify integration id.
type MusicConfig struct {
	UID        string `json:"uid,omitempty"`
	Theme      string `json:"theme,omitempty"`
	CoverImage bool   `json:"coverImage,omitempty"`
}

// TimeTrackingConfig configures the coding activity card. Username falls back
// to the profile's WakaTime integration id.
type TimeTrackingConfig struct {
	Username   string `json:"username,omitempty"`
	Theme      string `json:"theme,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
}

// DividerConfig selects the separator style ("line", "dots", "wave").
type DividerConfig struct {
	Style string `json:"style,omitempty"`
}

// SpacerConfig sets vertical whitespace height in pixels.
type SpacerConfig struct {
	Height int `json:"height,omitempty"`
}

// CustomConfig declares how custom section content should be interpreted.
// Format is "markdown", "html", or "plain"; markdown is the default.
type CustomConfig struct {
	Format string `json:"format,omitempty"`
}

func (HeroConfig) configType() SectionType              { return TypeHero }
func (AboutConfig) configType() SectionType             { return TypeAbout }
func (TechStackConfig) configType() SectionType         { return TypeTechStack }
func (GitHubStatsConfig) configType() SectionType       { return TypeGitHubStats }
func (GitHubStreakConfig) configType() SectionType      { return TypeGitHubStreak }
func (TopLanguagesConfig) configType() SectionType      { return TypeTopLanguages }
func (ContributionGraphConfig) configType() SectionType { return TypeContributionGraph }
func (ProjectsConfig) configType() SectionType          { return TypeProjects }
func (ExperienceConfig) configType() SectionType        { return TypeExperience }
func (EducationConfig) configType() SectionType         { return TypeEducation }
func (AchievementsConfig) configType() SectionType      { return TypeAchievements }
func (BlogPostsConfig) configType() SectionType         { return TypeBlogPosts }
func (SocialsConfig) configType() SectionType           { return TypeSocials }
func (ContactConfig) configType() SectionType           { return TypeContact }
func (SupportConfig) configType() SectionType           { return TypeSupport }
func (VisitorsConfig) configType() SectionType          { return TypeVisitors }
func (QuoteConfig) configType() SectionType             { return TypeQuote }
func (MusicConfig) configType() SectionType             { return TypeMusic }
func (TimeTrackingConfig) configType() SectionType      { return TypeTimeTracking }
func (DividerConfig) configType() SectionType           { return TypeDivider }
func (SpacerConfig) configType() SectionType            { return TypeSpacer }
func (CustomConfig) configType() SectionType            { return TypeCustom }

// configFactories maps every section type to its config constructor. The
// table doubles as the authority on which tags exist.
var configFactories = map[SectionType]func() Config{
	TypeHero:              func() Config { return HeroConfig{} },
	TypeAbout:             func() Config { return AboutConfig{} },
	TypeTechStack:         func() Config { return TechStackConfig{} },
	TypeGitHubStats:       func() Config { return GitHubStatsConfig{} },
	TypeGitHubStreak:      func() Config { return GitHubStreakConfig{} },
	TypeTopLanguages:      func() Config { return TopLanguagesConfig{} },
	TypeContributionGraph: func() Config { return ContributionGraphConfig{} },
	TypeProjects:          func() Config { return ProjectsConfig{} },
	TypeExperience:        func() Config { return ExperienceConfig{} },
	TypeEducation:         func() Config { return EducationConfig{} },
	TypeAchievements:      func() Config { return AchievementsConfig{} },
	TypeBlogPosts:         func() Config { return BlogPostsConfig{} },
	TypeSocials:           func() Config { return SocialsConfig{} },
	TypeContact:           func() Config { return ContactConfig{} },
	TypeSupport:           func() Config { return SupportConfig{} },
	TypeVisitors:          func() Config { return VisitorsConfig{} },
	TypeQuote:             func() Config { return QuoteConfig{} },
	TypeMusic:             func() Config { return MusicConfig{} },
	TypeTimeTracking:      func() Config { return TimeTrackingConfig{} },
	TypeDivider:           func() Config { return DividerConfig{} },
	TypeSpacer:            func() Config { return SpacerConfig{} },
	TypeCustom:            func() Config { return CustomConfig{} },
}

// DefaultConfig returns the sensible default configuration for a section
// type, and false for unknown tags.
func DefaultConfig(t SectionType) (Config, bool) {
	switch t {
	case TypeHero:
		return HeroConfig{ShowAvatar: true, ShowStats: true}, true
	case TypeAbout:
		return AboutConfig{Style: "list", ShowFacts: true}, true
	case TypeTechStack:
		return TechStackConfig{GroupByCategory: true, BadgeStyle: "for-the-badge"}, true
	case TypeGitHubStats:
		return GitHubStatsConfig{ShowIcons: true}, true
	case TypeTopLanguages:
		return TopLanguagesConfig{Layout: "compact", Count: 8}, true
	case TypeContributionGraph:
		return ContributionGraphConfig{Area: true}, true
	case TypeProjects:
		return ProjectsConfig{Limit: 6, ShowStars: true, ShowTech: true}, true
	case TypeExperience:
		return ExperienceConfig{ShowHighlights: true}, true
	case TypeAchievements:
		return AchievementsConfig{ShowIcons: true}, true
	case TypeBlogPosts:
		return BlogPostsConfig{Limit: 5, ShowDates: true}, true
	case TypeSocials:
		return SocialsConfig{Style: "badges"}, true
	case TypeContact:
		return ContactConfig{ShowEmail: true, ShowWebsite: true, ShowLocation: true}, true
	case TypeVisitors:
		return VisitorsConfig{Label: "Profile views", Color: "blue", Style: "flat"}, true
	case TypeSpacer:
		return SpacerConfig{Height: 24}, true
	case TypeCustom:
		return CustomConfig{Format: "markdown"}, true
	}
	factory, ok := configFactories[t]
	if !ok {
		return nil, false
	}
	return factory(), true
}
