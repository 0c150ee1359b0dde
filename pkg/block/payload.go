package block

// Payload carries the variant-specific fields of a block. Implementations are
// the concrete types below, one per Kind; the interface is sealed so the
// variant set stays closed.
type Payload interface {
	payloadKind() Kind
}

// Emphasis styles inline text.
type Emphasis string

const (
	EmphasisNone   Emphasis = ""
	EmphasisBold   Emphasis = "bold"
	EmphasisItalic Emphasis = "italic"
	EmphasisCode   Emphasis = "code"
	EmphasisStrike Emphasis = "strike"
)

// Align positions block content horizontally. The zero value inherits the
// surrounding flow.
type Align string

const (
	AlignDefault Align = ""
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
)

// Text is an inline run of text with optional emphasis.
type Text struct {
	Content  string   `json:"content"`
	Emphasis Emphasis `json:"emphasis,omitempty"`
}

// Heading is a document heading, level 1..6.
type Heading struct {
	Content string `json:"content"`
	Level   int    `json:"level"`
	Align   Align  `json:"align,omitempty"`
}

// Image references an external picture, optionally wrapped in a link.
type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt,omitempty"`
	Href   string `json:"href,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Align  Align  `json:"align,omitempty"`
}

// Badge is a shields-style label/message pair. The URL is derived at
// serialization time so both targets stay in lockstep.
type Badge struct {
	Label     string `json:"label,omitempty"`
	Message   string `json:"message"`
	Color     string `json:"color,omitempty"`
	Style     string `json:"style,omitempty"`
	Logo      string `json:"logo,omitempty"`
	LogoColor string `json:"logoColor,omitempty"`
	Href      string `json:"href,omitempty"`
}

// Stat is a labelled value, e.g. "Followers: 1,204".
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Link is an inline hyperlink.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Divider is a horizontal rule.
type Divider struct {
	Style string `json:"style,omitempty"`
}

// Spacer inserts vertical whitespace; Height is in pixels.
type Spacer struct {
	Height int `json:"height,omitempty"`
}

// Row lays children out horizontally.
type Row struct {
	Gap   int   `json:"gap,omitempty"`
	Align Align `json:"align,omitempty"`
}

// Column stacks children vertically.
type Column struct {
	Gap int `json:"gap,omitempty"`
}

// Grid arranges children in fixed-width columns.
type Grid struct {
	Columns int `json:"columns,omitempty"`
	Gap     int `json:"gap,omitempty"`
}

// Paragraph groups inline children into one flowing block.
type Paragraph struct {
	Align Align `json:"align,omitempty"`
}

// List renders children as list items.
type List struct {
	Ordered bool `json:"ordered,omitempty"`
}

// BadgeGroup clusters badge children on one line.
type BadgeGroup struct {
	Align Align `json:"align,omitempty"`
}

// StatGroup clusters stat children.
type StatGroup struct {
	Align Align `json:"align,omitempty"`
}

// SocialGroup clusters social badge/icon children.
type SocialGroup struct {
	IconSize int   `json:"iconSize,omitempty"`
	Align    Align `json:"align,omitempty"`
}

// StatsCard renders an external contribution-statistics card.
type StatsCard struct {
	Username          string `json:"username"`
	Title             string `json:"title,omitempty"`
	Theme             string `json:"theme,omitempty"`
	ShowIcons         bool   `json:"showIcons,omitempty"`
	IncludeAllCommits bool   `json:"includeAllCommits,omitempty"`
	CountPrivate      bool   `json:"countPrivate,omitempty"`
	HideBorder        bool   `json:"hideBorder,omitempty"`
}

// StreakCard renders an external contribution-streak card.
type StreakCard struct {
	Username   string `json:"username"`
	Theme      string `json:"theme,omitempty"`
	HideBorder bool   `json:"hideBorder,omitempty"`
}

// LanguagesCard renders an external most-used-languages card.
type LanguagesCard struct {
	Username   string   `json:"username"`
	Theme      string   `json:"theme,omitempty"`
	Layout     string   `json:"layout,omitempty"`
	Count      int      `json:"count,omitempty"`
	Exclude    []string `json:"exclude,omitempty"`
	HideBorder bool     `json:"hideBorder,omitempty"`
}

// ContributionGraph renders an external activity-graph image.
type ContributionGraph struct {
	Username string `json:"username"`
	Theme    string `json:"theme,omitempty"`
	Area     bool   `json:"area,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// ProjectCard is a structured project showcase entry.
type ProjectCard struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	RepoURL     string   `json:"repoUrl,omitempty"`
	DemoURL     string   `json:"demoUrl,omitempty"`
	Tech        []string `json:"tech,omitempty"`
	Stars       int      `json:"stars,omitempty"`
}

// ExperienceItem is one work-history timeline entry.
type ExperienceItem struct {
	Role       string   `json:"role"`
	Company    string   `json:"company"`
	Period     string   `json:"period,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// EducationItem is one education timeline entry.
type EducationItem struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Period string `json:"period,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// AchievementItem is a certification or award entry.
type AchievementItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	URL         string `json:"url,omitempty"`
}

// CustomMode declares how custom content should be treated by renderers.
type CustomMode string

const (
	CustomMarkdown CustomMode = "markdown"
	CustomHTML     CustomMode = "html"
	CustomPlain    CustomMode = "plain"
)

// Custom passes opaque user-authored content through to the outputs.
type Custom struct {
	Mode    CustomMode `json:"mode,omitempty"`
	Content string     `json:"content"`
}

func (Text) payloadKind() Kind              { return KindText }
func (Heading) payloadKind() Kind           { return KindHeading }
func (Image) payloadKind() Kind             { return KindImage }
func (Badge) payloadKind() Kind             { return KindBadge }
func (Stat) payloadKind() Kind              { return KindStat }
func (Link) payloadKind() Kind              { return KindLink }
func (Divider) payloadKind() Kind           { return KindDivider }
func (Spacer) payloadKind() Kind            { return KindSpacer }
func (Row) payloadKind() Kind               { return KindRow }
func (Column) payloadKind() Kind            { return KindColumn }
func (Grid) payloadKind() Kind              { return KindGrid }
func (Paragraph) payloadKind() Kind         { return KindParagraph }
func (List) payloadKind() Kind              { return KindList }
func (BadgeGroup) payloadKind() Kind        { return KindBadgeGroup }
func (StatGroup) payloadKind() Kind         { return KindStatGroup }
func (SocialGroup) payloadKind() Kind       { return KindSocialGroup }
func (StatsCard) payloadKind() Kind         { return KindStatsCard }
func (StreakCard) payloadKind() Kind        { return KindStreakCard }
func (LanguagesCard) payloadKind() Kind     { return KindLanguagesCard }
func (ContributionGraph) payloadKind() Kind { return KindContributionGraph }
func (ProjectCard) payloadKind() Kind       { return KindProjectCard }
func (ExperienceItem) payloadKind() Kind    { return KindExperienceItem }
func (EducationItem) payloadKind() Kind     { return KindEducationItem }
func (AchievementItem) payloadKind() Kind   { return KindAchievementItem }
func (Custom) payloadKind() Kind            { return KindCustom }

// payloadFactories maps every kind to a zero-payload constructor. Decoding and
// exhaustiveness checks both key off this table; a kind missing here does not
// exist.
var payloadFactories = map[Kind]func() Payload{
	KindText:              func() Payload { return Text{} },
	KindHeading:           func() Payload { return Heading{} },
	KindImage:             func() Payload { return Image{} },
	KindBadge:             func() Payload { return Badge{} },
	KindStat:              func() Payload { return Stat{} },
	KindLink:              func() Payload { return Link{} },
	KindDivider:           func() Payload { return Divider{} },
	KindSpacer:            func() Payload { return Spacer{} },
	KindRow:               func() Payload { return Row{} },
	KindColumn:            func() Payload { return Column{} },
	KindGrid:              func() Payload { return Grid{} },
	KindParagraph:         func() Payload { return Paragraph{} },
	KindList:              func() Payload { return List{} },
	KindBadgeGroup:        func() Payload { return BadgeGroup{} },
	KindStatGroup:         func() Payload { return StatGroup{} },
	KindSocialGroup:       func() Payload { return SocialGroup{} },
	KindStatsCard:         func() Payload { return StatsCard{} },
	KindStreakCard:        func() Payload { return StreakCard{} },
	KindLanguagesCard:     func() Payload { return LanguagesCard{} },
	KindContributionGraph: func() Payload { return ContributionGraph{} },
	KindProjectCard:       func() Payload { return ProjectCard{} },
	KindExperienceItem:    func() Payload { return ExperienceItem{} },
	KindEducationItem:     func() Payload { return EducationItem{} },
	KindAchievementItem:   func() Payload { return AchievementItem{} },
	KindCustom:            func() Payload { return Custom{} },
}
