package block

// Kind discriminates the block variants. The set is closed; consumers dispatch
// with a switch and back it with an exhaustiveness test over AllKinds.
type Kind string

const (
	KindText    Kind = "text"
	KindHeading Kind = "heading"
	KindImage   Kind = "image"
	KindBadge   Kind = "badge"
	KindStat    Kind = "stat"
	KindLink    Kind = "link"
	KindDivider Kind = "divider"
	KindSpacer  Kind = "spacer"

	KindRow         Kind = "row"
	KindColumn      Kind = "column"
	KindGrid        Kind = "grid"
	KindParagraph   Kind = "paragraph"
	KindList        Kind = "list"
	KindBadgeGroup  Kind = "badge-group"
	KindStatGroup   Kind = "stat-group"
	KindSocialGroup Kind = "social-group"

	KindStatsCard         Kind = "stats-card"
	KindStreakCard        Kind = "streak-card"
	KindLanguagesCard     Kind = "languages-card"
	KindContributionGraph Kind = "contribution-graph"

	KindProjectCard     Kind = "project-card"
	KindExperienceItem  Kind = "experience-item"
	KindEducationItem   Kind = "education-item"
	KindAchievementItem Kind = "achievement-item"

	KindCustom Kind = "custom"
)

var allKinds = []Kind{
	KindText, KindHeading, KindImage, KindBadge, KindStat, KindLink,
	KindDivider, KindSpacer,
	KindRow, KindColumn, KindGrid, KindParagraph, KindList,
	KindBadgeGroup, KindStatGroup, KindSocialGroup,
	KindStatsCard, KindStreakCard, KindLanguagesCard, KindContributionGraph,
	KindProjectCard, KindExperienceItem, KindEducationItem, KindAchievementItem,
	KindCustom,
}

// AllKinds returns every kind in declaration order. The slice is a copy.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether the kind names a known variant.
func (k Kind) Valid() bool {
	_, ok := payloadFactories[k]
	return ok
}

// Composite reports whether blocks of this kind arrange child blocks. Children
// on a non-composite kind are ignored by every consumer.
func (k Kind) Composite() bool {
	switch k {
	case KindRow, KindColumn, KindGrid, KindParagraph, KindList,
		KindBadgeGroup, KindStatGroup, KindSocialGroup:
		return true
	default:
		return false
	}
}

// RemoteCard reports whether blocks of this kind resolve to an external
// image-service URL at serialization time.
func (k Kind) RemoteCard() bool {
	switch k {
	case KindStatsCard, KindStreakCard, KindLanguagesCard, KindContributionGraph:
		return true
	default:
		return false
	}
}
