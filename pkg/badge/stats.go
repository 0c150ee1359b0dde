package badge

import (
	"net/url"
	"strconv"
	"strings"
)

// Hosts of the remote card services. The engine only ever builds URLs against
// these; fetching and rendering the SVGs is the consumer's concern.
const (
	statsHost    = "https://github-readme-stats.vercel.app"
	streakHost   = "https://streak-stats.demolab.com"
	graphHost    = "https://github-readme-activity-graph.vercel.app"
	visitorsHost = "https://komarev.com/ghpvc/"
	typingHost   = "https://readme-typing-svg.demolab.com"
)

// StatsCardParams configure a github-readme-stats summary card.
type StatsCardParams struct {
	Username          string
	Title             string
	Theme             string
	ShowIcons         bool
	IncludeAllCommits bool
	CountPrivate      bool
	HideBorder        bool
}

// StatsCardURL builds the stats card endpoint for one username.
func StatsCardURL(params StatsCardParams) string {
	query := url.Values{}
	query.Set("username", strings.TrimSpace(params.Username))
	setNonEmpty(query, "theme", params.Theme)
	setNonEmpty(query, "custom_title", params.Title)
	setBool(query, "show_icons", params.ShowIcons)
	setBool(query, "include_all_commits", params.IncludeAllCommits)
	setBool(query, "count_private", params.CountPrivate)
	setBool(query, "hide_border", params.HideBorder)
	return statsHost + "/api?" + query.Encode()
}

// StreakCardParams configure a streak-stats contribution streak card.
type StreakCardParams struct {
	Username   string
	Theme      string
	HideBorder bool
}

// StreakCardURL builds the streak card endpoint for one username.
func StreakCardURL(params StreakCardParams) string {
	query := url.Values{}
	query.Set("user", strings.TrimSpace(params.Username))
	setNonEmpty(query, "theme", params.Theme)
	setBool(query, "hide_border", params.HideBorder)
	return streakHost + "/?" + query.Encode()
}

// LanguagesCardParams configure a top-languages breakdown card.
type LanguagesCardParams struct {
	Username   string
	Theme      string
	Layout     string
	Count      int
	Exclude    []string
	HideBorder bool
}

// LanguagesCardURL builds the top-languages endpoint for one username.
// Excluded languages are joined into a single comma-separated hide parameter.
func LanguagesCardURL(params LanguagesCardParams) string {
	query := url.Values{}
	query.Set("username", strings.TrimSpace(params.Username))
	setNonEmpty(query, "theme", params.Theme)
	setNonEmpty(query, "layout", params.Layout)
	if params.Count > 0 {
		query.Set("langs_count", strconv.Itoa(params.Count))
	}
	if hide := joinClean(params.Exclude); hide != "" {
		query.Set("hide", hide)
	}
	setBool(query, "hide_border", params.HideBorder)
	return statsHost + "/api/top-langs/?" + query.Encode()
}

// GraphParams configure a contribution activity graph.
type GraphParams struct {
	Username string
	Theme    string
	Area     bool
	Height   int
}

// GraphURL builds the activity graph endpoint for one username.
func GraphURL(params GraphParams) string {
	query := url.Values{}
	query.Set("username", strings.TrimSpace(params.Username))
	setNonEmpty(query, "theme", params.Theme)
	setBool(query, "area", params.Area)
	if params.Height > 0 {
		query.Set("height", strconv.Itoa(params.Height))
	}
	return graphHost + "/graph?" + query.Encode()
}

// VisitorsParams configure a profile view counter badge.
type VisitorsParams struct {
	Username string
	Label    string
	Color    string
	Style    string
}

// VisitorsURL builds the view counter endpoint for one username.
func VisitorsURL(params VisitorsParams) string {
	query := url.Values{}
	query.Set("username", strings.TrimSpace(params.Username))
	setNonEmpty(query, "label", params.Label)
	setNonEmpty(query, "color", params.Color)
	setNonEmpty(query, "style", params.Style)
	return visitorsHost + "?" + query.Encode()
}

// TypingParams configure an animated typing banner.
type TypingParams struct {
	Lines    []string
	Color    string
	Size     int
	Width    int
	Duration int
	Center   bool
}

// TypingURL builds the typing SVG endpoint. Lines are joined with semicolons,
// which the service treats as the frame separator.
func TypingURL(params TypingParams) string {
	query := url.Values{}
	query.Set("lines", strings.Join(params.Lines, ";"))
	setNonEmpty(query, "color", params.Color)
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}
	if params.Width > 0 {
		query.Set("width", strconv.Itoa(params.Width))
	}
	if params.Duration > 0 {
		query.Set("duration", strconv.Itoa(params.Duration))
	}
	if params.Center {
		query.Set("center", "true")
		query.Set("vCenter", "true")
	}
	return typingHost + "?" + query.Encode()
}

func setBool(query url.Values, key string, value bool) {
	if value {
		query.Set(key, "true")
	}
}

func joinClean(values []string) string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, ",")
}
