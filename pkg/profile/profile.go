package profile

import (
	"context"
	"strings"
	"time"
)

// Profile is the read-only user data bound into rendered documents. Section
// data can override any of these fields locally; the render pipeline falls
// back to the profile when a section omits a value.
type Profile struct {
	Name           string `json:"name" yaml:"name"`
	Headline       string `json:"headline,omitempty" yaml:"headline,omitempty"`
	Location       string `json:"location,omitempty" yaml:"location,omitempty"`
	Company        string `json:"company,omitempty" yaml:"company,omitempty"`
	Email          string `json:"email,omitempty" yaml:"email,omitempty"`
	Website        string `json:"website,omitempty" yaml:"website,omitempty"`
	AvatarURL      string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
	GitHubUsername string `json:"githubUsername,omitempty" yaml:"githubUsername,omitempty"`

	About []string `json:"about,omitempty" yaml:"about,omitempty"`
	Facts []Fact   `json:"facts,omitempty" yaml:"facts,omitempty"`

	TechStack    []TechItem    `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	Projects     []Project     `json:"projects,omitempty" yaml:"projects,omitempty"`
	Experience   []Experience  `json:"experience,omitempty" yaml:"experience,omitempty"`
	Education    []Education   `json:"education,omitempty" yaml:"education,omitempty"`
	Achievements []Achievement `json:"achievements,omitempty" yaml:"achievements,omitempty"`
	BlogPosts    []BlogPost    `json:"blogPosts,omitempty" yaml:"blogPosts,omitempty"`
	Socials      []SocialLink  `json:"socials,omitempty" yaml:"socials,omitempty"`

	Stats        Stats        `json:"stats,omitempty" yaml:"stats,omitempty"`
	Integrations Integrations `json:"integrations,omitempty" yaml:"integrations,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Fact is a single emoji-prefixed line in an about section, e.g.
// "🌱 currently learning Rust".
type Fact struct {
	Emoji string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// TechItem describes one technology in the user's stack. Logo defaults to the
// lowercased name when empty; Color is a hex value without the leading '#'.
type TechItem struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	Logo     string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// LogoSlug returns the explicit logo slug or one derived from the name.
func (t TechItem) LogoSlug() string {
	if slug := strings.TrimSpace(t.Logo); slug != "" {
		return slug
	}
	slug := strings.ToLower(strings.TrimSpace(t.Name))
	slug = strings.ReplaceAll(slug, " ", "")
	slug = strings.ReplaceAll(slug, ".", "dot")
	return slug
}

// Project describes a showcased repository or product.
type Project struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	RepoURL     string   `json:"repoUrl,omitempty" yaml:"repoUrl,omitempty"`
	DemoURL     string   `json:"demoUrl,omitempty" yaml:"demoUrl,omitempty"`
	Tech        []string `json:"tech,omitempty" yaml:"tech,omitempty"`
	Stars       int      `json:"stars,omitempty" yaml:"stars,omitempty"`
}

// Experience is one entry in a work-history timeline.
type Experience struct {
	Role       string   `json:"role" yaml:"role"`
	Company    string   `json:"company" yaml:"company"`
	Period     string   `json:"period,omitempty" yaml:"period,omitempty"`
	Summary    string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Education is one entry in an education timeline.
type Education struct {
	School string `json:"school" yaml:"school"`
	Degree string `json:"degree,omitempty" yaml:"degree,omitempty"`
	Period string `json:"period,omitempty" yaml:"period,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Achievement is a certification, award, or milestone.
type Achievement struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// BlogPost is a single authored article reference.
type BlogPost struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
	Date  string `json:"date,omitempty" yaml:"date,omitempty"`
}

// SocialLink points at a profile on an external platform. URL wins when set;
// otherwise renderers derive the address from Platform+Username.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Stats carries profile-level counters surfaced by hero/about stat groups.
// Values are plain integers; renderers apply display formatting.
type Stats struct {
	Followers  int `json:"followers,omitempty" yaml:"followers,omitempty"`
	TotalStars int `json:"totalStars,omitempty" yaml:"totalStars,omitempty"`
	Repos      int `json:"repos,omitempty" yaml:"repos,omitempty"`
}

// Integrations holds opt-in external service identifiers. An empty value
// disables the integration; sections depending on one render nothing when the
// identifier is missing from both section data and profile.
type Integrations struct {
	BlogFeed string `json:"blogFeed,omitempty" yaml:"blogFeed,omitempty"`
	Spotify  string `json:"spotify,omitempty" yaml:"spotify,omitempty"`
	WakaTime string `json:"wakatime,omitempty" yaml:"wakatime,omitempty"`
}

// Source supplies profile data to callers that assemble render inputs. The
// engine itself never fetches anything; implementations decide where the data
// lives (file, embedded fixture, upstream service).
type Source interface {
	Load(ctx context.Context) (Profile, error)
}

// SourceFunc adapts a function into a Source.
type SourceFunc func(ctx context.Context) (Profile, error)

// Load delegates to the underlying function.
func (fn SourceFunc) Load(ctx context.Context) (Profile, error) {
	return fn(ctx)
}

// StaticSource returns a Source that always yields the given profile.
func StaticSource(p Profile) Source {
	return SourceFunc(func(context.Context) (Profile, error) {
		return p, nil
	})
}

// DisplayName returns the best human label available for the profile.
func (p Profile) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return strings.TrimSpace(p.GitHubUsername)
}
