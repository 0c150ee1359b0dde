package template

import "github.com/goliatone/go-readmegen/pkg/profile"

// Data is optional inline content attached to a Section. When present it
// shadows the corresponding profile fields during compilation; when nil the
// compiler reads the profile directly. Not every section type carries data:
// purely generated sections (stats cards, visitors, dividers) have none.
type Data interface {
	dataType() SectionType
}

// HeroData overrides the identity fields shown in the header.
type HeroData struct {
	Name     string `json:"name,omitempty"`
	Headline string `json:"headline,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// AboutData overrides the about prose and fact lines.
type AboutData struct {
	Paragraphs []string       `json:"paragraphs,omitempty"`
	Facts      []profile.Fact `json:"facts,omitempty"`
}

// TechStackData overrides the technology list.
type TechStackData struct {
	Items []profile.TechItem `json:"items,omitempty"`
}

// ProjectsData overrides the showcased projects.
type ProjectsData struct {
	Projects []profile.Project `json:"projects,omitempty"`
}

// ExperienceData overrides the work history entries.
type ExperienceData struct {
	Entries []profile.Experience `json:"entries,omitempty"`
}

// EducationData overrides the education entries.
type EducationData struct {
	Entries []profile.Education `json:"entries,omitempty"`
}

// AchievementsData overrides the achievement entries.
type AchievementsData struct {
	Entries []profile.Achievement `json:"entries,omitempty"`
}

// BlogPostsData overrides the listed articles.
type BlogPostsData struct {
	Posts []profile.BlogPost `json:"posts,omitempty"`
}

// SocialsData overrides the social links.
type SocialsData struct {
	Links []profile.SocialLink `json:"links,omitempty"`
}

// ContactData overrides the contact fields.
type ContactData struct {
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

// SupportLink is one funding destination (e.g. "buymeacoffee", "ko-fi").
type SupportLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SupportData carries the funding links and an optional lead-in message.
// Support sections render nothing without at least one link.
type SupportData struct {
	Message string        `json:"message,omitempty"`
	Links   []SupportLink `json:"links,omitempty"`
}

// QuoteData is a fixed quotation used when QuoteConfig.Random is false.
type QuoteData struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// CustomData is the opaque body of a custom section, interpreted per
// CustomConfig.Format.
type CustomData struct {
	Content string `json:"content"`
}

func (HeroData) dataType() SectionType         { return TypeHero }
func (AboutData) dataType() SectionType        { return TypeAbout }
func (TechStackData) dataType() SectionType    { return TypeTechStack }
func (ProjectsData) dataType() SectionType     { return TypeProjects }
func (ExperienceData) dataType() SectionType   { return TypeExperience }
func (EducationData) dataType() SectionType    { return TypeEducation }
func (AchievementsData) dataType() SectionType { return TypeAchievements }
func (BlogPostsData) dataType() SectionType    { return TypeBlogPosts }
func (SocialsData) dataType() SectionType      { return TypeSocials }
func (ContactData) dataType() SectionType      { return TypeContact }
func (SupportData) dataType() SectionType      { return TypeSupport }
func (QuoteData) dataType() SectionType        { return TypeQuote }
func (CustomData) dataType() SectionType       { return TypeCustom }

// dataFactories maps the section types that accept inline data to their data
// constructors. Absence from this table means the type is config-only.
var dataFactories = map[SectionType]func() Data{
	TypeHero:         func() Data { return HeroData{} },
	TypeAbout:        func() Data { return AboutData{} },
	TypeTechStack:    func() Data { return TechStackData{} },
	TypeProjects:     func() Data { return ProjectsData{} },
	TypeExperience:   func() Data { return ExperienceData{} },
	TypeEducation:    func() Data { return EducationData{} },
	TypeAchievements: func() Data { return AchievementsData{} },
	TypeBlogPosts:    func() Data { return BlogPostsData{} },
	TypeSocials:      func() Data { return SocialsData{} },
	TypeContact:      func() Data { return ContactData{} },
	TypeSupport:      func() Data { return SupportData{} },
	TypeQuote:        func() Data { return QuoteData{} },
	TypeCustom:       func() Data { return CustomData{} },
}

// AcceptsData reports whether the section type takes an inline data payload.
func AcceptsData(t SectionType) bool {
	_, ok := dataFactories[t]
	return ok
}
