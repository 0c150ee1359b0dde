package engine

import "strings"

// platformInfo describes how one external platform renders: display name,
// brand color for badges, simple-icons slug, and the profile URL pattern.
type platformInfo struct {
	display string
	color   string
	slug    string
	urlBase string
}

func (p platformInfo) profileURL(user string) string {
	user = strings.TrimSpace(strings.TrimPrefix(user, "@"))
	if p.urlBase == "" || user == "" {
		return ""
	}
	return p.urlBase + user
}

func (p platformInfo) iconURL() string {
	return "https://cdn.simpleicons.org/" + p.slug
}

// socialPlatforms covers the services the generator knows brand data for.
// Unknown platforms still render, with a neutral color and the raw name.
var socialPlatforms = map[string]platformInfo{
	"github":        {display: "GitHub", color: "181717", slug: "github", urlBase: "https://github.com/"},
	"twitter":       {display: "Twitter", color: "1DA1F2", slug: "x", urlBase: "https://twitter.com/"},
	"x":             {display: "X", color: "000000", slug: "x", urlBase: "https://x.com/"},
	"linkedin":      {display: "LinkedIn", color: "0A66C2", slug: "linkedin", urlBase: "https://www.linkedin.com/in/"},
	"dev":           {display: "DEV", color: "0A0A0A", slug: "devdotto", urlBase: "https://dev.to/"},
	"medium":        {display: "Medium", color: "12100E", slug: "medium", urlBase: "https://medium.com/@"},
	"youtube":       {display: "YouTube", color: "FF0000", slug: "youtube", urlBase: "https://www.youtube.com/@"},
	"twitch":        {display: "Twitch", color: "9146FF", slug: "twitch", urlBase: "https://www.twitch.tv/"},
	"instagram":     {display: "Instagram", color: "E4405F", slug: "instagram", urlBase: "https://www.instagram.com/"},
	"dribbble":      {display: "Dribbble", color: "EA4C89", slug: "dribbble", urlBase: "https://dribbble.com/"},
	"stackoverflow": {display: "Stack Overflow", color: "F58025", slug: "stackoverflow", urlBase: "https://stackoverflow.com/users/"},
	"mastodon":      {display: "Mastodon", color: "6364FF", slug: "mastodon"},
	"bluesky":       {display: "Bluesky", color: "0285FF", slug: "bluesky", urlBase: "https://bsky.app/profile/"},
	"reddit":        {display: "Reddit", color: "FF4500", slug: "reddit", urlBase: "https://www.reddit.com/user/"},
	"discord":       {display: "Discord", color: "5865F2", slug: "discord"},
	"telegram":      {display: "Telegram", color: "26A5E4", slug: "telegram", urlBase: "https://t.me/"},
	"kaggle":        {display: "Kaggle", color: "20BEFF", slug: "kaggle", urlBase: "https://www.kaggle.com/"},
	"hashnode":      {display: "Hashnode", color: "2962FF", slug: "hashnode", urlBase: "https://hashnode.com/@"},
	"gitlab":        {display: "GitLab", color: "FC6D26", slug: "gitlab", urlBase: "https://gitlab.com/"},
	"codepen":       {display: "CodePen", color: "000000", slug: "codepen", urlBase: "https://codepen.io/"},
}

func lookupPlatform(name string) platformInfo {
	key := strings.ToLower(strings.TrimSpace(name))
	if info, ok := socialPlatforms[key]; ok {
		return info
	}
	return platformInfo{display: strings.TrimSpace(name), color: "555555", slug: key}
}

// fundingPlatforms covers the supported sponsorship services.
var fundingPlatforms = map[string]platformInfo{
	"buymeacoffee":    {display: "Buy Me a Coffee", color: "FFDD00", slug: "buymeacoffee"},
	"ko-fi":           {display: "Ko-fi", color: "FF5E5B", slug: "kofi"},
	"kofi":            {display: "Ko-fi", color: "FF5E5B", slug: "kofi"},
	"patreon":         {display: "Patreon", color: "FF424D", slug: "patreon"},
	"github-sponsors": {display: "Sponsor", color: "EA4AAA", slug: "githubsponsors"},
	"paypal":          {display: "PayPal", color: "00457C", slug: "paypal"},
	"liberapay":       {display: "Liberapay", color: "F6C915", slug: "liberapay"},
}

func lookupFunding(name string) platformInfo {
	key := strings.ToLower(strings.TrimSpace(name))
	if info, ok := fundingPlatforms[key]; ok {
		return info
	}
	return platformInfo{display: strings.TrimSpace(name), color: "555555", slug: key}
}
