package badge

import (
	"net/url"
	"strings"
)

const (
	wakatimeEndpoint = statsHost + "/api/wakatime"
	spotifyHost      = "https://spotify-github-profile.kittinanx.com"
	quoteHost        = "https://quotes-github-readme.vercel.app"
)

// WakaTimeParams configure the coding activity card backed by WakaTime.
type WakaTimeParams struct {
	Username   string
	Theme      string
	HideBorder bool
}

// WakaTimeURL builds the WakaTime stats card endpoint.
func WakaTimeURL(params WakaTimeParams) string {
	query := url.Values{}
	query.Set("username", strings.TrimSpace(params.Username))
	setNonEmpty(query, "theme", params.Theme)
	setBool(query, "hide_border", params.HideBorder)
	return wakatimeEndpoint + "?" + query.Encode()
}

// SpotifyParams configure the now-playing card.
type SpotifyParams struct {
	UID        string
	Theme      string
	CoverImage bool
}

// SpotifyURL builds the now-playing card endpoint for one Spotify user id.
func SpotifyURL(params SpotifyParams) string {
	query := url.Values{}
	query.Set("uid", strings.TrimSpace(params.UID))
	setNonEmpty(query, "theme", params.Theme)
	setBool(query, "cover_image", params.CoverImage)
	return spotifyHost + "/api/view?" + query.Encode()
}

// QuoteParams configure the generated random quote image.
type QuoteParams struct {
	Theme  string
	Layout string
}

// QuoteURL builds the random quote endpoint. Layout defaults to horizontal.
func QuoteURL(params QuoteParams) string {
	layout := strings.TrimSpace(params.Layout)
	if layout == "" {
		layout = "horizontal"
	}
	query := url.Values{}
	query.Set("type", layout)
	setNonEmpty(query, "theme", params.Theme)
	return quoteHost + "/api?" + query.Encode()
}
