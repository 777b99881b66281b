package spotify

import "strings"

// TrackSummary is the trimmed view of a track returned by Search.
type TrackSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Artists joins the artist names with ", ".
	Artists string `json:"artists"`
	Album   string `json:"album"`
	// Image is the first, largest album cover, or empty.
	Image      string  `json:"image"`
	PreviewURL *string `json:"previewUrl"`
	SpotifyURL string  `json:"spotifyUrl"`
}

type apiTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name   string `json:"name"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	} `json:"album"`
	PreviewURL   *string `json:"preview_url"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (t apiTrack) summary() TrackSummary {
	names := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		names = append(names, a.Name)
	}
	s := TrackSummary{
		ID:         t.ID,
		Name:       t.Name,
		Album:      t.Album.Name,
		PreviewURL: t.PreviewURL,
		SpotifyURL: t.ExternalURLs.Spotify,
	}
	s.Artists = strings.Join(names, ", ")
	if len(t.Album.Images) > 0 {
		s.Image = t.Album.Images[0].URL
	}
	return s
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
