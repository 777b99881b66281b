package lyricsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxErrorBody = 512

// provider looks up raw lyrics. An empty string with a nil error means the
// provider has no lyrics for the song.
type provider interface {
	name() string
	lookup(ctx context.Context, artist, title string) (string, error)
}

type lrcLib struct {
	base string
	c    *Client
}

func (p lrcLib) name() string { return "LrcLib" }

func (p lrcLib) lookup(ctx context.Context, artist, title string) (string, error) {
	q := url.Values{}
	q.Set("artist_name", artist)
	q.Set("track_name", title)

	var out struct {
		PlainLyrics  string `json:"plainLyrics"`
		SyncedLyrics string `json:"syncedLyrics"`
	}
	found, err := p.c.getJSON(ctx, p.name(), strings.TrimRight(p.base, "/")+"/get?"+q.Encode(), &out)
	if err != nil || !found {
		return "", err
	}
	if out.PlainLyrics != "" {
		return out.PlainLyrics, nil
	}
	return out.SyncedLyrics, nil
}

type lyricsOvh struct {
	base string
	c    *Client
}

func (p lyricsOvh) name() string { return "lyrics.ovh" }

func (p lyricsOvh) lookup(ctx context.Context, artist, title string) (string, error) {
	u := fmt.Sprintf("%s/%s/%s", strings.TrimRight(p.base, "/"), url.PathEscape(artist), url.PathEscape(title))

	var out struct {
		Lyrics string `json:"lyrics"`
	}
	found, err := p.c.getJSON(ctx, p.name(), u, &out)
	if err != nil || !found {
		return "", err
	}
	return out.Lyrics, nil
}

// getJSON fetches rawURL and decodes the body into out. It reports false
// without error on 404.
func (c *Client) getJSON(ctx context.Context, providerName, rawURL string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s request failed: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return false, &UpstreamError{Provider: providerName, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	return true, nil
}
