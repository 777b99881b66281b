package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/pulsesearch/lyricml/v1/observability"
)

const (
	component    = "spotify"
	maxErrorBody = 512
)

// Logger is the logging contract of the client.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Client calls the Spotify Web API. It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     Logger
	observer   observability.Observer
	now        func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
	refresh   singleflight.Group
}

// New returns a client for cfg. logger may be nil.
func New(cfg Config, logger Logger) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// WithObserver sets the observer and returns the client for chaining.
func (c *Client) WithObserver(o observability.Observer) *Client {
	c.observer = o
	return c
}

// Track returns the full track object for id as sent by Spotify.
func (c *Client) Track(ctx context.Context, id string) (raw json.RawMessage, err error) {
	ctx, span := otel.Tracer(component).Start(ctx, "spotify.Track")
	span.SetAttributes(attribute.String("spotify.track_id", id))
	start := time.Now()
	defer func() {
		finish(span, err)
		observability.Observe(c.observer, component, "track", id, start, err, int64(len(raw)))
	}()

	err = c.get(ctx, "track", c.apiURL("/tracks/"+url.PathEscape(id)), &raw)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Search looks up tracks matching query and returns at most
// ClampLimit(limit) summaries. A blank query returns an empty list without
// calling Spotify.
func (c *Client) Search(ctx context.Context, query string, limit int) (tracks []TrackSummary, err error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []TrackSummary{}, nil
	}
	limit = ClampLimit(limit)

	ctx, span := otel.Tracer(component).Start(ctx, "spotify.Search")
	span.SetAttributes(attribute.String("spotify.query", query), attribute.Int("spotify.limit", limit))
	start := time.Now()
	defer func() {
		finish(span, err)
		observability.Observe(c.observer, component, "search", query, start, err, int64(len(tracks)))
	}()

	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "track")
	q.Set("limit", strconv.Itoa(limit))
	q.Set("market", c.cfg.Market)

	var out struct {
		Tracks struct {
			Items []apiTrack `json:"items"`
		} `json:"tracks"`
	}
	if err = c.get(ctx, "search", c.apiURL("/search?"+q.Encode()), &out); err != nil {
		return nil, err
	}

	tracks = make([]TrackSummary, 0, len(out.Tracks.Items))
	for _, t := range out.Tracks.Items {
		tracks = append(tracks, t.summary())
	}
	return tracks, nil
}

func (c *Client) apiURL(path string) string {
	return strings.TrimRight(c.cfg.APIURL, "/") + path
}

func (c *Client) get(ctx context.Context, op, rawURL string, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req, op, out)
}

// accessToken returns the cached token or fetches a new one. Concurrent
// callers share one token request.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Before(c.expiresAt) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.refresh.Do("token", func() (any, error) {
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	var tok tokenResponse
	err = c.do(req, "token", &tok)
	if err == nil && tok.AccessToken == "" {
		err = errors.New("spotify token response has no access_token")
	}
	observability.Observe(c.observer, component, "token", c.cfg.TokenURL, start, err, 0)
	if err != nil {
		return "", err
	}

	lifetime := time.Duration(tok.ExpiresIn)*time.Second - c.cfg.RefreshMargin
	c.mu.Lock()
	c.token = tok.AccessToken
	c.expiresAt = c.now().Add(lifetime)
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("Refreshed Spotify access token", nil, map[string]interface{}{
			"expires_in": tok.ExpiresIn,
		})
	}
	return tok.AccessToken, nil
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify %s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify %s: decode response: %w", op, err)
	}
	return nil
}

func finish(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
