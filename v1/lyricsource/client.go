package lyricsource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pulsesearch/lyricml/v1/lyrics"
	"github.com/pulsesearch/lyricml/v1/observability"
)

const component = "lyricsource"

// Logger is the logging contract of the client.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
}

// Result is a found song text.
type Result struct {
	Artist string `json:"artist"`
	// Title is the variant that matched, which may be the cleaned title.
	Title  string `json:"title"`
	Lyrics string `json:"lyrics"`
}

// Client fetches lyrics from LRCLIB and lyrics.ovh.
type Client struct {
	cfg        Config
	httpClient *http.Client
	providers  []provider
	logger     Logger
	observer   observability.Observer
}

// New returns a client for cfg. logger may be nil.
func New(cfg Config, logger Logger) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
	c.providers = []provider{
		lrcLib{base: cfg.LRCLibURL, c: c},
		lyricsOvh{base: cfg.LyricsOvhURL, c: c},
	}
	return c
}

// WithObserver sets the observer and returns the client for chaining.
func (c *Client) WithObserver(o observability.Observer) *Client {
	c.observer = o
	return c
}

// Fetch looks up the lyrics of a song. The title is tried as given and, when
// it differs, without featuring credits and remaster markers. For every
// title each provider is asked in order; the first non-empty sanitized text
// wins. A provider error aborts the lookup.
func (c *Client) Fetch(ctx context.Context, artist, title string) (res *Result, err error) {
	artist = strings.TrimSpace(artist)
	title = strings.TrimSpace(title)
	if artist == "" || title == "" {
		return nil, ErrMissingQuery
	}

	ctx, span := otel.Tracer(component).Start(ctx, "lyricsource.Fetch")
	span.SetAttributes(attribute.String("lyrics.artist", artist), attribute.String("lyrics.title", title))
	start := time.Now()
	defer func() {
		if err != nil && !errors.Is(err, ErrNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		observability.Observe(c.observer, component, "fetch", artist+"/"+title, start, err, int64(resultSize(res)))
	}()

	for _, variant := range titleVariants(title) {
		for _, p := range c.providers {
			raw, err := p.lookup(ctx, artist, variant)
			if err != nil {
				return nil, err
			}
			text, ok := lyrics.Sanitize(raw, artist, variant)
			if !ok {
				c.debug("No lyrics from provider", p.name(), artist, variant)
				continue
			}
			span.SetAttributes(attribute.String("lyrics.provider", p.name()))
			return &Result{Artist: artist, Title: variant, Lyrics: text}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s - %s", ErrNotFound, artist, title)
}

func titleVariants(title string) []string {
	variants := []string{title}
	if cleaned := lyrics.CleanTrackTitle(title); cleaned != "" && cleaned != title {
		variants = append(variants, cleaned)
	}
	return variants
}

func resultSize(r *Result) int {
	if r == nil {
		return 0
	}
	return len(r.Lyrics)
}

func (c *Client) debug(msg, providerName, artist, title string) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, nil, map[string]interface{}{
		"provider": providerName,
		"artist":   artist,
		"title":    title,
	})
}
