package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pulsesearch/lyricml/v1/analysis"
	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/lyricsource"
	"github.com/pulsesearch/lyricml/v1/spotify"
)

// Analyzer is implemented by *analysis.Service.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=api
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
	Similar(ctx context.Context, lyrics string, topK int) ([]library.SimilarSong, error)
}

// LyricsFetcher is implemented by *lyricsource.Client.
type LyricsFetcher interface {
	Fetch(ctx context.Context, artist, title string) (*lyricsource.Result, error)
}

// TrackCatalog is implemented by *spotify.Client.
type TrackCatalog interface {
	Track(ctx context.Context, id string) (json.RawMessage, error)
	Search(ctx context.Context, query string, limit int) ([]spotify.TrackSummary, error)
}

// RequestMetrics is the part of metrics.MetricsCollector the middleware uses.
type RequestMetrics interface {
	IncrementRequests(endpoint, status string)
	RecordRequestDuration(start time.Time, endpoint string)
}

// Logger is the logging contract of the API.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
