package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/library"
)

var (
	// ErrEmptyLyrics is returned for blank or whitespace-only lyrics.
	ErrEmptyLyrics = errors.New("lyrics cannot be empty")

	// ErrLibraryUnavailable is returned when no song library is configured
	// or it cannot be read.
	ErrLibraryUnavailable = errors.New("song library unavailable")
)

// Request is one song to analyze. Artist and title are only echoed back.
type Request struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Lyrics string `json:"lyrics"`
}

// Result holds the emotions and the embedding of a song text.
type Result struct {
	Artist    string                    `json:"artist"`
	Title     string                    `json:"title"`
	Emotions  []classifier.EmotionScore `json:"emotions"`
	Embedding []float32                 `json:"embedding"`
}

// Service runs analyses. Library and publisher may be nil.
type Service struct {
	classifier EmotionClassifier
	embedder   Embedder
	library    library.Source
	publisher  Publisher
	logger     Logger
}

// NewService returns a service over the given components.
func NewService(c EmotionClassifier, e Embedder, lib library.Source, pub Publisher, logger Logger) *Service {
	return &Service{classifier: c, embedder: e, library: lib, publisher: pub, logger: logger}
}

// Analyze classifies and embeds req.Lyrics concurrently. The first failure
// cancels the other half. On success a lyrics.analyzed event is published;
// publishing errors do not fail the analysis.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Lyrics) == "" {
		return nil, ErrEmptyLyrics
	}

	var (
		emotions  []classifier.EmotionScore
		embedding []float32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emotions, err = s.classifier.Classify(gctx, req.Lyrics, s.classifier.MinScore())
		return err
	})
	g.Go(func() error {
		var err error
		embedding, err = s.embedder.Embed(gctx, req.Lyrics)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if emotions == nil {
		emotions = []classifier.EmotionScore{}
	}
	res := &Result{
		Artist:    req.Artist,
		Title:     req.Title,
		Emotions:  emotions,
		Embedding: embedding,
	}

	if s.publisher != nil {
		// Emitter logs its own failures.
		_ = s.publisher.Emit(ctx, events.NewAnalyzed(req.Artist, req.Title, emotions, len(embedding)))
	}
	return res, nil
}

// Similar ranks the library against lyrics and returns at most topK songs.
// topK <= 0 uses the embedder's default.
func (s *Service) Similar(ctx context.Context, lyrics string, topK int) ([]library.SimilarSong, error) {
	if strings.TrimSpace(lyrics) == "" {
		return nil, ErrEmptyLyrics
	}
	if s.library == nil {
		return nil, ErrLibraryUnavailable
	}

	songs, err := s.library.Songs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLibraryUnavailable, err)
	}
	return s.embedder.FindSimilar(ctx, lyrics, songs, topK)
}

// Warmup loads both models concurrently.
func (s *Service) Warmup(ctx context.Context) error {
	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.classifier.Warmup(gctx) })
	g.Go(func() error { return s.embedder.Warmup(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Info("Models loaded", nil, map[string]interface{}{
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	return nil
}
