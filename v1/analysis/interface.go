package analysis

import (
	"context"

	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/library"
)

// EmotionClassifier is implemented by *classifier.Classifier.
//
//go:generate mockgen -source=interface.go -destination=mock_interface.go -package=analysis
type EmotionClassifier interface {
	Classify(ctx context.Context, text string, minScore float64) ([]classifier.EmotionScore, error)
	MinScore() float64
	Warmup(ctx context.Context) error
}

// Embedder is implemented by *embedding.Embedder.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	FindSimilar(ctx context.Context, query string, songs []library.SongRecord, topK int) ([]library.SimilarSong, error)
	Warmup(ctx context.Context) error
}

// Publisher is implemented by *events.Emitter.
type Publisher interface {
	Emit(ctx context.Context, ev events.Event) error
}

// Logger is the logging contract of the service.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}
