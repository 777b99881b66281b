package embedding

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/pulsesearch/lyricml/v1/inference"
	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/lyrics"
	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/observability"
)

const component = "embedding"

// ErrDimensionMismatch is returned when the encoder yields a vector of the
// wrong size.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// ModelResolver turns a model spec into a local directory.
type ModelResolver interface {
	Resolve(ctx context.Context, spec modelhub.ModelSpec) (string, error)
}

// Logger is the logging contract of the embedder.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Embedder is the public entrypoint for computing embeddings. It is safe for
// concurrent use.
type Embedder struct {
	cfg      Config
	resolver ModelResolver
	encoder  *inference.Lazy[Encoder]
	cache    Cache
	logger   Logger
	observer observability.Observer
}

// New returns an Embedder whose encoder is selected by cfg.Backend and built
// on first use. cache and logger may be nil.
func New(cfg Config, resolver ModelResolver, cache Cache, logger Logger) *Embedder {
	e := &Embedder{
		cfg:      cfg.withDefaults(),
		resolver: resolver,
		cache:    cache,
		logger:   logger,
	}
	e.encoder = inference.NewLazy(e.load)
	return e
}

// NewWithEncoder returns an Embedder that uses enc instead of loading a model.
func NewWithEncoder(cfg Config, enc Encoder, cache Cache) *Embedder {
	e := &Embedder{cfg: cfg.withDefaults(), cache: cache}
	e.encoder = inference.NewLazy(func(context.Context) (Encoder, error) { return enc, nil })
	return e
}

// WithObserver attaches an observer notified after every encoder call.
func (e *Embedder) WithObserver(o observability.Observer) *Embedder {
	e.observer = o
	return e
}

// Dimension returns the configured vector size.
func (e *Embedder) Dimension() int {
	return e.cfg.Dimension
}

// Ready reports whether the encoder has been loaded.
func (e *Embedder) Ready() bool {
	_, ok := e.encoder.Peek()
	return ok
}

// Warmup loads the encoder without embedding anything.
func (e *Embedder) Warmup(ctx context.Context) error {
	_, err := e.encoder.Get(ctx)
	return err
}

// Embed returns the unit-length embedding of text. The text is normalized
// first; the result is served from the cache when possible.
func (e *Embedder) Embed(ctx context.Context, text string) (vec []float32, err error) {
	ctx, span := otel.Tracer(component).Start(ctx, "embedding.Embed")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	text = lyrics.Normalize(text)
	model := e.cfg.modelID()

	if cached, ok := e.cacheGet(ctx, model, text); ok {
		span.SetAttributes(attribute.Bool("embedding.cache_hit", true))
		return cached, nil
	}

	enc, err := e.encoder.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load embedding model: %w", err)
	}

	start := time.Now()
	raw, err := enc.Encode(ctx, text)
	observability.Observe(e.observer, component, "encode", model, start, err, int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if len(raw) != e.cfg.Dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(raw), e.cfg.Dimension)
	}

	vec = inference.L2Normalize(raw)
	e.cacheSet(ctx, model, text, vec)
	return vec, nil
}

// FindSimilar embeds query and ranks songs against it with Rank.
func (e *Embedder) FindSimilar(ctx context.Context, query string, songs []library.SongRecord, topK int) ([]library.SimilarSong, error) {
	vec, err := e.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	return Rank(vec, songs, topK), nil
}

// Close releases the encoder if it was loaded.
func (e *Embedder) Close() error {
	enc, ok := e.encoder.Peek()
	if !ok {
		return nil
	}
	if closer, ok := enc.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (e *Embedder) cacheGet(ctx context.Context, model, text string) ([]float32, bool) {
	if e.cache == nil {
		return nil, false
	}
	vec, ok, err := e.cache.Get(ctx, model, text)
	if err != nil {
		e.warn("Embedding cache lookup failed", err)
		return nil, false
	}
	if ok && len(vec) != e.cfg.Dimension {
		return nil, false
	}
	return vec, ok
}

func (e *Embedder) cacheSet(ctx context.Context, model, text string, vec []float32) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Set(ctx, model, text, vec); err != nil {
		e.warn("Embedding cache store failed", err)
	}
}

func (e *Embedder) load(ctx context.Context) (Encoder, error) {
	switch e.cfg.Backend {
	case BackendRemote:
		e.info("Using remote embedding model", map[string]interface{}{
			"endpoint": e.cfg.Remote.Endpoint,
			"model":    e.cfg.Remote.Model,
		})
		return NewInferenceEncoder(e.cfg.Remote, e.cfg.Dimension)
	case BackendONNX:
	default:
		return nil, fmt.Errorf("embedding: unknown backend %q", e.cfg.Backend)
	}

	if e.resolver == nil {
		return nil, errors.New("embedding: no model resolver configured")
	}
	dir, err := e.resolver.Resolve(ctx, modelhub.ModelSpec{
		Name:     filepath.Base(e.cfg.Model),
		Dir:      e.cfg.Dir,
		Repo:     e.cfg.Model,
		Revision: e.cfg.Revision,
		Files:    onnxFiles,
	})
	if err != nil {
		return nil, err
	}
	e.info("Loading embedding model", map[string]interface{}{"model": e.cfg.Model, "dir": dir})
	return newONNXEncoder(e.cfg.Model, dir, e.cfg.MaxLength, e.cfg.Dimension)
}

func (e *Embedder) info(msg string, fields map[string]interface{}) {
	if e.logger != nil {
		e.logger.Info(msg, nil, fields)
	}
}

func (e *Embedder) warn(msg string, err error) {
	if e.logger != nil {
		e.logger.Warn(msg, err, nil)
	}
}
