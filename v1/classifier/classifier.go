package classifier

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
	"github.com/pulsesearch/lyricml/v1/lyrics"
	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/observability"
)

const component = "classifier"

// ModelResolver turns a model spec into a local directory.
type ModelResolver interface {
	Resolve(ctx context.Context, spec modelhub.ModelSpec) (string, error)
}

// Logger is the logging contract of the classifier.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Classifier turns lyrics into a ranked list of emotions. It is safe for
// concurrent use.
type Classifier struct {
	cfg       Config
	resolver  ModelResolver
	predictor *inference.Lazy[Predictor]
	logger    Logger
	observer  observability.Observer
}

// New returns a Classifier whose predictor is selected by cfg.Backend and
// built on first use.
func New(cfg Config, resolver ModelResolver, logger Logger) *Classifier {
	c := &Classifier{
		cfg:      cfg.withDefaults(),
		resolver: resolver,
		logger:   logger,
	}
	c.predictor = inference.NewLazy(c.load)
	return c
}

// NewWithPredictor returns a Classifier that uses p instead of loading a model.
func NewWithPredictor(cfg Config, p Predictor) *Classifier {
	c := &Classifier{cfg: cfg.withDefaults()}
	c.predictor = inference.NewLazy(func(context.Context) (Predictor, error) { return p, nil })
	return c
}

// WithObserver attaches an observer notified after every classification.
func (c *Classifier) WithObserver(o observability.Observer) *Classifier {
	c.observer = o
	return c
}

// MinScore returns the configured threshold.
func (c *Classifier) MinScore() float64 {
	return c.cfg.MinScore
}

// Ready reports whether the predictor has been loaded.
func (c *Classifier) Ready() bool {
	_, ok := c.predictor.Peek()
	return ok
}

// Warmup loads the predictor without classifying anything.
func (c *Classifier) Warmup(ctx context.Context) error {
	_, err := c.predictor.Get(ctx)
	return err
}

// Classify normalizes and chunks lyrics, scores every chunk and aggregates
// the results with Aggregate.
func (c *Classifier) Classify(ctx context.Context, text string, minScore float64) (scores []EmotionScore, err error) {
	ctx, span := otel.Tracer(component).Start(ctx, "classifier.Classify")
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		observability.Observe(c.observer, component, "classify", c.cfg.Backend, start, err, int64(len(scores)))
	}()

	predictor, err := c.predictor.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load emotion model: %w", err)
	}

	chunks := lyrics.Chunk(lyrics.Normalize(text), c.cfg.MaxWords)
	span.SetAttributes(
		attribute.String("classifier.model", predictor.Name()),
		attribute.Int("classifier.chunks", len(chunks)),
	)

	perChunk, err := predictor.Predict(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("predict emotions: %w", err)
	}
	return Aggregate(perChunk, minScore), nil
}

// Close releases the predictor if it was loaded.
func (c *Classifier) Close() error {
	p, ok := c.predictor.Peek()
	if !ok {
		return nil
	}
	if closer, ok := p.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (c *Classifier) load(ctx context.Context) (Predictor, error) {
	switch c.cfg.Backend {
	case BackendRemote:
		c.info("Using remote emotion model", map[string]interface{}{"endpoint": c.cfg.Remote.Endpoint})
		return newRemotePredictor(c.cfg.Remote)
	case BackendONNX:
		return c.loadONNX(ctx)
	default:
		return nil, fmt.Errorf("classifier: unknown backend %q", c.cfg.Backend)
	}
}

func (c *Classifier) loadONNX(ctx context.Context) (Predictor, error) {
	if c.resolver == nil {
		return nil, errors.New("classifier: no model resolver configured")
	}

	fineTuned := modelhub.ModelSpec{
		Name:  filepath.Base(c.cfg.FineTunedDir),
		Dir:   c.cfg.FineTunedDir,
		Files: fineTunedLayout.files(),
	}
	dir, err := c.resolver.Resolve(ctx, fineTuned)
	switch {
	case err == nil:
		c.info("Loading fine-tuned model", map[string]interface{}{"dir": dir})
		return newONNXPredictor(fineTuned.Name, dir, fineTunedLayout, c.cfg.FineTunedMaxLength)
	case !errors.Is(err, modelhub.ErrModelNotFound):
		return nil, err
	}

	fallback := modelhub.ModelSpec{
		Name:     filepath.Base(c.cfg.FallbackModel),
		Repo:     c.cfg.FallbackModel,
		Revision: c.cfg.FallbackRevision,
		Files:    fallbackLayout.files(),
	}
	c.info("Fine-tuned model not found", map[string]interface{}{
		"dir":      c.cfg.FineTunedDir,
		"fallback": c.cfg.FallbackModel,
	})
	dir, err = c.resolver.Resolve(ctx, fallback)
	if err != nil {
		return nil, err
	}
	return newONNXPredictor(c.cfg.FallbackModel, dir, fallbackLayout, c.cfg.FallbackMaxLength)
}

func (c *Classifier) info(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Info(msg, nil, fields)
	}
}
