package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/pulsesearch/lyricml/v1/analysis"
	"github.com/pulsesearch/lyricml/v1/api"
	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/config"
	"github.com/pulsesearch/lyricml/v1/embedding"
	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/inference"
	"github.com/pulsesearch/lyricml/v1/kafka"
	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/logger"
	"github.com/pulsesearch/lyricml/v1/lyricsource"
	"github.com/pulsesearch/lyricml/v1/metrics"
	"github.com/pulsesearch/lyricml/v1/minio"
	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/postgres"
	"github.com/pulsesearch/lyricml/v1/qdrant"
	"github.com/pulsesearch/lyricml/v1/rabbit"
	"github.com/pulsesearch/lyricml/v1/redis"
	"github.com/pulsesearch/lyricml/v1/spotify"
	"github.com/pulsesearch/lyricml/v1/tracer"
)

// coreModules builds the analysis service and everything behind it.
func coreModules(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		config.FXModule,

		logger.FXModule,
		fx.WithLogger(func(l *logger.LoggerClient) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap.Named("fx")}
		}),
		fx.Provide(fx.Annotate(
			func(l *logger.LoggerClient) *logger.LoggerClient { return l },
			fx.As(new(analysis.Logger)),
			fx.As(new(api.Logger)),
			fx.As(new(classifier.Logger)),
			fx.As(new(embedding.Logger)),
			fx.As(new(events.Logger)),
			fx.As(new(inference.Logger)),
			fx.As(new(kafka.Logger)),
			fx.As(new(lyricsource.Logger)),
			fx.As(new(metrics.Logger)),
			fx.As(new(minio.Logger)),
			fx.As(new(modelhub.Logger)),
			fx.As(new(postgres.Logger)),
			fx.As(new(qdrant.Logger)),
			fx.As(new(rabbit.Logger)),
			fx.As(new(redis.Logger)),
			fx.As(new(spotify.Logger)),
			fx.As(new(tracer.Logger)),
		)),

		tracer.FXModule,
		fx.Provide(func(t *tracer.Tracer) events.Carrier { return t }),

		inference.FXModule,
		minio.FXModule,
		modelhub.FXModule,
		classifier.FXModule,
		redis.FXModule,
		embedding.FXModule,

		qdrant.FXModule,
		postgres.FXModule,
		library.FXModule,

		rabbit.FXModule,
		kafka.FXModule,
		events.FXModule,

		analysis.FXModule,
	)
}

// serverModules adds metrics, lyrics lookup, the Spotify catalog and the
// HTTP API.
func serverModules(cfg *config.Config) fx.Option {
	return fx.Options(
		coreModules(cfg),
		metrics.FXModule,
		fx.Provide(func(m metrics.MetricsCollector) api.RequestMetrics { return m }),
		lyricsource.FXModule,
		spotify.FXModule,
		api.FXModule,
	)
}
