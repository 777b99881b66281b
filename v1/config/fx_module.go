package config

import (
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/analysis"
	"github.com/pulsesearch/lyricml/v1/api"
	"github.com/pulsesearch/lyricml/v1/classifier"
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

// FXModule splits a *Config from the container into the per-package
// configs the other modules consume.
//
//	cfg, err := config.Load(path)
//	app := fx.New(
//	    fx.Supply(cfg),
//	    config.FXModule,
//	    logger.FXModule,
//	    ...
//	)
var FXModule = fx.Module("config",
	fx.Provide(
		func(c *Config) logger.Config { return c.Logger },
		func(c *Config) metrics.Config { return c.Metrics },
		func(c *Config) tracer.Config { return c.Tracer },
		func(c *Config) inference.RuntimeConfig { return c.Runtime },
		func(c *Config) modelhub.Config { return c.Models },
		func(c *Config) minio.Config { return c.Minio },
		func(c *Config) classifier.Config { return c.Classifier },
		func(c *Config) embedding.Config { return c.Embedding },
		func(c *Config) redis.Config { return c.Cache },
		func(c *Config) library.Config { return c.Library },
		func(c *Config) qdrant.Config { return c.Qdrant },
		func(c *Config) postgres.Config { return c.Postgres },
		func(c *Config) events.Config { return c.Events },
		func(c *Config) rabbit.Config { return c.Rabbit },
		func(c *Config) kafka.Config { return c.Kafka },
		func(c *Config) lyricsource.Config { return c.Lyrics },
		func(c *Config) spotify.Config { return c.Spotify },
		func(c *Config) analysis.Config { return c.Analysis },
		func(c *Config) api.Config { return c.API },
	),
)
