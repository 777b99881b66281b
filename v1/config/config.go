package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

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

const (
	// EnvPrefix prefixes every environment override, e.g.
	// LYRICML_API_ADDRESS overrides api.address.
	EnvPrefix = "LYRICML"

	// FileName is the config file looked up when no path is given.
	FileName = "lyricml"
)

// SearchPaths are the directories searched for lyricml.yaml.
var SearchPaths = []string{".", "/etc/lyricml"}

// Config aggregates the configuration of every package.
type Config struct {
	Logger  logger.Config  `yaml:"logger" mapstructure:"logger"`
	Metrics metrics.Config `yaml:"metrics" mapstructure:"metrics"`
	Tracer  tracer.Config  `yaml:"tracer" mapstructure:"tracer"`

	Runtime    inference.RuntimeConfig `yaml:"onnxruntime" mapstructure:"onnxruntime"`
	Models     modelhub.Config         `yaml:"models" mapstructure:"models"`
	Minio      minio.Config            `yaml:"minio" mapstructure:"minio"`
	Classifier classifier.Config       `yaml:"classifier" mapstructure:"classifier"`
	Embedding  embedding.Config        `yaml:"embedding" mapstructure:"embedding"`
	Cache      redis.Config            `yaml:"cache" mapstructure:"cache"`

	Library  library.Config  `yaml:"library" mapstructure:"library"`
	Qdrant   qdrant.Config   `yaml:"qdrant" mapstructure:"qdrant"`
	Postgres postgres.Config `yaml:"postgres" mapstructure:"postgres"`

	Events events.Config `yaml:"events" mapstructure:"events"`
	Rabbit rabbit.Config `yaml:"rabbit" mapstructure:"rabbit"`
	Kafka  kafka.Config  `yaml:"kafka" mapstructure:"kafka"`

	Lyrics   lyricsource.Config `yaml:"lyrics" mapstructure:"lyrics"`
	Spotify  spotify.Config     `yaml:"spotify" mapstructure:"spotify"`
	Analysis analysis.Config    `yaml:"analysis" mapstructure:"analysis"`
	API      api.Config         `yaml:"api" mapstructure:"api"`
}

// Load reads the configuration. Sources, lowest precedence first: built-in
// defaults, the YAML file, a .env file in the working directory and the
// process environment. A missing .env is ignored. An explicit path must
// exist; without one, lyricml.yaml is optional.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvAliases(v); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, p := range SearchPaths {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the backend selectors against the enabled packages.
func (c *Config) Validate() error {
	switch c.Library.Backend {
	case "", library.BackendNone, library.BackendFile:
		if c.Library.Backend == library.BackendFile && c.Library.File == "" {
			return errors.New("library.file is required for the file backend")
		}
	case library.BackendQdrant:
		if !c.Qdrant.Enabled {
			return errors.New("library.backend is qdrant but qdrant.enabled is false")
		}
	case library.BackendPostgres:
		if !c.Postgres.Enabled {
			return errors.New("library.backend is postgres but postgres.enabled is false")
		}
	default:
		return fmt.Errorf("unknown library.backend %q", c.Library.Backend)
	}

	switch c.Events.Backend {
	case "", events.BackendNone:
	case events.BackendRabbit:
		if !c.Rabbit.Enabled {
			return errors.New("events.backend is rabbit but rabbit.enabled is false")
		}
	case events.BackendKafka:
		if !c.Kafka.Enabled {
			return errors.New("events.backend is kafka but kafka.enabled is false")
		}
	default:
		return fmt.Errorf("unknown events.backend %q", c.Events.Backend)
	}

	if b := c.Classifier.Backend; b != classifier.BackendONNX && b != classifier.BackendRemote {
		return fmt.Errorf("unknown classifier.backend %q", b)
	}
	if b := c.Embedding.Backend; b != embedding.BackendONNX && b != embedding.BackendRemote {
		return fmt.Errorf("unknown embedding.backend %q", b)
	}
	return nil
}

