package classifier

import "time"

const (
	BackendONNX   = "onnx"
	BackendRemote = "remote"

	DefaultFineTunedDir       = "./models/go_emotions_model"
	DefaultFineTunedMaxLength = 128
	DefaultFallbackModel      = "SamLowe/roberta-base-go_emotions-onnx"
	DefaultFallbackMaxLength  = 512

	// DefaultMinScore is the threshold below which labels are dropped.
	DefaultMinScore = 0.10
)

// Config selects and tunes the emotion model.
type Config struct {
	// Backend is "onnx" (default) or "remote".
	Backend string `yaml:"backend" mapstructure:"backend"`

	FineTunedDir       string `yaml:"fine_tuned_dir" mapstructure:"fine_tuned_dir"`
	FineTunedMaxLength int    `yaml:"fine_tuned_max_length" mapstructure:"fine_tuned_max_length"`

	FallbackModel     string `yaml:"fallback_model" mapstructure:"fallback_model"`
	FallbackRevision  string `yaml:"fallback_revision" mapstructure:"fallback_revision"`
	FallbackMaxLength int    `yaml:"fallback_max_length" mapstructure:"fallback_max_length"`

	// MaxWords is the chunk budget passed to lyrics.Chunk.
	MaxWords int `yaml:"max_words" mapstructure:"max_words"`

	MinScore float64 `yaml:"min_score" mapstructure:"min_score"`

	Remote RemoteConfig `yaml:"remote" mapstructure:"remote"`
}

// RemoteConfig points at a text-classification inference endpoint.
type RemoteConfig struct {
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Token    string        `yaml:"token" mapstructure:"token"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = BackendONNX
	}
	if c.FineTunedDir == "" {
		c.FineTunedDir = DefaultFineTunedDir
	}
	if c.FineTunedMaxLength <= 0 {
		c.FineTunedMaxLength = DefaultFineTunedMaxLength
	}
	if c.FallbackModel == "" {
		c.FallbackModel = DefaultFallbackModel
	}
	if c.FallbackMaxLength <= 0 {
		c.FallbackMaxLength = DefaultFallbackMaxLength
	}
	if c.MinScore == 0 {
		c.MinScore = DefaultMinScore
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 30 * time.Second
	}
	return c
}
