package embedding

import (
	"errors"
	"time"
)

const (
	BackendONNX   = "onnx"
	BackendRemote = "remote"

	DefaultModel     = "sentence-transformers/all-MiniLM-L6-v2"
	DefaultDimension = 384
	DefaultMaxLength = 256
	DefaultTopK      = 5
)

// Config selects the encoder and the expected vector size.
type Config struct {
	// Backend is "onnx" (default) or "remote".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// Model is the hub repository of the ONNX export.
	Model    string `yaml:"model" mapstructure:"model"`
	Revision string `yaml:"revision" mapstructure:"revision"`

	// Dir is a local export that takes precedence over the hub.
	Dir string `yaml:"dir" mapstructure:"dir"`

	MaxLength int `yaml:"max_length" mapstructure:"max_length"`
	Dimension int `yaml:"dimension" mapstructure:"dimension"`

	Remote RemoteConfig `yaml:"remote" mapstructure:"remote"`
}

// RemoteConfig points at an OpenAI-compatible inference service.
// Endpoint is the API root; "/embeddings" is appended.
type RemoteConfig struct {
	Endpoint string        `yaml:"endpoint" mapstructure:"endpoint"`
	Token    string        `yaml:"token" mapstructure:"token"`
	Model    string        `yaml:"model" mapstructure:"model"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Validate ensures required fields are present.
func (c RemoteConfig) Validate() error {
	if c.Endpoint == "" {
		return errors.New("embedding: missing remote endpoint")
	}
	if c.Model == "" {
		return errors.New("embedding: missing remote model")
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = BackendONNX
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxLength <= 0 {
		c.MaxLength = DefaultMaxLength
	}
	if c.Dimension <= 0 {
		c.Dimension = DefaultDimension
	}
	if c.Remote.Timeout == 0 {
		c.Remote.Timeout = 30 * time.Second
	}
	return c
}

// modelID names the model whose vectors the embedder returns.
func (c Config) modelID() string {
	if c.Backend == BackendRemote {
		return c.Remote.Model
	}
	return c.Model
}
