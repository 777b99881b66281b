package qdrant

import "time"

const (
	DefaultEndpoint   = "localhost"
	DefaultPort       = 6334
	DefaultCollection = "songs"
	DefaultPageSize   = 256
	DefaultTimeout    = 10 * time.Second
)

// Config holds connection and behavior settings for the Qdrant client.
type Config struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" mapstructure:"port"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" mapstructure:"api_key"`

	UseTLS bool `yaml:"use_tls" mapstructure:"use_tls"`

	// Collection holds one point per song.
	Collection string `yaml:"collection" mapstructure:"collection"`

	// VectorName selects a named vector; empty uses the default vector.
	VectorName string `yaml:"vector_name" mapstructure:"vector_name"`

	// PageSize is the scroll batch size.
	PageSize uint32 `yaml:"page_size" mapstructure:"page_size"`

	// Maximum request duration before timing out.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" mapstructure:"check_compatibility"`
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Collection == "" {
		c.Collection = DefaultCollection
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}
