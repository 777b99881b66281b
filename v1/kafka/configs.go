package kafka

import "time"

const (
	DefaultTopic        = "lyricml.events"
	DefaultRequiredAcks = -1 // all in-sync replicas
	DefaultMaxAttempts  = 10
	DefaultBatchSize    = 100
	DefaultBatchTimeout = 10 * time.Millisecond
	DefaultWriteTimeout = 10 * time.Second
)

// Config defines the producer analysis events are written with.
type Config struct {
	// Enabled turns the Kafka producer on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Brokers is a list of Kafka broker addresses
	Brokers []string `yaml:"brokers" mapstructure:"brokers"`

	// Topic receives every event. Default: "lyricml.events"
	Topic string `yaml:"topic" mapstructure:"topic"`

	// RequiredAcks: 0 none, 1 leader, -1 all. Default: -1
	RequiredAcks int `yaml:"required_acks" mapstructure:"required_acks"`

	// Async writes in the background and reports errors through the error
	// logger only.
	Async bool `yaml:"async" mapstructure:"async"`

	BatchSize    int           `yaml:"batch_size" mapstructure:"batch_size"`
	BatchTimeout time.Duration `yaml:"batch_timeout" mapstructure:"batch_timeout"`
	MaxAttempts  int           `yaml:"max_attempts" mapstructure:"max_attempts"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`

	// CompressionCodec is one of gzip, snappy, lz4, zstd or empty.
	CompressionCodec string `yaml:"compression_codec" mapstructure:"compression_codec"`

	// AllowAutoTopicCreation lets the broker create the topic on first write.
	AllowAutoTopicCreation bool `yaml:"allow_auto_topic_creation" mapstructure:"allow_auto_topic_creation"`

	TLS  TLSConfig  `yaml:"tls" mapstructure:"tls"`
	SASL SASLConfig `yaml:"sasl" mapstructure:"sasl"`
}

// TLSConfig contains TLS settings for the broker connections.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled" mapstructure:"enabled"`
	CACertPath         string `yaml:"ca_cert_path" mapstructure:"ca_cert_path"`
	ClientCertPath     string `yaml:"client_cert_path" mapstructure:"client_cert_path"`
	ClientKeyPath      string `yaml:"client_key_path" mapstructure:"client_key_path"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`
}

// SASLConfig contains SASL authentication settings.
type SASLConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Mechanism is PLAIN, SCRAM-SHA-256 or SCRAM-SHA-512.
	Mechanism string `yaml:"mechanism" mapstructure:"mechanism"`
	Username  string `yaml:"username" mapstructure:"username"`
	Password  string `yaml:"password" mapstructure:"password"`
}

func (c Config) withDefaults() Config {
	if c.Topic == "" {
		c.Topic = DefaultTopic
	}
	if c.RequiredAcks == 0 {
		c.RequiredAcks = DefaultRequiredAcks
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.BatchSize == 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.BatchTimeout == 0 {
		c.BatchTimeout = DefaultBatchTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	return c
}
