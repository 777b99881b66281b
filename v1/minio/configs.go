package minio

import "time"

// Config configures the object storage client.
type Config struct {
	// Enabled turns object storage lookups on. When false NewClient is not
	// called by the fx module.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	Connection ConnectionConfig `yaml:"connection" mapstructure:"connection"`

	// ValidateTimeout bounds the startup connectivity check.
	ValidateTimeout time.Duration `yaml:"validate_timeout" mapstructure:"validate_timeout"`
}

// ConnectionConfig holds the endpoint and credentials.
type ConnectionConfig struct {
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"` // e.g. "localhost:9000"
	AccessKeyID     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	UseSSL          bool   `yaml:"use_ssl" mapstructure:"use_ssl"`
	BucketName      string `yaml:"bucket_name" mapstructure:"bucket_name"`
	Region          string `yaml:"region" mapstructure:"region"`
}

const defaultValidateTimeout = 10 * time.Second
