package redis

import "time"

// Default values for configuration
const (
	DefaultHost            = "localhost"
	DefaultPort            = 6379
	DefaultMaxRetries      = 3
	DefaultMinRetryBackoff = 8 * time.Millisecond
	DefaultMaxRetryBackoff = 512 * time.Millisecond
	DefaultDialTimeout     = 5 * time.Second
	DefaultReadTimeout     = 3 * time.Second
	DefaultIdleTimeout     = 5 * time.Minute

	DefaultKeyPrefix = "lyricml:emb"
	DefaultTTL       = 24 * time.Hour
)

// Config defines the connection and cache settings.
type Config struct {
	// Enabled turns the embedding cache on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// Host is the Redis server hostname or IP address
	// Default: "localhost"
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the Redis server port
	// Default: 6379
	Port int `yaml:"port" mapstructure:"port"`

	// Username is the Redis username for ACL authentication (Redis 6.0+)
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// DB is the Redis database number to use
	DB int `yaml:"db" mapstructure:"db"`

	// PoolSize is the maximum number of socket connections
	// Default: 10 per CPU
	PoolSize int `yaml:"pool_size" mapstructure:"pool_size"`

	// MaxRetries is the maximum number of retries before giving up
	// Default: 3
	// Set to -1 to disable retries
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	MinRetryBackoff time.Duration `yaml:"min_retry_backoff" mapstructure:"min_retry_backoff"`
	MaxRetryBackoff time.Duration `yaml:"max_retry_backoff" mapstructure:"max_retry_backoff"`

	// DialTimeout is the timeout for establishing new connections
	// Default: 5 seconds
	DialTimeout time.Duration `yaml:"dial_timeout" mapstructure:"dial_timeout"`

	// ReadTimeout is the timeout for socket reads
	// Default: 3 seconds
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout defaults to ReadTimeout
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`

	// IdleTimeout is the amount of time after which idle connections are closed
	// Default: 5 minutes
	IdleTimeout time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`

	TLS TLSConfig `yaml:"tls" mapstructure:"tls"`

	// KeyPrefix prefixes every cache key.
	// Default: "lyricml:emb"
	KeyPrefix string `yaml:"key_prefix" mapstructure:"key_prefix"`

	// TTL is the lifetime of a cached vector. Zero uses DefaultTTL.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// TLSConfig contains TLS/SSL configuration parameters.
type TLSConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// CACertPath is the file path to the CA certificate for verifying the server
	CACertPath string `yaml:"ca_cert_path" mapstructure:"ca_cert_path"`

	ClientCertPath string `yaml:"client_cert_path" mapstructure:"client_cert_path"`
	ClientKeyPath  string `yaml:"client_key_path" mapstructure:"client_key_path"`

	// InsecureSkipVerify should only be used in testing
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" mapstructure:"insecure_skip_verify"`

	// ServerName defaults to Host
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.MinRetryBackoff == 0 {
		c.MinRetryBackoff = DefaultMinRetryBackoff
	}
	if c.MaxRetryBackoff == 0 {
		c.MaxRetryBackoff = DefaultMaxRetryBackoff
	}
	if c.DialTimeout == 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.KeyPrefix == "" {
		c.KeyPrefix = DefaultKeyPrefix
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	return c
}
