package postgres

import "time"

const (
	DefaultTable   = "songs"
	DefaultTimeout = 10 * time.Second
)

// Connection holds the DSN parts of the database.
type Connection struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     string `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DbName   string `yaml:"dbname" mapstructure:"dbname"`
	SSLMode  string `yaml:"sslmode" mapstructure:"sslmode"`
}

// ConnectionDetails tunes the sql.DB pool. Zero values fall back to
// 50 open, 25 idle and a one minute lifetime.
type ConnectionDetails struct {
	MaxOpenConns    int           `yaml:"max_open_conns" mapstructure:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns" mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" mapstructure:"conn_max_lifetime"`
}

// Config defines how the song library table is reached.
type Config struct {
	// Enabled turns the postgres library backend on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	Connection        Connection        `yaml:"connection" mapstructure:"connection"`
	ConnectionDetails ConnectionDetails `yaml:"connection_details" mapstructure:"connection_details"`

	// Table has the columns artist, title, emotions (jsonb) and
	// embedding (real[]). Default: "songs"
	Table string `yaml:"table" mapstructure:"table"`

	// Timeout bounds one full library read.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

func (c Config) withDefaults() Config {
	if c.Table == "" {
		c.Table = DefaultTable
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Connection.SSLMode == "" {
		c.Connection.SSLMode = "disable"
	}
	return c
}
