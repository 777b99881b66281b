package rabbit

import (
	"fmt"
	"time"
)

const (
	DefaultExchangeName   = "lyricml.events"
	DefaultExchangeType   = "topic"
	DefaultRoutingKey     = "lyrics.analyzed"
	DefaultConfirmTimeout = 5 * time.Second
)

// Config defines the connection and the exchange events are published to.
type Config struct {
	// Enabled turns the RabbitMQ publisher on.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	Connection Connection `yaml:"connection" mapstructure:"connection"`

	Channel Channel `yaml:"channel" mapstructure:"channel"`
}

// Connection contains the settings needed to reach the broker.
type Connection struct {
	// Host is the hostname or IP address of the RabbitMQ server
	Host string `yaml:"host" mapstructure:"host"`

	// Port is the TCP port RabbitMQ listens on (usually 5672 for non-SSL, 5671 for SSL)
	Port uint `yaml:"port" mapstructure:"port"`

	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`

	// IsSSLEnabled switches the scheme to amqps.
	IsSSLEnabled bool `yaml:"ssl_enabled" mapstructure:"ssl_enabled"`

	// UseCert enables mutual TLS with the certificate paths below.
	UseCert bool `yaml:"use_cert" mapstructure:"use_cert"`

	CACertPath     string `yaml:"ca_cert_path" mapstructure:"ca_cert_path"`
	ClientCertPath string `yaml:"client_cert_path" mapstructure:"client_cert_path"`
	ClientKeyPath  string `yaml:"client_key_path" mapstructure:"client_key_path"`

	// ServerName is used to verify the server certificate hostname
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

// Channel describes where messages are published.
type Channel struct {
	// ExchangeName is declared durable on connect. Default: "lyricml.events"
	ExchangeName string `yaml:"exchange_name" mapstructure:"exchange_name"`

	// ExchangeType is one of direct, fanout, topic or headers. Default: "topic"
	ExchangeType string `yaml:"exchange_type" mapstructure:"exchange_type"`

	// RoutingKey of every published event. Default: "lyrics.analyzed"
	RoutingKey string `yaml:"routing_key" mapstructure:"routing_key"`

	// ConfirmTimeout bounds the wait for a publisher confirm.
	ConfirmTimeout time.Duration `yaml:"confirm_timeout" mapstructure:"confirm_timeout"`

	// DelayToReconnect is the pause between reconnect attempts.
	DelayToReconnect time.Duration `yaml:"delay_to_reconnect" mapstructure:"delay_to_reconnect"`
}

func (c Config) withDefaults() Config {
	if c.Channel.ExchangeName == "" {
		c.Channel.ExchangeName = DefaultExchangeName
	}
	if c.Channel.ExchangeType == "" {
		c.Channel.ExchangeType = DefaultExchangeType
	}
	if c.Channel.RoutingKey == "" {
		c.Channel.RoutingKey = DefaultRoutingKey
	}
	if c.Channel.ConfirmTimeout == 0 {
		c.Channel.ConfirmTimeout = DefaultConfirmTimeout
	}
	if c.Channel.DelayToReconnect == 0 {
		c.Channel.DelayToReconnect = time.Second
	}
	return c
}

func (c Connection) url() string {
	scheme := "amqp"
	if c.IsSSLEnabled {
		scheme = "amqps"
	}
	return fmt.Sprintf("%s://%v:%v@%v:%v", scheme, c.User, c.Password, c.Host, c.Port)
}
