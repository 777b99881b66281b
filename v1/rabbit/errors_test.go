package rabbit

import (
	"errors"
	"fmt"
	"net"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("other")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"closed", amqp.ErrClosed, ErrConnectionClosed},
		{"wrapped closed", fmt.Errorf("publish: %w", amqp.ErrClosed), ErrConnectionClosed},
		{"access refused", &amqp.Error{Code: amqp.AccessRefused}, ErrAccessDenied},
		{"not found", &amqp.Error{Code: amqp.NotFound, Reason: "no exchange"}, ErrExchangeNotFound},
		{"precondition", &amqp.Error{Code: amqp.PreconditionFailed}, ErrPreconditionFailed},
		{"too large", &amqp.Error{Code: amqp.ContentTooLarge}, ErrMessageTooLarge},
		{"network", &net.OpError{Op: "dial", Err: errors.New("refused")}, ErrNetworkError},
		{"passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TranslateError(tt.in))
		})
	}
}

func TestConfigDefaultsAndURL(t *testing.T) {
	cfg := Config{Connection: Connection{Host: "mq", Port: 5672, User: "u", Password: "p"}}.withDefaults()

	assert.Equal(t, DefaultExchangeName, cfg.Channel.ExchangeName)
	assert.Equal(t, DefaultExchangeType, cfg.Channel.ExchangeType)
	assert.Equal(t, DefaultRoutingKey, cfg.Channel.RoutingKey)
	assert.Equal(t, DefaultConfirmTimeout, cfg.Channel.ConfirmTimeout)
	assert.Equal(t, "amqp://u:p@mq:5672", cfg.Connection.url())

	cfg.Connection.IsSSLEnabled = true
	cfg.Connection.Port = 5671
	assert.Equal(t, "amqps://u:p@mq:5671", cfg.Connection.url())
}

func TestNewEventSinkDisabled(t *testing.T) {
	b := NewEventSink(nil)
	assert.Equal(t, "rabbit", b.Name)
	assert.Nil(t, b.Sink)
}
