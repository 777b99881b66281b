package rabbit

import (
	"errors"
	"net"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	// ErrNotConnected is returned when no channel is open, e.g. during a reconnect.
	ErrNotConnected = errors.New("not connected")

	// ErrConnectionClosed is returned when the server closed the connection.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrAccessDenied is returned for refused logins and missing permissions.
	ErrAccessDenied = errors.New("access denied")

	// ErrExchangeNotFound is returned when publishing to an undeclared exchange.
	ErrExchangeNotFound = errors.New("exchange not found")

	// ErrPreconditionFailed is returned when a declaration conflicts with an
	// existing exchange of a different type.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrMessageTooLarge is returned when the body exceeds the broker limit.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrMessageNacked is returned when the broker negatively acknowledges a publish.
	ErrMessageNacked = errors.New("message nacked")

	// ErrNetworkError covers dial and socket failures.
	ErrNetworkError = errors.New("network error")
)

// TranslateError converts AMQP and network errors into the sentinels above.
// Errors that match none of them are returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, amqp.ErrClosed) {
		return ErrConnectionClosed
	}

	var amqpErr *amqp.Error
	if errors.As(err, &amqpErr) {
		switch amqpErr.Code {
		case amqp.ConnectionForced:
			return ErrConnectionClosed
		case amqp.AccessRefused:
			return ErrAccessDenied
		case amqp.NotFound:
			return ErrExchangeNotFound
		case amqp.PreconditionFailed:
			return ErrPreconditionFailed
		case amqp.ContentTooLarge:
			return ErrMessageTooLarge
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrNetworkError
	}
	return err
}
