package rabbit

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// Logger is the logging contract of the publisher.
type Logger interface {
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// RabbitClient publishes messages to one exchange with publisher confirms
// and reconnects when the broker drops the connection.
type RabbitClient struct {
	cfg      Config
	logger   Logger
	observer observability.Observer

	// mu guards conn and channel, which are replaced on reconnect.
	mu      sync.RWMutex
	conn    *amqp.Connection
	channel *amqp.Channel

	shutdownSignal    chan struct{}
	closeShutdownOnce sync.Once
}

// NewClient dials the broker, opens a confirm-mode channel and declares the
// exchange.
func NewClient(cfg Config) (*RabbitClient, error) {
	cfg = cfg.withDefaults()

	conn, err := newConnection(cfg.Connection)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to rabbit: %w", TranslateError(err))
	}

	ch, err := openChannel(conn, cfg.Channel)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &RabbitClient{
		cfg:            cfg,
		conn:           conn,
		channel:        ch,
		shutdownSignal: make(chan struct{}),
	}, nil
}

// WithLogger sets the logger and returns the client for chaining.
func (rb *RabbitClient) WithLogger(l Logger) *RabbitClient {
	rb.logger = l
	return rb
}

// WithObserver sets the observer and returns the client for chaining.
func (rb *RabbitClient) WithObserver(o observability.Observer) *RabbitClient {
	rb.observer = o
	return rb
}

// openChannel creates a channel in confirm mode and declares the exchange.
func openChannel(conn *amqp.Connection, cfg Channel) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", TranslateError(err))
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", TranslateError(err))
	}

	err = ch.ExchangeDeclare(
		cfg.ExchangeName,
		cfg.ExchangeType,
		true,  // Durable
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,   // Arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.ExchangeName, TranslateError(err))
	}
	return ch, nil
}

// newConnection dials with mutual TLS, plain TLS or no TLS depending on cfg.
func newConnection(cfg Connection) (*amqp.Connection, error) {
	amqpCfg := amqp.Config{Heartbeat: 2 * time.Second}

	if cfg.IsSSLEnabled && cfg.UseCert {
		tlsConfig, err := createTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		amqpCfg.TLSClientConfig = tlsConfig
	}

	return amqp.DialConfig(cfg.url(), amqpCfg)
}

func createTLSConfig(cfg Connection) (*tls.Config, error) {
	caCert, err := os.ReadFile(cfg.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA cert: %w", err)
	}
	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return nil, fmt.Errorf("failed to parse CA cert %s", cfg.CACertPath)
	}

	cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load client cert: %w", err)
	}

	return &tls.Config{
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{cert},
		ServerName:   cfg.ServerName,
	}, nil
}

// RetryConnection waits for the connection to close and re-dials until it
// succeeds or Close is called. It blocks and is meant to run in its own
// goroutine.
func (rb *RabbitClient) RetryConnection() {
outerLoop:
	for {
		rb.mu.RLock()
		conn := rb.conn
		rb.mu.RUnlock()

		errChan := conn.NotifyClose(make(chan *amqp.Error, 1))

		select {
		case <-rb.shutdownSignal:
			return
		case err := <-errChan:
			rb.logWarn("RabbitMQ connection closed, retrying", err)
		reconnectLoop:
			for {
				select {
				case <-rb.shutdownSignal:
					return
				default:
				}

				newConn, err := newConnection(rb.cfg.Connection)
				if err != nil {
					rb.logError("RabbitMQ reconnection failed", err)
					time.Sleep(rb.cfg.Channel.DelayToReconnect)
					continue reconnectLoop
				}
				ch, err := openChannel(newConn, rb.cfg.Channel)
				if err != nil {
					_ = newConn.Close()
					rb.logError("Failed to re-establish RabbitMQ channel", err)
					time.Sleep(rb.cfg.Channel.DelayToReconnect)
					continue reconnectLoop
				}

				rb.mu.Lock()
				rb.conn = newConn
				rb.channel = ch
				rb.mu.Unlock()

				rb.logInfo("Reconnected to RabbitMQ")
				continue outerLoop
			}
		}
	}
}

// Close stops the reconnect loop and closes the channel and connection.
func (rb *RabbitClient) Close() error {
	rb.closeShutdownOnce.Do(func() {
		close(rb.shutdownSignal)
	})

	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.channel != nil {
		_ = rb.channel.Close()
		rb.channel = nil
	}
	if rb.conn != nil && !rb.conn.IsClosed() {
		if err := rb.conn.Close(); err != nil {
			return fmt.Errorf("failed to close rabbit connection: %w", err)
		}
	}
	return nil
}

func (rb *RabbitClient) logInfo(msg string) {
	if rb.logger != nil {
		rb.logger.InfoWithContext(context.Background(), msg, nil, rb.logFields())
	}
}

func (rb *RabbitClient) logWarn(msg string, err error) {
	if rb.logger != nil {
		rb.logger.WarnWithContext(context.Background(), msg, err, rb.logFields())
	}
}

func (rb *RabbitClient) logError(msg string, err error) {
	if rb.logger != nil {
		rb.logger.ErrorWithContext(context.Background(), msg, err, rb.logFields())
	}
}

func (rb *RabbitClient) logFields() map[string]interface{} {
	return map[string]interface{}{
		"exchange": rb.cfg.Channel.ExchangeName,
		"host":     rb.cfg.Connection.Host,
	}
}
