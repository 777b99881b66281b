package kafka

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// ErrNoBrokers is returned when the producer is enabled without brokers.
var ErrNoBrokers = errors.New("no kafka brokers configured")

// Logger is the logging contract of the producer.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaClient writes analysis events to one topic.
type KafkaClient struct {
	cfg      Config
	writer   messageWriter
	logger   Logger
	observer observability.Observer
}

// NewClient builds the producer. kafka-go connects lazily, so no broker is
// contacted here. logger may be nil.
func NewClient(cfg Config, logger Logger) (*KafkaClient, error) {
	cfg = cfg.withDefaults()
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	transport := &kafka.Transport{}
	if cfg.TLS.Enabled {
		tlsConfig, err := createTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
		transport.TLS = tlsConfig
	}
	if cfg.SASL.Enabled {
		mechanism, err := createSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
		}
		transport.SASL = mechanism
	}

	codec, err := compressionCodec(cfg.CompressionCodec)
	if err != nil {
		return nil, err
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		MaxAttempts:            cfg.MaxAttempts,
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		WriteTimeout:           cfg.WriteTimeout,
		Async:                  cfg.Async,
		Compression:            codec,
		AllowAutoTopicCreation: cfg.AllowAutoTopicCreation,
		Transport:              transport,
		ErrorLogger:            createErrorLogger(logger),
	}

	if logger != nil {
		logger.Info("Kafka producer initialized", nil, map[string]interface{}{
			"topic":   cfg.Topic,
			"brokers": strings.Join(cfg.Brokers, ","),
		})
	}
	return &KafkaClient{cfg: cfg, writer: w, logger: logger}, nil
}

// WithObserver sets the observer and returns the client for chaining.
func (k *KafkaClient) WithObserver(o observability.Observer) *KafkaClient {
	k.observer = o
	return k
}

// Close flushes pending messages and closes the writer.
func (k *KafkaClient) Close() error {
	return k.writer.Close()
}

func compressionCodec(name string) (kafka.Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return 0, nil
	case "gzip":
		return kafka.Gzip, nil
	case "snappy":
		return kafka.Snappy, nil
	case "lz4":
		return kafka.Lz4, nil
	case "zstd":
		return kafka.Zstd, nil
	default:
		return 0, fmt.Errorf("unsupported compression codec: %s", name)
	}
}

// createErrorLogger routes kafka-go's internal errors to logger.
func createErrorLogger(logger Logger) kafka.Logger {
	if logger == nil {
		return nil
	}
	return kafka.LoggerFunc(func(msg string, args ...interface{}) {
		logger.Error("Kafka internal error", nil, map[string]interface{}{
			"error": fmt.Sprintf(msg, args...),
		})
	})
}

// createTLSConfig creates a TLS configuration from the provided config
func createTLSConfig(cfg TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	if cfg.CACertPath != "" {
		caCert, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA cert: %w", err)
		}
		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA cert")
		}
		tlsConfig.RootCAs = caCertPool
	}

	if cfg.ClientCertPath != "" && cfg.ClientKeyPath != "" {
		cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load client cert: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	return tlsConfig, nil
}

// createSASLMechanism creates a SASL mechanism from the provided config
func createSASLMechanism(cfg SASLConfig) (sasl.Mechanism, error) {
	switch cfg.Mechanism {
	case "PLAIN":
		return plain.Mechanism{
			Username: cfg.Username,
			Password: cfg.Password,
		}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unsupported SASL mechanism: %s", cfg.Mechanism)
	}
}
