package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// Logger is the logging contract of the Qdrant client.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// QdrantClient wraps the official Qdrant Go client and reads songs from one
// collection.
type QdrantClient struct {
	api      *qdrant.Client
	cfg      Config
	logger   Logger
	observer observability.Observer
}

// NewQdrantClient constructs a client and validates connectivity with a
// health check.
//
// The Qdrant Go SDK creates lightweight gRPC connections, so this method
// performs an immediate health check to fail fast if the service is unreachable.
func NewQdrantClient(cfg Config) (*QdrantClient, error) {
	cfg = cfg.withDefaults()

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   cfg.Port,
		APIKey:                 cfg.ApiKey,
		UseTLS:                 cfg.UseTLS,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	qc := &QdrantClient{api: client, cfg: cfg}
	if err := qc.healthCheck(context.Background()); err != nil {
		_ = client.Close()
		return nil, err
	}
	return qc, nil
}

// WithLogger sets the logger and returns the client for chaining.
func (c *QdrantClient) WithLogger(l Logger) *QdrantClient {
	c.logger = l
	return c
}

// WithObserver sets the observer and returns the client for chaining.
func (c *QdrantClient) WithObserver(o observability.Observer) *QdrantClient {
	c.observer = o
	return c
}

// healthCheck verifies the availability of the Qdrant service.
func (c *QdrantClient) healthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := c.api.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}
	if c.logger != nil {
		c.logger.Info("Qdrant health check passed", nil, map[string]interface{}{
			"version":  resp.GetVersion(),
			"endpoint": c.cfg.Endpoint,
		})
	}
	return nil
}

// Client returns the underlying Qdrant SDK client.
func (c *QdrantClient) Client() *qdrant.Client {
	return c.api
}

// Collection returns the configured collection name.
func (c *QdrantClient) Collection() string {
	return c.cfg.Collection
}

// Close closes the gRPC connections.
func (c *QdrantClient) Close() error {
	if c == nil || c.api == nil {
		return nil
	}
	return c.api.Close()
}
