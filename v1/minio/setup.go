package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// Logger is the logging contract of the client.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// MinioClient downloads objects from one bucket.
type MinioClient struct {
	client   *minio.Client
	cfg      Config
	observer observability.Observer
	logger   Logger
}

// NewClient connects to the endpoint and verifies that the bucket exists.
func NewClient(cfg Config) (*MinioClient, error) {
	if cfg.Connection.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}
	if cfg.Connection.BucketName == "" {
		return nil, fmt.Errorf("minio bucket name cannot be empty")
	}

	client, err := minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Connection.AccessKeyID, cfg.Connection.SecretAccessKey, ""),
		Secure: cfg.Connection.UseSSL,
		Region: cfg.Connection.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	m := &MinioClient{client: client, cfg: cfg}

	timeout := cfg.ValidateTimeout
	if timeout == 0 {
		timeout = defaultValidateTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := m.validateConnection(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

// WithObserver attaches an observer and returns the client for chaining.
func (m *MinioClient) WithObserver(o observability.Observer) *MinioClient {
	m.observer = o
	return m
}

// WithLogger attaches a logger and returns the client for chaining.
func (m *MinioClient) WithLogger(l Logger) *MinioClient {
	m.logger = l
	return m
}

// Bucket returns the configured bucket name.
func (m *MinioClient) Bucket() string {
	return m.cfg.Connection.BucketName
}

func (m *MinioClient) validateConnection(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.Connection.BucketName)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, m.cfg.Connection.BucketName)
	}
	return nil
}

func (m *MinioClient) observeOperation(operation, resource string, start time.Time, err error, size int64) {
	if m == nil || m.observer == nil {
		return
	}
	m.observer.ObserveOperation(observability.OperationContext{
		Component:   "minio",
		Operation:   operation,
		Resource:    m.cfg.Connection.BucketName,
		SubResource: resource,
		Duration:    time.Since(start),
		Error:       err,
		Size:        size,
	})
}
