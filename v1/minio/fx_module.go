package minio

import (
	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *MinioClient when object storage is enabled. With
// Enabled=false the provided client is nil and consumers fall back to other
// artifact sources.
var FXModule = fx.Module("minio",
	fx.Provide(NewClientWithDI),
)

// MinioParams groups the dependencies of the client.
type MinioParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI builds the client from the container.
func NewClientWithDI(p MinioParams) (*MinioClient, error) {
	if !p.Config.Enabled {
		return nil, nil
	}
	c, err := NewClient(p.Config)
	if err != nil {
		return nil, err
	}
	return c.WithLogger(p.Logger).WithObserver(p.Observer), nil
}
