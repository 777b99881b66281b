package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *QdrantClient and registers it as the "qdrant" library
// backend.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClientWithDI,
		fx.Annotate(NewLibraryBackend, fx.ResultTags(`group:"library_backends"`)),
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// QdrantParams groups the dependencies of the client.
type QdrantParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewQdrantClientWithDI connects to Qdrant, or returns nil when disabled.
func NewQdrantClientWithDI(p QdrantParams) (*QdrantClient, error) {
	if !p.Config.Enabled {
		return nil, nil
	}
	client, err := NewQdrantClient(p.Config)
	if err != nil {
		return nil, err
	}
	return client.WithLogger(p.Logger).WithObserver(p.Observer), nil
}

// NewLibraryBackend exposes the client as a library source.
func NewLibraryBackend(c *QdrantClient) library.Backend {
	b := library.Backend{Name: library.BackendQdrant}
	if c != nil {
		b.Source = c
	}
	return b
}

// RegisterQdrantLifecycle closes the client on stop.
func RegisterQdrantLifecycle(lc fx.Lifecycle, c *QdrantClient) {
	if c == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
}
