package embedding

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule wires the embedder into Fx.
//
// It provides:
//   - *Embedder          (NewWithDI)
//   - Lifecycle hook     (RegisterEmbeddingLifecycle)
var FXModule = fx.Module(
	"embedding",

	fx.Provide(NewWithDI),

	fx.Invoke(RegisterEmbeddingLifecycle),
)

// EmbedderParams groups the dependencies of the embedder. The cache is
// optional.
type EmbedderParams struct {
	fx.In

	Config   Config
	Hub      *modelhub.Hub
	Cache    Cache                  `optional:"true"`
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewWithDI builds the embedder from the container.
func NewWithDI(p EmbedderParams) *Embedder {
	return New(p.Config, p.Hub, p.Cache, p.Logger).WithObserver(p.Observer)
}

// RegisterEmbeddingLifecycle ensures that the encoder is released on
// application shutdown.
func RegisterEmbeddingLifecycle(lc fx.Lifecycle, e *Embedder) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return e.Close()
		},
	})
}
