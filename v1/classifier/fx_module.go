package classifier

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/modelhub"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *Classifier and closes its model on shutdown.
var FXModule = fx.Module("classifier",
	fx.Provide(NewWithDI),
	fx.Invoke(RegisterClassifierLifecycle),
)

// ClassifierParams groups the dependencies of the classifier.
type ClassifierParams struct {
	fx.In

	Config   Config
	Hub      *modelhub.Hub
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewWithDI builds the classifier from the container.
func NewWithDI(p ClassifierParams) *Classifier {
	return New(p.Config, p.Hub, p.Logger).WithObserver(p.Observer)
}

// RegisterClassifierLifecycle releases the ONNX session on stop.
func RegisterClassifierLifecycle(lc fx.Lifecycle, c *Classifier) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
}
