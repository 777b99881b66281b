package analysis

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/embedding"
	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/library"
)

// Config controls start-up behavior of the service.
type Config struct {
	// WarmupOnStart loads both models in the background once the
	// application has started. A failed warmup is logged and the models are
	// loaded on first use instead.
	WarmupOnStart bool `yaml:"warmup_on_start" mapstructure:"warmup_on_start"`
}

// FXModule provides *Service.
var FXModule = fx.Module("analysis",
	fx.Provide(NewWithDI),
	fx.Invoke(RegisterAnalysisLifecycle),
)

// ServiceParams groups the dependencies of the service.
type ServiceParams struct {
	fx.In

	Classifier *classifier.Classifier
	Embedder   *embedding.Embedder
	Library    library.Source  `optional:"true"`
	Emitter    *events.Emitter `optional:"true"`
	Logger     Logger          `optional:"true"`
}

// NewWithDI builds the service from the container.
func NewWithDI(p ServiceParams) *Service {
	var pub Publisher
	if p.Emitter.Enabled() {
		pub = p.Emitter
	}
	return NewService(p.Classifier, p.Embedder, p.Library, pub, p.Logger)
}

// LifecycleParams groups the dependencies of the warmup hook.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    Config
	Service   *Service
	Logger    Logger `optional:"true"`
}

// RegisterAnalysisLifecycle warms the models up after start when
// configured. The warmup runs detached from OnStart and is cancelled on stop.
func RegisterAnalysisLifecycle(p LifecycleParams) {
	if !p.Config.WarmupOnStart {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				if err := p.Service.Warmup(ctx); err != nil && p.Logger != nil {
					p.Logger.Warn("Model warmup failed, loading lazily", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
