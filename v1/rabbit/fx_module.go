package rabbit

import (
	"context"
	"sync"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *RabbitClient and registers it as the "rabbit" event sink.
var FXModule = fx.Module("rabbit",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(NewEventSink, fx.ResultTags(`group:"event_sinks"`)),
	),
	fx.Invoke(RegisterRabbitLifecycle),
)

// RabbitParams groups the dependencies needed to create the client.
type RabbitParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI connects to RabbitMQ, or returns nil when disabled.
func NewClientWithDI(params RabbitParams) (*RabbitClient, error) {
	if !params.Config.Enabled {
		return nil, nil
	}
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	return client.WithLogger(params.Logger).WithObserver(params.Observer), nil
}

// NewEventSink exposes the client as an events.Sink.
func NewEventSink(rb *RabbitClient) events.Backend {
	b := events.Backend{Name: events.BackendRabbit}
	if rb != nil {
		b.Sink = rb
	}
	return b
}

// RabbitLifecycleParams groups the dependencies for lifecycle management.
type RabbitLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RabbitClient
}

// RegisterRabbitLifecycle runs the reconnect loop while the application is
// up and closes the connection on stop.
func RegisterRabbitLifecycle(params RabbitLifecycleParams) {
	if params.Client == nil {
		return
	}
	wg := &sync.WaitGroup{}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			wg.Add(1)
			go func() {
				defer wg.Done()
				params.Client.RetryConnection()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := params.Client.Close()
			wg.Wait()
			return err
		},
	})
}
