package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/events"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *KafkaClient and registers it as the "kafka" event sink.
var FXModule = fx.Module("kafka",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(NewEventSink, fx.ResultTags(`group:"event_sinks"`)),
	),
	fx.Invoke(RegisterKafkaLifecycle),
)

// KafkaParams groups the dependencies needed to create the producer.
type KafkaParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI builds the producer, or returns nil when disabled.
func NewClientWithDI(p KafkaParams) (*KafkaClient, error) {
	if !p.Config.Enabled {
		return nil, nil
	}
	client, err := NewClient(p.Config, p.Logger)
	if err != nil {
		return nil, err
	}
	return client.WithObserver(p.Observer), nil
}

// NewEventSink exposes the client as an events.Sink.
func NewEventSink(k *KafkaClient) events.Backend {
	b := events.Backend{Name: events.BackendKafka}
	if k != nil {
		b.Sink = k
	}
	return b
}

// RegisterKafkaLifecycle closes the writer on stop, flushing async batches.
func RegisterKafkaLifecycle(lc fx.Lifecycle, k *KafkaClient) {
	if k == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return k.Close()
		},
	})
}
