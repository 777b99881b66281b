package events

import (
	"context"
	"fmt"
)

// Logger is the logging contract of the emitter.
type Logger interface {
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Carrier serializes the trace context of ctx.
type Carrier interface {
	GetCarrier(ctx context.Context) map[string]string
}

// Emitter encodes events and publishes them on a Sink. A nil *Emitter or an
// Emitter without a sink drops every event.
type Emitter struct {
	sink    Sink
	carrier Carrier
	logger  Logger
}

// NewEmitter returns an emitter publishing to sink. carrier and logger may be nil.
func NewEmitter(sink Sink, carrier Carrier, logger Logger) *Emitter {
	return &Emitter{sink: sink, carrier: carrier, logger: logger}
}

// Enabled reports whether events go anywhere.
func (e *Emitter) Enabled() bool {
	return e != nil && e.sink != nil
}

// Emit publishes ev. Failures are logged and returned.
func (e *Emitter) Emit(ctx context.Context, ev Event) error {
	if !e.Enabled() {
		return nil
	}

	body, err := ev.Marshal()
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	headers := map[string]string{}
	if e.carrier != nil {
		for k, v := range e.carrier.GetCarrier(ctx) {
			headers[k] = v
		}
	}
	headers["content-type"] = "application/json"
	headers["event-type"] = ev.Type
	headers["event-id"] = ev.ID.String()

	if err := e.sink.Publish(ctx, ev.Key(), body, headers); err != nil {
		if e.logger != nil {
			e.logger.Warn("Failed to publish event", err, map[string]interface{}{
				"event_type": ev.Type,
				"event_id":   ev.ID.String(),
			})
		}
		return fmt.Errorf("publish %s: %w", ev.Type, err)
	}
	return nil
}
