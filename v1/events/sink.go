package events

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned when Config.Backend names no registered sink.
var ErrUnknownBackend = errors.New("unknown events backend")

// Sink delivers one encoded event to a broker.
//
//go:generate mockgen -source=sink.go -destination=mock_sink.go -package=events
type Sink interface {
	Publish(ctx context.Context, key string, body []byte, headers map[string]string) error
}

// Backend is a named Sink contributed to the fx value group "event_sinks".
// A nil Sink means the broker is not enabled.
type Backend struct {
	Name string
	Sink Sink
}

// Select returns the sink named by cfg.Backend, or nil for "none".
func Select(cfg Config, backends ...Backend) (Sink, error) {
	if cfg.Backend == "" || cfg.Backend == BackendNone {
		return nil, nil
	}
	for _, b := range backends {
		if b.Name != cfg.Backend {
			continue
		}
		if b.Sink == nil {
			return nil, fmt.Errorf("events: %s backend is not enabled", b.Name)
		}
		return b.Sink, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
