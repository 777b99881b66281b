package events

import "go.uber.org/fx"

// FXModule provides *Emitter built from the sink selected by Config.Backend.
var FXModule = fx.Module("events",
	fx.Provide(NewEmitterWithDI),
)

// EmitterParams groups the dependencies of the emitter.
type EmitterParams struct {
	fx.In

	Config   Config
	Backends []Backend `group:"event_sinks"`
	Carrier  Carrier   `optional:"true"`
	Logger   Logger    `optional:"true"`
}

// NewEmitterWithDI selects the sink and wraps it in an Emitter.
func NewEmitterWithDI(p EmitterParams) (*Emitter, error) {
	sink, err := Select(p.Config, p.Backends...)
	if err != nil {
		return nil, err
	}
	return NewEmitter(sink, p.Carrier, p.Logger), nil
}
