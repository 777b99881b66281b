package library

import (
	"fmt"

	"go.uber.org/fx"
)

// FXModule provides the configured Source. It resolves to a nil Source when
// the backend is "none" or empty.
var FXModule = fx.Module("library",
	fx.Provide(NewSourceWithDI),
)

// SourceParams groups the dependencies of the library.
type SourceParams struct {
	fx.In

	Config   Config
	Backends []Backend `group:"library_backends"`
}

// NewSourceWithDI selects the source named by Config.Backend.
func NewSourceWithDI(p SourceParams) (Source, error) {
	return Select(p.Config, p.Backends...)
}

// Select returns the source for cfg among the file backend and backends.
func Select(cfg Config, backends ...Backend) (Source, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return nil, nil
	case BackendFile:
		if cfg.File == "" {
			return nil, fmt.Errorf("library: file backend needs a file path")
		}
		return NewFileSource(cfg.File), nil
	}
	for _, b := range backends {
		if b.Name != cfg.Backend {
			continue
		}
		if b.Source == nil {
			return nil, fmt.Errorf("library: %s backend is not enabled", b.Name)
		}
		return b.Source, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
