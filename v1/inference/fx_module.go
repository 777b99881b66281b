package inference

import (
	"context"

	"go.uber.org/fx"
)

// FXModule initializes the ONNX Runtime environment on start and tears it
// down on stop. A missing runtime library does not stop the app: remote
// backends do not need it, and local models report the failure when they load.
var FXModule = fx.Module("inference",
	fx.Invoke(RegisterRuntimeLifecycle),
)

// Logger is the logging contract of the runtime lifecycle.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// RuntimeParams groups the dependencies of the runtime lifecycle.
type RuntimeParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    RuntimeConfig
	Logger    Logger `optional:"true"`
}

// RegisterRuntimeLifecycle hooks InitRuntime and DestroyRuntime into the app.
func RegisterRuntimeLifecycle(p RuntimeParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			fields := map[string]interface{}{"shared_library_path": p.Config.SharedLibraryPath}
			if err := InitRuntime(p.Config); err != nil {
				if p.Logger != nil {
					p.Logger.Warn("ONNX Runtime unavailable", err, fields)
				}
				return nil
			}
			if p.Logger != nil {
				p.Logger.Info("ONNX Runtime initialized", nil, fields)
			}
			return nil
		},
		OnStop: func(context.Context) error {
			return DestroyRuntime()
		},
	})
}
