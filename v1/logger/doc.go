// Package logger provides structured logging for lyricml services.
//
// The package wraps Uber's zap behind a small, map-based API so that call
// sites never import zap directly:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         logger.Info,
//		ServiceName:   "lyricml",
//		EnableTracing: true,
//	})
//
//	log.Info("model loaded", nil, map[string]interface{}{
//		"model": "all-MiniLM-L6-v2",
//	})
//
//	// Adds trace_id and span_id when the context carries an active span.
//	log.ErrorWithContext(ctx, "classification failed", err, nil)
//
// # Architecture
//
// Consumer packages declare the narrow Logger interface they need (usually
// Info/Warn/Error) and receive *LoggerClient through fx. The package itself
// exposes the full Logger interface for callers that want it.
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return cfg.Logger }),
//	)
//
// FXModule provides both *LoggerClient and the Logger interface and flushes
// buffered entries on shutdown.
//
// # Configuration
//
//	LYRICML_LOGGER_LEVEL=debug            # debug, info, warning, error
//	LYRICML_LOGGER_ENABLE_TRACING=true    # add trace_id/span_id to *WithContext entries
//
// # Thread Safety
//
// All methods are safe for concurrent use.
package logger
