package api

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/analysis"
	"github.com/pulsesearch/lyricml/v1/lyricsource"
	"github.com/pulsesearch/lyricml/v1/spotify"
)

// FXModule provides *Handler and *Server and serves HTTP for the lifetime
// of the application. An api.Config and *analysis.Service must be available.
var FXModule = fx.Module("api",
	fx.Provide(
		NewHandlerWithDI,
		NewServerWithDI,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// HandlerParams groups the dependencies of the handler.
type HandlerParams struct {
	fx.In

	Service *analysis.Service
	Lyrics  *lyricsource.Client `optional:"true"`
	Spotify *spotify.Client     `optional:"true"`
}

// NewHandlerWithDI builds the handler from the container.
func NewHandlerWithDI(p HandlerParams) *Handler {
	var lyrics LyricsFetcher
	if p.Lyrics != nil {
		lyrics = p.Lyrics
	}
	h := NewHandler(p.Service, lyrics)
	if p.Spotify != nil {
		h.WithSpotify(p.Spotify)
	}
	return h
}

// ServerParams groups the dependencies of the server.
type ServerParams struct {
	fx.In

	Config  Config
	Handler *Handler
	Logger  Logger         `optional:"true"`
	Metrics RequestMetrics `optional:"true"`
}

// NewServerWithDI builds the server from the container.
func NewServerWithDI(p ServerParams) *Server {
	return NewServer(p.Config, p.Handler, p.Logger, p.Metrics)
}

// LifecycleParams groups the dependencies of the server lifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Server     *Server
	Logger     Logger `optional:"true"`
}

// RegisterServerLifecycle binds the listener on start, serves in the
// background and drains in-flight requests on stop. A serve error after
// start shuts the application down.
func RegisterServerLifecycle(p LifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := p.Server.Listen()
			if err != nil {
				return err
			}
			if p.Logger != nil {
				p.Logger.InfoWithContext(ctx, "Starting HTTP server", nil, map[string]interface{}{
					"address": ln.Addr().String(),
				})
			}
			go func() {
				if err := p.Server.Serve(ln); err != nil {
					if p.Logger != nil {
						p.Logger.ErrorWithContext(context.Background(), "HTTP server stopped unexpectedly", err, nil)
					}
					_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if p.Logger != nil {
				p.Logger.InfoWithContext(ctx, "Shutting down HTTP server", nil, nil)
			}
			return p.Server.Shutdown(ctx)
		},
	})
}
