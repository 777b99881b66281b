package api

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the gin engine and the HTTP listener serving it.
type Server struct {
	cfg     Config
	engine  *gin.Engine
	httpSrv *http.Server
	logger  Logger
	addr    net.Addr
}

// NewServer builds the router with recovery, tracing, logging and metrics
// middleware and mounts h. logger and m may be nil.
func NewServer(cfg Config, h *Handler, logger Logger, m RequestMetrics) *Server {
	cfg = cfg.withDefaults()
	gin.SetMode(cfg.Mode)

	// Recovery is innermost so recovered panics are still logged and counted.
	engine := gin.New()
	engine.Use(tracing())
	if logger != nil {
		engine.Use(requestLogger(logger))
	}
	if m != nil {
		engine.Use(requestMetrics(m))
	}
	engine.Use(recovery(logger))
	h.RegisterRoutes(engine)

	return &Server{
		cfg:    cfg,
		engine: engine,
		logger: logger,
		httpSrv: &http.Server{
			Addr:         cfg.Address,
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Listen binds the configured address. Binding up front lets start-up fail
// fast on a busy port.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return nil, err
	}
	s.addr = ln.Addr()
	return ln, nil
}

// Addr is the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.addr != nil {
		return s.addr.String()
	}
	return s.cfg.Address
}

// Serve blocks serving ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests,
// bounded by the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.httpSrv.Shutdown(ctx)
}
