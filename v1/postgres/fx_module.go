package postgres

import (
	"context"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// monitorInterval is how often the lifecycle-managed monitor pings the database.
const monitorInterval = 10 * time.Second

// FXModule provides *Postgres and registers it as the "postgres" library
// backend. Nothing is connected when Config.Enabled is false.
var FXModule = fx.Module("postgres",
	fx.Provide(
		NewPostgresClientWithDI,
		fx.Annotate(NewLibraryBackend, fx.ResultTags(`group:"library_backends"`)),
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// PostgresParams groups the dependencies needed to create the client.
type PostgresParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewPostgresClientWithDI connects to the database, or returns nil when the
// backend is disabled.
func NewPostgresClientWithDI(params PostgresParams) (*Postgres, error) {
	if !params.Config.Enabled {
		return nil, nil
	}
	client, err := NewPostgres(params.Config)
	if err != nil {
		return nil, err
	}
	return client.WithLogger(params.Logger).WithObserver(params.Observer), nil
}

// NewLibraryBackend exposes the client as a library source.
func NewLibraryBackend(pg *Postgres) library.Backend {
	b := library.Backend{Name: library.BackendPostgres}
	if pg != nil {
		b.Source = pg
	}
	return b
}

// PostgresLifeCycleParams groups the dependencies for lifecycle management.
type PostgresLifeCycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Postgres  *Postgres
}

// RegisterPostgresLifecycle starts the monitor and reconnect loops on start
// and waits for them before closing the pool on stop.
func RegisterPostgresLifecycle(params PostgresLifeCycleParams) {
	if params.Postgres == nil {
		return
	}
	pg := params.Postgres
	wg := &sync.WaitGroup{}
	loopCtx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			wg.Add(2)
			go func() {
				defer wg.Done()
				pg.MonitorConnection(loopCtx, monitorInterval)
			}()
			go func() {
				defer wg.Done()
				pg.RetryConnection(loopCtx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			err := pg.Close()
			wg.Wait()
			return err
		},
	})
}
