package postgres

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// Logger is the logging contract of the package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Postgres reads the song library through gorm and keeps the connection
// alive with a monitor and a reconnect loop.
//
// Concurrency: the active *gorm.DB is stored in an atomic pointer and can be
// swapped during reconnection without blocking readers.
type Postgres struct {
	cfg             Config
	client          atomic.Pointer[gorm.DB]
	logger          Logger
	observer        observability.Observer
	shutdownSignal  chan struct{}
	retryChanSignal chan error

	closeShutdownOnce  sync.Once
}

// NewPostgres opens the connection pool described by cfg.
func NewPostgres(cfg Config) (*Postgres, error) {
	cfg = cfg.withDefaults()
	conn, err := connectToPostgres(cfg)
	if err != nil {
		return nil, fmt.Errorf("error in connecting to postgres: %w", err)
	}

	pg := &Postgres{
		cfg:             cfg,
		shutdownSignal:  make(chan struct{}),
		retryChanSignal: make(chan error, 1),
	}
	pg.client.Store(conn)
	return pg, nil
}

// WithLogger sets the logger and returns the client for chaining.
func (p *Postgres) WithLogger(l Logger) *Postgres {
	p.logger = l
	return p
}

// WithObserver sets the observer and returns the client for chaining.
func (p *Postgres) WithObserver(o observability.Observer) *Postgres {
	p.observer = o
	return p
}

// DB returns the current connection.
func (p *Postgres) DB() *gorm.DB {
	return p.client.Load()
}

// Table returns the configured song table name.
func (p *Postgres) Table() string {
	return p.cfg.Table
}

func dsn(c Connection) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DbName, c.SSLMode)
}

// connectToPostgres opens gorm on the pgx driver and sizes the pool.
func connectToPostgres(cfg Config) (*gorm.DB, error) {
	database, err := gorm.Open(
		postgres.Open(dsn(cfg.Connection)),
		&gorm.Config{
			TranslateError: true,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgresSQL database: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgresSQL database instance: %w", err)
	}

	maxOpen := cfg.ConnectionDetails.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 50
	}
	maxIdle := cfg.ConnectionDetails.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 25
	}
	maxLifetime := cfg.ConnectionDetails.ConnMaxLifetime
	if maxLifetime == 0 {
		maxLifetime = time.Minute
	}

	databaseInstance.SetMaxOpenConns(maxOpen)
	databaseInstance.SetMaxIdleConns(maxIdle)
	databaseInstance.SetConnMaxLifetime(maxLifetime)

	return database, nil
}

// RetryConnection waits for failure signals from MonitorConnection and
// reconnects until it succeeds, the context ends or Close is called.
func (p *Postgres) RetryConnection(ctx context.Context) {
outerLoop:
	for {
		select {
		case <-p.shutdownSignal:
			return
		case <-ctx.Done():
			return
		case _, ok := <-p.retryChanSignal:
			if !ok {
				return
			}
		innerLoop:
			for {
				select {
				case <-p.shutdownSignal:
					return
				case <-ctx.Done():
					return
				default:
					newConn, err := connectToPostgres(p.cfg)
					if err != nil {
						p.warn("PostgresSQL reconnection failed", err)
						time.Sleep(time.Second)
						continue innerLoop
					}
					old := p.client.Swap(newConn)
					if old != nil {
						if sqlDB, err := old.DB(); err == nil {
							_ = sqlDB.Close()
						}
					}
					p.info("Reconnected to PostgresSQL database")
					continue outerLoop
				}
			}
		}
	}
}

// MonitorConnection pings the database every interval and signals
// RetryConnection on failure.
func (p *Postgres) MonitorConnection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.shutdownSignal:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Ping(ctx); err != nil {
				p.warn("PostgresSQL health check failed", err)
				select {
				case p.retryChanSignal <- err:
				default:
				}
			}
		}
	}
}

// Ping checks the current connection with a five second timeout.
func (p *Postgres) Ping(ctx context.Context) error {
	dbConn := p.DB()
	if dbConn == nil {
		return fmt.Errorf("database client is not initialized")
	}

	db, err := dbConn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance during health check: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed during health check: %w", err)
	}
	return nil
}

// Close stops the background loops and closes the pool. It is safe to call
// more than once.
func (p *Postgres) Close() error {
	p.closeShutdownOnce.Do(func() {
		close(p.shutdownSignal)
	})

	sqlDB, err := p.DB().DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}

func (p *Postgres) info(msg string) {
	if p.logger != nil {
		p.logger.Info(msg, nil, map[string]interface{}{"table": p.cfg.Table})
	}
}

func (p *Postgres) warn(msg string, err error) {
	if p.logger != nil {
		p.logger.Warn(msg, err, map[string]interface{}{"table": p.cfg.Table})
	}
}
