package redis

import (
	"context"

	"go.uber.org/fx"

	"github.com/pulsesearch/lyricml/v1/embedding"
	"github.com/pulsesearch/lyricml/v1/observability"
)

// FXModule provides *RedisClient and embedding.Cache. Both are nil when
// Config.Enabled is false.
//
// Usage:
//
//	app := fx.New(
//	    redis.FXModule,
//	    embedding.FXModule, // picks up the cache
//	)
var FXModule = fx.Module("redis",
	fx.Provide(
		NewClientWithDI,
		NewCacheWithDI,
	),
	fx.Invoke(RegisterRedisLifecycle),
)

// RedisParams groups the dependencies needed to create a Redis client
type RedisParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewClientWithDI creates the client from the container, or returns nil
// when the cache is disabled.
func NewClientWithDI(params RedisParams) (*RedisClient, error) {
	if !params.Config.Enabled {
		return nil, nil
	}
	client, err := NewClient(params.Config)
	if err != nil {
		return nil, err
	}
	return client.WithLogger(params.Logger).WithObserver(params.Observer), nil
}

// NewCacheWithDI exposes the client as an embedding.Cache.
func NewCacheWithDI(client *RedisClient) embedding.Cache {
	if client == nil {
		return nil
	}
	return NewVectorCache(client)
}

// RedisLifecycleParams groups the dependencies needed for Redis lifecycle management
type RedisLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *RedisClient
	Logger    Logger `optional:"true"`
}

// RegisterRedisLifecycle pings Redis on start and closes the client on stop.
// A failed ping is logged and does not stop the application, since the
// cache is bypassed on errors.
func RegisterRedisLifecycle(params RedisLifecycleParams) {
	if params.Client == nil {
		return
	}
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Client.Ping(ctx); err != nil {
				if params.Logger != nil {
					params.Logger.Warn("Failed to ping Redis on startup", err, nil)
				}
				return nil
			}
			if params.Logger != nil {
				params.Logger.Info("Redis client started and healthy", nil, nil)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Client.Close()
		},
	})
}
