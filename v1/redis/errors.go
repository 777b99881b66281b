package redis

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrCacheMiss is returned when a key does not exist.
	ErrCacheMiss = errors.New("redis: cache miss")

	// ErrClosed is returned when the client is closed.
	ErrClosed = errors.New("redis: client is closed")

	// ErrCorruptValue is returned when a cached value cannot be decoded.
	ErrCorruptValue = errors.New("redis: corrupt cached value")
)

// translateError maps go-redis sentinel errors to this package's errors.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.Nil):
		return ErrCacheMiss
	case errors.Is(err, redis.ErrClosed):
		return ErrClosed
	default:
		return err
	}
}
