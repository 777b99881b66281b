package redis

import (
	"context"
	"time"
)

// GetBytes returns the raw value stored at key, or ErrCacheMiss.
func (r *RedisClient) GetBytes(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	val, err := r.Client().Get(ctx, key).Bytes()
	err = translateError(err)
	r.observeOperation("get", key, "", time.Since(start), err, int64(len(val)))
	return val, err
}

// SetBytes stores value at key with the given TTL. A zero TTL means no expiry.
func (r *RedisClient) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := translateError(r.Client().Set(ctx, key, value, ttl).Err())
	r.observeOperation("set", key, "", time.Since(start), err, int64(len(value)))
	return err
}

// Delete removes keys and returns how many existed.
func (r *RedisClient) Delete(ctx context.Context, keys ...string) (int64, error) {
	start := time.Now()
	n, err := r.Client().Del(ctx, keys...).Result()
	err = translateError(err)
	var resource string
	if len(keys) > 0 {
		resource = keys[0]
	}
	r.observeOperation("delete", resource, "", time.Since(start), err, n)
	return n, err
}

// TTL returns the remaining lifetime of key.
func (r *RedisClient) TTL(ctx context.Context, key string) (time.Duration, error) {
	d, err := r.Client().TTL(ctx, key).Result()
	return d, translateError(err)
}
