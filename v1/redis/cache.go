package redis

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"
)

// VectorCache stores embeddings in Redis.
type VectorCache struct {
	client *RedisClient
	prefix string
	ttl    time.Duration
}

// NewVectorCache returns a cache using the client's key prefix and TTL.
func NewVectorCache(client *RedisClient) *VectorCache {
	return &VectorCache{
		client: client,
		prefix: client.cfg.KeyPrefix,
		ttl:    client.cfg.TTL,
	}
}

// Key returns the cache key of text for model.
func (c *VectorCache) Key(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:%s:%s", c.prefix, model, hex.EncodeToString(sum[:]))
}

// Get returns the cached vector. A missing key is reported with ok=false. A
// value that does not decode is evicted and reported as ErrCorruptValue.
func (c *VectorCache) Get(ctx context.Context, model, text string) ([]float32, bool, error) {
	key := c.Key(model, text)
	raw, err := c.client.GetBytes(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	vec, err := DecodeVector(raw)
	if err != nil {
		if _, delErr := c.client.Delete(ctx, key); delErr != nil {
			return nil, false, errors.Join(err, delErr)
		}
		return nil, false, err
	}
	return vec, true, nil
}

// Set stores vec for text and model.
func (c *VectorCache) Set(ctx context.Context, model, text string, vec []float32) error {
	return c.client.SetBytes(ctx, c.Key(model, text), EncodeVector(vec), c.ttl)
}

// EncodeVector serializes vec as little-endian float32 values.
func EncodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// DecodeVector is the inverse of EncodeVector.
func DecodeVector(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorruptValue, len(raw))
	}
	vec := make([]float32, len(raw)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return vec, nil
}
