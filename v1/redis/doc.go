// Package redis provides the Redis-backed embedding cache.
//
// RedisClient wraps a go-redis client with the connection defaults, TLS
// setup, logging and observer hooks shared by the other infrastructure
// packages. VectorCache stores embeddings under
//
//	lyricml:emb:<model>:<sha256 of the normalized text>
//
// as little-endian float32 bytes with a TTL (24h by default). It implements
// embedding.Cache; lookups that fail are reported as errors and the embedder
// falls back to computing the vector.
//
// The cache is optional: with Config.Enabled false the fx module provides a
// nil client and a nil cache.
package redis
