// Package embedding turns lyrics into unit-length vectors and ranks a song
// library by cosine similarity to a query.
//
// # Overview
//
// The package exposes Embedder, which hides the encoder in use behind a
// single call:
//
//	e := embedding.New(cfg, hub, cache, logger)
//	vec, err := e.Embed(ctx, lyrics)
//
// and ranks songs with:
//
//	hits, err := e.FindSimilar(ctx, query, songs, embedding.DefaultTopK)
//
// # Encoders
//
// Config.Backend selects the Encoder:
//
//   - "onnx" runs sentence-transformers/all-MiniLM-L6-v2 in-process:
//     last_hidden_state is mean-pooled over the attention mask.
//   - "remote" calls an OpenAI-compatible /embeddings endpoint.
//
// In both cases the returned vector is L2-normalized and must have
// Config.Dimension components (384 by default).
//
// The encoder is loaded on first use; concurrent first calls share one load.
//
// # Caching
//
// An optional Cache stores vectors by model and text. Cache errors are logged
// and never fail an Embed call. See package redis for the Redis-backed cache.
//
// # Similarity
//
// CosineSimilarity is dot(a, b) / (|a| * |b|) and returns 0 when either
// vector has zero length or the lengths differ. Rank is the pure ranking step
// of FindSimilar: records without an embedding are skipped, similarities are
// rounded to four decimals and the best topK are returned.
package embedding
