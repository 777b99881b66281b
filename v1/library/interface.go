package library

import (
	"context"
	"errors"
)

const (
	BackendNone     = "none"
	BackendFile     = "file"
	BackendQdrant   = "qdrant"
	BackendPostgres = "postgres"
)

var (
	// ErrNoEmbedding marks a record that cannot take part in ranking.
	ErrNoEmbedding = errors.New("song has no embedding")

	// ErrUnknownBackend is returned when Config.Backend names no registered source.
	ErrUnknownBackend = errors.New("unknown library backend")
)

// Source returns every record of a song library.
type Source interface {
	Songs(ctx context.Context) ([]SongRecord, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]SongRecord, error)

// Songs calls f(ctx).
func (f SourceFunc) Songs(ctx context.Context) ([]SongRecord, error) {
	return f(ctx)
}

// Backend is a named Source contributed to the fx value group
// "library_backends". A nil Source means the backend is not enabled.
type Backend struct {
	Name   string
	Source Source
}
