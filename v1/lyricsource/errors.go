package lyricsource

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no provider has lyrics for the song.
	ErrNotFound = errors.New("lyrics not found")

	// ErrMissingQuery is returned when artist or title is blank.
	ErrMissingQuery = errors.New("artist and title are required")
)

// UpstreamError reports a provider answering with an unexpected status.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed (%d): %s", e.Provider, e.Status, e.Body)
}
