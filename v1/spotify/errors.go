package spotify

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when the client id or secret is missing.
var ErrNotConfigured = errors.New("spotify client id and secret are required")

// APIError reports an unexpected status from the accounts or Web API.
type APIError struct {
	// Op is "token", "track" or "search".
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Spotify %s request failed (%d): %s", e.Op, e.Status, e.Body)
}
