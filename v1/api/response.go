package api

import "github.com/pulsesearch/lyricml/v1/library"

const (
	ErrMLServiceUnavailable = "ml_service_unavailable"
	ErrLibraryUnavailable   = "library_unavailable"
	ErrLyricsNotFound       = "lyrics_not_found"
	ErrLyricsRequestFailed  = "lyrics_request_failed"
	ErrSpotifyRequestFailed = "spotify_request_failed"
	ErrSpotifySearchFailed  = "spotify_search_failed"
	ErrInternal             = "internal_error"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail  string `json:"detail"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SimilarResponse is the body of POST /similar.
type SimilarResponse struct {
	Results []library.SimilarSong `json:"results"`
}

func newErrorResponse(detail string, err error) ErrorResponse {
	resp := ErrorResponse{Detail: detail}
	if err != nil {
		resp.Message = err.Error()
	}
	return resp
}
