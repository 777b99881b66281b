package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pulsesearch/lyricml/v1/analysis"
	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/lyricsource"
	"github.com/pulsesearch/lyricml/v1/spotify"
)

// Handler serves the lyricml HTTP API.
type Handler struct {
	analyzer Analyzer
	lyrics   LyricsFetcher
	spotify  TrackCatalog
}

// NewHandler returns a handler. lyrics may be nil, which disables GET /lyrics.
func NewHandler(analyzer Analyzer, lyrics LyricsFetcher) *Handler {
	return &Handler{analyzer: analyzer, lyrics: lyrics}
}

// WithSpotify enables the /spotify routes and returns the handler for
// chaining.
func (h *Handler) WithSpotify(s TrackCatalog) *Handler {
	h.spotify = s
	return h
}

// RegisterRoutes mounts the endpoints on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.health)
	r.POST("/analyze", h.analyze)
	r.POST("/similar", h.similar)
	if h.lyrics != nil {
		r.GET("/lyrics", h.getLyrics)
	}
	if h.spotify != nil {
		r.GET("/spotify/track/:id", h.getTrack)
		r.GET("/spotify/search", h.searchTracks)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// All three fields must be present; empty artist and title are accepted.
type analyzeRequest struct {
	Artist *string `json:"artist" binding:"required"`
	Title  *string `json:"title" binding:"required"`
	Lyrics *string `json:"lyrics" binding:"required"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, newErrorResponse(err.Error(), nil))
		return
	}

	res, err := h.analyzer.Analyze(c.Request.Context(), analysis.Request{
		Artist: *req.Artist,
		Title:  *req.Title,
		Lyrics: *req.Lyrics,
	})
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type similarRequest struct {
	Lyrics *string `json:"lyrics" binding:"required"`
	TopK   int     `json:"top_k"`
}

func (h *Handler) similar(c *gin.Context) {
	var req similarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, newErrorResponse(err.Error(), nil))
		return
	}

	results, err := h.analyzer.Similar(c.Request.Context(), *req.Lyrics, req.TopK)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	if results == nil {
		results = []library.SimilarSong{}
	}
	c.JSON(http.StatusOK, SimilarResponse{Results: results})
}

func (h *Handler) getLyrics(c *gin.Context) {
	artist := strings.TrimSpace(c.Query("artist"))
	title := strings.TrimSpace(c.Query("title"))

	res, err := h.lyrics.Fetch(c.Request.Context(), artist, title)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, res)
	case errors.Is(err, lyricsource.ErrMissingQuery):
		c.JSON(http.StatusBadRequest, newErrorResponse(lyricsource.ErrMissingQuery.Error(), nil))
	case errors.Is(err, lyricsource.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Detail:  ErrLyricsNotFound,
			Message: fmt.Sprintf("No lyrics found for %q by %q.", title, artist),
		})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, newErrorResponse(ErrLyricsRequestFailed, err))
	}
}

func (h *Handler) getTrack(c *gin.Context) {
	raw, err := h.spotify.Track(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, newErrorResponse(ErrSpotifyRequestFailed, err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// A missing or non-numeric limit falls back to the default page size.
func (h *Handler) searchTracks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	tracks, err := h.spotify.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, newErrorResponse(ErrSpotifySearchFailed, err))
		return
	}
	if tracks == nil {
		tracks = []spotify.TrackSummary{}
	}
	c.JSON(http.StatusOK, tracks)
}

// abortWithError maps analysis errors to responses: blank lyrics are the
// client's fault, everything else means the models or the library could not
// serve the request.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, analysis.ErrEmptyLyrics):
		c.JSON(http.StatusBadRequest, newErrorResponse(analysis.ErrEmptyLyrics.Error(), nil))
	case errors.Is(err, analysis.ErrLibraryUnavailable):
		c.JSON(http.StatusServiceUnavailable, newErrorResponse(ErrLibraryUnavailable, err))
	default:
		c.JSON(http.StatusServiceUnavailable, newErrorResponse(ErrMLServiceUnavailable, err))
	}
}
