package lyricsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// fakeProviders serves both provider APIs from one server. Keys are
// "artist|title" pairs.
type fakeProviders struct {
	mu       sync.Mutex
	lrc      map[string]map[string]string
	ovh      map[string]string
	lrcFail  int
	requests []string
}

func (f *fakeProviders) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/lrclib/get", func(w http.ResponseWriter, r *http.Request) {
		f.record("lrclib " + r.URL.Query().Get("track_name"))
		if f.lrcFail != 0 {
			http.Error(w, "upstream broke", f.lrcFail)
			return
		}
		key := r.URL.Query().Get("artist_name") + "|" + r.URL.Query().Get("track_name")
		body, ok := f.lrc[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("/ovh/", func(w http.ResponseWriter, r *http.Request) {
		// r.URL.Path is already unescaped: /ovh/{artist}/{title}
		rest := r.URL.Path[len("/ovh/"):]
		f.record("ovh " + rest)
		var artist, title string
		for i := 0; i < len(rest); i++ {
			if rest[i] == '/' {
				artist, title = rest[:i], rest[i+1:]
				break
			}
		}
		text, ok := f.ovh[artist+"|"+title]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"No lyrics found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"lyrics": text})
	})
	return mux
}

func (f *fakeProviders) record(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, s)
}

func newTestClient(t *testing.T, f *fakeProviders) *Client {
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return New(Config{LRCLibURL: srv.URL + "/lrclib", LyricsOvhURL: srv.URL + "/ovh"}, nil)
}

func TestFetchPrefersLRCLibPlainLyrics(t *testing.T) {
	f := &fakeProviders{lrc: map[string]map[string]string{
		"Queen|Bohemian Rhapsody": {"plainLyrics": "Is this the real life?\n\nIs this just fantasy?", "syncedLyrics": "[00:01] x"},
	}}
	c := newTestClient(t, f)

	res, err := c.Fetch(context.Background(), " Queen ", "Bohemian Rhapsody")
	require.NoError(t, err)
	assert.Equal(t, &Result{Artist: "Queen", Title: "Bohemian Rhapsody", Lyrics: "Is this the real life?\nIs this just fantasy?"}, res)
	assert.Equal(t, []string{"lrclib Bohemian Rhapsody"}, f.requests)
}

func TestFetchFallsBackToSyncedLyrics(t *testing.T) {
	f := &fakeProviders{lrc: map[string]map[string]string{
		"A|T": {"syncedLyrics": "[00:01.00] la la"},
	}}
	res, err := newTestClient(t, f).Fetch(context.Background(), "A", "T")
	require.NoError(t, err)
	assert.Equal(t, "[00:01.00] la la", res.Lyrics)
}

func TestFetchFallsBackToLyricsOvh(t *testing.T) {
	f := &fakeProviders{ovh: map[string]string{
		"ABBA|Dancing Queen": "ABBA - Dancing Queen Lyrics\nYou can dance\nYou might also like\nHaving the time of your life12Embed",
	}}
	res, err := newTestClient(t, f).Fetch(context.Background(), "ABBA", "Dancing Queen")
	require.NoError(t, err)
	assert.Equal(t, "You can dance\nHaving the time of your life", res.Lyrics)
	assert.Equal(t, []string{"lrclib Dancing Queen", "ovh ABBA/Dancing Queen"}, f.requests)
}

func TestFetchTriesCleanedTitle(t *testing.T) {
	f := &fakeProviders{lrc: map[string]map[string]string{
		"Beatles|Let It Be": {"plainLyrics": "When I find myself in times of trouble"},
	}}
	res, err := newTestClient(t, f).Fetch(context.Background(), "Beatles", "Let It Be - Remastered 2009")
	require.NoError(t, err)
	assert.Equal(t, "Let It Be", res.Title)
	assert.Equal(t, []string{
		"lrclib Let It Be - Remastered 2009",
		"ovh Beatles/Let It Be - Remastered 2009",
		"lrclib Let It Be",
	}, f.requests)
}

func TestFetchNotFound(t *testing.T) {
	f := &fakeProviders{}
	_, err := newTestClient(t, f).Fetch(context.Background(), "Nobody", "Nothing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "lyrics not found: Nobody - Nothing")
}

func TestFetchNotFoundLeavesSpanUnmarked(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	_, err := newTestClient(t, &fakeProviders{}).Fetch(context.Background(), "Nobody", "Nothing")
	require.ErrorIs(t, err, ErrNotFound)

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "lyricsource.Fetch", ended[0].Name())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Empty(t, ended[0].Events())
}

func TestFetchUpstreamError(t *testing.T) {
	f := &fakeProviders{lrcFail: http.StatusBadGateway}
	_, err := newTestClient(t, f).Fetch(context.Background(), "A", "T")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "LrcLib", upstream.Provider)
	assert.Equal(t, http.StatusBadGateway, upstream.Status)
	assert.Contains(t, err.Error(), "upstream broke")
}

func TestFetchRequiresArtistAndTitle(t *testing.T) {
	c := New(Config{}, nil)
	for _, q := range [][2]string{{"", "T"}, {"A", "  "}} {
		_, err := c.Fetch(context.Background(), q[0], q[1])
		assert.ErrorIs(t, err, ErrMissingQuery)
	}
}

func TestTitleVariants(t *testing.T) {
	assert.Equal(t, []string{"Song"}, titleVariants("Song"))
	assert.Equal(t, []string{"Song (feat. X)", "Song"}, titleVariants("Song (feat. X)"))
}
