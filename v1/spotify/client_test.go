package spotify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// fakeSpotify serves the token endpoint and the two Web API routes.
type fakeSpotify struct {
	tokenHits  atomic.Int32
	tokenFail  atomic.Int32
	expiresIn  int
	trackFail  int
	lastSearch atomic.Value
	// gate, when set, holds token responses until it is closed.
	gate chan struct{}
}

func (f *fakeSpotify) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		n := f.tokenHits.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		if f.gate != nil {
			<-f.gate
		}
		if code := f.tokenFail.Load(); code != 0 {
			http.Error(w, "invalid_client", int(code))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok" + string(rune('0'+n)),
			"token_type":   "Bearer",
			"expires_in":   f.expiresIn,
		})
	})
	mux.HandleFunc("/v1/tracks/", func(w http.ResponseWriter, r *http.Request) {
		if f.trackFail != 0 {
			http.Error(w, `{"error":{"status":404,"message":"Invalid id"}}`, f.trackFail)
			return
		}
		_, _ = w.Write([]byte(`{"id":"4uLU6hMCjMI75M1A2tKUQC","name":"Never Gonna Give You Up","popularity":80,"auth":"` + r.Header.Get("Authorization") + `"}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		f.lastSearch.Store(r.URL.Query())
		_, _ = w.Write([]byte(`{"tracks":{"items":[
			{"id":"1","name":"Bohemian Rhapsody","artists":[{"name":"Queen"}],
			 "album":{"name":"A Night at the Opera","images":[{"url":"https://i/640"},{"url":"https://i/300"}]},
			 "preview_url":"https://p/1","external_urls":{"spotify":"https://open/1"}},
			{"id":"2","name":"Under Pressure","artists":[{"name":"Queen"},{"name":"David Bowie"}],
			 "album":{"name":"Hot Space","images":[]},"preview_url":null,"external_urls":{}}
		]}}`))
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeSpotify) *Client {
	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)
	return New(Config{
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     srv.URL + "/token",
		APIURL:       srv.URL + "/v1",
	}, nil)
}

func TestTrackReturnsRawObject(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600}
	c := newTestClient(t, f)

	raw, err := c.Track(context.Background(), "4uLU6hMCjMI75M1A2tKUQC")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "Never Gonna Give You Up", got["name"])
	assert.Equal(t, float64(80), got["popularity"])
	assert.Equal(t, "Bearer tok1", got["auth"])
}

func TestTrackUpstreamError(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600, trackFail: http.StatusNotFound}

	_, err := newTestClient(t, f).Track(context.Background(), "nope")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "track", apiErr.Op)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, err.Error(), "Spotify track request failed (404)")
}

func TestSearchProjectsTracks(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600}
	c := newTestClient(t, f)

	tracks, err := c.Search(context.Background(), "  queen ", 2)
	require.NoError(t, err)

	preview := "https://p/1"
	assert.Equal(t, []TrackSummary{
		{
			ID: "1", Name: "Bohemian Rhapsody", Artists: "Queen", Album: "A Night at the Opera",
			Image: "https://i/640", PreviewURL: &preview, SpotifyURL: "https://open/1",
		},
		{ID: "2", Name: "Under Pressure", Artists: "Queen, David Bowie", Album: "Hot Space"},
	}, tracks)

	q := f.lastSearch.Load().(url.Values)
	assert.Equal(t, []string{"queen"}, q["q"])
	assert.Equal(t, []string{"track"}, q["type"])
	assert.Equal(t, []string{"2"}, q["limit"])
	assert.Equal(t, []string{"US"}, q["market"])
}

func TestSearchSummaryKeepsNullPreview(t *testing.T) {
	body, err := json.Marshal(TrackSummary{ID: "2"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"2","name":"","artists":"","album":"","image":"","previewUrl":null,"spotifyUrl":""}`, string(body))
}

func TestSearchBlankQuerySkipsSpotify(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600}

	tracks, err := newTestClient(t, f).Search(context.Background(), "   ", 5)

	require.NoError(t, err)
	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
	assert.Zero(t, f.tokenHits.Load())
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultLimit},
		{-4, 1},
		{1, 1},
		{12, 12},
		{20, 20},
		{50, MaxLimit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.in), "ClampLimit(%d)", tt.in)
	}
}

func TestTokenIsCachedUntilRefreshMargin(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600}
	c := newTestClient(t, f)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	_, err := c.Track(ctx, "a")
	require.NoError(t, err)
	_, err = c.Search(ctx, "b", 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.tokenHits.Load())

	// Still inside the lifetime minus the 60s margin.
	now = now.Add(3539 * time.Second)
	_, err = c.Track(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.tokenHits.Load())

	now = now.Add(time.Second)
	raw, err := c.Track(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int32(2), f.tokenHits.Load())
	assert.Contains(t, string(raw), "Bearer tok2")
}

func TestConcurrentCallersShareTokenRequest(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600, gate: make(chan struct{})}
	c := newTestClient(t, f)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Track(context.Background(), "a")
			assert.NoError(t, err)
		}()
	}

	require.Eventually(t, func() bool { return f.tokenHits.Load() == 1 }, 5*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(f.gate)
	wg.Wait()

	assert.Equal(t, int32(1), f.tokenHits.Load())
}

func TestTokenErrors(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		c := New(Config{}, nil)
		_, err := c.Track(context.Background(), "a")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("rejected", func(t *testing.T) {
		f := &fakeSpotify{}
		f.tokenFail.Store(http.StatusBadRequest)
		_, err := newTestClient(t, f).Search(context.Background(), "queen", 5)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "token", apiErr.Op)
		assert.Equal(t, "invalid_client", apiErr.Body)
	})

	t.Run("failure is not cached", func(t *testing.T) {
		f := &fakeSpotify{expiresIn: 3600}
		f.tokenFail.Store(http.StatusServiceUnavailable)
		c := newTestClient(t, f)
		_, err := c.Track(context.Background(), "a")
		require.Error(t, err)

		f.tokenFail.Store(0)
		_, err = c.Track(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, int32(2), f.tokenHits.Load())
	})
}

func TestSearchIsObserved(t *testing.T) {
	f := &fakeSpotify{expiresIn: 3600}
	var (
		mu  sync.Mutex
		ops []observability.OperationContext
	)
	c := newTestClient(t, f).WithObserver(observability.ObserverFunc(func(op observability.OperationContext) {
		mu.Lock()
		defer mu.Unlock()
		ops = append(ops, op)
	}))

	_, err := c.Search(context.Background(), "queen", 5)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, ops, 2)
	assert.Equal(t, "token", ops[0].Operation)
	assert.Equal(t, "search", ops[1].Operation)
	assert.Equal(t, "queen", ops[1].Resource)
	assert.NoError(t, ops[1].Error)
}

func TestFXModule(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		var c *Client
		app := fxtest.New(t,
			FXModule,
			fx.Supply(Config{}),
			fx.Populate(&c),
		)
		app.RequireStart().RequireStop()
		assert.Nil(t, c)
	})

	t.Run("enabled", func(t *testing.T) {
		var c *Client
		app := fxtest.New(t,
			FXModule,
			fx.Supply(Config{Enabled: true, ClientID: "id", ClientSecret: "secret"}),
			fx.Populate(&c),
		)
		app.RequireStart().RequireStop()
		require.NotNil(t, c)
		assert.Equal(t, DefaultAPIURL, c.cfg.APIURL)
	})
}
