package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemotePredictor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var body struct {
			Inputs []string `json:"inputs"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		out := make([][]EmotionScore, len(body.Inputs))
		for i := range body.Inputs {
			out[i] = []EmotionScore{{"joy", 0.9}, {"sadness", 0.01}}
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := New(Config{Backend: BackendRemote, Remote: RemoteConfig{Endpoint: srv.URL, Token: "secret"}}, nil, nil)

	scores, err := c.Classify(context.Background(), "sunshine\nand rainbows", DefaultMinScore)

	require.NoError(t, err)
	assert.Equal(t, []EmotionScore{{"joy", 0.9}}, scores)
}

func TestRemotePredictorFlatResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"anger","score":0.4}]`))
	}))
	defer srv.Close()

	p, err := newRemotePredictor(RemoteConfig{Endpoint: srv.URL})
	require.NoError(t, err)

	out, err := p.Predict(context.Background(), []string{"grr"})

	require.NoError(t, err)
	assert.Equal(t, [][]EmotionScore{{{"anger", 0.4}}}, out)
}

func TestRemotePredictorHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p, err := newRemotePredictor(RemoteConfig{Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = p.Predict(context.Background(), []string{"a", "b"})

	assert.ErrorContains(t, err, "http 503")
}

func TestRemotePredictorRequiresEndpoint(t *testing.T) {
	_, err := newRemotePredictor(RemoteConfig{})
	assert.Error(t, err)
}
