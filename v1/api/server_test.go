package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"

	"github.com/pulsesearch/lyricml/v1/analysis"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Equal(t, "release", cfg.Mode)

	cfg = Config{Address: ":9000", Mode: "debug"}.withDefaults()
	assert.Equal(t, ":9000", cfg.Address)
	assert.Equal(t, "debug", cfg.Mode)
}

func TestFXModuleServesHTTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := analysis.NewService(
		analysis.NewMockEmotionClassifier(ctrl),
		analysis.NewMockEmbedder(ctrl),
		nil, nil, nil,
	)

	var server *Server
	app := fxtest.New(t,
		FXModule,
		fx.Provide(
			func() Config { return Config{Address: "127.0.0.1:0", Mode: "test"} },
			func() *analysis.Service { return svc },
		),
		fx.Populate(&server),
	)
	app.RequireStart()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + server.Addr() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app.RequireStop()

	_, err = client.Get("http://" + server.Addr() + "/health")
	assert.Error(t, err)
}

func TestServeReturnsNilAfterShutdown(t *testing.T) {
	s := NewServer(Config{Address: "127.0.0.1:0", Mode: "test"}, NewHandler(nil, nil), nil, nil)
	ln, err := s.Listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	require.NoError(t, s.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
