package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/pulsesearch/lyricml/v1/api"
	"github.com/pulsesearch/lyricml/v1/classifier"
	"github.com/pulsesearch/lyricml/v1/embedding"
	"github.com/pulsesearch/lyricml/v1/library"
	"github.com/pulsesearch/lyricml/v1/redis"
	"github.com/pulsesearch/lyricml/v1/spotify"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, api.DefaultAddress, cfg.API.Address)
	assert.Equal(t, api.DefaultShutdownTimeout, cfg.API.ShutdownTimeout)
	assert.Equal(t, classifier.DefaultMinScore, cfg.Classifier.MinScore)
	assert.Equal(t, 80, cfg.Classifier.MaxWords)
	assert.Equal(t, library.BackendNone, cfg.Library.Backend)
	assert.Equal(t, redis.DefaultTTL, cfg.Cache.TTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, uint(5672), cfg.Rabbit.Connection.Port)
	assert.Equal(t, 10*time.Minute, cfg.Models.DownloadTimeout)
	assert.False(t, cfg.Qdrant.Enabled)
	assert.True(t, cfg.Spotify.Enabled)
	assert.Equal(t, spotify.DefaultMarket, cfg.Spotify.Market)
	assert.Equal(t, time.Minute, cfg.Spotify.RefreshMargin)
}

func TestSpotifyCredentialsFromBareEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SPOTIFY_CLIENT_ID", "bare-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "bare-secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bare-id", cfg.Spotify.ClientID)
	assert.Equal(t, "bare-secret", cfg.Spotify.ClientSecret)

	t.Setenv("LYRICML_SPOTIFY_CLIENT_ID", "prefixed-id")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "prefixed-id", cfg.Spotify.ClientID)
	assert.Equal(t, "bare-secret", cfg.Spotify.ClientSecret)
}

func TestLoadFileFromSearchPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "lyricml.yaml", `
api:
  address: ":9100"
  read_timeout: 5s
library:
  backend: qdrant
qdrant:
  enabled: true
  endpoint: qdrant.internal
cache:
  enabled: true
  ttl: 1h
`)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.API.Address)
	assert.Equal(t, 5*time.Second, cfg.API.ReadTimeout)
	assert.Equal(t, api.DefaultWriteTimeout, cfg.API.WriteTimeout)
	assert.Equal(t, library.BackendQdrant, cfg.Library.Backend)
	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Endpoint)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "custom.yaml", "api:\n  address: \":9100\"\n")

	t.Setenv("LYRICML_API_ADDRESS", ":9200")
	t.Setenv("LYRICML_CLASSIFIER_MIN_SCORE", "0.25")
	t.Setenv("LYRICML_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("LYRICML_EMBEDDING_REMOTE_TIMEOUT", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9200", cfg.API.Address)
	assert.InDelta(t, 0.25, cfg.Classifier.MinScore, 1e-9)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Embedding.Remote.Timeout)
}

func TestDotEnvIsLoaded(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "LYRICML_METRICS_NAMESPACE=fromdotenv\n")
	t.Cleanup(func() { _ = os.Unsetenv("LYRICML_METRICS_NAMESPACE") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fromdotenv", cfg.Metrics.Namespace)
}

func TestLoadErrors(t *testing.T) {
	t.Run("explicit path must exist", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		writeFile(t, dir, "lyricml.yaml", "api: [unclosed\n")
		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Classifier: classifier.Config{Backend: "onnx"},
			Embedding:  embeddingConfig("onnx"),
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "file backend needs a path",
			mutate:  func(c *Config) { c.Library.Backend = library.BackendFile },
			wantErr: "library.file",
		},
		{
			name:    "qdrant backend needs qdrant",
			mutate:  func(c *Config) { c.Library.Backend = library.BackendQdrant },
			wantErr: "qdrant.enabled",
		},
		{
			name:    "postgres backend needs postgres",
			mutate:  func(c *Config) { c.Library.Backend = library.BackendPostgres },
			wantErr: "postgres.enabled",
		},
		{
			name:    "unknown library backend",
			mutate:  func(c *Config) { c.Library.Backend = "mongo" },
			wantErr: "unknown library.backend",
		},
		{
			name:    "kafka events need kafka",
			mutate:  func(c *Config) { c.Events.Backend = "kafka" },
			wantErr: "kafka.enabled",
		},
		{
			name:    "rabbit events need rabbit",
			mutate:  func(c *Config) { c.Events.Backend = "rabbit" },
			wantErr: "rabbit.enabled",
		},
		{
			name:    "unknown classifier backend",
			mutate:  func(c *Config) { c.Classifier.Backend = "torch" },
			wantErr: "classifier.backend",
		},
		{
			name:    "unknown embedding backend",
			mutate:  func(c *Config) { c.Embedding = embeddingConfig("tfidf") },
			wantErr: "embedding.backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFXModuleSuppliesSubConfigs(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)

	var (
		apiCfg   api.Config
		cacheCfg redis.Config
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		FXModule,
		fx.Populate(&apiCfg, &cacheCfg),
	)
	app.RequireStart().RequireStop()

	assert.Equal(t, cfg.API, apiCfg)
	assert.Equal(t, cfg.Cache, cacheCfg)
}

func embeddingConfig(backend string) embedding.Config {
	return embedding.Config{Backend: backend}
}
