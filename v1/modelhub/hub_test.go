package modelhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	files  map[string]string
	err    error
	prefix string
}

func (f *fakeStore) DownloadPrefix(_ context.Context, prefix, destDir string) (int, error) {
	f.prefix = prefix
	if f.err != nil {
		return 0, f.err
	}
	for name, body := range f.files {
		target := filepath.Join(destDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return 0, err
		}
		if err := os.WriteFile(target, []byte(body), 0o644); err != nil {
			return 0, err
		}
	}
	return len(f.files), nil
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestResolvePrefersLocalDir(t *testing.T) {
	local := t.TempDir()
	h := New(Config{CacheDir: t.TempDir(), Offline: true}, nil, nil)

	dir, err := h.Resolve(context.Background(), ModelSpec{Name: "go_emotions_model", Dir: local})

	require.NoError(t, err)
	assert.Equal(t, local, dir)
	assert.True(t, h.Exists(ModelSpec{Name: "go_emotions_model", Dir: local}))
}

func TestResolveUsesCompleteCache(t *testing.T) {
	cache := t.TempDir()
	writeFile(t, filepath.Join(cache, "minilm", "onnx", "model.onnx"), "graph")
	writeFile(t, filepath.Join(cache, "minilm", "tokenizer.json"), "{}")
	h := New(Config{CacheDir: cache, Offline: true}, nil, nil)

	dir, err := h.Resolve(context.Background(), ModelSpec{
		Name:  "minilm",
		Repo:  "sentence-transformers/all-MiniLM-L6-v2",
		Files: []string{"onnx/model.onnx", "tokenizer.json"},
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, "minilm"), dir)
}

func TestResolveFromObjectStore(t *testing.T) {
	cache := t.TempDir()
	store := &fakeStore{files: map[string]string{"model.onnx": "graph", "tokenizer.json": "{}", "config.json": "{}"}}
	h := New(Config{CacheDir: cache, ObjectPrefix: "lyricml/", Offline: true}, store, nil)

	dir, err := h.Resolve(context.Background(), ModelSpec{
		Name:  "go_emotions_model",
		Dir:   filepath.Join(cache, "missing"),
		Files: []string{"model.onnx", "tokenizer.json", "config.json"},
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, "go_emotions_model"), dir)
	assert.Equal(t, "lyricml/go_emotions_model", store.prefix)
}

func TestResolveObjectKeyPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{name: "empty", prefix: "", want: "go_emotions_model"},
		{name: "bare", prefix: "lyricml", want: "lyricml/go_emotions_model"},
		{name: "trailing slash", prefix: "lyricml/", want: "lyricml/go_emotions_model"},
		{name: "both slashes", prefix: "/models/lyricml/", want: "models/lyricml/go_emotions_model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{files: map[string]string{"model.onnx": "graph"}}
			h := New(Config{CacheDir: t.TempDir(), ObjectPrefix: tt.prefix, Offline: true}, store, nil)

			_, err := h.Resolve(context.Background(), ModelSpec{
				Name:  "go_emotions_model",
				Files: []string{"model.onnx"},
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, store.prefix)
		})
	}
}

func TestResolveDownloadsFromHub(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "Bearer hf_token", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/SamLowe/roberta-base-go_emotions-onnx/resolve/main/onnx/model.onnx":
			_, _ = w.Write([]byte("graph"))
		case "/SamLowe/roberta-base-go_emotions-onnx/resolve/main/onnx/tokenizer.json":
			_, _ = w.Write([]byte("{}"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cache := t.TempDir()
	h := New(Config{CacheDir: cache, HubURL: srv.URL, HubToken: "hf_token"},
		&fakeStore{err: errors.New("bucket unreachable")}, nil)
	spec := ModelSpec{
		Name:  "roberta-base-go_emotions-onnx",
		Repo:  "SamLowe/roberta-base-go_emotions-onnx",
		Files: []string{"onnx/model.onnx", "onnx/tokenizer.json"},
	}

	dir, err := h.Resolve(context.Background(), spec)
	require.NoError(t, err)

	body, err := os.ReadFile(filepath.Join(dir, "onnx", "model.onnx"))
	require.NoError(t, err)
	assert.Equal(t, "graph", string(body))
	assert.Equal(t, int32(2), hits.Load())

	// Second resolution is served from the cache.
	_, err = h.Resolve(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestResolveMissingFileOnHub(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	h := New(Config{CacheDir: t.TempDir(), HubURL: srv.URL}, nil, nil)

	_, err := h.Resolve(context.Background(), ModelSpec{Name: "x", Repo: "org/x", Files: []string{"model.onnx"}})

	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestResolveOfflineWithoutSources(t *testing.T) {
	h := New(Config{CacheDir: t.TempDir(), Offline: true}, nil, nil)

	_, err := h.Resolve(context.Background(), ModelSpec{Name: "go_emotions_model", Dir: "/does/not/exist"})

	assert.ErrorIs(t, err, ErrModelNotFound)
	assert.False(t, h.Exists(ModelSpec{Name: "go_emotions_model", Dir: "/does/not/exist", Files: []string{"model.onnx"}}))
}
