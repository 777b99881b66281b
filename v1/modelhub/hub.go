package modelhub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrModelNotFound is returned when no source can provide the model.
var ErrModelNotFound = errors.New("model not found")

// ObjectStore mirrors a key prefix into a local directory.
type ObjectStore interface {
	DownloadPrefix(ctx context.Context, prefix, destDir string) (int, error)
}

// Logger is the logging contract of the hub.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}

// Hub resolves ModelSpecs to local directories.
type Hub struct {
	cfg        Config
	store      ObjectStore
	logger     Logger
	httpClient *http.Client
}

// New returns a Hub. store and logger may be nil.
func New(cfg Config, store ObjectStore, logger Logger) *Hub {
	if cfg.CacheDir == "" {
		cfg.CacheDir = DefaultCacheDir
	}
	if cfg.HubURL == "" {
		cfg.HubURL = DefaultHubURL
	}
	timeout := cfg.DownloadTimeout
	if timeout == 0 {
		timeout = 10 * time.Minute
	}
	return &Hub{
		cfg:        cfg,
		store:      store,
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Exists reports whether spec can be served from disk without any download.
func (h *Hub) Exists(spec ModelSpec) bool {
	if spec.Dir != "" && isDir(spec.Dir) {
		return true
	}
	return hasFiles(h.cacheDir(spec), spec.Files)
}

// Resolve returns the directory holding spec's files, fetching them if needed.
func (h *Hub) Resolve(ctx context.Context, spec ModelSpec) (string, error) {
	if spec.Name == "" {
		return "", errors.New("model name is required")
	}
	if spec.Dir != "" && isDir(spec.Dir) {
		return spec.Dir, nil
	}

	dest := h.cacheDir(spec)
	if hasFiles(dest, spec.Files) {
		return dest, nil
	}

	if h.store != nil {
		prefix := path.Join(strings.Trim(h.cfg.ObjectPrefix, "/"), spec.Name)
		if _, err := h.store.DownloadPrefix(ctx, prefix, dest); err != nil {
			h.warn("Object storage lookup failed", err, spec)
		} else if hasFiles(dest, spec.Files) {
			return dest, nil
		}
	}

	if spec.Repo == "" || h.cfg.Offline {
		return "", fmt.Errorf("%w: %s", ErrModelNotFound, spec.Name)
	}

	if err := h.downloadFromHub(ctx, spec, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func (h *Hub) cacheDir(spec ModelSpec) string {
	return filepath.Join(h.cfg.CacheDir, spec.Name)
}

func (h *Hub) downloadFromHub(ctx context.Context, spec ModelSpec, dest string) error {
	revision := spec.Revision
	if revision == "" {
		revision = DefaultRevision
	}
	for _, file := range spec.Files {
		target := filepath.Join(dest, filepath.FromSlash(file))
		if _, err := os.Stat(target); err == nil {
			continue
		}
		u := fmt.Sprintf("%s/%s/resolve/%s/%s",
			strings.TrimRight(h.cfg.HubURL, "/"), spec.Repo, url.PathEscape(revision), file)
		if h.logger != nil {
			h.logger.Info("Downloading model file", nil, map[string]interface{}{
				"model": spec.Name,
				"url":   u,
			})
		}
		if err := h.download(ctx, u, target); err != nil {
			return fmt.Errorf("download %s from %s: %w", file, spec.Repo, err)
		}
	}
	return nil
}

func (h *Hub) download(ctx context.Context, u, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if h.cfg.HubToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.cfg.HubToken)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrModelNotFound
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("http %d for %s", resp.StatusCode, u)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (h *Hub) warn(msg string, err error, spec ModelSpec) {
	if h.logger == nil {
		return
	}
	h.logger.Warn(msg, err, map[string]interface{}{"model": spec.Name})
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

func hasFiles(dir string, files []string) bool {
	if !isDir(dir) {
		return false
	}
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(f))); err != nil {
			return false
		}
	}
	return true
}
