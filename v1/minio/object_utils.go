package minio

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// DownloadPrefix mirrors every object under prefix into destDir, keeping the
// key layout below the prefix. It returns the number of files written.
// Objects whose local copy already has the same size are skipped.
func (m *MinioClient) DownloadPrefix(ctx context.Context, prefix, destDir string) (int, error) {
	start := time.Now()
	var (
		written int
		total   int64
		opErr   error
	)
	defer func() { m.observeOperation("download_prefix", prefix, start, opErr, total) }()

	prefix = strings.TrimSuffix(prefix, "/") + "/"
	objects := m.client.ListObjects(ctx, m.cfg.Connection.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for obj := range objects {
		if obj.Err != nil {
			opErr = TranslateError(obj.Err)
			return written, fmt.Errorf("list %s: %w", prefix, opErr)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}

		rel := strings.TrimPrefix(obj.Key, prefix)
		target, err := safeJoin(destDir, rel)
		if err != nil {
			opErr = err
			return written, err
		}
		if fi, err := os.Stat(target); err == nil && fi.Size() == obj.Size {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			opErr = err
			return written, fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		if err := m.client.FGetObject(ctx, m.cfg.Connection.BucketName, obj.Key, target, minio.GetObjectOptions{}); err != nil {
			opErr = TranslateError(err)
			return written, fmt.Errorf("download %s: %w", obj.Key, opErr)
		}
		written++
		total += obj.Size
	}

	if m.logger != nil && written > 0 {
		m.logger.Info("Downloaded model artifacts from object storage", nil, map[string]interface{}{
			"bucket": m.cfg.Connection.BucketName,
			"prefix": prefix,
			"files":  written,
			"bytes":  total,
		})
	}
	return written, nil
}

// safeJoin joins a slash-separated object key below dir and rejects keys
// that would escape it.
func safeJoin(dir, key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(cleaned, "/"))), nil
}
