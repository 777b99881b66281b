package minio

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeJoin(t *testing.T) {
	dir := t.TempDir()

	got, err := safeJoin(dir, "onnx/model.onnx")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "onnx", "model.onnx"), got)

	got, err = safeJoin(dir, "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "etc", "passwd"), got)

	_, err = safeJoin(dir, "")
	assert.Error(t, err)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, TranslateError(nil))
	assert.ErrorIs(t, TranslateError(minio.ErrorResponse{Code: "NoSuchBucket"}), ErrBucketNotFound)
	assert.ErrorIs(t, TranslateError(minio.ErrorResponse{Code: "NoSuchKey"}), ErrObjectNotFound)

	other := errors.New("boom")
	assert.Equal(t, other, TranslateError(other))
}

func TestNewClientValidatesConfig(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	_, err = NewClient(Config{Connection: ConnectionConfig{Endpoint: "localhost:9000"}})
	assert.Error(t, err)
}

func TestNewClientWithDIDisabled(t *testing.T) {
	c, err := NewClientWithDI(MinioParams{Config: Config{Enabled: false}})
	require.NoError(t, err)
	assert.Nil(t, c)
}
