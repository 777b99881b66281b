package minio

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrConnectionFailed is returned when the storage endpoint cannot be reached.
	ErrConnectionFailed = errors.New("minio: connection failed")

	// ErrBucketNotFound is returned when the configured bucket does not exist.
	ErrBucketNotFound = errors.New("minio: bucket not found")

	// ErrObjectNotFound is returned when a requested key does not exist.
	ErrObjectNotFound = errors.New("minio: object not found")
)

// TranslateError maps minio-go error responses onto the package sentinels.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchBucket":
		return ErrBucketNotFound
	case "NoSuchKey":
		return ErrObjectNotFound
	}
	return err
}
