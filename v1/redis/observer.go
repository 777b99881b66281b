package redis

import (
	"time"

	"github.com/pulsesearch/lyricml/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
//
// Notes:
//   - resource: the Redis key being operated on
//   - subResource: additional context such as the model name
func (r *RedisClient) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64) {
	if r == nil || r.observer == nil {
		return
	}

	r.observer.ObserveOperation(observability.OperationContext{
		Component:   "redis",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
	})
}
