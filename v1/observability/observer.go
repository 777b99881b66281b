// Package observability defines the hook infrastructure clients use to
// report their operations to metrics or tracing backends.
package observability

import "time"

// Observer receives a notification for every instrumented operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one finished operation.
type OperationContext struct {
	// Component is the reporting client, e.g. "redis", "classifier", "qdrant".
	Component string

	// Operation is the verb, e.g. "get", "predict", "scroll".
	Operation string

	// Resource is the main target (key, collection, model name).
	Resource string

	// SubResource adds optional detail such as a routing key.
	SubResource string

	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the payload size in bytes or the item count, when meaningful.
	Size int64

	Metadata map[string]interface{}
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}

// Observe reports an operation to o. A nil observer is ignored.
func Observe(o Observer, component, operation, resource string, start time.Time, err error, size int64) {
	if o == nil {
		return
	}
	o.ObserveOperation(OperationContext{
		Component: component,
		Operation: operation,
		Resource:  resource,
		Duration:  time.Since(start),
		Error:     err,
		Size:      size,
	})
}
