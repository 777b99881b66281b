package inference

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Lazy holds a value that is built on first use and cached afterwards.
type Lazy[T any] struct {
	load  func(ctx context.Context) (T, error)
	group singleflight.Group

	mu     sync.RWMutex
	value  T
	loaded bool
}

// NewLazy returns a Lazy that builds its value with load.
func NewLazy[T any](load func(ctx context.Context) (T, error)) *Lazy[T] {
	return &Lazy[T]{load: load}
}

// Get returns the cached value, loading it first if needed. Only one load
// runs at a time; callers arriving during a load wait for its result unless
// their own ctx ends first. The load itself is not cancelled when the
// triggering caller goes away.
func (l *Lazy[T]) Get(ctx context.Context) (T, error) {
	if v, ok := l.Peek(); ok {
		return v, nil
	}

	ch := l.group.DoChan("load", func() (interface{}, error) {
		if v, ok := l.Peek(); ok {
			return v, nil
		}
		v, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.value, l.loaded = v, true
		l.mu.Unlock()
		return v, nil
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Peek returns the value without loading it.
func (l *Lazy[T]) Peek() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.loaded
}
