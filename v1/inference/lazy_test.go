package inference

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyLoadsOnceUnderConcurrency(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	l := NewLazy(func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "model", nil
	})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := l.Get(context.Background())
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "model", r)
	}

	v, ok := l.Peek()
	assert.True(t, ok)
	assert.Equal(t, "model", v)
}

func TestLazyRetriesAfterFailure(t *testing.T) {
	var calls atomic.Int32
	l := NewLazy(func(ctx context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("model not found")
		}
		return 42, nil
	})

	_, err := l.Get(context.Background())
	require.Error(t, err)
	_, ok := l.Peek()
	assert.False(t, ok)

	v, err := l.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestLazyWaiterHonoursContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	l := NewLazy(func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := l.Get(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
