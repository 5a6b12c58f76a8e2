package flight

import (
	"context"
	"sync"
	"time"
)

// Cache coalesces concurrent work for the same key and keeps successful
// results until their ttl passes. Failed work is never cached.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	finished map[K]entry[V]
	pending  map[K]*job[V]

	work    func(context.Context, K) (V, error)
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time
}

// DefaultTimeout bounds a single run of the work.
const DefaultTimeout = 30 * time.Second

type entry[V any] struct {
	val      V
	deadline time.Time // zero => never expires
}

type job[V any] struct {
	val  V
	err  error
	done chan struct{}
}

// NewCache returns a cache that fills misses with work. ttl <= 0 keeps results forever.
func NewCache[K comparable, V any](ttl time.Duration, work func(context.Context, K) (V, error)) *Cache[K, V] {
	return &Cache[K, V]{
		finished: make(map[K]entry[V]),
		pending:  make(map[K]*job[V]),
		work:     work,
		ttl:      ttl,
		timeout:  DefaultTimeout,
		now:      time.Now,
	}
}

// Timeout sets the deadline of future runs. d <= 0 restores DefaultTimeout.
func (c *Cache[K, V]) Timeout(d time.Duration) {
	if d <= 0 {
		d = DefaultTimeout
	}
	c.mu.Lock()
	c.timeout = d
	c.mu.Unlock()
}

// Get returns the cached value for k or runs the work for it. Callers that
// arrive while the work is running wait for that run instead of starting another.
// ctx only bounds each caller's wait. The run keeps ctx's values but not its
// cancellation, and is bounded by the cache timeout instead.
func (c *Cache[K, V]) Get(ctx context.Context, k K) (V, error) {
	c.mu.Lock()
	if e, ok := c.finished[k]; ok {
		if e.deadline.IsZero() || c.now().Before(e.deadline) {
			c.mu.Unlock()
			return e.val, nil
		}
		delete(c.finished, k)
	}

	if j, ok := c.pending[k]; ok {
		c.mu.Unlock()
		return wait(ctx, j)
	}

	j := &job[V]{done: make(chan struct{})}
	c.pending[k] = j
	timeout := c.timeout
	c.mu.Unlock()

	go c.run(context.WithoutCancel(ctx), k, j, timeout)
	return wait(ctx, j)
}

func wait[V any](ctx context.Context, j *job[V]) (V, error) {
	select {
	case <-j.done:
		return j.val, j.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func (c *Cache[K, V]) run(ctx context.Context, k K, j *job[V], timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	j.val, j.err = c.work(ctx, k)

	c.mu.Lock()
	if j.err == nil {
		e := entry[V]{val: j.val}
		if c.ttl > 0 {
			e.deadline = c.now().Add(c.ttl)
		}
		c.finished[k] = e
	}
	delete(c.pending, k)
	close(j.done)
	c.mu.Unlock()
}

// Forget drops any finished result for k.
func (c *Cache[K, V]) Forget(k K) {
	c.mu.Lock()
	delete(c.finished, k)
	c.mu.Unlock()
}

// Len reports the number of finished entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.finished)
}
