// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package cache

import (
	"container/list"
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity bounds a cache created with a non-positive capacity.
const DefaultCapacity = 1024

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe TTL cache with least-recently-used eviction.
//
// Expired entries are dropped lazily on Get and by a background sweep;
// call Close to stop the sweep.
//
// Example:
//
//	c := cache.New[[]matching.CompatibilityResult](time.Minute, 512)
//	defer c.Close()
//	results, hit, err := c.GetOrLoad(ctx, key, func(ctx context.Context) ([]matching.CompatibilityResult, error) {
//	    return engine.rank(ctx, seeker)
//	})
type Cache[V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	items    map[string]*list.Element
	order    *list.List // front = most recently used
	stats    Stats
	// gen is bumped by Clear; loads started under an older gen are not stored.
	gen uint64

	group singleflight.Group
	stop  chan struct{}
	once  sync.Once
	now   func() time.Time
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache and starts its expiry sweep. A non-positive ttl
// disables caching: every Get misses and Set is a no-op.
func New[V any](ttl time.Duration, capacity int) *Cache[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Cache[V]{
		ttl:      ttl,
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		stop:     make(chan struct{}),
		now:      time.Now,
	}
	c.stats.LastCleanup = c.now()

	if ttl > 0 {
		go c.cleanupLoop(sweepInterval(ttl))
	}
	return c
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	return interval
}

// Enabled reports whether the cache stores anything.
func (c *Cache[V]) Enabled() bool {
	return c.ttl > 0
}

// Get returns the value for key if present and unexpired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	e := el.Value.(*entry[V])
	if c.now().After(e.expiresAt) {
		c.removeElement(el)
		c.stats.Misses++
		c.stats.Evictions++
		return zero, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	return e.value, true
}

// Set stores value under key with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key, evicting the least recently used entry
// when the cache is full.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value, ttl)
}

// setLocked must be called with mu held.
func (c *Cache[V]) setLocked(key string, value V, ttl time.Duration) {
	expiresAt := c.now().Add(ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.capacity {
		c.removeElement(c.order.Back())
		c.stats.Evictions++
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
	c.stats.TotalKeys = int64(len(c.items))
}

// GetOrLoad returns the cached value for key, or calls load once across
// concurrent callers and caches its result. Errors are not cached.
// The bool result reports a cache hit.
//
// load runs on a context detached from ctx's cancellation, so one caller
// leaving does not fail the others sharing the load. Each caller still
// returns early with ctx.Err() when its own ctx is done. A load that
// overlaps a Clear returns its value but does not store it.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, bool, error) {
	var zero V
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if v, ok := c.Get(key); ok {
		return v, true, nil
	}

	gen := c.generation()
	loadCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		v, err := load(loadCtx)
		if err != nil {
			return v, err
		}
		c.setIfGeneration(key, v, gen)
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, false, res.Err
		}
		v, _ := res.Val.(V)
		return v, false, nil
	}
}

func (c *Cache[V]) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// setIfGeneration stores value only if no Clear happened since gen was read.
func (c *Cache[V]) setIfGeneration(key string, value V, gen uint64) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	c.setLocked(key, value, c.ttl)
}

// Delete removes key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
		c.stats.Evictions++
	}
}

// Clear removes every entry. Loads already in flight will not store
// their results.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.stats.Evictions += int64(len(c.items))
	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
	c.stats.TotalKeys = 0
}

// Len returns the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetStats returns a snapshot of the counters.
func (c *Cache[V]) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns hits as a percentage of lookups.
func (c *Cache[V]) HitRate() float64 {
	s := c.GetStats()
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Close stops the expiry sweep. The cache stays usable.
func (c *Cache[V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache[V]) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *Cache[V]) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*entry[V]).expiresAt) {
			c.removeElement(el)
			c.stats.Evictions++
		}
		el = prev
	}
	c.stats.LastCleanup = now
}

// removeElement must be called with mu held.
func (c *Cache[V]) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*entry[V]).key)
	c.stats.TotalKeys = int64(len(c.items))
}

// GenerateKey derives a compact cache key from a method name and its
// JSON-serializable parameters.
func GenerateKey(method string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
