package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// entry wraps cached data with its expiration bookkeeping. An entry dies
// when either deadline passes. Each hit pushes the sliding deadline out by
// slidingTTL, capped by the absolute deadline.
type entry struct {
	data             interface{}
	absoluteDeadline time.Time
	slidingDeadline  time.Time
	slidingTTL       time.Duration
}

// Cache is a process-local key/value store with per-entry absolute and
// sliding expiration on top of a fixed-capacity LRU. Instances are
// injected where needed; there is no package singleton.
type Cache struct {
	mu  sync.Mutex
	lru *lru.Cache[string, entry]
	now func() time.Time
}

func New(capacity int) (*Cache, error) {
	l, err := lru.New[string, entry](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l, now: time.Now}, nil
}

// Set stores data under key. The entry expires when either the absolute
// TTL elapses or it goes unread for the sliding TTL, whichever comes
// first.
func (c *Cache) Set(key string, data interface{}, absoluteTTL, slidingTTL time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.lru.Add(key, entry{
		data:             data,
		absoluteDeadline: now.Add(absoluteTTL),
		slidingDeadline:  now.Add(slidingTTL),
		slidingTTL:       slidingTTL,
	})
}

// Get returns the cached data and whether it was present. A hit extends
// the sliding deadline; an expired entry is removed and reported as a
// miss.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}

	now := c.now()
	if now.After(e.absoluteDeadline) || now.After(e.slidingDeadline) {
		c.lru.Remove(key)
		return nil, false
	}

	slide := now.Add(e.slidingTTL)
	if slide.After(e.absoluteDeadline) {
		slide = e.absoluteDeadline
	}
	e.slidingDeadline = slide
	c.lru.Add(key, e)

	return e.data, true
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
}
