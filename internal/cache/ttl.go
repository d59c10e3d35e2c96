// Package cache provides a small bounded TTL cache keyed by content hash,
// used to skip re-extraction when a page's content has not changed.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Entry is what the trawler remembers about a previously processed page.
type Entry struct {
	JobID        string    `json:"job_id"`
	BarID        string    `json:"bar_id"`
	CachedAt     time.Time `json:"cached_at"`
	WhiskeyCount int       `json:"whiskey_count"`
	ResultRaw    []byte    `json:"result_raw"`
}

type item struct {
	key       string
	entry     Entry
	expiresAt time.Time
}

// TTL is a fixed-capacity cache with per-entry expiry. Eviction is LRU when
// full; expired entries are dropped lazily on access.
type TTL struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	order    *list.List // front = most recent
	index    map[string]*list.Element
	now      func() time.Time
}

func NewTTL(ttl time.Duration, capacity int) *TTL {
	if capacity < 1 {
		capacity = 1
	}
	return &TTL{
		ttl:      ttl,
		capacity: capacity,
		order:    list.New(),
		index:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

// Get returns the cached entry for key, if present and unexpired.
func (c *TTL) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return Entry{}, false
	}
	it := el.Value.(*item)
	if c.now().After(it.expiresAt) {
		c.order.Remove(el)
		delete(c.index, key)
		return Entry{}, false
	}
	c.order.MoveToFront(el)
	return it.entry, true
}

// Set stores entry under key, resetting its expiry. When the cache is at
// capacity the least recently used entry is evicted.
func (c *TTL) Set(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.index[key]; ok {
		it := el.Value.(*item)
		it.entry = entry
		it.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*item).key)
		}
	}
	c.index[key] = c.order.PushFront(&item{key: key, entry: entry, expiresAt: expiresAt})
}

// Len reports the number of entries currently held, including any that have
// expired but not yet been touched.
func (c *TTL) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
