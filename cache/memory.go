package cache

import (
	"sync"
	"time"
)

// memoryEntry is one cached chunk translation. A zero expiry means the
// entry never expires.
type memoryEntry struct {
	value   string
	expires time.Time
}

// InMemoryCache is a thread-safe in-process chunk cache. Entries carry an
// absolute expiry computed at Set time; expired entries are evicted lazily
// on read.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

// NewInMemoryCache creates an in-memory cache. A ttlSeconds of 0 or less
// means entries never expire.
func NewInMemoryCache(ttlSeconds int) *InMemoryCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttlSeconds <= 0 {
		ttl = 0
	}
	return &InMemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

// Get returns the cached translation for key, or false for a miss. Reading
// an expired entry evicts it and reports a miss.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if entry.expired(time.Now()) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores a translation under key, stamping it with the cache TTL.
func (c *InMemoryCache) Set(key string, value string) error {
	entry := memoryEntry{value: value}
	if c.ttl > 0 {
		entry.expires = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, including any not yet evicted
// expired ones.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns a snapshot of all live entries, for export.
func (c *InMemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	snapshot := make(map[string]string, len(c.entries))
	for key, entry := range c.entries {
		if entry.expired(now) {
			continue
		}
		snapshot[key] = entry.value
	}
	return snapshot
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// Verify InMemoryCache implements ChunkCache
var _ ChunkCache = (*InMemoryCache)(nil)
