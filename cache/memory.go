package cache

import (
	"sync"
	"time"
)

// memoryEntry holds a cached translation and the moment it stops being valid.
// A zero expiry means the entry never expires.
type memoryEntry struct {
	translation string
	expires     time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}

// InMemoryCache keeps sentence translations in a map guarded by an RWMutex.
// It is the default cache for the CLI and the server when no Redis address
// is configured.
type InMemoryCache struct {
	entries map[string]memoryEntry
	mu      sync.RWMutex
	ttl     time.Duration
}

// NewInMemoryCache creates an in-memory cache whose entries expire after
// ttlSeconds. With a zero or negative TTL entries live forever.
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

// Get returns the cached translation for key, or ok=false when the key is
// absent or its entry has expired. Expired entries are deleted on read.
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

	return entry.translation, true
}

// Set stores a translation under key, restarting its TTL. It never fails;
// the error return satisfies TranslationCache.
func (c *InMemoryCache) Set(key string, value string) error {
	entry := memoryEntry{translation: value}
	if c.ttl > 0 {
		entry.expires = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Len reports how many entries the cache holds, expired ones included.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
}

// Entries returns a copy of all live key/translation pairs, for export.
func (c *InMemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	result := make(map[string]string, len(c.entries))
	for key, entry := range c.entries {
		if entry.expired(now) {
			continue
		}
		result[key] = entry.translation
	}
	return result
}
