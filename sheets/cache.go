package sheets

import (
	"sync"
	"time"

	"personnel-bot/model"
)

const (
	cacheTTL     = 5 * time.Minute
	maxCacheSize = 1000
)

type cacheEntry struct {
	record  model.PersonnelRecord
	expires time.Time
}

// CacheStats exposes hit/miss counters for the status command.
type CacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// personnelCache is a TTL cache over personnel lookups. It repeats the
// last answer for five minutes; writers must invalidate explicitly.
type personnelCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	hits    uint64
	misses  uint64
}

func newPersonnelCache() *personnelCache {
	return &personnelCache{entries: make(map[string]cacheEntry)}
}

func (c *personnelCache) get(discordID string) (model.PersonnelRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[discordID]
	if !ok || time.Now().After(entry.expires) {
		if ok {
			delete(c.entries, discordID)
		}
		c.misses++
		return model.PersonnelRecord{}, false
	}
	c.hits++
	return entry.record, true
}

func (c *personnelCache) put(discordID string, record model.PersonnelRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= maxCacheSize {
		c.evictExpiredLocked()
		// Still full after the sweep: drop an arbitrary entry rather
		// than grow without bound.
		if len(c.entries) >= maxCacheSize {
			for key := range c.entries {
				delete(c.entries, key)
				break
			}
		}
	}
	c.entries[discordID] = cacheEntry{record: record, expires: time.Now().Add(cacheTTL)}
}

func (c *personnelCache) invalidate(discordID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, discordID)
}

func (c *personnelCache) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, key)
		}
	}
}

// Sweep removes expired entries. Called periodically by the scheduler.
func (c *personnelCache) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictExpiredLocked()
}

func (c *personnelCache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}
