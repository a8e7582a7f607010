package sheets

import (
	"fmt"
	"testing"
	"time"

	"personnel-bot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePutGet(t *testing.T) {
	c := newPersonnelCache()

	_, ok := c.get("1")
	assert.False(t, ok)

	record := model.PersonnelRecord{FirstName: "Иван", DiscordID: "1"}
	c.put("1", record)

	got, ok := c.get("1")
	require.True(t, ok)
	assert.Equal(t, record, got)

	stats := c.stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestCacheInvalidate(t *testing.T) {
	c := newPersonnelCache()
	c.put("1", model.PersonnelRecord{DiscordID: "1"})
	c.invalidate("1")

	_, ok := c.get("1")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := newPersonnelCache()
	c.put("1", model.PersonnelRecord{DiscordID: "1"})

	c.mu.Lock()
	entry := c.entries["1"]
	entry.expires = time.Now().Add(-time.Second)
	c.entries["1"] = entry
	c.mu.Unlock()

	_, ok := c.get("1")
	assert.False(t, ok)
	assert.Equal(t, 0, c.stats().Entries, "expired entry is dropped on read")
}

func TestCacheSweep(t *testing.T) {
	c := newPersonnelCache()
	c.put("fresh", model.PersonnelRecord{DiscordID: "fresh"})
	c.put("stale", model.PersonnelRecord{DiscordID: "stale"})

	c.mu.Lock()
	entry := c.entries["stale"]
	entry.expires = time.Now().Add(-time.Second)
	c.entries["stale"] = entry
	c.mu.Unlock()

	c.Sweep()

	assert.Equal(t, 1, c.stats().Entries)
	_, ok := c.get("fresh")
	assert.True(t, ok)
}

func TestCacheBoundedSize(t *testing.T) {
	c := newPersonnelCache()
	for i := 0; i < maxCacheSize+10; i++ {
		c.put(fmt.Sprintf("%d", i), model.PersonnelRecord{})
	}
	assert.LessOrEqual(t, c.stats().Entries, maxCacheSize)
}
