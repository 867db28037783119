package cache

import (
	"context"
	"sync"
	"time"

	appsales "github.com/salestrack/backend/internal/application/sales"
)

// MemoryAnalyticsCache implements the analytics cache in process memory.
// Suitable for single-instance deployments and tests. Entries expire lazily
// on read.
type MemoryAnalyticsCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryAnalyticsCache creates a new in-memory analytics cache
func NewMemoryAnalyticsCache() *MemoryAnalyticsCache {
	return &MemoryAnalyticsCache{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached payload for key, with a miss reported as ok=false
func (c *MemoryAnalyticsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	// Copy so callers cannot mutate the cached payload
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, true, nil
}

// Set stores a payload under key with the given TTL
func (c *MemoryAnalyticsCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = memoryEntry{
		value:     stored,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// InvalidateAll drops every cached analytics entry
func (c *MemoryAnalyticsCache) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

var _ appsales.AnalyticsCache = (*MemoryAnalyticsCache)(nil)
