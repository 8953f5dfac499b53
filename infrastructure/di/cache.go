package di

import (
	"context"
	"sync"
	"time"

	"anniversary-backend/domain/profile"
)

// InMemoryProfileCache provides a simple in-memory profile cache
type InMemoryProfileCache struct {
	mu    sync.RWMutex
	items map[profile.FID]cacheItem
}

type cacheItem struct {
	value     *profile.UserProfile
	expiresAt time.Time
}

// NewInMemoryProfileCache creates a new in-memory cache
func NewInMemoryProfileCache() *InMemoryProfileCache {
	cache := &InMemoryProfileCache{
		items: make(map[profile.FID]cacheItem),
	}

	// Start cleanup goroutine
	go cache.cleanupExpired()

	return cache
}

// Get retrieves a cached profile
func (c *InMemoryProfileCache) Get(ctx context.Context, fid profile.FID) (*profile.UserProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[fid]
	if !exists {
		return nil, false
	}

	if time.Now().After(item.expiresAt) {
		return nil, false
	}

	return item.value, true
}

// Set stores a profile with an explicit TTL
func (c *InMemoryProfileCache) Set(ctx context.Context, p *profile.UserProfile, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[p.FID] = cacheItem{
		value:     p,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a cached profile
func (c *InMemoryProfileCache) Delete(ctx context.Context, fid profile.FID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, fid)
	return nil
}

// Clear removes all cached profiles
func (c *InMemoryProfileCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[profile.FID]cacheItem)
	return nil
}

// cleanupExpired periodically removes expired items
func (c *InMemoryProfileCache) cleanupExpired() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for fid, item := range c.items {
			if now.After(item.expiresAt) {
				delete(c.items, fid)
			}
		}
		c.mu.Unlock()
	}
}
