// Package memory provides in-process implementations of the espalier
// ports, suitable for tests and single-instance deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
)

// Cache implements ports.FragmentCache in memory.
// Safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry
}

type entry struct {
	fragment []byte
	expires  time.Time // zero means no expiry
}

// NewCache creates an empty in-memory fragment cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]entry),
	}
}

// Get returns the cached fragment. Expired entries count as misses and
// are dropped lazily.
func (c *Cache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, domain.ErrCacheMiss
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, domain.ErrCacheMiss
	}

	out := make([]byte, len(e.fragment))
	copy(out, e.fragment)
	return out, nil
}

// Set stores a fragment. A zero ttl means no expiry.
func (c *Cache) Set(_ context.Context, key string, fragment []byte, ttl time.Duration) error {
	stored := make([]byte, len(fragment))
	copy(stored, fragment)

	e := entry{fragment: stored}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}

	c.mu.Lock()
	c.data[key] = e
	c.mu.Unlock()
	return nil
}

// Delete removes a fragment; absent keys are not an error.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}
