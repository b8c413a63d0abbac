// Package redis implements the espalier fragment cache over Redis, for
// deployments where rendered fragments should be shared across
// instances.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.FragmentCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
}

// Option configures the cache.
type Option func(*Cache)

// WithPrefix sets the key prefix for fragments.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Redis fragment cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis fragment cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: "espalier:fragment:",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) key(key string) string {
	return c.prefix + key
}

// Get returns the cached fragment, or domain.ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return data, nil
}

// Set stores a fragment. A zero ttl stores without expiry.
func (c *Cache) Set(ctx context.Context, key string, fragment []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(key), fragment, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes a fragment; absent keys are not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}
