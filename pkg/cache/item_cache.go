package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL bounds how stale a cached item may be. Applies to both
	// single-item entries and the aggregate list entry.
	ItemCacheTTL = 15 * time.Minute

	itemKeyPrefix = "item"
	allItemsKey   = "items:all"
)

// CachedItem is the denormalized read model stored in Redis as JSON.
// The cache copy is disposable: it may vanish at any time and is never
// authoritative for existence.
type CachedItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ItemCache provides structured read/write operations for item cache entries.
// Single items live under "item:{id}"; the full listing lives under
// "items:all". Both expire after ItemCacheTTL.
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by ID.
// Returns redis.Nil when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, id int64) (*CachedItem, error) {
	data, err := c.client.Client().Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var item CachedItem
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("cache decode item: %w", err)
	}
	return &item, nil
}

// Set writes a cached item with the standard TTL.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode item: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(item.ID), data, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Deleting an absent key is not an error.
func (c *ItemCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// GetAll retrieves the cached aggregate listing.
// Returns redis.Nil when the aggregate key does not exist or has expired.
func (c *ItemCache) GetAll(ctx context.Context) ([]CachedItem, error) {
	data, err := c.client.Client().Get(ctx, allItemsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get all: %w", err)
	}

	var items []CachedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cache decode items: %w", err)
	}
	return items, nil
}

// SetAll writes the aggregate listing with the standard TTL. The entry is
// not invalidated by individual item writes; the TTL is its only staleness
// bound.
func (c *ItemCache) SetAll(ctx context.Context, items []CachedItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode items: %w", err)
	}
	if err := c.client.Client().Set(ctx, allItemsKey, data, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set all: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{id}"
func (c *ItemCache) key(id int64) string {
	return fmt.Sprintf("%s:%d", itemKeyPrefix, id)
}
