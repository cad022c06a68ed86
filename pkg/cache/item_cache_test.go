package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Integration tests, skipped unless REDIS_URL is set.
func TestItemCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	ic := NewItemCache(rc)

	item := &CachedItem{
		ID:          987654321,
		Name:        "Laptop",
		Description: "A brand new laptop",
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
		UpdatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	t.Cleanup(func() {
		_ = ic.Delete(ctx, item.ID)
		_ = rc.Client().Del(ctx, allItemsKey)
	})

	t.Run("Set_Get_roundtrip", func(t *testing.T) {
		if err := ic.Set(ctx, item); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := ic.Get(ctx, item.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != item.ID || got.Name != item.Name || got.Description != item.Description {
			t.Fatalf("round-trip mismatch: %+v", got)
		}
		if !got.CreatedAt.Equal(item.CreatedAt) || !got.UpdatedAt.Equal(item.UpdatedAt) {
			t.Fatalf("timestamp mismatch: %+v", got)
		}
	})

	t.Run("Get_missing_is_redis_Nil", func(t *testing.T) {
		_, err := ic.Get(ctx, 111222333)
		if !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("Delete_removes_entry", func(t *testing.T) {
		if err := ic.Set(ctx, item); err != nil {
			t.Fatalf("set: %v", err)
		}
		if err := ic.Delete(ctx, item.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := ic.Get(ctx, item.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("Delete_missing_is_not_an_error", func(t *testing.T) {
		if err := ic.Delete(ctx, 111222333); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("SetAll_GetAll_roundtrip", func(t *testing.T) {
		items := []CachedItem{*item}
		if err := ic.SetAll(ctx, items); err != nil {
			t.Fatalf("set all: %v", err)
		}
		got, err := ic.GetAll(ctx)
		if err != nil {
			t.Fatalf("get all: %v", err)
		}
		if len(got) != 1 || got[0].ID != item.ID {
			t.Fatalf("unexpected listing: %+v", got)
		}
	})

	t.Run("entries_expire", func(t *testing.T) {
		if err := ic.Set(ctx, item); err != nil {
			t.Fatalf("set: %v", err)
		}
		ttl, err := rc.Client().TTL(ctx, ic.key(item.ID)).Result()
		if err != nil {
			t.Fatalf("ttl: %v", err)
		}
		if ttl <= 0 || ttl > ItemCacheTTL {
			t.Fatalf("expected TTL in (0, %v], got %v", ItemCacheTTL, ttl)
		}
	})
}
