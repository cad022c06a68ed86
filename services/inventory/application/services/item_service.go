package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/blooprint/pkg/cache"
	"github.com/ghuser/blooprint/pkg/logger"
	itemdomain "github.com/ghuser/blooprint/services/inventory/domain"
	"github.com/ghuser/blooprint/services/inventory/domain/models"
	"github.com/ghuser/blooprint/services/inventory/domain/repositories"
)

// ItemCache is the cache contract consumed by ItemService. Satisfied by
// pkg/cache.ItemCache; tests substitute in-memory fakes. Absent entries are
// reported as redis.Nil.
type ItemCache interface {
	Get(ctx context.Context, id int64) (*pkgcache.CachedItem, error)
	Set(ctx context.Context, item *pkgcache.CachedItem) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]pkgcache.CachedItem, error)
	SetAll(ctx context.Context, items []pkgcache.CachedItem) error
}

// ItemService orchestrates reads through the Redis cache and writes through
// PostgreSQL with cache invalidation. Only the store is authoritative: a
// cache miss or a cache failure never implies the item does not exist, and a
// cache failure never surfaces to the caller while the store can answer.
type ItemService struct {
	repo  repositories.ItemRepository
	cache ItemCache
	log   logger.Logger
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, cache ItemCache, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: cache, log: log}
}

// GetByID retrieves an Item using a read-through cache:
//  1. Check the item:{id} cache entry first; a hit is returned as-is.
//  2. On miss (or cache error), query Postgres. A missing row is
//     ErrItemNotFound and is NOT cached (no negative caching).
//  3. Populate the cache with the Postgres result before returning.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return cachedToModel(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			// Degrade to a miss; the store still answers.
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, modelToCached(item)); err != nil {
			s.log.WarnContext(ctx, "item cache populate failed", "item_id", id, "error", err)
		}
	}

	return item, nil
}

// List returns all items, served from the items:all aggregate cache entry
// when present. The aggregate entry is never invalidated by individual item
// writes; its TTL is the only staleness bound.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.GetAll(ctx)
		if err == nil {
			items := make([]*models.Item, len(cached))
			for i := range cached {
				items[i] = cachedToModel(&cached[i])
			}
			return items, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item list cache read failed", "error", err)
		}
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if s.cache != nil {
		cached := make([]pkgcache.CachedItem, len(items))
		for i, item := range items {
			cached[i] = *modelToCached(item)
		}
		if err := s.cache.SetAll(ctx, cached); err != nil {
			s.log.WarnContext(ctx, "item list cache populate failed", "error", err)
		}
	}

	return items, nil
}

// Create validates and persists an Item. The store assigns the ID and
// enforces name uniqueness atomically through its unique index. The new item
// is not written through to the cache; the next read misses and populates.
func (s *ItemService) Create(ctx context.Context, name, description string) (*models.Item, error) {
	item, err := models.NewItem(name, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

// Update performs a full replacement of an existing Item's mutable fields.
// The current row is read from Postgres, never the cache, since writes must see
// the authoritative copy. On success the item:{id} cache entry is
// invalidated so the next read observes fresh data; items:all is left alone.
func (s *ItemService) Update(ctx context.Context, id int64, name, description string) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if err := item.Replace(name, description); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "item cache invalidate failed", "item_id", id, "error", err)
		}
	}

	return item, nil
}

// Delete removes an item and invalidates its cache entry.
// Returns ErrItemNotFound if no matching item exists.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, id); err != nil {
			s.log.WarnContext(ctx, "item cache invalidate failed", "item_id", id, "error", err)
		}
	}

	return nil
}

func cachedToModel(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func modelToCached(m *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
