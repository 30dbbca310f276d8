package videos

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/models"
)

// listCacheKey holds the serialized full catalog.
const listCacheKey = "catalog:videos"

// ListCache is the backing cache for the full catalog listing. Get returns
// (nil, nil) on a miss.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// CachedStore wraps a Store with a list cache. The cached listing is invalidated
// on every mutation, so readers observe creates and deletes immediately; the TTL
// only bounds staleness if an invalidation is lost.
type CachedStore struct {
	store  Store
	cache  ListCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedStore wraps store with cache.
func NewCachedStore(store Store, cache ListCache, ttl time.Duration, logger *zap.Logger) *CachedStore {
	return &CachedStore{store: store, cache: cache, ttl: ttl, logger: logger}
}

// List serves from cache when possible, falling back to the underlying store.
// Cache failures are logged and never surface to the caller.
func (s *CachedStore) List(ctx context.Context) ([]models.Video, error) {
	if data, err := s.cache.Get(ctx, listCacheKey); err != nil {
		s.logger.Warn("list cache get", zap.Error(err))
	} else if data != nil {
		var list []models.Video
		if err := json.Unmarshal(data, &list); err != nil {
			s.logger.Warn("list cache decode", zap.Error(err))
		} else {
			return list, nil
		}
	}

	list, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(list); err == nil {
		if err := s.cache.Set(ctx, listCacheKey, data, s.ttl); err != nil {
			s.logger.Warn("list cache set", zap.Error(err))
		}
	}
	return list, nil
}

// Create persists through the store and invalidates the cached listing.
func (s *CachedStore) Create(ctx context.Context, v *models.Video) error {
	if err := s.store.Create(ctx, v); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes through the store and invalidates the cached listing.
func (s *CachedStore) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CachedStore) invalidate(ctx context.Context) {
	if err := s.cache.Del(ctx, listCacheKey); err != nil {
		s.logger.Warn("list cache invalidate", zap.Error(err))
	}
}
