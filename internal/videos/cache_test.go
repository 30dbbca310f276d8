package videos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/studiocast/catalog/internal/models"
)

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	return c.data[key], nil
}

func (c *fakeCache) Set(_ context.Context, key string, val []byte, _ time.Duration) error {
	c.data[key] = val
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

// countingStore counts List calls on the way to the underlying store.
type countingStore struct {
	Store
	listCalls int
}

func (s *countingStore) List(ctx context.Context) ([]models.Video, error) {
	s.listCalls++
	return s.Store.List(ctx)
}

func TestCachedStoreServesFromCache(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemoryStore()}
	cached := NewCachedStore(inner, newFakeCache(), time.Minute, zap.NewNop())

	require.NoError(t, cached.Create(ctx, &models.Video{Title: "a", URL: "https://v/1"}))

	first, err := cached.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, inner.listCalls)

	second, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.listCalls, "second read must hit the cache")
}

func TestCachedStoreInvalidatesOnCreate(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemoryStore()}
	cached := NewCachedStore(inner, newFakeCache(), time.Minute, zap.NewNop())

	_, err := cached.List(ctx)
	require.NoError(t, err)

	require.NoError(t, cached.Create(ctx, &models.Video{Title: "a", URL: "https://v/1"}))

	list, err := cached.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, inner.listCalls, "create must invalidate the cached listing")
}

func TestCachedStoreInvalidatesOnDelete(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemoryStore()}
	cached := NewCachedStore(inner, newFakeCache(), time.Minute, zap.NewNop())

	v := &models.Video{Title: "a", URL: "https://v/1"}
	require.NoError(t, cached.Create(ctx, v))

	list, err := cached.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, cached.Delete(ctx, v.ID))

	list, err = cached.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCachedStoreDeletePassesThroughNotFound(t *testing.T) {
	cached := NewCachedStore(NewMemoryStore(), newFakeCache(), time.Minute, zap.NewNop())
	err := cached.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}
