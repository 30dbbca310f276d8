package videos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiocast/catalog/internal/models"
)

func TestMemoryStoreIDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := &models.Video{Title: "a", URL: "https://v/1"}
	require.NoError(t, store.Create(ctx, a))
	require.NoError(t, store.Delete(ctx, a.ID))

	b := &models.Video{Title: "b", URL: "https://v/2"}
	require.NoError(t, store.Create(ctx, b))
	assert.Greater(t, b.ID, a.ID, "a deleted id must never be reassigned")
}

func TestMemoryStoreDeleteNotFound(t *testing.T) {
	store := NewMemoryStore()
	err := store.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Create(ctx, &models.Video{Title: "a", URL: "https://v/1"}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	list[0].Title = "mutated"

	again, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Title)
}
