package videos

import (
	"context"
	"sync"
	"time"

	"github.com/studiocast/catalog/internal/models"
)

// MemoryStore is an in-process Store used when no database is configured, and by
// tests. Ids are assigned from a monotonically increasing counter and are never
// reused, matching the database behavior.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	list   []models.Video // kept in id-descending order
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// List returns a copy of all videos, id descending.
func (s *MemoryStore) List(ctx context.Context) ([]models.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Video, len(s.list))
	copy(out, s.list)
	return out, nil
}

// Create assigns the next id and current time and prepends the record.
func (s *MemoryStore) Create(ctx context.Context, v *models.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID
	s.nextID++
	v.Published = true
	v.CreatedAt = time.Now().UTC()
	s.list = append([]models.Video{*v}, s.list...)
	return nil
}

// Delete removes the video with the given id, or returns ErrNotFound.
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.list {
		if v.ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
