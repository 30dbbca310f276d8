package videos

import (
	"context"
	"errors"

	"github.com/studiocast/catalog/internal/models"
)

// ErrNotFound is returned by Delete when no video has the given id.
var ErrNotFound = errors.New("video not found")

// Store is the durable video collection. Callers must validate input before
// invoking Create; the store trusts its arguments.
type Store interface {
	// List returns every video ordered by id descending (newest first).
	List(ctx context.Context) ([]models.Video, error)

	// Create assigns a fresh id and creation time, forces published to true,
	// persists the record and fills the assigned fields on v.
	Create(ctx context.Context, v *models.Video) error

	// Delete removes the video with the given id, or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error
}
