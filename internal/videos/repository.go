package videos

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/studiocast/catalog/internal/models"
)

// Repository handles video persistence in PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a video repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all videos ordered by id descending.
func (r *Repository) List(ctx context.Context) ([]models.Video, error) {
	const q = `SELECT id, title, description, url, thumbnail_url, published, created_at
		FROM videos ORDER BY id DESC`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.URL, &v.ThumbnailURL, &v.Published, &v.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Create inserts a new video. The id and created_at come back from the database;
// published is always stored true.
func (r *Repository) Create(ctx context.Context, v *models.Video) error {
	const q = `INSERT INTO videos (title, description, url, thumbnail_url, published)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING id, published, created_at`
	return r.pool.QueryRow(ctx, q, v.Title, v.Description, v.URL, v.ThumbnailURL).
		Scan(&v.ID, &v.Published, &v.CreatedAt)
}

// Delete removes a video by id. Returns ErrNotFound when no row matched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM videos WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
