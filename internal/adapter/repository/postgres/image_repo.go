package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
	"github.com/pixelforge/imgtier/internal/pkg/pagination"
)

type ImageRepo struct {
	pool *pgxpool.Pool
}

func NewImageRepo(pool *pgxpool.Pool) *ImageRepo {
	return &ImageRepo{pool: pool}
}

// CreateWithThumbnails commits the image row and its whole thumbnail set in
// a single transaction so readers never observe a partial set.
func (r *ImageRepo) CreateWithThumbnails(ctx context.Context, image *entity.Image, thumbnails []entity.Thumbnail) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	imageQuery := `
		INSERT INTO images (id, user_id, key, original_link, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, imageQuery,
		image.ID, image.UserID, image.Key, image.OriginalLink, image.CreatedAt,
	); err != nil {
		return fmt.Errorf("inserting image: %w", err)
	}

	thumbQuery := `
		INSERT INTO thumbnails (id, image_id, size, key, expiring_link, link_expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for i := range thumbnails {
		t := &thumbnails[i]
		if _, err := tx.Exec(ctx, thumbQuery,
			t.ID, t.ImageID, t.Size, t.Key, t.ExpiringLink, t.LinkExpiresAt, t.CreatedAt,
		); err != nil {
			return fmt.Errorf("inserting thumbnail (size %d): %w", t.Size, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing upload: %w", err)
	}
	return nil
}

func (r *ImageRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	query := `
		SELECT id, user_id, key, original_link, created_at
		FROM images
		WHERE id = $1
	`
	var image entity.Image
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&image.ID, &image.UserID, &image.Key, &image.OriginalLink, &image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("querying image: %w", err)
	}
	return &image, nil
}

func (r *ImageRepo) ListByUserID(ctx context.Context, userID uuid.UUID, params pagination.Params) ([]entity.Image, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM images WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting images: %w", err)
	}

	query := `
		SELECT id, user_id, key, original_link, created_at
		FROM images
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.pool.Query(ctx, query, userID, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying images: %w", err)
	}
	defer rows.Close()

	var images []entity.Image
	for rows.Next() {
		var image entity.Image
		if err := rows.Scan(
			&image.ID, &image.UserID, &image.Key, &image.OriginalLink, &image.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scanning image: %w", err)
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return images, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

// Delete removes the image row; thumbnails go with it via ON DELETE CASCADE.
func (r *ImageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrImageNotFound
	}
	return nil
}
