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

type ThumbnailRepo struct {
	pool *pgxpool.Pool
}

func NewThumbnailRepo(pool *pgxpool.Pool) *ThumbnailRepo {
	return &ThumbnailRepo{pool: pool}
}

const thumbnailColumns = `id, image_id, size, key, expiring_link, link_expires_at, created_at`

func (r *ThumbnailRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Thumbnail, error) {
	query := fmt.Sprintf(`SELECT %s FROM thumbnails WHERE id = $1`, thumbnailColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *ThumbnailRepo) GetByImageAndSize(ctx context.Context, imageID uuid.UUID, size int) (*entity.Thumbnail, error) {
	query := fmt.Sprintf(`SELECT %s FROM thumbnails WHERE image_id = $1 AND size = $2`, thumbnailColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, imageID, size))
}

func (r *ThumbnailRepo) ListByImageID(ctx context.Context, imageID uuid.UUID) ([]entity.Thumbnail, error) {
	query := fmt.Sprintf(`SELECT %s FROM thumbnails WHERE image_id = $1 ORDER BY size ASC`, thumbnailColumns)
	rows, err := r.pool.Query(ctx, query, imageID)
	if err != nil {
		return nil, fmt.Errorf("querying thumbnails: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *ThumbnailRepo) List(ctx context.Context, params pagination.Params) ([]entity.Thumbnail, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM thumbnails`).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting thumbnails: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM thumbnails
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, thumbnailColumns)
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying thumbnails: %w", err)
	}
	defer rows.Close()

	thumbnails, err := r.scanMany(rows)
	if err != nil {
		return nil, nil, err
	}
	return thumbnails, pagination.NewInfo(params.Page, params.PerPage, total), nil
}

// SetExpiringLink persists an issued link on the thumbnail row. Links are
// written once; a row that already carries one is left untouched.
func (r *ThumbnailRepo) SetExpiringLink(ctx context.Context, thumbnail *entity.Thumbnail) error {
	query := `
		UPDATE thumbnails
		SET expiring_link = $2, link_expires_at = $3
		WHERE id = $1 AND expiring_link IS NULL
	`
	result, err := r.pool.Exec(ctx, query, thumbnail.ID, thumbnail.ExpiringLink, thumbnail.LinkExpiresAt)
	if err != nil {
		return fmt.Errorf("setting expiring link: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrThumbnailNotFound
	}
	return nil
}

func (r *ThumbnailRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM thumbnails WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting thumbnail: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrThumbnailNotFound
	}
	return nil
}

func (r *ThumbnailRepo) scanOne(row pgx.Row) (*entity.Thumbnail, error) {
	var t entity.Thumbnail
	err := row.Scan(
		&t.ID, &t.ImageID, &t.Size, &t.Key, &t.ExpiringLink, &t.LinkExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThumbnailNotFound
		}
		return nil, fmt.Errorf("querying thumbnail: %w", err)
	}
	return &t, nil
}

func (r *ThumbnailRepo) scanMany(rows pgx.Rows) ([]entity.Thumbnail, error) {
	var thumbnails []entity.Thumbnail
	for rows.Next() {
		var t entity.Thumbnail
		if err := rows.Scan(
			&t.ID, &t.ImageID, &t.Size, &t.Key, &t.ExpiringLink, &t.LinkExpiresAt, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning thumbnail: %w", err)
		}
		thumbnails = append(thumbnails, t)
	}
	return thumbnails, rows.Err()
}
