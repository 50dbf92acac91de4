package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pixelforge/imgtier/internal/domain"
	"github.com/pixelforge/imgtier/internal/domain/entity"
)

type TierRepo struct {
	pool *pgxpool.Pool
}

func NewTierRepo(pool *pgxpool.Pool) *TierRepo {
	return &TierRepo{pool: pool}
}

func (r *TierRepo) Create(ctx context.Context, tier *entity.Tier) error {
	query := `
		INSERT INTO tiers (id, name, thumbnail_sizes, allow_expiring_links, allow_original_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		tier.ID, tier.Name, tier.ThumbnailSizes,
		tier.AllowExpiringLinks, tier.AllowOriginalLink,
		tier.CreatedAt, tier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTierAlreadyExists
		}
		return fmt.Errorf("inserting tier: %w", err)
	}
	return nil
}

func (r *TierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error) {
	query := `
		SELECT id, name, thumbnail_sizes, allow_expiring_links, allow_original_link, created_at, updated_at
		FROM tiers
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *TierRepo) GetByName(ctx context.Context, name string) (*entity.Tier, error) {
	query := `
		SELECT id, name, thumbnail_sizes, allow_expiring_links, allow_original_link, created_at, updated_at
		FROM tiers
		WHERE name = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, name))
}

func (r *TierRepo) List(ctx context.Context) ([]entity.Tier, error) {
	query := `
		SELECT id, name, thumbnail_sizes, allow_expiring_links, allow_original_link, created_at, updated_at
		FROM tiers
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying tiers: %w", err)
	}
	defer rows.Close()

	var tiers []entity.Tier
	for rows.Next() {
		var tier entity.Tier
		if err := rows.Scan(
			&tier.ID, &tier.Name, &tier.ThumbnailSizes,
			&tier.AllowExpiringLinks, &tier.AllowOriginalLink,
			&tier.CreatedAt, &tier.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning tier: %w", err)
		}
		tiers = append(tiers, tier)
	}

	return tiers, rows.Err()
}

func (r *TierRepo) Update(ctx context.Context, tier *entity.Tier) error {
	query := `
		UPDATE tiers
		SET name = $2, thumbnail_sizes = $3, allow_expiring_links = $4, allow_original_link = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		tier.ID, tier.Name, tier.ThumbnailSizes,
		tier.AllowExpiringLinks, tier.AllowOriginalLink, tier.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrTierAlreadyExists
		}
		return fmt.Errorf("updating tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

func (r *TierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tiers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting tier: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTierNotFound
	}
	return nil
}

func (r *TierRepo) scanOne(row pgx.Row) (*entity.Tier, error) {
	var tier entity.Tier
	err := row.Scan(
		&tier.ID, &tier.Name, &tier.ThumbnailSizes,
		&tier.AllowExpiringLinks, &tier.AllowOriginalLink,
		&tier.CreatedAt, &tier.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTierNotFound
		}
		return nil, fmt.Errorf("querying tier: %w", err)
	}
	return &tier, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
