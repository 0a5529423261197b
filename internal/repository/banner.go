package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tourhub/backend/internal/domain"
)

type bannerRepository struct {
	db *sqlx.DB
}

func newBannerRepository(db *sqlx.DB) *bannerRepository {
	return &bannerRepository{
		db: db,
	}
}

func (r *bannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	const query = `
	INSERT INTO banner (id, title, photo_key, active, created_at, updated_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query, banner.ID, banner.Title, banner.PhotoKey, banner.Active)
	if err != nil {
		return fmt.Errorf("db insert banner: %w", err)
	}
	return nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, title, photo_key, active, created_at, updated_at
	FROM banner WHERE id = uuid_to_bin(?);
	`
	var banner domain.Banner
	if err := r.db.GetContext(ctx, &banner, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from banner by id failed: %w", err)
	}
	return &banner, nil
}

func (r *bannerRepository) GetActive(ctx context.Context) ([]domain.Banner, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, title, photo_key, active, created_at, updated_at
	FROM banner WHERE active = TRUE ORDER BY created_at DESC;
	`
	var banners []domain.Banner
	if err := r.db.SelectContext(ctx, &banners, query); err != nil {
		return nil, fmt.Errorf("select active banners failed: %w", err)
	}
	return banners, nil
}

func (r *bannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM banner WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete banner: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete banner: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
