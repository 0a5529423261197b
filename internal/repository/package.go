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

type packageRepository struct {
	db *sqlx.DB
}

func newPackageRepository(db *sqlx.DB) *packageRepository {
	return &packageRepository{
		db: db,
	}
}

func (r *packageRepository) Create(ctx context.Context, pkg *domain.Package) error {
	const query = `
	INSERT INTO package
	(id, title, description, terms, source_country_id, source_city_id, dest_country_id, dest_city_id, photo_keys, created_at, updated_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query,
		pkg.ID,
		pkg.Title,
		pkg.Description,
		pkg.Terms,
		pkg.SourceCountry,
		pkg.SourceCity,
		pkg.DestCountry,
		pkg.DestCity,
		pkg.PhotoKeys,
	)
	if err != nil {
		return fmt.Errorf("db insert package: %w", err)
	}
	return nil
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		title,
		description,
		terms,
		bin_to_uuid(source_country_id) as source_country_id,
		bin_to_uuid(source_city_id) as source_city_id,
		bin_to_uuid(dest_country_id) as dest_country_id,
		bin_to_uuid(dest_city_id) as dest_city_id,
		photo_keys,
		created_at,
		updated_at
	FROM package WHERE id = uuid_to_bin(?);
	`
	var pkg domain.Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from package by id failed: %w", err)
	}
	return &pkg, nil
}

func (r *packageRepository) GetAll(ctx context.Context) ([]domain.Package, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		title,
		description,
		terms,
		bin_to_uuid(source_country_id) as source_country_id,
		bin_to_uuid(source_city_id) as source_city_id,
		bin_to_uuid(dest_country_id) as dest_country_id,
		bin_to_uuid(dest_city_id) as dest_city_id,
		photo_keys,
		created_at,
		updated_at
	FROM package ORDER BY created_at DESC;
	`
	var packages []domain.Package
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, fmt.Errorf("select all packages failed: %w", err)
	}
	return packages, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *domain.Package) error {
	const query = `
	UPDATE package
	SET
		title = ?,
		description = ?,
		terms = ?,
		source_country_id = uuid_to_bin(?),
		source_city_id = uuid_to_bin(?),
		dest_country_id = uuid_to_bin(?),
		dest_city_id = uuid_to_bin(?),
		photo_keys = ?,
		updated_at = NOW()
	WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query,
		pkg.Title,
		pkg.Description,
		pkg.Terms,
		pkg.SourceCountry,
		pkg.SourceCity,
		pkg.DestCountry,
		pkg.DestCity,
		pkg.PhotoKeys,
		pkg.ID,
	)
	if err != nil {
		return fmt.Errorf("db update package: %w", err)
	}
	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM package WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete package: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete package: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
