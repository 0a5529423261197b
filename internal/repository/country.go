package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tourhub/backend/internal/db"
	"github.com/tourhub/backend/internal/domain"

	"github.com/go-sql-driver/mysql"
)

type countryRepository struct {
	db *sqlx.DB
}

func newCountryRepository(db *sqlx.DB) *countryRepository {
	return &countryRepository{
		db: db,
	}
}

func (r *countryRepository) Create(ctx context.Context, country *domain.Country) error {
	const query = `
	INSERT INTO country (id, name, created_at, updated_at)
	VALUES (uuid_to_bin(?), ?, NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query, country.ID, country.Name)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert country: %w", err)
	}
	return nil
}

func (r *countryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM country WHERE id = uuid_to_bin(?);
	`
	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from country by id failed: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM country WHERE name = ?;
	`
	var country domain.Country
	if err := r.db.GetContext(ctx, &country, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from country by name failed: %w", err)
	}
	return &country, nil
}

func (r *countryRepository) GetPage(ctx context.Context, limit, offset int) ([]domain.Country, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM country
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?;
	`
	var countries []domain.Country
	if err := r.db.SelectContext(ctx, &countries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("select country page failed: %w", err)
	}
	return countries, nil
}

func (r *countryRepository) GetAllAlphabetical(ctx context.Context) ([]domain.Country, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, name, created_at, updated_at FROM country ORDER BY name ASC;
	`
	var countries []domain.Country
	if err := r.db.SelectContext(ctx, &countries, query); err != nil {
		return nil, fmt.Errorf("select all countries failed: %w", err)
	}
	return countries, nil
}

func (r *countryRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM country;`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count countries failed: %w", err)
	}
	return count, nil
}

func (r *countryRepository) Update(ctx context.Context, country *domain.Country) error {
	const query = `
	UPDATE country SET name = ?, updated_at = NOW() WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query, country.Name, country.ID)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db update country: %w", err)
	}
	return nil
}

func (r *countryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM country WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete country: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete country: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
