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

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	const query = `
	INSERT INTO city (id, country_id, name, created_at, updated_at)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query, city.ID, city.CountryID, city.Name)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert city: %w", err)
	}
	return nil
}

func (r *cityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(country_id) as country_id, name, created_at, updated_at
	FROM city WHERE id = uuid_to_bin(?);
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) GetByNameAndCountry(ctx context.Context, name string, countryID uuid.UUID) (*domain.City, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(country_id) as country_id, name, created_at, updated_at
	FROM city WHERE name = ? AND country_id = uuid_to_bin(?);
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, name, countryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by name and country failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) GetByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.City, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(country_id) as country_id, name, created_at, updated_at
	FROM city WHERE country_id = uuid_to_bin(?) ORDER BY name ASC;
	`
	var cities []domain.City
	if err := r.db.SelectContext(ctx, &cities, query, countryID); err != nil {
		return nil, fmt.Errorf("select cities by country failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) GetPage(ctx context.Context, limit, offset int) ([]domain.City, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(country_id) as country_id, name, created_at, updated_at
	FROM city
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?;
	`
	var cities []domain.City
	if err := r.db.SelectContext(ctx, &cities, query, limit, offset); err != nil {
		return nil, fmt.Errorf("select city page failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) GetAllAlphabetical(ctx context.Context) ([]domain.City, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, bin_to_uuid(country_id) as country_id, name, created_at, updated_at
	FROM city ORDER BY name ASC;
	`
	var cities []domain.City
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("select all cities failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM city;`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count cities failed: %w", err)
	}
	return count, nil
}

func (r *cityRepository) Update(ctx context.Context, city *domain.City) error {
	const query = `
	UPDATE city SET country_id = uuid_to_bin(?), name = ?, updated_at = NOW() WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query, city.CountryID, city.Name, city.ID)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db update city: %w", err)
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM city WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete city: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
