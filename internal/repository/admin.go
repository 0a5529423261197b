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

type adminRepository struct {
	db *sqlx.DB
}

func newAdminRepository(db *sqlx.DB) *adminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
	INSERT INTO admin (id, email, password_hash, role, created_at, updated_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query, admin.ID, admin.Email, admin.PasswordHash, admin.Role)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert admin: %w", err)
	}
	return nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, email, password_hash, role, created_at, updated_at
	FROM admin WHERE id = uuid_to_bin(?);
	`
	var admin domain.Admin
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from admin by id failed: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	const query = `
	SELECT bin_to_uuid(id) as id, email, password_hash, role, created_at, updated_at
	FROM admin WHERE email = ?;
	`
	var admin domain.Admin
	if err := r.db.GetContext(ctx, &admin, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from admin by email failed: %w", err)
	}
	return &admin, nil
}
