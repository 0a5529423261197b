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

type enquiryRepository struct {
	db *sqlx.DB
}

func newEnquiryRepository(db *sqlx.DB) *enquiryRepository {
	return &enquiryRepository{
		db: db,
	}
}

func (r *enquiryRepository) Create(ctx context.Context, enquiry *domain.Enquiry) error {
	const query = `
	INSERT INTO enquiry
	(id, name, email, phone, message, package_id, schedule_id, created_at, updated_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, uuid_to_bin(?), uuid_to_bin(?), NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query,
		enquiry.ID,
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.Message,
		uuidOrNil(enquiry.PackageID),
		uuidOrNil(enquiry.ScheduleID),
	)
	if err != nil {
		return fmt.Errorf("db insert enquiry: %w", err)
	}
	return nil
}

// uuidOrNil keeps optional references NULL in the database instead of the
// zero uuid, so dangling-reference checks stay meaningful.
func uuidOrNil(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func (r *enquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Enquiry, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		name,
		email,
		phone,
		message,
		bin_to_uuid(package_id) as package_id,
		bin_to_uuid(schedule_id) as schedule_id,
		created_at,
		updated_at
	FROM enquiry WHERE id = uuid_to_bin(?);
	`
	var enquiry domain.Enquiry
	if err := r.db.GetContext(ctx, &enquiry, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from enquiry by id failed: %w", err)
	}
	return &enquiry, nil
}

func (r *enquiryRepository) GetPage(ctx context.Context, limit, offset int) ([]domain.Enquiry, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		name,
		email,
		phone,
		message,
		bin_to_uuid(package_id) as package_id,
		bin_to_uuid(schedule_id) as schedule_id,
		created_at,
		updated_at
	FROM enquiry
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?;
	`
	var enquiries []domain.Enquiry
	if err := r.db.SelectContext(ctx, &enquiries, query, limit, offset); err != nil {
		return nil, fmt.Errorf("select enquiry page failed: %w", err)
	}
	return enquiries, nil
}

func (r *enquiryRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM enquiry;`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count enquiries failed: %w", err)
	}
	return count, nil
}

func (r *enquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM enquiry WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete enquiry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete enquiry: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
