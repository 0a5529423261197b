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

type scheduleRepository struct {
	db *sqlx.DB
}

func newScheduleRepository(db *sqlx.DB) *scheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) error {
	const query = `
	INSERT INTO schedule
	(id, package_id, title, from_date, to_date, amount, description, photo_keys, created_at, updated_at)
	VALUES (uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?, ?, ?, ?, NOW(), NOW());
	`
	_, err := r.db.ExecContext(ctx, query,
		schedule.ID,
		schedule.PackageID,
		schedule.Title,
		schedule.FromDate,
		schedule.ToDate,
		schedule.Amount,
		schedule.Description,
		schedule.PhotoKeys,
	)
	if err != nil {
		return fmt.Errorf("db insert schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		bin_to_uuid(package_id) as package_id,
		title,
		from_date,
		to_date,
		amount,
		description,
		photo_keys,
		created_at,
		updated_at
	FROM schedule WHERE id = uuid_to_bin(?);
	`
	var schedule domain.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from schedule by id failed: %w", err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetByPackage(ctx context.Context, packageID uuid.UUID) ([]domain.Schedule, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		bin_to_uuid(package_id) as package_id,
		title,
		from_date,
		to_date,
		amount,
		description,
		photo_keys,
		created_at,
		updated_at
	FROM schedule WHERE package_id = uuid_to_bin(?) ORDER BY from_date ASC;
	`
	var schedules []domain.Schedule
	if err := r.db.SelectContext(ctx, &schedules, query, packageID); err != nil {
		return nil, fmt.Errorf("select schedules by package failed: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) GetPage(ctx context.Context, limit, offset int) ([]domain.Schedule, error) {
	const query = `
	SELECT
		bin_to_uuid(id) as id,
		bin_to_uuid(package_id) as package_id,
		title,
		from_date,
		to_date,
		amount,
		description,
		photo_keys,
		created_at,
		updated_at
	FROM schedule
	ORDER BY from_date ASC
	LIMIT ? OFFSET ?;
	`
	var schedules []domain.Schedule
	if err := r.db.SelectContext(ctx, &schedules, query, limit, offset); err != nil {
		return nil, fmt.Errorf("select schedule page failed: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM schedule;`
	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("count schedules failed: %w", err)
	}
	return count, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.Schedule) error {
	const query = `
	UPDATE schedule
	SET
		package_id = uuid_to_bin(?),
		title = ?,
		from_date = ?,
		to_date = ?,
		amount = ?,
		description = ?,
		photo_keys = ?,
		updated_at = NOW()
	WHERE id = uuid_to_bin(?);
	`
	_, err := r.db.ExecContext(ctx, query,
		schedule.PackageID,
		schedule.Title,
		schedule.FromDate,
		schedule.ToDate,
		schedule.Amount,
		schedule.Description,
		schedule.PhotoKeys,
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("db update schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `
	DELETE FROM schedule WHERE id = uuid_to_bin(?);
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete schedule: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db delete schedule: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
