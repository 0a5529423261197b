package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/pkg/logger"
)

type ScheduleInput struct {
	Title       string
	FromDate    time.Time
	ToDate      time.Time
	Amount      float64
	Description string
}

type CreateScheduleInput struct {
	ScheduleInput
	PackageID uuid.UUID
	PhotoKeys []string
}

type UpdateScheduleInput struct {
	ScheduleInput
	NewPhotoKeys    []string
	DeletePhotoKeys []string
}

// ScheduleDetails enriches a schedule with its owning package's full
// record; a dangling reference yields a nil package and the sentinel title.
type ScheduleDetails struct {
	ScheduleWithPhotos
	Package      *domain.Package `json:"package,omitempty"`
	PackageTitle string          `json:"package_title"`
}

type scheduleService struct {
	scheduleRepository repository.Schedules
	packageRepository  repository.Packages
	photos             photoManager
}

func newScheduleService(
	scheduleRepository repository.Schedules,
	packageRepository repository.Packages,
	photos photoManager,
) *scheduleService {
	return &scheduleService{
		scheduleRepository: scheduleRepository,
		packageRepository:  packageRepository,
		photos:             photos,
	}
}

// validateScheduleInput runs before any persistence or storage call; a bad
// date range must cause zero downstream effects.
func validateScheduleInput(input ScheduleInput) (string, bool) {
	if strings.TrimSpace(input.Title) == "" {
		return "schedule title is required", false
	}
	if input.FromDate.After(input.ToDate) {
		return "from date must not be after to date", false
	}
	if input.Amount < 0 {
		return "amount must not be negative", false
	}
	return "", true
}

func (s *scheduleService) Create(ctx context.Context, input CreateScheduleInput) Result[ScheduleWithPhotos] {
	if msg, ok := validateScheduleInput(input.ScheduleInput); !ok {
		return fail[ScheduleWithPhotos](http.StatusBadRequest, msg)
	}

	if _, err := s.packageRepository.GetByID(ctx, input.PackageID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[ScheduleWithPhotos](http.StatusNotFound, "package not found")
		}
		logger.Error("schedule package check failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	schedule := &domain.Schedule{
		ID:          uuid.New(),
		PackageID:   input.PackageID,
		Title:       strings.TrimSpace(input.Title),
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		PhotoKeys:   input.PhotoKeys,
	}
	if err := s.scheduleRepository.Create(ctx, schedule); err != nil {
		logger.Error("schedule create failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	created, err := s.scheduleRepository.GetByID(ctx, schedule.ID)
	if err != nil {
		logger.Error("schedule reload after create failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	urls, err := s.photos.presignAll(ctx, created.PhotoKeys)
	if err != nil {
		logger.Error("schedule photo presign failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	return succeed(http.StatusCreated, "schedule created", ScheduleWithPhotos{
		Schedule:  *created,
		PhotoURLs: urls,
	})
}

func (s *scheduleService) Update(ctx context.Context, id uuid.UUID, input UpdateScheduleInput) Result[ScheduleWithPhotos] {
	if msg, ok := validateScheduleInput(input.ScheduleInput); !ok {
		return fail[ScheduleWithPhotos](http.StatusBadRequest, msg)
	}

	schedule, err := s.scheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[ScheduleWithPhotos](http.StatusNotFound, "schedule not found")
		}
		logger.Error("schedule load failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	deleteKeys := ownedOnly(schedule.PhotoKeys, input.DeletePhotoKeys)
	s.photos.removeAll(ctx, deleteKeys)

	schedule.Title = strings.TrimSpace(input.Title)
	schedule.FromDate = input.FromDate
	schedule.ToDate = input.ToDate
	schedule.Amount = input.Amount
	schedule.Description = strings.TrimSpace(input.Description)
	schedule.PhotoKeys = mergeKeys(schedule.PhotoKeys, deleteKeys, input.NewPhotoKeys)

	if err := s.scheduleRepository.Update(ctx, schedule); err != nil {
		logger.Error("schedule update failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	updated, err := s.scheduleRepository.GetByID(ctx, id)
	if err != nil {
		logger.Error("schedule reload after update failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	urls, err := s.photos.presignAll(ctx, updated.PhotoKeys)
	if err != nil {
		logger.Error("schedule photo presign failed", zap.Error(err))
		return internalError[ScheduleWithPhotos]()
	}

	return succeed(http.StatusOK, "schedule updated", ScheduleWithPhotos{
		Schedule:  *updated,
		PhotoURLs: urls,
	})
}

func (s *scheduleService) Delete(ctx context.Context, id uuid.UUID) Result[struct{}] {
	schedule, err := s.scheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "schedule not found")
		}
		logger.Error("schedule load failed", zap.Error(err))
		return internalError[struct{}]()
	}

	s.photos.removeAll(ctx, schedule.PhotoKeys)

	if err := s.scheduleRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "schedule not found")
		}
		logger.Error("schedule delete failed", zap.Error(err))
		return internalError[struct{}]()
	}

	return succeed(http.StatusOK, "schedule deleted", struct{}{})
}

func (s *scheduleService) GetByID(ctx context.Context, id uuid.UUID) Result[ScheduleDetails] {
	schedule, err := s.scheduleRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[ScheduleDetails](http.StatusNotFound, "schedule not found")
		}
		logger.Error("schedule load failed", zap.Error(err))
		return internalError[ScheduleDetails]()
	}

	var (
		urls []string
		pkg  *domain.Package
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var presignErr error
		urls, presignErr = s.photos.presignAll(gCtx, schedule.PhotoKeys)
		return presignErr
	})
	g.Go(func() error {
		loaded, loadErr := s.packageRepository.GetByID(gCtx, schedule.PackageID)
		if loadErr != nil {
			if !errors.Is(loadErr, domain.ErrNotFound) {
				logger.Warn("schedule package lookup failed",
					zap.String("package_id", schedule.PackageID.String()), zap.Error(loadErr))
			}
			return nil
		}
		pkg = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("schedule enrichment failed", zap.Error(err))
		return internalError[ScheduleDetails]()
	}

	packageTitle := sentinelUnknownPackage
	if pkg != nil {
		packageTitle = pkg.Title
	}

	return succeed(http.StatusOK, "schedule fetched", ScheduleDetails{
		ScheduleWithPhotos: ScheduleWithPhotos{
			Schedule:  *schedule,
			PhotoURLs: urls,
		},
		Package:      pkg,
		PackageTitle: packageTitle,
	})
}

func (s *scheduleService) GetByPackage(ctx context.Context, packageID uuid.UUID) Result[[]ScheduleWithPhotos] {
	schedules, err := s.scheduleRepository.GetByPackage(ctx, packageID)
	if err != nil {
		logger.Error("schedule list by package failed", zap.Error(err))
		return internalError[[]ScheduleWithPhotos]()
	}

	enriched, err := s.enrichAll(ctx, schedules)
	if err != nil {
		return internalError[[]ScheduleWithPhotos]()
	}

	return succeed(http.StatusOK, "schedules fetched", enriched)
}

func (s *scheduleService) GetAll(ctx context.Context, page, limit int) Result[Page[ScheduleWithPhotos]] {
	page, limit = normalizePaging(page, limit)

	totalCount, err := s.scheduleRepository.Count(ctx)
	if err != nil {
		logger.Error("schedule count failed", zap.Error(err))
		return internalError[Page[ScheduleWithPhotos]]()
	}

	schedules, err := s.scheduleRepository.GetPage(ctx, limit, (page-1)*limit)
	if err != nil {
		logger.Error("schedule page load failed", zap.Error(err))
		return internalError[Page[ScheduleWithPhotos]]()
	}

	enriched, err := s.enrichAll(ctx, schedules)
	if err != nil {
		return internalError[Page[ScheduleWithPhotos]]()
	}

	return succeed(http.StatusOK, "schedules fetched", newPage(enriched, totalCount, page, limit))
}

func (s *scheduleService) enrichAll(ctx context.Context, schedules []domain.Schedule) ([]ScheduleWithPhotos, error) {
	enriched := make([]ScheduleWithPhotos, 0, len(schedules))
	for _, schedule := range schedules {
		urls, err := s.photos.presignAll(ctx, schedule.PhotoKeys)
		if err != nil {
			logger.Error("schedule photo presign failed", zap.Error(err))
			return nil, err
		}
		enriched = append(enriched, ScheduleWithPhotos{
			Schedule:  schedule,
			PhotoURLs: urls,
		})
	}
	return enriched, nil
}
