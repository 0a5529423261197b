package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/queue/client"
	"github.com/tourhub/backend/internal/queue/task"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/pkg/logger"
)

type CreateEnquiryInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PackageID  *uuid.UUID
	ScheduleID *uuid.UUID
}

// EnquiryListItem carries the resolved titles of the referenced package and
// schedule. Dangling references degrade to sentinels, never to failures.
type EnquiryListItem struct {
	domain.Enquiry
	PackageTitle  string  `json:"package_title"`
	ScheduleTitle *string `json:"schedule_title,omitempty"`
}

type enquiryService struct {
	enquiryRepository  repository.Enquiries
	packageRepository  repository.Packages
	scheduleRepository repository.Schedules
	emailConfig        config.EmailConfig
}

func newEnquiryService(
	enquiryRepository repository.Enquiries,
	packageRepository repository.Packages,
	scheduleRepository repository.Schedules,
	emailConfig config.EmailConfig,
) *enquiryService {
	return &enquiryService{
		enquiryRepository:  enquiryRepository,
		packageRepository:  packageRepository,
		scheduleRepository: scheduleRepository,
		emailConfig:        emailConfig,
	}
}

func (s *enquiryService) Create(ctx context.Context, input CreateEnquiryInput) Result[domain.Enquiry] {
	enquiry := &domain.Enquiry{
		ID:         uuid.New(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		PackageID:  input.PackageID,
		ScheduleID: input.ScheduleID,
	}
	if err := s.enquiryRepository.Create(ctx, enquiry); err != nil {
		logger.Error("enquiry create failed", zap.Error(err))
		return internalError[domain.Enquiry]()
	}

	created, err := s.enquiryRepository.GetByID(ctx, enquiry.ID)
	if err != nil {
		logger.Error("enquiry reload after create failed", zap.Error(err))
		return internalError[domain.Enquiry]()
	}

	s.notifyAdmin(ctx, created)

	return succeed(http.StatusCreated, "enquiry created", *created)
}

// notifyAdmin enqueues the notification email best-effort: a broken queue
// never fails the enquiry itself.
func (s *enquiryService) notifyAdmin(ctx context.Context, enquiry *domain.Enquiry) {
	if !s.emailConfig.Enabled {
		return
	}

	queueClient := client.GetClient(ctx)
	if queueClient == nil {
		return
	}

	packageTitle := s.packageTitle(ctx, enquiry.PackageID)
	notifyTask, err := task.NewEnquiryReceivedTask(enquiry.ID, enquiry.Name, enquiry.Email, packageTitle)
	if err != nil {
		logger.Error("enquiry notification task build failed", zap.Error(err))
		return
	}

	if _, err := queueClient.EnqueueContext(ctx, notifyTask); err != nil {
		logger.Error("enquiry notification enqueue failed", zap.Error(err))
	}
}

func (s *enquiryService) GetByID(ctx context.Context, id uuid.UUID) Result[domain.Enquiry] {
	enquiry, err := s.enquiryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[domain.Enquiry](http.StatusNotFound, "enquiry not found")
		}
		logger.Error("enquiry load failed", zap.Error(err))
		return internalError[domain.Enquiry]()
	}

	return succeed(http.StatusOK, "enquiry fetched", *enquiry)
}

func (s *enquiryService) GetAll(ctx context.Context, page, limit int) Result[Page[EnquiryListItem]] {
	page, limit = normalizePaging(page, limit)

	totalCount, err := s.enquiryRepository.Count(ctx)
	if err != nil {
		logger.Error("enquiry count failed", zap.Error(err))
		return internalError[Page[EnquiryListItem]]()
	}

	enquiries, err := s.enquiryRepository.GetPage(ctx, limit, (page-1)*limit)
	if err != nil {
		logger.Error("enquiry page load failed", zap.Error(err))
		return internalError[Page[EnquiryListItem]]()
	}

	items := make([]EnquiryListItem, 0, len(enquiries))
	for _, enquiry := range enquiries {
		items = append(items, EnquiryListItem{
			Enquiry:       enquiry,
			PackageTitle:  s.packageTitle(ctx, enquiry.PackageID),
			ScheduleTitle: s.scheduleTitle(ctx, enquiry.ScheduleID),
		})
	}

	return succeed(http.StatusOK, "enquiries fetched", newPage(items, totalCount, page, limit))
}

func (s *enquiryService) Delete(ctx context.Context, id uuid.UUID) Result[struct{}] {
	if err := s.enquiryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "enquiry not found")
		}
		logger.Error("enquiry delete failed", zap.Error(err))
		return internalError[struct{}]()
	}

	return succeed(http.StatusOK, "enquiry deleted", struct{}{})
}

func (s *enquiryService) packageTitle(ctx context.Context, id *uuid.UUID) string {
	if id == nil {
		return sentinelUnknownPackage
	}

	pkg, err := s.packageRepository.GetByID(ctx, *id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("enquiry package lookup failed", zap.String("id", id.String()), zap.Error(err))
		}
		return sentinelUnknownPackage
	}
	return pkg.Title
}

// scheduleTitle is nil when the enquiry has no schedule reference or the
// reference dangles.
func (s *enquiryService) scheduleTitle(ctx context.Context, id *uuid.UUID) *string {
	if id == nil {
		return nil
	}

	schedule, err := s.scheduleRepository.GetByID(ctx, *id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("enquiry schedule lookup failed", zap.String("id", id.String()), zap.Error(err))
		}
		return nil
	}
	return &schedule.Title
}
