package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/pkg/logger"
)

type countryService struct {
	countryRepository repository.Countries
}

func newCountryService(countryRepository repository.Countries) *countryService {
	return &countryService{
		countryRepository: countryRepository,
	}
}

func (s *countryService) Create(ctx context.Context, name string) Result[domain.Country] {
	name = strings.TrimSpace(name)
	if name == "" {
		return fail[domain.Country](http.StatusBadRequest, "country name is required")
	}

	// Exact-name lookup; country uniqueness is case-sensitive.
	_, err := s.countryRepository.GetByName(ctx, name)
	if err == nil {
		return fail[domain.Country](http.StatusConflict, "country already exists")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logger.Error("country duplicate check failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	country := &domain.Country{ID: uuid.New(), Name: name}
	if err := s.countryRepository.Create(ctx, country); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return fail[domain.Country](http.StatusConflict, "country already exists")
		}
		logger.Error("country create failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	created, err := s.countryRepository.GetByID(ctx, country.ID)
	if err != nil {
		logger.Error("country reload after create failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	return succeed(http.StatusCreated, "country created", *created)
}

func (s *countryService) GetAll(ctx context.Context, page, limit int) Result[Page[domain.Country]] {
	page, limit = normalizePaging(page, limit)

	totalCount, err := s.countryRepository.Count(ctx)
	if err != nil {
		logger.Error("country count failed", zap.Error(err))
		return internalError[Page[domain.Country]]()
	}

	countries, err := s.countryRepository.GetPage(ctx, limit, (page-1)*limit)
	if err != nil {
		logger.Error("country page load failed", zap.Error(err))
		return internalError[Page[domain.Country]]()
	}

	return succeed(http.StatusOK, "countries fetched", newPage(countries, totalCount, page, limit))
}

func (s *countryService) GetAllAlphabetical(ctx context.Context) Result[[]domain.Country] {
	countries, err := s.countryRepository.GetAllAlphabetical(ctx)
	if err != nil {
		logger.Error("country list failed", zap.Error(err))
		return internalError[[]domain.Country]()
	}
	if countries == nil {
		countries = []domain.Country{}
	}

	return succeed(http.StatusOK, "countries fetched", countries)
}

func (s *countryService) Update(ctx context.Context, id uuid.UUID, name string) Result[domain.Country] {
	name = strings.TrimSpace(name)
	if name == "" {
		return fail[domain.Country](http.StatusBadRequest, "country name is required")
	}

	country, err := s.countryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[domain.Country](http.StatusNotFound, "country not found")
		}
		logger.Error("country load failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	duplicate, err := s.countryRepository.GetByName(ctx, name)
	if err == nil && duplicate.ID != country.ID {
		return fail[domain.Country](http.StatusConflict, "country already exists")
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error("country duplicate check failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	country.Name = name
	if err := s.countryRepository.Update(ctx, country); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return fail[domain.Country](http.StatusConflict, "country already exists")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return fail[domain.Country](http.StatusNotFound, "country not found")
		}
		logger.Error("country update failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	updated, err := s.countryRepository.GetByID(ctx, id)
	if err != nil {
		logger.Error("country reload after update failed", zap.Error(err))
		return internalError[domain.Country]()
	}

	return succeed(http.StatusOK, "country updated", *updated)
}

func (s *countryService) Delete(ctx context.Context, id uuid.UUID) Result[struct{}] {
	if err := s.countryRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "country not found")
		}
		logger.Error("country delete failed", zap.Error(err))
		return internalError[struct{}]()
	}

	return succeed(http.StatusOK, "country deleted", struct{}{})
}
