package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/pkg/logger"
)

type cityService struct {
	cityRepository repository.Cities
}

func newCityService(cityRepository repository.Cities) *cityService {
	return &cityService{
		cityRepository: cityRepository,
	}
}

func (s *cityService) Create(ctx context.Context, name string, countryID uuid.UUID) Result[domain.City] {
	name = domain.NormalizeCityName(name)
	if name == "" {
		return fail[domain.City](http.StatusBadRequest, "city name is required")
	}

	_, err := s.cityRepository.GetByNameAndCountry(ctx, name, countryID)
	if err == nil {
		return fail[domain.City](http.StatusConflict, "city already exists in this country")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logger.Error("city duplicate check failed", zap.Error(err))
		return internalError[domain.City]()
	}

	city := &domain.City{ID: uuid.New(), CountryID: countryID, Name: name}
	if err := s.cityRepository.Create(ctx, city); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return fail[domain.City](http.StatusConflict, "city already exists in this country")
		}
		logger.Error("city create failed", zap.Error(err))
		return internalError[domain.City]()
	}

	created, err := s.cityRepository.GetByID(ctx, city.ID)
	if err != nil {
		logger.Error("city reload after create failed", zap.Error(err))
		return internalError[domain.City]()
	}

	return succeed(http.StatusCreated, "city created", *created)
}

func (s *cityService) GetAll(ctx context.Context, page, limit int) Result[Page[domain.City]] {
	page, limit = normalizePaging(page, limit)

	totalCount, err := s.cityRepository.Count(ctx)
	if err != nil {
		logger.Error("city count failed", zap.Error(err))
		return internalError[Page[domain.City]]()
	}

	cities, err := s.cityRepository.GetPage(ctx, limit, (page-1)*limit)
	if err != nil {
		logger.Error("city page load failed", zap.Error(err))
		return internalError[Page[domain.City]]()
	}

	return succeed(http.StatusOK, "cities fetched", newPage(cities, totalCount, page, limit))
}

func (s *cityService) GetAllAlphabetical(ctx context.Context) Result[[]domain.City] {
	cities, err := s.cityRepository.GetAllAlphabetical(ctx)
	if err != nil {
		logger.Error("city list failed", zap.Error(err))
		return internalError[[]domain.City]()
	}
	if cities == nil {
		cities = []domain.City{}
	}

	return succeed(http.StatusOK, "cities fetched", cities)
}

func (s *cityService) GetByCountry(ctx context.Context, countryID uuid.UUID) Result[[]domain.City] {
	cities, err := s.cityRepository.GetByCountry(ctx, countryID)
	if err != nil {
		logger.Error("city list by country failed", zap.Error(err))
		return internalError[[]domain.City]()
	}
	if cities == nil {
		cities = []domain.City{}
	}

	return succeed(http.StatusOK, "cities fetched", cities)
}

func (s *cityService) Update(ctx context.Context, id uuid.UUID, name string, countryID uuid.UUID) Result[domain.City] {
	name = domain.NormalizeCityName(name)
	if name == "" {
		return fail[domain.City](http.StatusBadRequest, "city name is required")
	}

	city, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[domain.City](http.StatusNotFound, "city not found")
		}
		logger.Error("city load failed", zap.Error(err))
		return internalError[domain.City]()
	}

	duplicate, err := s.cityRepository.GetByNameAndCountry(ctx, name, countryID)
	if err == nil && duplicate.ID != city.ID {
		return fail[domain.City](http.StatusConflict, "city already exists in this country")
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logger.Error("city duplicate check failed", zap.Error(err))
		return internalError[domain.City]()
	}

	city.Name = name
	city.CountryID = countryID
	if err := s.cityRepository.Update(ctx, city); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return fail[domain.City](http.StatusConflict, "city already exists in this country")
		}
		logger.Error("city update failed", zap.Error(err))
		return internalError[domain.City]()
	}

	updated, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		logger.Error("city reload after update failed", zap.Error(err))
		return internalError[domain.City]()
	}

	return succeed(http.StatusOK, "city updated", *updated)
}

func (s *cityService) Delete(ctx context.Context, id uuid.UUID) Result[struct{}] {
	if err := s.cityRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "city not found")
		}
		logger.Error("city delete failed", zap.Error(err))
		return internalError[struct{}]()
	}

	return succeed(http.StatusOK, "city deleted", struct{}{})
}
