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

type CreateBannerInput struct {
	Title    string
	PhotoKey string
	Active   bool
}

type BannerWithPhoto struct {
	domain.Banner
	PhotoURL string `json:"photo_url"`
}

type bannerService struct {
	bannerRepository repository.Banners
	photos           photoManager
}

func newBannerService(bannerRepository repository.Banners, photos photoManager) *bannerService {
	return &bannerService{
		bannerRepository: bannerRepository,
		photos:           photos,
	}
}

func (s *bannerService) Create(ctx context.Context, input CreateBannerInput) Result[BannerWithPhoto] {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return fail[BannerWithPhoto](http.StatusBadRequest, "banner title is required")
	}
	if input.PhotoKey == "" {
		return fail[BannerWithPhoto](http.StatusBadRequest, "banner photo is required")
	}

	banner := &domain.Banner{
		ID:       uuid.New(),
		Title:    title,
		PhotoKey: input.PhotoKey,
		Active:   input.Active,
	}
	if err := s.bannerRepository.Create(ctx, banner); err != nil {
		logger.Error("banner create failed", zap.Error(err))
		return internalError[BannerWithPhoto]()
	}

	created, err := s.bannerRepository.GetByID(ctx, banner.ID)
	if err != nil {
		logger.Error("banner reload after create failed", zap.Error(err))
		return internalError[BannerWithPhoto]()
	}

	urls, err := s.photos.presignAll(ctx, []string{created.PhotoKey})
	if err != nil {
		logger.Error("banner photo presign failed", zap.Error(err))
		return internalError[BannerWithPhoto]()
	}

	return succeed(http.StatusCreated, "banner created", BannerWithPhoto{
		Banner:   *created,
		PhotoURL: urls[0],
	})
}

func (s *bannerService) GetAll(ctx context.Context) Result[[]BannerWithPhoto] {
	banners, err := s.bannerRepository.GetActive(ctx)
	if err != nil {
		logger.Error("banner list failed", zap.Error(err))
		return internalError[[]BannerWithPhoto]()
	}

	items := make([]BannerWithPhoto, 0, len(banners))
	for _, banner := range banners {
		urls, err := s.photos.presignAll(ctx, []string{banner.PhotoKey})
		if err != nil {
			logger.Error("banner photo presign failed", zap.Error(err))
			return internalError[[]BannerWithPhoto]()
		}
		items = append(items, BannerWithPhoto{
			Banner:   banner,
			PhotoURL: urls[0],
		})
	}

	return succeed(http.StatusOK, "banners fetched", items)
}

func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) Result[struct{}] {
	banner, err := s.bannerRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "banner not found")
		}
		logger.Error("banner load failed", zap.Error(err))
		return internalError[struct{}]()
	}

	s.photos.removeAll(ctx, []string{banner.PhotoKey})

	if err := s.bannerRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "banner not found")
		}
		logger.Error("banner delete failed", zap.Error(err))
		return internalError[struct{}]()
	}

	return succeed(http.StatusOK, "banner deleted", struct{}{})
}
