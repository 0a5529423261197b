package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tourhub/backend/internal/cache"
	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/internal/storage"
	"github.com/tourhub/backend/pkg/auth"
	"github.com/tourhub/backend/pkg/hash"
)

type Services struct {
	Countries Countries
	Cities    Cities
	Packages  Packages
	Schedules Schedules
	Enquiries Enquiries
	Banners   Banners
	Admins    Admins
}

type Deps struct {
	Config       *config.Config
	Repos        *repository.Repositories
	Storage      storage.ObjectStorage
	PresignCache *cache.PresignCache
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
}

func NewServices(deps Deps) *Services {
	photos := photoManager{
		storage: deps.Storage,
		urls:    deps.PresignCache,
	}

	return &Services{
		Countries: newCountryService(deps.Repos.Countries),
		Cities:    newCityService(deps.Repos.Cities),
		Packages: newPackageService(
			deps.Repos.Packages,
			deps.Repos.Schedules,
			deps.Repos.Countries,
			deps.Repos.Cities,
			photos,
		),
		Schedules: newScheduleService(deps.Repos.Schedules, deps.Repos.Packages, photos),
		Enquiries: newEnquiryService(
			deps.Repos.Enquiries,
			deps.Repos.Packages,
			deps.Repos.Schedules,
			deps.Config.Email,
		),
		Banners: newBannerService(deps.Repos.Banners, photos),
		Admins:  newAdminService(deps.Repos.Admins, deps.Hasher, deps.TokenManager),
	}
}

type Countries interface {
	Create(ctx context.Context, name string) Result[domain.Country]
	GetAll(ctx context.Context, page, limit int) Result[Page[domain.Country]]
	GetAllAlphabetical(ctx context.Context) Result[[]domain.Country]
	Update(ctx context.Context, id uuid.UUID, name string) Result[domain.Country]
	Delete(ctx context.Context, id uuid.UUID) Result[struct{}]
}

type Cities interface {
	Create(ctx context.Context, name string, countryID uuid.UUID) Result[domain.City]
	GetAll(ctx context.Context, page, limit int) Result[Page[domain.City]]
	GetAllAlphabetical(ctx context.Context) Result[[]domain.City]
	GetByCountry(ctx context.Context, countryID uuid.UUID) Result[[]domain.City]
	Update(ctx context.Context, id uuid.UUID, name string, countryID uuid.UUID) Result[domain.City]
	Delete(ctx context.Context, id uuid.UUID) Result[struct{}]
}

type Packages interface {
	Create(ctx context.Context, input CreatePackageInput) Result[PackageWithPhotos]
	GetByID(ctx context.Context, id uuid.UUID) Result[PackageDetails]
	GetAll(ctx context.Context, page, limit int) Result[Page[PackageListItem]]
	GetAllFull(ctx context.Context) Result[[]PackageListItem]
	Update(ctx context.Context, id uuid.UUID, input UpdatePackageInput) Result[PackageWithPhotos]
	Delete(ctx context.Context, id uuid.UUID) Result[struct{}]
}

type Schedules interface {
	Create(ctx context.Context, input CreateScheduleInput) Result[ScheduleWithPhotos]
	GetByID(ctx context.Context, id uuid.UUID) Result[ScheduleDetails]
	GetByPackage(ctx context.Context, packageID uuid.UUID) Result[[]ScheduleWithPhotos]
	GetAll(ctx context.Context, page, limit int) Result[Page[ScheduleWithPhotos]]
	Update(ctx context.Context, id uuid.UUID, input UpdateScheduleInput) Result[ScheduleWithPhotos]
	Delete(ctx context.Context, id uuid.UUID) Result[struct{}]
}

type Enquiries interface {
	Create(ctx context.Context, input CreateEnquiryInput) Result[domain.Enquiry]
	GetByID(ctx context.Context, id uuid.UUID) Result[domain.Enquiry]
	GetAll(ctx context.Context, page, limit int) Result[Page[EnquiryListItem]]
	Delete(ctx context.Context, id uuid.UUID) Result[struct{}]
}

type Banners interface {
	Create(ctx context.Context, input CreateBannerInput) Result[BannerWithPhoto]
	GetAll(ctx context.Context) Result[[]BannerWithPhoto]
	Delete(ctx context.Context, id uuid.UUID) Result[struct{}]
}

type Admins interface {
	SignIn(ctx context.Context, email, password string) Result[Tokens]
	Refresh(ctx context.Context, refreshToken string) Result[Tokens]
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
}

type Tokens struct {
	AccessToken     string        `json:"access_token"`
	AccessTokenTTL  time.Duration `json:"-"`
	RefreshToken    string        `json:"refresh_token"`
	RefreshTokenTTL time.Duration `json:"-"`
}
