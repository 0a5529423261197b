package repository

import (
	"context"

	"github.com/tourhub/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Countries Countries
	Cities    Cities
	Packages  Packages
	Schedules Schedules
	Enquiries Enquiries
	Admins    Admins
	Banners   Banners
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Countries: newCountryRepository(db),
		Cities:    newCityRepository(db),
		Packages:  newPackageRepository(db),
		Schedules: newScheduleRepository(db),
		Enquiries: newEnquiryRepository(db),
		Admins:    newAdminRepository(db),
		Banners:   newBannerRepository(db),
	}
}

type Countries interface {
	Create(ctx context.Context, country *domain.Country) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Country, error)
	GetByName(ctx context.Context, name string) (*domain.Country, error)
	GetPage(ctx context.Context, limit, offset int) ([]domain.Country, error)
	GetAllAlphabetical(ctx context.Context) ([]domain.Country, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, country *domain.Country) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Cities interface {
	Create(ctx context.Context, city *domain.City) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error)
	GetByNameAndCountry(ctx context.Context, name string, countryID uuid.UUID) (*domain.City, error)
	GetByCountry(ctx context.Context, countryID uuid.UUID) ([]domain.City, error)
	GetPage(ctx context.Context, limit, offset int) ([]domain.City, error)
	GetAllAlphabetical(ctx context.Context) ([]domain.City, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, city *domain.City) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Packages interface {
	Create(ctx context.Context, pkg *domain.Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error)
	GetAll(ctx context.Context) ([]domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Schedules interface {
	Create(ctx context.Context, schedule *domain.Schedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error)
	GetByPackage(ctx context.Context, packageID uuid.UUID) ([]domain.Schedule, error)
	GetPage(ctx context.Context, limit, offset int) ([]domain.Schedule, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, schedule *domain.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Enquiries interface {
	Create(ctx context.Context, enquiry *domain.Enquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Enquiry, error)
	GetPage(ctx context.Context, limit, offset int) ([]domain.Enquiry, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Admins interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type Banners interface {
	Create(ctx context.Context, banner *domain.Banner) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Banner, error)
	GetActive(ctx context.Context) ([]domain.Banner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
