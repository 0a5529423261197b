package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/pkg/logger"
)

// Sentinels substituted when a related record cannot be resolved, keeping
// read-side enrichment non-fatal.
const (
	sentinelUnknownCountry = "Unknown Country"
	sentinelUnknownCity    = "Unknown City"
	sentinelUnknownPackage = "Unknown Package"
)

type PackageInput struct {
	Title         string
	Description   string
	Terms         []string
	SourceCountry uuid.UUID
	SourceCity    uuid.UUID
	DestCountry   uuid.UUID
	DestCity      uuid.UUID
}

type CreatePackageInput struct {
	PackageInput
	// PhotoKeys are already uploaded by the presentation layer; the
	// workflow persists them verbatim.
	PhotoKeys []string
}

type UpdatePackageInput struct {
	PackageInput
	NewPhotoKeys    []string
	DeletePhotoKeys []string
}

// PackageWithPhotos pairs the persisted entity with presigned retrieval
// URLs, positionally parallel to PhotoKeys.
type PackageWithPhotos struct {
	domain.Package
	PhotoURLs []string `json:"photo_urls"`
}

type PackageListItem struct {
	PackageWithPhotos
	SourceCountryName string `json:"source_country_name"`
	SourceCityName    string `json:"source_city_name"`
	DestCountryName   string `json:"dest_country_name"`
	DestCityName      string `json:"dest_city_name"`
}

type ScheduleWithPhotos struct {
	domain.Schedule
	PhotoURLs []string `json:"photo_urls"`
}

type PackageDetails struct {
	PackageListItem
	Schedules []ScheduleWithPhotos `json:"schedules"`
}

type packageService struct {
	packageRepository  repository.Packages
	scheduleRepository repository.Schedules
	countryRepository  repository.Countries
	cityRepository     repository.Cities
	photos             photoManager
}

func newPackageService(
	packageRepository repository.Packages,
	scheduleRepository repository.Schedules,
	countryRepository repository.Countries,
	cityRepository repository.Cities,
	photos photoManager,
) *packageService {
	return &packageService{
		packageRepository:  packageRepository,
		scheduleRepository: scheduleRepository,
		countryRepository:  countryRepository,
		cityRepository:     cityRepository,
		photos:             photos,
	}
}

// Create persists a package referencing already-uploaded photo keys and
// returns it with freshly presigned URLs. Duplicate titles are allowed.
func (s *packageService) Create(ctx context.Context, input CreatePackageInput) Result[PackageWithPhotos] {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return fail[PackageWithPhotos](http.StatusBadRequest, "package title is required")
	}

	pkg := &domain.Package{
		ID:            uuid.New(),
		Title:         title,
		Description:   input.Description,
		Terms:         input.Terms,
		SourceCountry: input.SourceCountry,
		SourceCity:    input.SourceCity,
		DestCountry:   input.DestCountry,
		DestCity:      input.DestCity,
		PhotoKeys:     input.PhotoKeys,
	}
	if err := s.packageRepository.Create(ctx, pkg); err != nil {
		logger.Error("package create failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	created, err := s.packageRepository.GetByID(ctx, pkg.ID)
	if err != nil {
		logger.Error("package reload after create failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	urls, err := s.photos.presignAll(ctx, created.PhotoKeys)
	if err != nil {
		logger.Error("package photo presign failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	return succeed(http.StatusCreated, "package created", PackageWithPhotos{
		Package:   *created,
		PhotoURLs: urls,
	})
}

// Update replaces the full field set. Photo keys listed for deletion are
// removed from storage best-effort, then the key list becomes
// (existing - deleted) ++ new, survivor order preserved.
func (s *packageService) Update(ctx context.Context, id uuid.UUID, input UpdatePackageInput) Result[PackageWithPhotos] {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return fail[PackageWithPhotos](http.StatusBadRequest, "package title is required")
	}

	pkg, err := s.packageRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[PackageWithPhotos](http.StatusNotFound, "package not found")
		}
		logger.Error("package load failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	deleteKeys := ownedOnly(pkg.PhotoKeys, input.DeletePhotoKeys)
	s.photos.removeAll(ctx, deleteKeys)

	pkg.Title = title
	pkg.Description = input.Description
	pkg.Terms = input.Terms
	pkg.SourceCountry = input.SourceCountry
	pkg.SourceCity = input.SourceCity
	pkg.DestCountry = input.DestCountry
	pkg.DestCity = input.DestCity
	pkg.PhotoKeys = mergeKeys(pkg.PhotoKeys, deleteKeys, input.NewPhotoKeys)

	if err := s.packageRepository.Update(ctx, pkg); err != nil {
		logger.Error("package update failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	updated, err := s.packageRepository.GetByID(ctx, id)
	if err != nil {
		logger.Error("package reload after update failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	urls, err := s.photos.presignAll(ctx, updated.PhotoKeys)
	if err != nil {
		logger.Error("package photo presign failed", zap.Error(err))
		return internalError[PackageWithPhotos]()
	}

	return succeed(http.StatusOK, "package updated", PackageWithPhotos{
		Package:   *updated,
		PhotoURLs: urls,
	})
}

// Delete removes every owned photo best-effort before deleting the row, so
// the database never references keys it no longer owns.
func (s *packageService) Delete(ctx context.Context, id uuid.UUID) Result[struct{}] {
	pkg, err := s.packageRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "package not found")
		}
		logger.Error("package load failed", zap.Error(err))
		return internalError[struct{}]()
	}

	s.photos.removeAll(ctx, pkg.PhotoKeys)

	if err := s.packageRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[struct{}](http.StatusNotFound, "package not found")
		}
		logger.Error("package delete failed", zap.Error(err))
		return internalError[struct{}]()
	}

	return succeed(http.StatusOK, "package deleted", struct{}{})
}

func (s *packageService) GetByID(ctx context.Context, id uuid.UUID) Result[PackageDetails] {
	pkg, err := s.packageRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[PackageDetails](http.StatusNotFound, "package not found")
		}
		logger.Error("package load failed", zap.Error(err))
		return internalError[PackageDetails]()
	}

	var (
		urls      []string
		schedules []domain.Schedule
		names     locationNames
	)

	// URL derivation, name resolution and schedule loading are independent;
	// only the per-schedule presigning below needs the schedule list.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var presignErr error
		urls, presignErr = s.photos.presignAll(gCtx, pkg.PhotoKeys)
		return presignErr
	})
	g.Go(func() error {
		var loadErr error
		schedules, loadErr = s.scheduleRepository.GetByPackage(gCtx, pkg.ID)
		return loadErr
	})
	g.Go(func() error {
		names = s.resolveLocations(gCtx, pkg)
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.Error("package enrichment failed", zap.Error(err))
		return internalError[PackageDetails]()
	}

	enriched := make([]ScheduleWithPhotos, 0, len(schedules))
	for _, schedule := range schedules {
		scheduleURLs, err := s.photos.presignAll(ctx, schedule.PhotoKeys)
		if err != nil {
			logger.Error("schedule photo presign failed", zap.Error(err))
			return internalError[PackageDetails]()
		}
		enriched = append(enriched, ScheduleWithPhotos{
			Schedule:  schedule,
			PhotoURLs: scheduleURLs,
		})
	}

	return succeed(http.StatusOK, "package fetched", PackageDetails{
		PackageListItem: listItem(*pkg, urls, names),
		Schedules:       enriched,
	})
}

// GetAll slices the collection by page before enrichment, so per-request
// work is bounded by limit regardless of collection size.
func (s *packageService) GetAll(ctx context.Context, page, limit int) Result[Page[PackageListItem]] {
	page, limit = normalizePaging(page, limit)

	packages, err := s.packageRepository.GetAll(ctx)
	if err != nil {
		logger.Error("package list failed", zap.Error(err))
		return internalError[Page[PackageListItem]]()
	}

	totalCount := int64(len(packages))
	start := (page - 1) * limit
	if start > len(packages) {
		start = len(packages)
	}
	end := start + limit
	if end > len(packages) {
		end = len(packages)
	}

	items, err := s.enrichAll(ctx, packages[start:end])
	if err != nil {
		return internalError[Page[PackageListItem]]()
	}

	return succeed(http.StatusOK, "packages fetched", newPage(items, totalCount, page, limit))
}

func (s *packageService) GetAllFull(ctx context.Context) Result[[]PackageListItem] {
	packages, err := s.packageRepository.GetAll(ctx)
	if err != nil {
		logger.Error("package list failed", zap.Error(err))
		return internalError[[]PackageListItem]()
	}

	items, err := s.enrichAll(ctx, packages)
	if err != nil {
		return internalError[[]PackageListItem]()
	}

	return succeed(http.StatusOK, "packages fetched", items)
}

func (s *packageService) enrichAll(ctx context.Context, packages []domain.Package) ([]PackageListItem, error) {
	items := make([]PackageListItem, 0, len(packages))
	for _, pkg := range packages {
		urls, err := s.photos.presignAll(ctx, pkg.PhotoKeys)
		if err != nil {
			logger.Error("package photo presign failed", zap.Error(err))
			return nil, err
		}
		items = append(items, listItem(pkg, urls, s.resolveLocations(ctx, &pkg)))
	}
	return items, nil
}

type locationNames struct {
	sourceCountry string
	sourceCity    string
	destCountry   string
	destCity      string
}

// resolveLocations substitutes sentinels for missing records and for lookup
// failures alike; a broken reference never fails the read.
func (s *packageService) resolveLocations(ctx context.Context, pkg *domain.Package) locationNames {
	var names locationNames

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		names.sourceCountry = s.countryName(gCtx, pkg.SourceCountry)
		return nil
	})
	g.Go(func() error {
		names.sourceCity = s.cityName(gCtx, pkg.SourceCity)
		return nil
	})
	g.Go(func() error {
		names.destCountry = s.countryName(gCtx, pkg.DestCountry)
		return nil
	})
	g.Go(func() error {
		names.destCity = s.cityName(gCtx, pkg.DestCity)
		return nil
	})
	//nolint:errcheck // lookups only produce sentinels, never errors
	g.Wait()

	return names
}

func (s *packageService) countryName(ctx context.Context, id uuid.UUID) string {
	country, err := s.countryRepository.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("country name lookup failed", zap.String("id", id.String()), zap.Error(err))
		}
		return sentinelUnknownCountry
	}
	return country.Name
}

func (s *packageService) cityName(ctx context.Context, id uuid.UUID) string {
	city, err := s.cityRepository.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("city name lookup failed", zap.String("id", id.String()), zap.Error(err))
		}
		return sentinelUnknownCity
	}
	return city.Name
}

func listItem(pkg domain.Package, urls []string, names locationNames) PackageListItem {
	return PackageListItem{
		PackageWithPhotos: PackageWithPhotos{
			Package:   pkg,
			PhotoURLs: urls,
		},
		SourceCountryName: names.sourceCountry,
		SourceCityName:    names.sourceCity,
		DestCountryName:   names.destCountry,
		DestCityName:      names.destCity,
	}
}
