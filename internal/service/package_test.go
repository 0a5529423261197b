package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tourhub/backend/internal/domain"
)

func newPackageFixture() (*packageService, *memPackages, *memCountries, *memCities, *fakeStorage) {
	packages := newMemPackages()
	schedules := newMemSchedules()
	countries := newMemCountries()
	cities := newMemCities()
	store := &fakeStorage{presignErrs: map[string]error{}, removeErrs: map[string]error{}}
	svc := newPackageService(packages, schedules, countries, cities, photoManager{storage: store})
	return svc, packages, countries, cities, store
}

func seedPackage(t *testing.T, packages *memPackages, keys ...string) domain.Package {
	t.Helper()
	pkg := domain.Package{
		ID:            uuid.New(),
		Title:         "Island Hopping",
		SourceCountry: uuid.New(),
		SourceCity:    uuid.New(),
		DestCountry:   uuid.New(),
		DestCity:      uuid.New(),
		PhotoKeys:     keys,
	}
	require.NoError(t, packages.Create(context.Background(), &pkg))
	return pkg
}

func TestCreatePackage_EmptyTitle(t *testing.T) {
	svc, packages, _, _, _ := newPackageFixture()

	res := svc.Create(context.Background(), CreatePackageInput{})

	require.False(t, res.Success)
	require.Equal(t, http.StatusBadRequest, res.Status)
	require.Zero(t, packages.createCalls)
}

func TestCreatePackage_PresignsUploadedKeys(t *testing.T) {
	svc, _, _, _, _ := newPackageFixture()

	res := svc.Create(context.Background(), CreatePackageInput{
		PackageInput: PackageInput{Title: "Island Hopping"},
		PhotoKeys:    []string{"packages/a.jpg", "packages/b.jpg"},
	})

	require.True(t, res.Success)
	require.Equal(t, http.StatusCreated, res.Status)
	require.Equal(t, []string{
		"https://cdn.test/packages/a.jpg",
		"https://cdn.test/packages/b.jpg",
	}, res.Data.PhotoURLs)
}

func TestUpdatePackage_MergesPhotoKeys(t *testing.T) {
	svc, packages, _, _, store := newPackageFixture()
	pkg := seedPackage(t, packages, "k1", "k2", "k3")

	res := svc.Update(context.Background(), pkg.ID, UpdatePackageInput{
		PackageInput:    PackageInput{Title: "Island Hopping"},
		NewPhotoKeys:    []string{"k4"},
		DeletePhotoKeys: []string{"k2"},
	})

	require.True(t, res.Success)
	require.Equal(t, domain.StringList{"k1", "k3", "k4"}, res.Data.PhotoKeys)
	require.Equal(t, []string{"k2"}, store.removedKeys())
}

func TestUpdatePackage_DeleteEverything(t *testing.T) {
	svc, packages, _, _, _ := newPackageFixture()
	pkg := seedPackage(t, packages, "k1", "k2")

	res := svc.Update(context.Background(), pkg.ID, UpdatePackageInput{
		PackageInput:    PackageInput{Title: "Island Hopping"},
		DeletePhotoKeys: []string{"k1", "k2"},
	})

	require.True(t, res.Success)
	require.Empty(t, res.Data.PhotoKeys)
	require.Empty(t, res.Data.PhotoURLs)
}

func TestUpdatePackage_IgnoresForeignDeleteKeys(t *testing.T) {
	svc, packages, _, _, store := newPackageFixture()
	pkg := seedPackage(t, packages, "k1", "k2")

	res := svc.Update(context.Background(), pkg.ID, UpdatePackageInput{
		PackageInput:    PackageInput{Title: "Island Hopping"},
		DeletePhotoKeys: []string{"k2", "other-owner/photo.jpg"},
	})

	// a key the package does not own must never reach storage
	require.True(t, res.Success)
	require.Equal(t, []string{"k2"}, store.removedKeys())
	require.Equal(t, domain.StringList{"k1"}, res.Data.PhotoKeys)
}

func TestUpdatePackage_RemoveFailureIsBestEffort(t *testing.T) {
	svc, packages, _, _, store := newPackageFixture()
	pkg := seedPackage(t, packages, "k1", "k2")
	store.removeErrs["k2"] = errors.New("storage unavailable")

	res := svc.Update(context.Background(), pkg.ID, UpdatePackageInput{
		PackageInput:    PackageInput{Title: "Island Hopping"},
		DeletePhotoKeys: []string{"k2"},
	})

	// the object dangles in storage but the update still succeeds and the
	// key leaves the package
	require.True(t, res.Success)
	require.Equal(t, domain.StringList{"k1"}, res.Data.PhotoKeys)
}

func TestUpdatePackage_NotFound(t *testing.T) {
	svc, _, _, _, _ := newPackageFixture()

	res := svc.Update(context.Background(), uuid.New(), UpdatePackageInput{
		PackageInput: PackageInput{Title: "Island Hopping"},
	})

	require.False(t, res.Success)
	require.Equal(t, http.StatusNotFound, res.Status)
}

func TestDeletePackage_RemovesPhotosBestEffort(t *testing.T) {
	svc, packages, _, _, store := newPackageFixture()
	pkg := seedPackage(t, packages, "k1", "k2", "k3")
	store.removeErrs["k2"] = errors.New("storage unavailable")

	res := svc.Delete(context.Background(), pkg.ID)

	require.True(t, res.Success)
	require.Equal(t, http.StatusOK, res.Status)
	require.Equal(t, []string{"k1", "k3"}, store.removedKeys())

	_, err := packages.GetByID(context.Background(), pkg.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPackageByID_SentinelLocationNames(t *testing.T) {
	svc, packages, _, _, _ := newPackageFixture()
	pkg := seedPackage(t, packages)

	res := svc.GetByID(context.Background(), pkg.ID)

	require.True(t, res.Success)
	require.Equal(t, sentinelUnknownCountry, res.Data.SourceCountryName)
	require.Equal(t, sentinelUnknownCity, res.Data.SourceCityName)
	require.Equal(t, sentinelUnknownCountry, res.Data.DestCountryName)
	require.Equal(t, sentinelUnknownCity, res.Data.DestCityName)
}

func TestGetPackageByID_ResolvesLocationNames(t *testing.T) {
	svc, packages, countries, cities, _ := newPackageFixture()
	pkg := seedPackage(t, packages)

	require.NoError(t, countries.Create(context.Background(), &domain.Country{ID: pkg.SourceCountry, Name: "France"}))
	require.NoError(t, cities.Create(context.Background(), &domain.City{ID: pkg.DestCity, CountryID: pkg.DestCountry, Name: "tokyo"}))

	res := svc.GetByID(context.Background(), pkg.ID)

	require.True(t, res.Success)
	require.Equal(t, "France", res.Data.SourceCountryName)
	require.Equal(t, "tokyo", res.Data.DestCityName)
	require.Equal(t, sentinelUnknownCountry, res.Data.DestCountryName)
}

func TestGetPackageByID_PresignFailureFails(t *testing.T) {
	svc, packages, _, _, store := newPackageFixture()
	pkg := seedPackage(t, packages, "k1")
	store.presignErrs["k1"] = errors.New("storage unavailable")

	res := svc.GetByID(context.Background(), pkg.ID)

	require.False(t, res.Success)
	require.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestGetPackageByID_PhotoURLsPositional(t *testing.T) {
	svc, packages, _, _, _ := newPackageFixture()
	pkg := seedPackage(t, packages, "b.jpg", "a.jpg", "c.jpg")

	res := svc.GetByID(context.Background(), pkg.ID)

	require.True(t, res.Success)
	require.Equal(t, []string{
		"https://cdn.test/b.jpg",
		"https://cdn.test/a.jpg",
		"https://cdn.test/c.jpg",
	}, res.Data.PhotoURLs)
}

func TestGetPackagesFull_ResolvesLocationNames(t *testing.T) {
	svc, packages, countries, cities, _ := newPackageFixture()
	pkg := seedPackage(t, packages, "k1")

	require.NoError(t, countries.Create(context.Background(), &domain.Country{ID: pkg.SourceCountry, Name: "Japan"}))
	require.NoError(t, cities.Create(context.Background(), &domain.City{ID: pkg.SourceCity, CountryID: pkg.SourceCountry, Name: "osaka"}))

	res := svc.GetAllFull(context.Background())

	require.True(t, res.Success)
	require.Len(t, res.Data, 1)
	require.Equal(t, "Japan", res.Data[0].SourceCountryName)
	require.Equal(t, "osaka", res.Data[0].SourceCityName)
	require.Equal(t, sentinelUnknownCountry, res.Data[0].DestCountryName)
	require.Equal(t, []string{"https://cdn.test/k1"}, res.Data[0].PhotoURLs)
}

func TestGetPackages_SlicesBeforeEnrichment(t *testing.T) {
	svc, packages, _, _, store := newPackageFixture()
	for _, title := range []string{"Alpha", "Bravo", "Charlie"} {
		pkg := domain.Package{ID: uuid.New(), Title: title, PhotoKeys: []string{"photos/" + title}}
		require.NoError(t, packages.Create(context.Background(), &pkg))
	}

	res := svc.GetAll(context.Background(), 1, 2)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 2)
	require.Equal(t, int64(3), res.Data.TotalCount)
	require.Equal(t, int64(2), res.Data.TotalPages)
	// only the two packages on the page were presigned
	require.Len(t, store.presigned, 2)
}
