package service

import (
	"context"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/tourhub/backend/internal/domain"
)

// fakeStorage records presign and remove calls; errors are injected per key.
type fakeStorage struct {
	mu          sync.Mutex
	presigned   []string
	removed     []string
	presignErrs map[string]error
	removeErrs  map[string]error
}

func (f *fakeStorage) Upload(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	return key, nil
}

func (f *fakeStorage) PresignedURL(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.presignErrs[key]; err != nil {
		return "", err
	}
	f.presigned = append(f.presigned, key)
	return "https://cdn.test/" + key, nil
}

func (f *fakeStorage) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.removeErrs[key]; err != nil {
		return err
	}
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeStorage) removedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]string(nil), f.removed...)
	sort.Strings(out)
	return out
}

type memCountries struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Country
	errs  map[string]error // injected per operation name
}

func newMemCountries() *memCountries {
	return &memCountries{items: map[uuid.UUID]domain.Country{}, errs: map[string]error{}}
}

func (r *memCountries) Create(_ context.Context, country *domain.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errs["create"]; err != nil {
		return err
	}
	r.items[country.ID] = *country
	return nil
}

func (r *memCountries) GetByID(_ context.Context, id uuid.UUID) (*domain.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errs["getByID"]; err != nil {
		return nil, err
	}
	country, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &country, nil
}

func (r *memCountries) GetByName(_ context.Context, name string) (*domain.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, country := range r.items {
		if country.Name == name {
			out := country
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCountries) GetPage(_ context.Context, limit, offset int) ([]domain.Country, error) {
	all, err := r.GetAllAlphabetical(context.Background())
	if err != nil {
		return nil, err
	}
	if offset > len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memCountries) GetAllAlphabetical(_ context.Context) ([]domain.Country, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.Country, 0, len(r.items))
	for _, country := range r.items {
		all = append(all, country)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *memCountries) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memCountries) Update(_ context.Context, country *domain.Country) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[country.ID] = *country
	return nil
}

func (r *memCountries) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memCities struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.City
}

func newMemCities() *memCities {
	return &memCities{items: map[uuid.UUID]domain.City{}}
}

func (r *memCities) Create(_ context.Context, city *domain.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[city.ID] = *city
	return nil
}

func (r *memCities) GetByID(_ context.Context, id uuid.UUID) (*domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	city, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &city, nil
}

func (r *memCities) GetByNameAndCountry(_ context.Context, name string, countryID uuid.UUID) (*domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, city := range r.items {
		if city.Name == name && city.CountryID == countryID {
			out := city
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memCities) GetByCountry(_ context.Context, countryID uuid.UUID) ([]domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.City
	for _, city := range r.items {
		if city.CountryID == countryID {
			out = append(out, city)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCities) GetPage(_ context.Context, limit, offset int) ([]domain.City, error) {
	all, _ := r.GetAllAlphabetical(context.Background())
	if offset > len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memCities) GetAllAlphabetical(_ context.Context) ([]domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.City, 0, len(r.items))
	for _, city := range r.items {
		all = append(all, city)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (r *memCities) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memCities) Update(_ context.Context, city *domain.City) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[city.ID] = *city
	return nil
}

func (r *memCities) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memPackages struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Package

	createCalls int
	updateCalls int
	deleteCalls int
}

func newMemPackages() *memPackages {
	return &memPackages{items: map[uuid.UUID]domain.Package{}}
}

func (r *memPackages) Create(_ context.Context, pkg *domain.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	r.items[pkg.ID] = *pkg
	return nil
}

func (r *memPackages) GetByID(_ context.Context, id uuid.UUID) (*domain.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pkg, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &pkg, nil
}

func (r *memPackages) GetAll(_ context.Context) ([]domain.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.Package, 0, len(r.items))
	for _, pkg := range r.items {
		all = append(all, pkg)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })
	return all, nil
}

func (r *memPackages) Update(_ context.Context, pkg *domain.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	r.items[pkg.ID] = *pkg
	return nil
}

func (r *memPackages) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type memSchedules struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Schedule

	createCalls int
}

func newMemSchedules() *memSchedules {
	return &memSchedules{items: map[uuid.UUID]domain.Schedule{}}
}

func (r *memSchedules) Create(_ context.Context, schedule *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	r.items[schedule.ID] = *schedule
	return nil
}

func (r *memSchedules) GetByID(_ context.Context, id uuid.UUID) (*domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	schedule, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &schedule, nil
}

func (r *memSchedules) GetByPackage(_ context.Context, packageID uuid.UUID) ([]domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Schedule
	for _, schedule := range r.items {
		if schedule.PackageID == packageID {
			out = append(out, schedule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *memSchedules) GetPage(_ context.Context, limit, offset int) ([]domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.Schedule, 0, len(r.items))
	for _, schedule := range r.items {
		all = append(all, schedule)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })
	if offset > len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memSchedules) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memSchedules) Update(_ context.Context, schedule *domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[schedule.ID] = *schedule
	return nil
}

func (r *memSchedules) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
