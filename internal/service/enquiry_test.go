package service

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/domain"
)

type memEnquiries struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Enquiry
}

func newMemEnquiries() *memEnquiries {
	return &memEnquiries{items: map[uuid.UUID]domain.Enquiry{}}
}

func (r *memEnquiries) Create(_ context.Context, enquiry *domain.Enquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[enquiry.ID] = *enquiry
	return nil
}

func (r *memEnquiries) GetByID(_ context.Context, id uuid.UUID) (*domain.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	enquiry, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &enquiry, nil
}

func (r *memEnquiries) GetPage(_ context.Context, limit, offset int) ([]domain.Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.Enquiry, 0, len(r.items))
	for _, enquiry := range r.items {
		all = append(all, enquiry)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset > len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *memEnquiries) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *memEnquiries) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func newEnquiryFixture() (*enquiryService, *memEnquiries, *memPackages, *memSchedules) {
	enquiries := newMemEnquiries()
	packages := newMemPackages()
	schedules := newMemSchedules()
	svc := newEnquiryService(enquiries, packages, schedules, config.EmailConfig{})
	return svc, enquiries, packages, schedules
}

func TestCreateEnquiry_WithoutReferences(t *testing.T) {
	svc, _, _, _ := newEnquiryFixture()

	res := svc.Create(context.Background(), CreateEnquiryInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "+15551234567",
		Message: "Looking for a family trip",
	})

	require.True(t, res.Success)
	require.Equal(t, http.StatusCreated, res.Status)
	require.Nil(t, res.Data.PackageID)
	require.Nil(t, res.Data.ScheduleID)
}

func TestCreateEnquiry_KeepsReferences(t *testing.T) {
	svc, _, packages, _ := newEnquiryFixture()
	pkg := seedPackage(t, packages)

	res := svc.Create(context.Background(), CreateEnquiryInput{
		Name:      "Asha",
		Email:     "asha@example.com",
		Phone:     "+15551234567",
		PackageID: &pkg.ID,
	})

	require.True(t, res.Success)
	require.NotNil(t, res.Data.PackageID)
	require.Equal(t, pkg.ID, *res.Data.PackageID)
}

func TestGetEnquiries_ResolvesTitles(t *testing.T) {
	svc, enquiries, packages, schedules := newEnquiryFixture()
	pkg := seedPackage(t, packages)
	schedule := domain.Schedule{ID: uuid.New(), PackageID: pkg.ID, Title: "June departure"}
	require.NoError(t, schedules.Create(context.Background(), &schedule))

	enquiry := domain.Enquiry{
		ID:         uuid.New(),
		Name:       "Asha",
		PackageID:  &pkg.ID,
		ScheduleID: &schedule.ID,
	}
	require.NoError(t, enquiries.Create(context.Background(), &enquiry))

	res := svc.GetAll(context.Background(), 1, 10)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	require.Equal(t, pkg.Title, res.Data.Items[0].PackageTitle)
	require.NotNil(t, res.Data.Items[0].ScheduleTitle)
	require.Equal(t, "June departure", *res.Data.Items[0].ScheduleTitle)
}

func TestGetEnquiries_DanglingReferencesDegrade(t *testing.T) {
	svc, enquiries, _, _ := newEnquiryFixture()
	missingPkg := uuid.New()
	missingSchedule := uuid.New()

	enquiry := domain.Enquiry{
		ID:         uuid.New(),
		Name:       "Asha",
		PackageID:  &missingPkg,
		ScheduleID: &missingSchedule,
	}
	require.NoError(t, enquiries.Create(context.Background(), &enquiry))

	res := svc.GetAll(context.Background(), 1, 10)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 1)
	require.Equal(t, sentinelUnknownPackage, res.Data.Items[0].PackageTitle)
	require.Nil(t, res.Data.Items[0].ScheduleTitle)
}

func TestGetEnquiries_NoPackageReferenceUsesSentinel(t *testing.T) {
	svc, enquiries, _, _ := newEnquiryFixture()
	enquiry := domain.Enquiry{ID: uuid.New(), Name: "Asha"}
	require.NoError(t, enquiries.Create(context.Background(), &enquiry))

	res := svc.GetAll(context.Background(), 1, 10)

	require.True(t, res.Success)
	require.Equal(t, sentinelUnknownPackage, res.Data.Items[0].PackageTitle)
}

func TestDeleteEnquiry_NotFound(t *testing.T) {
	svc, _, _, _ := newEnquiryFixture()

	res := svc.Delete(context.Background(), uuid.New())

	require.False(t, res.Success)
	require.Equal(t, http.StatusNotFound, res.Status)
}
