package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateCountry_Success(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)

	res := svc.Create(context.Background(), "France")

	require.True(t, res.Success)
	require.Equal(t, http.StatusCreated, res.Status)
	require.Equal(t, "France", res.Data.Name)
	require.NotEqual(t, uuid.Nil, res.Data.ID)
}

func TestCreateCountry_TrimsName(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)

	res := svc.Create(context.Background(), "  France  ")

	require.True(t, res.Success)
	require.Equal(t, "France", res.Data.Name)
}

func TestCreateCountry_Duplicate(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)

	first := svc.Create(context.Background(), "France")
	require.True(t, first.Success)

	second := svc.Create(context.Background(), "France")
	require.False(t, second.Success)
	require.Equal(t, http.StatusConflict, second.Status)
}

func TestCreateCountry_EmptyName(t *testing.T) {
	svc := newCountryService(newMemCountries())

	res := svc.Create(context.Background(), "   ")

	require.False(t, res.Success)
	require.Equal(t, http.StatusBadRequest, res.Status)
}

func TestUpdateCountry_NotFound(t *testing.T) {
	svc := newCountryService(newMemCountries())

	res := svc.Update(context.Background(), uuid.New(), "Spain")

	require.False(t, res.Success)
	require.Equal(t, http.StatusNotFound, res.Status)
}

func TestUpdateCountry_RenameToExisting(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)

	france := svc.Create(context.Background(), "France")
	require.True(t, france.Success)
	spain := svc.Create(context.Background(), "Spain")
	require.True(t, spain.Success)

	res := svc.Update(context.Background(), spain.Data.ID, "France")

	require.False(t, res.Success)
	require.Equal(t, http.StatusConflict, res.Status)
}

func TestUpdateCountry_SameNameIsNoConflict(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)

	france := svc.Create(context.Background(), "France")
	require.True(t, france.Success)

	res := svc.Update(context.Background(), france.Data.ID, "France")

	require.True(t, res.Success)
	require.Equal(t, http.StatusOK, res.Status)
}

func TestDeleteCountry_NotFound(t *testing.T) {
	svc := newCountryService(newMemCountries())

	res := svc.Delete(context.Background(), uuid.New())

	require.False(t, res.Success)
	require.Equal(t, http.StatusNotFound, res.Status)
}

func TestGetCountries_PaginationMeta(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)
	for i := 0; i < 25; i++ {
		res := svc.Create(context.Background(), fmt.Sprintf("Country %02d", i))
		require.True(t, res.Success)
	}

	res := svc.GetAll(context.Background(), 2, 10)

	require.True(t, res.Success)
	require.Len(t, res.Data.Items, 10)
	require.Equal(t, int64(25), res.Data.TotalCount)
	require.Equal(t, int64(3), res.Data.TotalPages)
	require.Equal(t, 2, res.Data.CurrentPage)
}

func TestGetCountries_OutOfRangePageIsEmpty(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)
	for i := 0; i < 5; i++ {
		res := svc.Create(context.Background(), fmt.Sprintf("Country %d", i))
		require.True(t, res.Success)
	}

	res := svc.GetAll(context.Background(), 9, 10)

	require.True(t, res.Success)
	require.Empty(t, res.Data.Items)
	require.Equal(t, int64(5), res.Data.TotalCount)
}

func TestGetCountries_ClampsPaging(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)
	res := svc.Create(context.Background(), "France")
	require.True(t, res.Success)

	listed := svc.GetAll(context.Background(), -3, 10000)

	require.True(t, listed.Success)
	require.Equal(t, 1, listed.Data.CurrentPage)
	require.Equal(t, 10, listed.Data.Limit)
}

func TestGetCountriesAlphabetical_NeverNil(t *testing.T) {
	svc := newCountryService(newMemCountries())

	res := svc.GetAllAlphabetical(context.Background())

	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	require.Empty(t, res.Data)
}

func TestGetCountriesAlphabetical_Sorted(t *testing.T) {
	repo := newMemCountries()
	svc := newCountryService(repo)
	for _, name := range []string{"Norway", "Argentina", "Japan"} {
		res := svc.Create(context.Background(), name)
		require.True(t, res.Success)
	}

	res := svc.GetAllAlphabetical(context.Background())

	require.True(t, res.Success)
	names := []string{res.Data[0].Name, res.Data[1].Name, res.Data[2].Name}
	require.Equal(t, []string{"Argentina", "Japan", "Norway"}, names)
}
