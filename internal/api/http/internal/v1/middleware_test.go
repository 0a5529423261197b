package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/service"
	"github.com/tourhub/backend/pkg/auth"
)

type adminsServiceStub struct {
	admins map[uuid.UUID]domain.Admin
}

func (s *adminsServiceStub) SignIn(context.Context, string, string) service.Result[service.Tokens] {
	return service.Result[service.Tokens]{}
}

func (s *adminsServiceStub) Refresh(context.Context, string) service.Result[service.Tokens] {
	return service.Result[service.Tokens]{}
}

func (s *adminsServiceStub) GetByID(_ context.Context, id uuid.UUID) (*domain.Admin, error) {
	admin, ok := s.admins[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &admin, nil
}

type authFixture struct {
	router       *gin.Engine
	tokenManager auth.TokenManager
	admin        domain.Admin
	stub         *adminsServiceStub
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenManager, err := auth.NewManager(config.JWTConfig{
		SigningKey:      "test-signing-key",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	admin := domain.Admin{ID: uuid.New(), Email: "admin@tourhub.test", Role: domain.RoleAdmin}
	stub := &adminsServiceStub{admins: map[uuid.UUID]domain.Admin{admin.ID: admin}}

	h := &Handler{
		services:     &service.Services{Admins: stub},
		tokenManager: tokenManager,
	}

	router := gin.New()
	router.GET("/protected", h.adminIdentityMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id":    c.GetString(adminIDCtx),
			"admin_email": c.GetString(adminEmailCtx),
		})
	})

	return &authFixture{router: router, tokenManager: tokenManager, admin: admin, stub: stub}
}

func (f *authFixture) accessToken(t *testing.T, adminID uuid.UUID, role string) string {
	t.Helper()
	token, _, err := f.tokenManager.NewAccessToken(adminID, role)
	require.NoError(t, err)
	return token
}

func (f *authFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestAdminIdentity_NoToken(t *testing.T) {
	f := newAuthFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminIdentity_GarbageToken(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	require.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestAdminIdentity_UnknownAdmin(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+f.accessToken(t, uuid.New(), domain.RoleAdmin))

	require.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestAdminIdentity_WrongRole(t *testing.T) {
	f := newAuthFixture(t)
	viewer := domain.Admin{ID: uuid.New(), Email: "viewer@tourhub.test", Role: "viewer"}
	f.stub.admins[viewer.ID] = viewer

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+f.accessToken(t, viewer.ID, viewer.Role))

	require.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestAdminIdentity_BearerHeader(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+f.accessToken(t, f.admin.ID, f.admin.Role))

	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), f.admin.ID.String())
	require.Contains(t, rec.Body.String(), f.admin.Email)
}

func TestAdminIdentity_Cookie(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: f.accessToken(t, f.admin.ID, f.admin.Role)})

	require.Equal(t, http.StatusOK, f.do(req).Code)
}

func TestAdminIdentity_CookieWinsOverHeader(t *testing.T) {
	f := newAuthFixture(t)

	// a stale cookie is not rescued by a valid header
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: accessTokenCookie, Value: "not-a-jwt"})
	req.Header.Set("Authorization", "Bearer "+f.accessToken(t, f.admin.ID, f.admin.Role))

	require.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}

func TestAdminIdentity_MalformedAuthHeader(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", f.accessToken(t, f.admin.ID, f.admin.Role))

	require.Equal(t, http.StatusUnauthorized, f.do(req).Code)
}
