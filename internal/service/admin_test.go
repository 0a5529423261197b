package service

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/pkg/auth"
	"github.com/tourhub/backend/pkg/hash"
)

type memAdmins struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.Admin
}

func newMemAdmins() *memAdmins {
	return &memAdmins{items: map[uuid.UUID]domain.Admin{}}
}

func (r *memAdmins) Create(_ context.Context, admin *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[admin.ID] = *admin
	return nil
}

func (r *memAdmins) GetByID(_ context.Context, id uuid.UUID) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &admin, nil
}

func (r *memAdmins) GetByEmail(_ context.Context, email string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.items {
		if admin.Email == email {
			out := admin
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newAdminFixture(t *testing.T) (*adminService, *memAdmins, auth.TokenManager) {
	t.Helper()

	tokenManager, err := auth.NewManager(config.JWTConfig{
		SigningKey:      "test-signing-key",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	require.NoError(t, err)

	admins := newMemAdmins()
	svc := newAdminService(admins, hash.NewBcryptHasher(4), tokenManager)
	return svc, admins, tokenManager
}

func seedAdmin(t *testing.T, admins *memAdmins, email, password string) domain.Admin {
	t.Helper()

	hashed, err := hash.NewBcryptHasher(4).Hash(password)
	require.NoError(t, err)

	admin := domain.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		Role:         domain.RoleAdmin,
	}
	require.NoError(t, admins.Create(context.Background(), &admin))
	return admin
}

func TestSignIn_Success(t *testing.T) {
	svc, admins, tokenManager := newAdminFixture(t)
	admin := seedAdmin(t, admins, "admin@tourhub.test", "sup3rsecret")

	res := svc.SignIn(context.Background(), "admin@tourhub.test", "sup3rsecret")

	require.True(t, res.Success)
	require.Equal(t, http.StatusOK, res.Status)
	require.NotEmpty(t, res.Data.AccessToken)
	require.NotEmpty(t, res.Data.RefreshToken)

	claims, err := tokenManager.ParseAccessToken(res.Data.AccessToken)
	require.NoError(t, err)
	require.Equal(t, admin.ID, claims.Subject)
	require.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestSignIn_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	svc, admins, _ := newAdminFixture(t)
	seedAdmin(t, admins, "admin@tourhub.test", "sup3rsecret")

	unknown := svc.SignIn(context.Background(), "nobody@tourhub.test", "sup3rsecret")
	wrongPassword := svc.SignIn(context.Background(), "admin@tourhub.test", "wrongsecret")

	require.False(t, unknown.Success)
	require.False(t, wrongPassword.Success)
	require.Equal(t, http.StatusUnauthorized, unknown.Status)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Status)
	require.Equal(t, unknown.Message, wrongPassword.Message)
}

func TestRefresh_Success(t *testing.T) {
	svc, admins, _ := newAdminFixture(t)
	seedAdmin(t, admins, "admin@tourhub.test", "sup3rsecret")

	signedIn := svc.SignIn(context.Background(), "admin@tourhub.test", "sup3rsecret")
	require.True(t, signedIn.Success)

	refreshed := svc.Refresh(context.Background(), signedIn.Data.RefreshToken)

	require.True(t, refreshed.Success)
	require.NotEmpty(t, refreshed.Data.AccessToken)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, admins, _ := newAdminFixture(t)
	seedAdmin(t, admins, "admin@tourhub.test", "sup3rsecret")

	signedIn := svc.SignIn(context.Background(), "admin@tourhub.test", "sup3rsecret")
	require.True(t, signedIn.Success)

	// an access token must not pass as a refresh token
	res := svc.Refresh(context.Background(), signedIn.Data.AccessToken)

	require.False(t, res.Success)
	require.Equal(t, http.StatusUnauthorized, res.Status)
}

func TestRefresh_DeletedAdmin(t *testing.T) {
	svc, _, tokenManager := newAdminFixture(t)

	refreshToken, _, err := tokenManager.NewRefreshToken(uuid.New())
	require.NoError(t, err)

	res := svc.Refresh(context.Background(), refreshToken)

	require.False(t, res.Success)
	require.Equal(t, http.StatusUnauthorized, res.Status)
}
