package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/internal/repository"
	"github.com/tourhub/backend/pkg/auth"
	"github.com/tourhub/backend/pkg/hash"
	"github.com/tourhub/backend/pkg/logger"
)

type adminService struct {
	adminRepository repository.Admins
	hasher          hash.PasswordHasher
	tokenManager    auth.TokenManager
}

func newAdminService(
	adminRepository repository.Admins,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
) *adminService {
	return &adminService{
		adminRepository: adminRepository,
		hasher:          hasher,
		tokenManager:    tokenManager,
	}
}

// SignIn answers unknown email and wrong password with the same message, so
// the response does not reveal which accounts exist.
func (s *adminService) SignIn(ctx context.Context, email, password string) Result[Tokens] {
	admin, err := s.adminRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[Tokens](http.StatusUnauthorized, "invalid credentials")
		}
		logger.Error("admin load by email failed", zap.Error(err))
		return internalError[Tokens]()
	}

	if !s.hasher.Compare(password, admin.PasswordHash) {
		return fail[Tokens](http.StatusUnauthorized, "invalid credentials")
	}

	tokens, err := s.issueTokens(admin)
	if err != nil {
		logger.Error("token issue failed", zap.Error(err))
		return internalError[Tokens]()
	}

	return succeed(http.StatusOK, "signed in", *tokens)
}

func (s *adminService) Refresh(ctx context.Context, refreshToken string) Result[Tokens] {
	claims, err := s.tokenManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return fail[Tokens](http.StatusUnauthorized, "invalid refresh token")
	}

	admin, err := s.adminRepository.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fail[Tokens](http.StatusUnauthorized, "invalid refresh token")
		}
		logger.Error("admin load failed", zap.Error(err))
		return internalError[Tokens]()
	}

	tokens, err := s.issueTokens(admin)
	if err != nil {
		logger.Error("token issue failed", zap.Error(err))
		return internalError[Tokens]()
	}

	return succeed(http.StatusOK, "tokens refreshed", *tokens)
}

func (s *adminService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	return s.adminRepository.GetByID(ctx, id)
}

func (s *adminService) issueTokens(admin *domain.Admin) (*Tokens, error) {
	accessToken, accessTTL, err := s.tokenManager.NewAccessToken(admin.ID, admin.Role)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshTTL, err := s.tokenManager.NewRefreshToken(admin.ID)
	if err != nil {
		return nil, err
	}

	return &Tokens{
		AccessToken:     accessToken,
		AccessTokenTTL:  accessTTL,
		RefreshToken:    refreshToken,
		RefreshTokenTTL: refreshTTL,
	}, nil
}
