package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourhub/backend/internal/domain"
	"github.com/tourhub/backend/pkg/logger"
)

const (
	authorizationHeader = "Authorization"
	accessTokenCookie   = "accessToken"
	refreshTokenCookie  = "refreshToken"

	adminIDCtx    = "adminId"
	adminEmailCtx = "adminEmail"
)

// adminIdentityMiddleware guards admin routes. The failure reason is logged
// for operators but the caller always sees the same 401.
func (h *Handler) adminIdentityMiddleware(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		logger.Debug("no access token on request", zap.Error(err))
		unauthorized(c)
		return
	}

	claims, err := h.tokenManager.ParseAccessToken(token)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Warn("parse access token failed", zap.Error(err))
		}
		unauthorized(c)
		return
	}

	admin, err := h.services.Admins.GetByID(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Warn("token subject is not a known admin", zap.String("admin_id", claims.Subject.String()))
		} else {
			logger.Error("load admin for token failed", zap.Error(err))
		}
		unauthorized(c)
		return
	}

	if admin.Role != domain.RoleAdmin {
		logger.Warn("admin has unexpected role", zap.String("admin_id", admin.ID.String()), zap.String("role", admin.Role))
		unauthorized(c)
		return
	}

	c.Set(adminIDCtx, admin.ID.String())
	c.Set(adminEmailCtx, admin.Email)
}

// extractAccessToken prefers the auth cookie and falls back to a bearer
// header so both browser and API clients work.
func extractAccessToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(accessTokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}

	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("no auth cookie and empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" || headerParts[1] == "" {
		return "", errors.New("invalid auth header")
	}

	return headerParts[1], nil
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response{Message: "unauthorized"})
}

func (h *Handler) getAdminUUID(c *gin.Context) (uuid.UUID, error) {
	id, ok := c.Get(adminIDCtx)
	if !ok {
		return uuid.Nil, errors.New("admin id not found in context")
	}

	return uuid.Parse(id.(string))
}
