package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tourhub/backend/internal/service"
	"github.com/tourhub/backend/pkg/logger"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admins := api.Group("/admins")
	{
		admins.POST("/sign-in", h.adminSignIn)
		admins.POST("/refresh", h.adminRefresh)
		admins.GET("/me", h.adminIdentityMiddleware, h.adminMe)
	}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// @Summary Admin Sign In
// @Tags Admins
// @Description Authenticate an admin and issue access/refresh tokens
// @ModuleID adminSignIn
// @Accept  json
// @Produce  json
// @Param input body signInRequest true "credentials"
// @Success 200 {object} response
// @Failure 400,401 {object} response
// @Failure 500 {object} response
// @Router /admins/sign-in [post]
func (h *Handler) adminSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	res := h.services.Admins.SignIn(c.Request.Context(), req.Email, req.Password)
	if res.Success {
		h.setAuthCookies(c, res.Data)
	}
	respond(c, res)
}

// @Summary Refresh Tokens
// @Tags Admins
// @Description Exchange a refresh token for a fresh token pair
// @ModuleID adminRefresh
// @Accept  json
// @Produce  json
// @Param input body refreshRequest false "refresh token, cookie is used when omitted"
// @Success 200 {object} response
// @Failure 400,401 {object} response
// @Failure 500 {object} response
// @Router /admins/refresh [post]
func (h *Handler) adminRefresh(c *gin.Context) {
	var req refreshRequest
	// body is optional, browser clients rely on the cookie
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshTokenCookie); err == nil {
			req.RefreshToken = cookie
		}
	}
	if req.RefreshToken == "" {
		failResponse(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	res := h.services.Admins.Refresh(c.Request.Context(), req.RefreshToken)
	if res.Success {
		h.setAuthCookies(c, res.Data)
	}
	respond(c, res)
}

type adminMeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// @Summary Current Admin
// @Tags Admins
// @Description Get the authenticated admin identity
// @ModuleID adminMe
// @Accept  json
// @Produce  json
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 401 {object} response
// @Router /admins/me [get]
func (h *Handler) adminMe(c *gin.Context) {
	id, err := h.getAdminUUID(c)
	if err != nil {
		logger.Error("admin identity missing after auth middleware", zap.Error(err))
		failResponse(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	c.JSON(http.StatusOK, response{
		Success: true,
		Message: "admin fetched",
		Data: adminMeResponse{
			ID:    id.String(),
			Email: c.GetString(adminEmailCtx),
		},
	})
}

func (h *Handler) setAuthCookies(c *gin.Context, tokens service.Tokens) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessTokenCookie, tokens.AccessToken, int(tokens.AccessTokenTTL.Seconds()), "/", "", false, true)
	c.SetCookie(refreshTokenCookie, tokens.RefreshToken, int(tokens.RefreshTokenTTL.Seconds()), "/", "", false, true)
}
