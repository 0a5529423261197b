package v1

import (
	"github.com/tourhub/backend/internal/config"
	"github.com/tourhub/backend/internal/service"
	"github.com/tourhub/backend/internal/storage"
	"github.com/tourhub/backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title TourHub API
// @version 1.0
// @description Tour package management API

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
	storage      storage.ObjectStorage
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
	objectStorage storage.ObjectStorage,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
		storage:      objectStorage,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initAdminRoutes(v1)
	h.initCountryRoutes(v1)
	h.initCityRoutes(v1)
	h.initPackageRoutes(v1)
	h.initScheduleRoutes(v1)
	h.initEnquiryRoutes(v1)
	h.initBannerRoutes(v1)
}
