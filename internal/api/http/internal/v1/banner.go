package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tourhub/backend/internal/service"
)

const bannerPhotoPrefix = "banners"

func (h *Handler) initBannerRoutes(api *gin.RouterGroup) {
	banners := api.Group("/banners")
	{
		banners.GET("", h.getBanners)

		banners.POST("", h.adminIdentityMiddleware, h.createBanner)
		banners.DELETE("/:id", h.adminIdentityMiddleware, h.deleteBanner)
	}
}

// @Summary Create Banner
// @Tags Banners
// @Description Create a promotional banner with a single photo
// @ModuleID createBanner
// @Accept  mpfd
// @Produce  json
// @Param title formData string true "banner title"
// @Param active formData boolean false "whether the banner is shown"
// @Param photo formData file true "banner photo"
// @Security AdminAuth
// @Success 201 {object} response
// @Failure 400,401 {object} response
// @Failure 500 {object} response
// @Router /banners [post]
func (h *Handler) createBanner(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		failResponse(c, http.StatusBadRequest, "title is required")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		failResponse(c, http.StatusBadRequest, "photo is required")
		return
	}

	key, ok := h.uploadOne(c, fileHeader, bannerPhotoPrefix)
	if !ok {
		return
	}

	respond(c, h.services.Banners.Create(c.Request.Context(), service.CreateBannerInput{
		Title:    title,
		PhotoKey: key,
		Active:   c.PostForm("active") == "true",
	}))
}

// @Summary Get Banners
// @Tags Banners
// @Description Get active banners with presigned photo URLs
// @ModuleID getBanners
// @Accept  json
// @Produce  json
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /banners [get]
func (h *Handler) getBanners(c *gin.Context) {
	respond(c, h.services.Banners.GetAll(c.Request.Context()))
}

// @Summary Delete Banner
// @Tags Banners
// @Description Delete a banner and its stored photo
// @ModuleID deleteBanner
// @Accept  json
// @Produce  json
// @Param id path string true "banner id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /banners/{id} [delete]
func (h *Handler) deleteBanner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respondEmpty(c, h.services.Banners.Delete(c.Request.Context(), id))
}
