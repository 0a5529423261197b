package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tourhub/backend/internal/service"
)

const packagePhotoPrefix = "packages"

func (h *Handler) initPackageRoutes(api *gin.RouterGroup) {
	packages := api.Group("/packages")
	{
		packages.GET("", h.getPackages)
		packages.GET("/all", h.getPackagesFull)
		packages.GET("/:id", h.getPackageByID)
		packages.GET("/:id/schedules", h.getSchedulesByPackage)

		packages.POST("", h.adminIdentityMiddleware, h.createPackage)
		packages.PUT("/:id", h.adminIdentityMiddleware, h.updatePackage)
		packages.DELETE("/:id", h.adminIdentityMiddleware, h.deletePackage)
	}
}

// packageInputFromForm reads the shared multipart fields of the create and
// update endpoints. Location references must be uuids.
func packageInputFromForm(c *gin.Context) (service.PackageInput, bool) {
	input := service.PackageInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Terms:       c.PostFormArray("terms"),
	}

	if input.Title == "" {
		failResponse(c, http.StatusBadRequest, "title is required")
		return input, false
	}

	locations := []struct {
		field string
		dst   *uuid.UUID
	}{
		{"source_country_id", &input.SourceCountry},
		{"source_city_id", &input.SourceCity},
		{"dest_country_id", &input.DestCountry},
		{"dest_city_id", &input.DestCity},
	}
	for _, loc := range locations {
		parsed, err := uuid.Parse(c.PostForm(loc.field))
		if err != nil {
			failResponse(c, http.StatusBadRequest, loc.field+" must be a valid uuid")
			return input, false
		}
		*loc.dst = parsed
	}

	return input, true
}

// @Summary Create Package
// @Tags Packages
// @Description Create a tour package with photos
// @ModuleID createPackage
// @Accept  mpfd
// @Produce  json
// @Param title formData string true "package title"
// @Param description formData string false "package description"
// @Param terms formData []string false "terms and conditions" collectionFormat(multi)
// @Param source_country_id formData string true "source country uuid"
// @Param source_city_id formData string true "source city uuid"
// @Param dest_country_id formData string true "destination country uuid"
// @Param dest_city_id formData string true "destination city uuid"
// @Param photos formData file false "package photos"
// @Security AdminAuth
// @Success 201 {object} response
// @Failure 400,401 {object} response
// @Failure 500 {object} response
// @Router /packages [post]
func (h *Handler) createPackage(c *gin.Context) {
	input, ok := packageInputFromForm(c)
	if !ok {
		return
	}

	keys, ok := h.uploadPhotos(c, "photos", packagePhotoPrefix)
	if !ok {
		return
	}

	respond(c, h.services.Packages.Create(c.Request.Context(), service.CreatePackageInput{
		PackageInput: input,
		PhotoKeys:    keys,
	}))
}

// @Summary Get Packages
// @Tags Packages
// @Description Get packages with pagination and resolved location names
// @ModuleID getPackages
// @Accept  json
// @Produce  json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /packages [get]
func (h *Handler) getPackages(c *gin.Context) {
	page, limit := pagingParams(c)
	respondPage(c, h.services.Packages.GetAll(c.Request.Context(), page, limit))
}

// @Summary Get All Packages
// @Tags Packages
// @Description Get the full package list without pagination
// @ModuleID getPackagesFull
// @Accept  json
// @Produce  json
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /packages/all [get]
func (h *Handler) getPackagesFull(c *gin.Context) {
	respond(c, h.services.Packages.GetAllFull(c.Request.Context()))
}

// @Summary Get Package By ID
// @Tags Packages
// @Description Get a package with its photos, location names and schedules
// @ModuleID getPackageByID
// @Accept  json
// @Produce  json
// @Param id path string true "package id"
// @Success 200 {object} response
// @Failure 400,404 {object} response
// @Failure 500 {object} response
// @Router /packages/{id} [get]
func (h *Handler) getPackageByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respond(c, h.services.Packages.GetByID(c.Request.Context(), id))
}

// @Summary Update Package
// @Tags Packages
// @Description Update a package, add new photos and remove listed ones
// @ModuleID updatePackage
// @Accept  mpfd
// @Produce  json
// @Param id path string true "package id"
// @Param title formData string true "package title"
// @Param description formData string false "package description"
// @Param terms formData []string false "terms and conditions" collectionFormat(multi)
// @Param source_country_id formData string true "source country uuid"
// @Param source_city_id formData string true "source city uuid"
// @Param dest_country_id formData string true "destination country uuid"
// @Param dest_city_id formData string true "destination city uuid"
// @Param photos formData file false "new package photos"
// @Param delete_photo_keys formData []string false "photo keys to remove" collectionFormat(multi)
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /packages/{id} [put]
func (h *Handler) updatePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	input, ok := packageInputFromForm(c)
	if !ok {
		return
	}

	keys, ok := h.uploadPhotos(c, "photos", packagePhotoPrefix)
	if !ok {
		return
	}

	respond(c, h.services.Packages.Update(c.Request.Context(), id, service.UpdatePackageInput{
		PackageInput:    input,
		NewPhotoKeys:    keys,
		DeletePhotoKeys: c.PostFormArray("delete_photo_keys"),
	}))
}

// @Summary Delete Package
// @Tags Packages
// @Description Delete a package and its stored photos
// @ModuleID deletePackage
// @Accept  json
// @Produce  json
// @Param id path string true "package id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /packages/{id} [delete]
func (h *Handler) deletePackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respondEmpty(c, h.services.Packages.Delete(c.Request.Context(), id))
}
