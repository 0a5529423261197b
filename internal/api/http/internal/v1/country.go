package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initCountryRoutes(api *gin.RouterGroup) {
	countries := api.Group("/countries")
	{
		countries.GET("", h.getCountries)
		countries.GET("/all", h.getCountriesAlphabetical)
		countries.GET("/:id/cities", h.getCitiesByCountry)

		countries.POST("", h.adminIdentityMiddleware, h.createCountry)
		countries.PUT("/:id", h.adminIdentityMiddleware, h.updateCountry)
		countries.DELETE("/:id", h.adminIdentityMiddleware, h.deleteCountry)
	}
}

type countryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// pagingParams reads page/limit query values; the service clamps whatever
// comes through.
func pagingParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}

// @Summary Create Country
// @Tags Countries
// @Description Create a new country
// @ModuleID createCountry
// @Accept  json
// @Produce  json
// @Param input body countryRequest true "country data"
// @Security AdminAuth
// @Success 201 {object} response
// @Failure 400,401,409 {object} response
// @Failure 500 {object} response
// @Router /countries [post]
func (h *Handler) createCountry(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	respond(c, h.services.Countries.Create(c.Request.Context(), req.Name))
}

// @Summary Get Countries
// @Tags Countries
// @Description Get countries with pagination
// @ModuleID getCountries
// @Accept  json
// @Produce  json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /countries [get]
func (h *Handler) getCountries(c *gin.Context) {
	page, limit := pagingParams(c)
	respondPage(c, h.services.Countries.GetAll(c.Request.Context(), page, limit))
}

// @Summary Get All Countries
// @Tags Countries
// @Description Get the full country list in alphabetical order
// @ModuleID getCountriesAlphabetical
// @Accept  json
// @Produce  json
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /countries/all [get]
func (h *Handler) getCountriesAlphabetical(c *gin.Context) {
	respond(c, h.services.Countries.GetAllAlphabetical(c.Request.Context()))
}

// @Summary Update Country
// @Tags Countries
// @Description Rename a country
// @ModuleID updateCountry
// @Accept  json
// @Produce  json
// @Param id path string true "country id"
// @Param input body countryRequest true "country data"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404,409 {object} response
// @Failure 500 {object} response
// @Router /countries/{id} [put]
func (h *Handler) updateCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	respond(c, h.services.Countries.Update(c.Request.Context(), id, req.Name))
}

// @Summary Delete Country
// @Tags Countries
// @Description Delete a country
// @ModuleID deleteCountry
// @Accept  json
// @Produce  json
// @Param id path string true "country id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /countries/{id} [delete]
func (h *Handler) deleteCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respondEmpty(c, h.services.Countries.Delete(c.Request.Context(), id))
}
