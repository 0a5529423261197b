package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) initCityRoutes(api *gin.RouterGroup) {
	cities := api.Group("/cities")
	{
		cities.GET("", h.getCities)
		cities.GET("/all", h.getCitiesAlphabetical)

		cities.POST("", h.adminIdentityMiddleware, h.createCity)
		cities.PUT("/:id", h.adminIdentityMiddleware, h.updateCity)
		cities.DELETE("/:id", h.adminIdentityMiddleware, h.deleteCity)
	}
}

type cityRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	CountryID string `json:"country_id" binding:"required,uuid"`
}

// @Summary Create City
// @Tags Cities
// @Description Create a new city within a country
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param input body cityRequest true "city data"
// @Security AdminAuth
// @Success 201 {object} response
// @Failure 400,401,404,409 {object} response
// @Failure 500 {object} response
// @Router /cities [post]
func (h *Handler) createCity(c *gin.Context) {
	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	respond(c, h.services.Cities.Create(c.Request.Context(), req.Name, uuid.MustParse(req.CountryID)))
}

// @Summary Get Cities
// @Tags Cities
// @Description Get cities with pagination
// @ModuleID getCities
// @Accept  json
// @Produce  json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /cities [get]
func (h *Handler) getCities(c *gin.Context) {
	page, limit := pagingParams(c)
	respondPage(c, h.services.Cities.GetAll(c.Request.Context(), page, limit))
}

// @Summary Get All Cities
// @Tags Cities
// @Description Get the full city list in alphabetical order
// @ModuleID getCitiesAlphabetical
// @Accept  json
// @Produce  json
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /cities/all [get]
func (h *Handler) getCitiesAlphabetical(c *gin.Context) {
	respond(c, h.services.Cities.GetAllAlphabetical(c.Request.Context()))
}

// @Summary Get Cities By Country
// @Tags Cities
// @Description Get every city belonging to a country
// @ModuleID getCitiesByCountry
// @Accept  json
// @Produce  json
// @Param id path string true "country id"
// @Success 200 {object} response
// @Failure 400,404 {object} response
// @Failure 500 {object} response
// @Router /countries/{id}/cities [get]
func (h *Handler) getCitiesByCountry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respond(c, h.services.Cities.GetByCountry(c.Request.Context(), id))
}

// @Summary Update City
// @Tags Cities
// @Description Rename a city or move it to another country
// @ModuleID updateCity
// @Accept  json
// @Produce  json
// @Param id path string true "city id"
// @Param input body cityRequest true "city data"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404,409 {object} response
// @Failure 500 {object} response
// @Router /cities/{id} [put]
func (h *Handler) updateCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req cityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	respond(c, h.services.Cities.Update(c.Request.Context(), id, req.Name, uuid.MustParse(req.CountryID)))
}

// @Summary Delete City
// @Tags Cities
// @Description Delete a city
// @ModuleID deleteCity
// @Accept  json
// @Produce  json
// @Param id path string true "city id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /cities/{id} [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respondEmpty(c, h.services.Cities.Delete(c.Request.Context(), id))
}
