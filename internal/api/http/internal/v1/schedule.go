package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tourhub/backend/internal/service"
)

const (
	schedulePhotoPrefix = "schedules"
	scheduleDateLayout  = "2006-01-02"
)

func (h *Handler) initScheduleRoutes(api *gin.RouterGroup) {
	schedules := api.Group("/schedules")
	{
		schedules.GET("", h.getSchedules)
		schedules.GET("/:id", h.getScheduleByID)

		schedules.POST("", h.adminIdentityMiddleware, h.createSchedule)
		schedules.PUT("/:id", h.adminIdentityMiddleware, h.updateSchedule)
		schedules.DELETE("/:id", h.adminIdentityMiddleware, h.deleteSchedule)
	}
}

// scheduleInputFromForm reads the shared multipart fields of the create and
// update endpoints. Dates use the YYYY-MM-DD layout.
func scheduleInputFromForm(c *gin.Context) (service.ScheduleInput, bool) {
	input := service.ScheduleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}

	fromDate, err := time.Parse(scheduleDateLayout, c.PostForm("from_date"))
	if err != nil {
		failResponse(c, http.StatusBadRequest, "from_date must be formatted as YYYY-MM-DD")
		return input, false
	}
	input.FromDate = fromDate

	toDate, err := time.Parse(scheduleDateLayout, c.PostForm("to_date"))
	if err != nil {
		failResponse(c, http.StatusBadRequest, "to_date must be formatted as YYYY-MM-DD")
		return input, false
	}
	input.ToDate = toDate

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		failResponse(c, http.StatusBadRequest, "amount must be a number")
		return input, false
	}
	input.Amount = amount

	return input, true
}

// @Summary Create Schedule
// @Tags Schedules
// @Description Create a departure schedule for a package
// @ModuleID createSchedule
// @Accept  mpfd
// @Produce  json
// @Param package_id formData string true "package uuid"
// @Param title formData string true "schedule title"
// @Param from_date formData string true "start date (YYYY-MM-DD)"
// @Param to_date formData string true "end date (YYYY-MM-DD)"
// @Param amount formData number true "price"
// @Param description formData string false "schedule description"
// @Param photos formData file false "schedule photos"
// @Security AdminAuth
// @Success 201 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /schedules [post]
func (h *Handler) createSchedule(c *gin.Context) {
	packageID, err := uuid.Parse(c.PostForm("package_id"))
	if err != nil {
		failResponse(c, http.StatusBadRequest, "package_id must be a valid uuid")
		return
	}

	input, ok := scheduleInputFromForm(c)
	if !ok {
		return
	}

	keys, ok := h.uploadPhotos(c, "photos", schedulePhotoPrefix)
	if !ok {
		return
	}

	respond(c, h.services.Schedules.Create(c.Request.Context(), service.CreateScheduleInput{
		ScheduleInput: input,
		PackageID:     packageID,
		PhotoKeys:     keys,
	}))
}

// @Summary Get Schedules
// @Tags Schedules
// @Description Get schedules with pagination
// @ModuleID getSchedules
// @Accept  json
// @Produce  json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response
// @Failure 500 {object} response
// @Router /schedules [get]
func (h *Handler) getSchedules(c *gin.Context) {
	page, limit := pagingParams(c)
	respondPage(c, h.services.Schedules.GetAll(c.Request.Context(), page, limit))
}

// @Summary Get Schedule By ID
// @Tags Schedules
// @Description Get a schedule with its photos and owning package
// @ModuleID getScheduleByID
// @Accept  json
// @Produce  json
// @Param id path string true "schedule id"
// @Success 200 {object} response
// @Failure 400,404 {object} response
// @Failure 500 {object} response
// @Router /schedules/{id} [get]
func (h *Handler) getScheduleByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respond(c, h.services.Schedules.GetByID(c.Request.Context(), id))
}

// @Summary Get Schedules By Package
// @Tags Schedules
// @Description Get every schedule belonging to a package
// @ModuleID getSchedulesByPackage
// @Accept  json
// @Produce  json
// @Param id path string true "package id"
// @Success 200 {object} response
// @Failure 400,404 {object} response
// @Failure 500 {object} response
// @Router /packages/{id}/schedules [get]
func (h *Handler) getSchedulesByPackage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respond(c, h.services.Schedules.GetByPackage(c.Request.Context(), id))
}

// @Summary Update Schedule
// @Tags Schedules
// @Description Update a schedule, add new photos and remove listed ones
// @ModuleID updateSchedule
// @Accept  mpfd
// @Produce  json
// @Param id path string true "schedule id"
// @Param title formData string true "schedule title"
// @Param from_date formData string true "start date (YYYY-MM-DD)"
// @Param to_date formData string true "end date (YYYY-MM-DD)"
// @Param amount formData number true "price"
// @Param description formData string false "schedule description"
// @Param photos formData file false "new schedule photos"
// @Param delete_photo_keys formData []string false "photo keys to remove" collectionFormat(multi)
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /schedules/{id} [put]
func (h *Handler) updateSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	input, ok := scheduleInputFromForm(c)
	if !ok {
		return
	}

	keys, ok := h.uploadPhotos(c, "photos", schedulePhotoPrefix)
	if !ok {
		return
	}

	respond(c, h.services.Schedules.Update(c.Request.Context(), id, service.UpdateScheduleInput{
		ScheduleInput:   input,
		NewPhotoKeys:    keys,
		DeletePhotoKeys: c.PostFormArray("delete_photo_keys"),
	}))
}

// @Summary Delete Schedule
// @Tags Schedules
// @Description Delete a schedule and its stored photos
// @ModuleID deleteSchedule
// @Accept  json
// @Produce  json
// @Param id path string true "schedule id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /schedules/{id} [delete]
func (h *Handler) deleteSchedule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respondEmpty(c, h.services.Schedules.Delete(c.Request.Context(), id))
}
