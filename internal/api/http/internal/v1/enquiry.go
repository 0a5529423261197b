package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tourhub/backend/internal/service"
)

func (h *Handler) initEnquiryRoutes(api *gin.RouterGroup) {
	enquiries := api.Group("/enquiries")
	{
		enquiries.POST("", h.createEnquiry)

		enquiries.GET("", h.adminIdentityMiddleware, h.getEnquiries)
		enquiries.GET("/:id", h.adminIdentityMiddleware, h.getEnquiryByID)
		enquiries.DELETE("/:id", h.adminIdentityMiddleware, h.deleteEnquiry)
	}
}

type enquiryRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required,phonenumber"`
	Message    string  `json:"message" binding:"max=2000"`
	PackageID  *string `json:"package_id" binding:"omitempty,uuid"`
	ScheduleID *string `json:"schedule_id" binding:"omitempty,uuid"`
}

func optionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id := uuid.MustParse(*s)
	return &id
}

// @Summary Create Enquiry
// @Tags Enquiries
// @Description Submit a customer enquiry, optionally about a package or schedule
// @ModuleID createEnquiry
// @Accept  json
// @Produce  json
// @Param input body enquiryRequest true "enquiry data"
// @Success 201 {object} response
// @Failure 400 {object} response
// @Failure 500 {object} response
// @Router /enquiries [post]
func (h *Handler) createEnquiry(c *gin.Context) {
	var req enquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	respond(c, h.services.Enquiries.Create(c.Request.Context(), service.CreateEnquiryInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PackageID:  optionalUUID(req.PackageID),
		ScheduleID: optionalUUID(req.ScheduleID),
	}))
}

// @Summary Get Enquiries
// @Tags Enquiries
// @Description Get enquiries with pagination and resolved package titles
// @ModuleID getEnquiries
// @Accept  json
// @Produce  json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 401 {object} response
// @Failure 500 {object} response
// @Router /enquiries [get]
func (h *Handler) getEnquiries(c *gin.Context) {
	page, limit := pagingParams(c)
	respondPage(c, h.services.Enquiries.GetAll(c.Request.Context(), page, limit))
}

// @Summary Get Enquiry By ID
// @Tags Enquiries
// @Description Get a single enquiry
// @ModuleID getEnquiryByID
// @Accept  json
// @Produce  json
// @Param id path string true "enquiry id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /enquiries/{id} [get]
func (h *Handler) getEnquiryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respond(c, h.services.Enquiries.GetByID(c.Request.Context(), id))
}

// @Summary Delete Enquiry
// @Tags Enquiries
// @Description Delete an enquiry
// @ModuleID deleteEnquiry
// @Accept  json
// @Produce  json
// @Param id path string true "enquiry id"
// @Security AdminAuth
// @Success 200 {object} response
// @Failure 400,401,404 {object} response
// @Failure 500 {object} response
// @Router /enquiries/{id} [delete]
func (h *Handler) deleteEnquiry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	respondEmpty(c, h.services.Enquiries.Delete(c.Request.Context(), id))
}
