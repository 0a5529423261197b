package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tourhub/backend/internal/service"
)

// response is the single JSON shape every endpoint answers with. Data is
// omitted on failures, Meta is present only for paginated listings.
type response struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	Meta    *pageMeta `json:"meta,omitempty"`
}

type pageMeta struct {
	TotalCount  int64 `json:"total_count"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	Limit       int   `json:"limit"`
}

func respond[T any](c *gin.Context, res service.Result[T]) {
	body := response{Success: res.Success, Message: res.Message}
	if res.Success {
		body.Data = res.Data
	}
	c.JSON(res.Status, body)
}

func respondEmpty(c *gin.Context, res service.Result[struct{}]) {
	c.JSON(res.Status, response{Success: res.Success, Message: res.Message})
}

func respondPage[T any](c *gin.Context, res service.Result[service.Page[T]]) {
	body := response{Success: res.Success, Message: res.Message}
	if res.Success {
		body.Data = res.Data.Items
		body.Meta = &pageMeta{
			TotalCount:  res.Data.TotalCount,
			TotalPages:  res.Data.TotalPages,
			CurrentPage: res.Data.CurrentPage,
			Limit:       res.Data.Limit,
		}
	}
	c.JSON(res.Status, body)
}

func failResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, response{Message: message})
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		failResponse(c, http.StatusBadRequest, "id must be a valid uuid")
		return uuid.Nil, false
	}
	return id, true
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		failResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	out := make([]ValidationError, len(verr))
	for i, ferr := range verr {
		out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, response{
		Message: "validation error",
		Data:    out,
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "email":
		return "invalid email format"
	case "uuid":
		return "must be a valid uuid"
	case "min":
		return fmt.Sprintf("minimum length is %v", value)
	case "max":
		return fmt.Sprintf("maximum length is %v", value)
	case "phonenumber":
		return "invalid phone number"
	}
	return tag
}
