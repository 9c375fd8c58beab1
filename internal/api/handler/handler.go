package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/martijn/wigest/internal/api/dto"
	"github.com/martijn/wigest/internal/core/service"
)

// dateLayout is the wire format for DATE columns
const dateLayout = "2006-01-02"

// respondError maps a service error to its HTTP status; anything else is an
// opaque internal failure.
func respondError(c *gin.Context, err error) {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.Code, dto.ErrorResponse{
			Error:   http.StatusText(svcErr.Code),
			Message: svcErr.Message,
			Code:    svcErr.Code,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "Internal Server Error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Bad Request",
		Message: message,
		Code:    http.StatusBadRequest,
	})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{
		Error:   "Not Found",
		Message: message,
		Code:    http.StatusNotFound,
	})
}

func conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, dto.ErrorResponse{
		Error:   "Conflict",
		Message: message,
		Code:    http.StatusConflict,
	})
}

// parseID parses the :id path parameter, answering 400 itself on failure.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		badRequest(c, "ID invalide")
		return 0, false
	}
	return id, true
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// parseOptionalInt64 reads an integer query parameter, returning nil when
// absent.
func parseOptionalInt64(c *gin.Context, name string) (*int64, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// optionalString returns nil for an absent or empty query parameter.
func optionalString(c *gin.Context, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}
