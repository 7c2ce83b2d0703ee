package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventpass/hotel-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a JSON error response based on the domain error kind:
// NotFound maps to 404, Forbidden to 403, anything else to a generic 500.
// Internal error details are never exposed on the 500 path.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: appErr.Error()})
			return
		case apperror.KindForbidden:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: appErr.Error()})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
