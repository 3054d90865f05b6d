package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/platform/apierr"
)

// Envelope is the uniform response body. Data is set on success, Errors
// on failure, never both.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Timestamp string `json:"timestamp"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func Fail(c *gin.Context, status int, message string, errs any) {
	c.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// FromError renders an error using its apierr mapping. Internal errors
// and anything unclassified collapse to a generic 500 so wrapped driver
// errors never leak to clients.
func FromError(c *gin.Context, err error) {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		switch {
		case ae.Code == apierr.CodeInternal:
			Fail(c, http.StatusInternalServerError, "internal server error", nil)
		case len(ae.Fields) > 0:
			Fail(c, ae.Status, ae.Error(), ae.Fields)
		default:
			Fail(c, ae.Status, ae.Error(), nil)
		}
		return
	}
	Fail(c, http.StatusInternalServerError, "internal server error", nil)
}
