package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/recordstore-backend/internal/platform/apierr"
	"github.com/yungbote/recordstore-backend/internal/platform/logger"
)

// Errors is the central failure renderer: any error a handler records via
// c.Error() becomes a generic JSON response, apierr.Error choosing the
// status when one is attached.
func Errors(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		lastErr := c.Errors.Last().Err
		status := http.StatusInternalServerError
		code := "internal_error"

		var apiErr *apierr.Error
		if errors.As(lastErr, &apiErr) {
			if apiErr.Status != 0 {
				status = apiErr.Status
			}
			if apiErr.Code != "" {
				code = apiErr.Code
			}
		}

		if log != nil {
			log.Error("Request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"error", lastErr,
			)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, gin.H{"error": code})
	}
}
