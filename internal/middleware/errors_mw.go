package middleware

import (
	"errors"
	"net/http"
	"time"

	"fraud_awareness/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorHandler is the single normalization point: every failure attached to
// the gin context is rendered as {"error":{message,status,timestamp}}.
// Validation failures additionally carry the full field-message list.
// Unrecognized errors become a generic 500; the cause is logged, not exposed.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		status := http.StatusInternalServerError
		message := "Internal Server Error"
		var fields []apperror.FieldError

		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			status = appErr.Code
			message = appErr.Message
			fields = appErr.Fields
			if appErr.Kind == apperror.KindInternal {
				message = "Internal Server Error"
			}
		}

		if status >= http.StatusInternalServerError {
			logger.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"error":  err.Error(),
			}).Error("request failed")
		}

		body := gin.H{
			"error": gin.H{
				"message":   message,
				"status":    status,
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			},
		}
		if len(fields) > 0 {
			body["errors"] = fields
		}

		c.JSON(status, body)
	}
}
