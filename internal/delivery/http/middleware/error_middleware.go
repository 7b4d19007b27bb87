package middleware

import (
	"errors"
	"net/http"

	"go-jobportal-backend/internal/delivery/http/response"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				detail := errorDetail(appErr)
				response.Error(c, appErr.Code, appErr.Message, detail)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}

// errorDetail extracts the machine-readable part of an AppError, if any
func errorDetail(appErr *apperror.AppError) interface{} {
	if appErr.Reason != "" {
		return gin.H{"reason": appErr.Reason}
	}
	if len(appErr.Fields) > 0 {
		return gin.H{"fields": appErr.Fields}
	}
	return nil
}
