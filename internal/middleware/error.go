package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/logger"
)

// ErrorHandler converts the last error attached with c.Error into the
// {"error":{"code","message"}} body. AppErrors keep their status and code;
// anything else is logged and reported as INTERNAL_ERROR. Nothing is
// written when a handler already sent a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.With("request_id", RequestID(c), "path", c.Request.URL.Path, "method", c.Request.Method)

		appErr := apperrors.ErrInternalServer
		var target *apperrors.AppError
		switch {
		case errors.As(err, &target):
			appErr = target
			if appErr.Internal != nil {
				log.Errorw("app error", "code", appErr.Code, "internal", appErr.Internal.Error())
			}
		default:
			log.Errorw("unexpected error", "error", err.Error())
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
