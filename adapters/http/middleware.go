package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-crafter/pkg/apperror"
	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

const (
	// SessionHeader carries the editing session id on every stateful call.
	SessionHeader = "X-Session-ID"

	ginContextKeySessionID = "sessionID"
)

// SessionMiddleware extracts the session id header. Whether the id still
// resolves to a live session is the use cases' concern; expired ids come
// back as not-found.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": SessionHeader + " header is required"})
			return
		}
		c.Set(ginContextKeySessionID, sessionID)
		c.Next()
	}
}

func GetSessionIDFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(ginContextKeySessionID)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// ErrorMiddleware turns apperror values attached via c.Error into JSON
// responses. Anything else is a plain 500 with the details kept in the
// logs only.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled request error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   apperror.ErrInternal.Error(),
			"message": "An internal server error occurred",
		})
	}
}
