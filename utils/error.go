package utils

import (
	"net/http"

	"lawlink/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and returns the
// standard response envelope instead of crashing the request.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, models.APIResponse{
					Success: false,
					Message: "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized failure envelope.
func JSONError(c *gin.Context, status int, message string) {
	GetLogger().Warn(message, zap.Int("status", status))
	c.JSON(status, models.APIResponse{Success: false, Message: message})
}

// JSONData sends a standardized success envelope.
func JSONData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.APIResponse{Success: true, Message: message, Data: data})
}
