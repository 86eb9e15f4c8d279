package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIdMiddleware tags every response with a unique request id
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := uuid.New().String()

		// Expose the id to handlers and to the client
		c.Set("requestID", requestId)
		c.Writer.Header().Set("X-Request-ID", requestId)

		c.Next()
	}
}
