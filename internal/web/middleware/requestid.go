package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
)

// RequestIDMiddleware assigns each request an ID, honoring one supplied by
// the client, and echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the ID assigned by RequestIDMiddleware.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDContextKey)
}
