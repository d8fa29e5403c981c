package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slot-loader/internal/requestid"
)

const ContextRequestID = "requestID"

// RequestIDMiddleware keeps the caller's X-Request-ID, or assigns one, and
// echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}

		c.Set(ContextRequestID, id)
		c.Request = c.Request.WithContext(requestid.With(c.Request.Context(), id))
		c.Writer.Header().Set(requestid.Header, id)

		c.Next()
	}
}
