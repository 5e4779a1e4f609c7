package shield

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// context key under which the request id is stored
const RequestIDKey = "request_id"

// assigns each request a correlation id, echoed in X-Request-ID;
// inbound ids from clients are not trusted
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()

		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)

		c.Next()
	}
}
