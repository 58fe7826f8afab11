package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmsales/backend/internal/interfaces/http/dto"
)

// BodySizeLimit caps request bodies, chiefly CSV uploads. Requests whose
// declared length already exceeds the cap are rejected up front; the
// wrapped reader catches chunked bodies with no length.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse("BODY_TOO_LARGE", "Request body exceeds the allowed size"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
