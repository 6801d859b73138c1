package middleware

import (
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	requestIDLength   = 12
)

// RequestID tags every request with an identifier, generating one when
// the client did not send its own, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			if generated, err := gonanoid.Generate(requestIDAlphabet, requestIDLength); err == nil {
				id = generated
			}
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
