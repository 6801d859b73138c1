package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body sent with every non-2xx outcome.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BadRequest answers 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// NotFound answers 404 with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// InternalServerError answers 500 with the given message.
func InternalServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// NoContent answers 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
