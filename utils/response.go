// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RespondWithError logs the failure and sends a user-readable error message.
// Errors stop here; nothing is re-thrown past the handler boundary.
func RespondWithError(c *gin.Context, code int, message string) {
	log.Warn().
		Int("status", code).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(message)
	c.JSON(code, gin.H{"error": message})
}
