package middleware

import (
	"net/http"
	"time"

	"github.com/dfryer1193/autoblog/api"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HandlePanics logs the full panic server-side and replies with a generic
// message. Internal error text never reaches the caller.
func HandlePanics() gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Panic while handling request")

		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{
			Error:     "Something went wrong on our end. Please try again later.",
			Class:     api.ClassInternal,
			Timestamp: time.Now().UTC(),
		})
	}
}
