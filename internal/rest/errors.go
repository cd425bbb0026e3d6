package rest

import (
	"net/http"
	"time"

	"github.com/dfryer1193/autoblog/api"
	"github.com/dfryer1193/autoblog/blog/application"
	"github.com/dfryer1193/autoblog/blog/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidID  = "Invalid blog post ID."
	msgNotFound   = "Blog post not found."
	msgBadPayload = "The blog post data provided is invalid. Please check all required fields and try again."
	msgInternal   = "Something went wrong on our end. Please try again later."

	// The two unavailable messages let the admin tell "never configured"
	// apart from "configured but unreachable".
	msgNotConfigured = "The blog is running without a database, so changes cannot be saved. Configure a database to enable editing."
	msgStoreDown     = "The database is currently unreachable, so changes were not saved. Please try again in a moment."
	msgWriteFailed   = "The database reported an error while saving your changes. Please try again."
)

func writeError(c *gin.Context, status int, class, message string, details map[string]string) {
	c.JSON(status, api.ErrorResponse{
		Error:     message,
		Class:     class,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

// writeServiceError maps a service outcome to a transport response.
// configured tells the unavailable case which flavor of message to use.
func writeServiceError(c *gin.Context, err error, configured bool) {
	if vErr, ok := application.AsValidationError(err); ok {
		writeError(c, http.StatusBadRequest, api.ClassBadRequest, msgBadPayload, vErr.Fields)
		return
	}

	if dbErr, ok := domain.AsDatabaseError(err); ok {
		switch dbErr.Kind {
		case domain.ErrNotFound:
			writeError(c, http.StatusNotFound, api.ClassNotFound, msgNotFound, nil)
		case domain.ErrUnavailable:
			message := msgStoreDown
			if !configured {
				message = msgNotConfigured
			}
			writeError(c, http.StatusServiceUnavailable, api.ClassUnavailable, message, nil)
		default:
			log.Error().Err(dbErr).Str("op", dbErr.Op).Msg("Write against the database failed")
			writeError(c, http.StatusServiceUnavailable, api.ClassUnavailable, msgWriteFailed, nil)
		}
		return
	}

	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error while serving request")
	writeError(c, http.StatusInternalServerError, api.ClassInternal, msgInternal, nil)
}
