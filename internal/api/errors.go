package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-content-api/internal/content"
	"github.com/rs/zerolog"
)

// errNotFoundMessage is the body of every 404 response
const errNotFoundMessage = "Content not found"

// respondError maps content.ErrNotFound to 404 and everything else to 500
// with message as the error text
func respondError(c *gin.Context, log zerolog.Logger, err error, message string) {
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFoundMessage})
		return
	}

	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString(requestIDKey)).
		Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
