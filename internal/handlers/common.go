package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"userhub/api/internal/apperr"
)

// respondError is the one place errors turn into HTTP responses. Anything
// that is not an apperr.Error is logged and surfaced as an opaque 500.
func (h HandlerSet) respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, appErr.Payload())
		return
	}

	h.log.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")

	internal := apperr.Internal("Internal server error.")
	c.JSON(internal.Status, internal.Payload())
}

// parseID reads the :id path parameter. A non-numeric id cannot match any
// user, so it reads as not found rather than a syntax error.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("User not found.")
	}
	return id, nil
}
