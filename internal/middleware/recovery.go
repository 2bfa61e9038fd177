package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"userhub/api/internal/apperr"
)

// Recovery turns a panic into a 500 with the standard error body, never a
// stack trace.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("error", r).
					Str("request_id", c.Writer.Header().Get(requestIDHeader)).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apperr.Internal("Internal server error.").Payload())
			}
		}()
		c.Next()
	}
}
