package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"userhub/api/internal/schemas"
	"userhub/api/internal/service"
	"userhub/api/internal/session"
)

// Audit persists one log entry per call that holds an authenticated session
// at response time. The write is best effort: a failure is logged and the
// response already produced is left alone.
func Audit(sessions *session.Manager, logs *service.LogService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		userID, ok := sessions.CurrentUser(c)
		if !ok {
			return
		}

		entry, err := schemas.NewCreateLog(
			c.Request.Method,
			c.Request.URL.Path,
			strconv.Itoa(c.Writer.Status()),
			userID,
		)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("audit entry rejected")
			return
		}

		recorded, err := logs.Record(c.Request.Context(), entry)
		if err != nil {
			log.Warn().Err(err).Int64("user_id", userID).Msg("audit write failed")
			return
		}

		log.Debug().Int64("log_id", recorded.ID).Int64("user_id", userID).Msg("request audited")
	}
}
