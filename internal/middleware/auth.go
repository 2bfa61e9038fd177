package middleware

import (
	"github.com/gin-gonic/gin"

	"userhub/api/internal/apperr"
	"userhub/api/internal/session"
)

// RequireSession guards a route group: requests without an authenticated
// session slot are rejected before the handler runs.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := sessions.CurrentUser(c); !ok {
			authErr := apperr.Unauthorized("Authentication required.")
			c.AbortWithStatusJSON(authErr.Status, authErr.Payload())
			return
		}

		c.Next()
	}
}
