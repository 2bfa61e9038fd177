package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"userhub/api/internal/apperr"
	"userhub/api/internal/schemas"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.respondError(c, apperr.BadRequest("Invalid request body."))
		return
	}

	req, err := schemas.NewLoginRequest(payload.Username, payload.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), h.sessions.Slot(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) Logout(c *gin.Context) {
	h.auth.Logout(h.sessions.Slot(c))
	c.Status(http.StatusNoContent)
}
