package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"userhub/api/internal/apperr"
	"userhub/api/internal/schemas"
)

type registerUserPayload struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type updateUserPayload struct {
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
}

func (h HandlerSet) ListUsers(c *gin.Context) {
	params, err := decodeUserFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	page, err := h.users.List(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h HandlerSet) GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var payload registerUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.respondError(c, apperr.BadRequest("Invalid request body."))
		return
	}

	req, err := schemas.NewRegisterUser(payload.Username, payload.Phone, payload.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h HandlerSet) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var payload updateUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.respondError(c, apperr.BadRequest("Invalid request body."))
		return
	}

	req, err := schemas.NewUpdateUser(payload.Username, payload.Phone, payload.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h HandlerSet) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func decodeUserFilters(c *gin.Context) (schemas.UserFilterParams, error) {
	var limit, offset *int

	if raw, ok := c.GetQuery("limit"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return schemas.UserFilterParams{}, apperr.BadRequest("Invalid limit parameter.")
		}
		limit = &v
	}
	if raw, ok := c.GetQuery("offset"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return schemas.UserFilterParams{}, apperr.BadRequest("Invalid offset parameter.")
		}
		offset = &v
	}

	return schemas.UserFilterParams{
		BaseFilterParams: schemas.NewBaseFilterParams(limit, offset, c.Query("order_by")),
		Username:         c.Query("username"),
		Phone:            c.Query("phone"),
		CreatedFrom:      c.Query("created_from"),
		CreatedTo:        c.Query("created_to"),
	}, nil
}
