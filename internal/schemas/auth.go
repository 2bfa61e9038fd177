package schemas

import "userhub/api/internal/apperr"

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	username string
	password string
}

func NewLoginRequest(username, password string) (LoginRequest, error) {
	if username == "" {
		return LoginRequest{}, apperr.BadRequest("Username is required.")
	}
	if password == "" {
		return LoginRequest{}, apperr.BadRequest("Password is required.")
	}
	return LoginRequest{username: username, password: password}, nil
}

func (r LoginRequest) Username() string { return r.username }
func (r LoginRequest) Password() string { return r.password }

type LoginResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
