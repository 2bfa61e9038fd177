package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"userhub/api/internal/apperr"
	"userhub/api/internal/repository"
	"userhub/api/internal/schemas"
	"userhub/api/internal/security"
)

// AuthService drives the session lifecycle: anonymous until a successful
// login binds the slot to a user id, anonymous again after logout. The
// service itself keeps no state between calls.
type AuthService struct {
	users UserStore
	log   zerolog.Logger
}

func NewAuthService(users UserStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// Login verifies the credentials and, on success, replaces whatever the slot
// held with the user's identity. An unknown username and a wrong password
// fail identically so callers cannot tell which check tripped.
func (s *AuthService) Login(ctx context.Context, slot Slot, req schemas.LoginRequest) (schemas.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schemas.LoginResponse{}, apperr.Unauthorized("Invalid credentials.")
		}
		return schemas.LoginResponse{}, err
	}

	if !security.VerifyPassword(req.Password(), user.Password) {
		return schemas.LoginResponse{}, apperr.Unauthorized("Invalid credentials.")
	}

	slot.Clear()
	if err := slot.Set(user.ID); err != nil {
		return schemas.LoginResponse{}, err
	}

	s.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return schemas.LoginResponse{ID: user.ID, Username: user.Username}, nil
}

// Logout clears the slot regardless of its prior state.
func (s *AuthService) Logout(slot Slot) {
	slot.Clear()
}
