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

// UserService enforces the user-specific business rules on top of the
// repository: uniqueness on registration, existence on get/update/delete,
// and hashing of any plaintext password before it reaches storage.
type UserService struct {
	users UserStore
	log   zerolog.Logger
}

func NewUserService(users UserStore, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// List returns one page of users matching params, shaped for the client.
func (s *UserService) List(ctx context.Context, params schemas.UserFilterParams) (schemas.PaginationResponse[schemas.UserResponse], error) {
	users, total, err := s.users.GetFiltered(ctx, params)
	if err != nil {
		return schemas.PaginationResponse[schemas.UserResponse]{}, err
	}

	items := make([]schemas.UserResponse, 0, len(users))
	for _, user := range users {
		items = append(items, schemas.NewUserResponse(user))
	}

	return schemas.PaginationResponse[schemas.UserResponse]{
		Limit:  params.Limit,
		Offset: params.Offset,
		Total:  total,
		Items:  items,
	}, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (schemas.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schemas.UserResponse{}, apperr.NotFound("User not found.")
		}
		return schemas.UserResponse{}, err
	}
	return schemas.NewUserResponse(user), nil
}

// Register creates a new account. The username collision check runs strictly
// before the insert; the collision error does not reveal anything beyond the
// username being taken.
func (s *UserService) Register(ctx context.Context, req schemas.RegisterUser) (schemas.UserResponse, error) {
	_, err := s.users.GetByUsername(ctx, req.Username())
	if err == nil {
		return schemas.UserResponse{}, apperr.BadRequest("User already exists with this username.")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return schemas.UserResponse{}, err
	}

	hash, err := security.HashPassword(req.Password())
	if err != nil {
		return schemas.UserResponse{}, err
	}

	user, err := s.users.Create(ctx, map[string]any{
		"username": req.Username(),
		"phone":    req.Phone(),
		"password": hash,
	})
	if err != nil {
		return schemas.UserResponse{}, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return schemas.NewUserResponse(user), nil
}

// Update applies the fields present in req to an existing user. A new
// password is hashed before storage; absent fields stay untouched.
func (s *UserService) Update(ctx context.Context, id int64, req schemas.UpdateUser) (schemas.UserResponse, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schemas.UserResponse{}, apperr.NotFound("User not found.")
		}
		return schemas.UserResponse{}, err
	}

	attrs := make(map[string]any)
	if username, ok := req.Username(); ok {
		attrs["username"] = username
	}
	if phone, ok := req.Phone(); ok {
		attrs["phone"] = phone
	}
	if password, ok := req.Password(); ok {
		hash, err := security.HashPassword(password)
		if err != nil {
			return schemas.UserResponse{}, err
		}
		attrs["password"] = hash
	}

	// The row may vanish between the existence check and the write; that is
	// still a not-found to the caller.
	user, err := s.users.Update(ctx, id, attrs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return schemas.UserResponse{}, apperr.NotFound("User not found.")
		}
		return schemas.UserResponse{}, err
	}
	return schemas.NewUserResponse(user), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found.")
		}
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("User not found.")
		}
		return err
	}
	return nil
}
