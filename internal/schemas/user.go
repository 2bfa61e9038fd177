package schemas

import (
	"userhub/api/internal/apperr"
	"userhub/api/internal/models"
)

const (
	maxUsernameLen = 120
	maxPasswordLen = 50
)

func validateUsername(value string) error {
	if value == "" {
		return apperr.BadRequest("Username is required.")
	}
	if len(value) > maxUsernameLen {
		return apperr.BadRequest("Username must be at most 120 characters.")
	}
	return nil
}

func validatePasswordField(value string) error {
	if len(value) > maxPasswordLen {
		return apperr.BadRequest("Password must be at most 50 characters.")
	}
	return ValidatePassword(value)
}

// RegisterUser is a validated registration request. Only NewRegisterUser can
// produce one.
type RegisterUser struct {
	username string
	phone    string
	password string
}

func NewRegisterUser(username, phone, password string) (RegisterUser, error) {
	if err := validateUsername(username); err != nil {
		return RegisterUser{}, err
	}
	if err := ValidatePhone(phone); err != nil {
		return RegisterUser{}, err
	}
	if err := validatePasswordField(password); err != nil {
		return RegisterUser{}, err
	}
	return RegisterUser{username: username, phone: phone, password: password}, nil
}

func (r RegisterUser) Username() string { return r.username }
func (r RegisterUser) Phone() string    { return r.phone }
func (r RegisterUser) Password() string { return r.password }

// UpdateUser is a validated partial update: nil fields were absent from the
// request and must stay untouched.
type UpdateUser struct {
	username *string
	phone    *string
	password *string
}

func NewUpdateUser(username, phone, password *string) (UpdateUser, error) {
	if username != nil {
		if err := validateUsername(*username); err != nil {
			return UpdateUser{}, err
		}
	}
	if phone != nil {
		if err := ValidatePhone(*phone); err != nil {
			return UpdateUser{}, err
		}
	}
	if password != nil {
		if err := validatePasswordField(*password); err != nil {
			return UpdateUser{}, err
		}
	}
	return UpdateUser{username: username, phone: phone, password: password}, nil
}

func (u UpdateUser) Username() (string, bool) { return deref(u.username) }
func (u UpdateUser) Phone() (string, bool)    { return deref(u.phone) }
func (u UpdateUser) Password() (string, bool) { return deref(u.password) }

func (u UpdateUser) IsEmpty() bool {
	return u.username == nil && u.phone == nil && u.password == nil
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// UserResponse is the public shape of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Created  string `json:"created"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Phone:    user.Phone,
		Created:  user.Created,
	}
}
