package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub/api/internal/models"
)

func TestNewRegisterUser(t *testing.T) {
	req, err := NewRegisterUser("u1", "09123456789", "Test@123")
	require.NoError(t, err)
	assert.Equal(t, "u1", req.Username())
	assert.Equal(t, "09123456789", req.Phone())
	assert.Equal(t, "Test@123", req.Password())
}

func TestNewRegisterUserRejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		phone    string
		password string
		message  string
	}{
		{"missing username", "", "09123456789", "Test@123", "Username is required."},
		{"long username", strings.Repeat("u", 121), "09123456789", "Test@123", "Username must be at most 120 characters."},
		{"bad phone", "u1", "12345", "Test@123", "Invalid phone number."},
		{"long password", "u1", "09123456789", "Aa1@" + strings.Repeat("x", 47), "Password must be at most 50 characters."},
		{"weak password", "u1", "09123456789", "password", passwordMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegisterUser(tt.username, tt.phone, tt.password)
			require.Error(t, err)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestNewUpdateUserPartial(t *testing.T) {
	phone := "09876543210"
	req, err := NewUpdateUser(nil, &phone, nil)
	require.NoError(t, err)

	_, ok := req.Username()
	assert.False(t, ok)
	got, ok := req.Phone()
	assert.True(t, ok)
	assert.Equal(t, phone, got)
	_, ok = req.Password()
	assert.False(t, ok)
	assert.False(t, req.IsEmpty())
}

func TestNewUpdateUserEmpty(t *testing.T) {
	req, err := NewUpdateUser(nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, req.IsEmpty())
}

func TestNewUpdateUserValidatesSetFields(t *testing.T) {
	bad := "12345"
	_, err := NewUpdateUser(nil, &bad, nil)
	assert.EqualError(t, err, "Invalid phone number.")

	weak := "short"
	_, err = NewUpdateUser(nil, nil, &weak)
	assert.EqualError(t, err, passwordMessage)
}

func TestNewUserResponseExcludesPassword(t *testing.T) {
	user := models.User{
		Record:   models.Record{ID: 7, Created: "1404-02-29 11:26:15"},
		Username: "u1",
		Phone:    "09123456789",
		Password: "$argon2id$...",
	}

	resp := NewUserResponse(user)
	assert.Equal(t, UserResponse{
		ID:       7,
		Username: "u1",
		Phone:    "09123456789",
		Created:  "1404-02-29 11:26:15",
	}, resp)
}

func TestNewBaseFilterParamsDefaults(t *testing.T) {
	p := NewBaseFilterParams(nil, nil, "")
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Equal(t, DefaultOffset, p.Offset)

	limit, offset := 5, 10
	p = NewBaseFilterParams(&limit, &offset, "username")
	assert.Equal(t, 5, p.Limit)
	assert.Equal(t, 10, p.Offset)
	assert.Equal(t, "username", p.OrderBy)
}

func TestNewCreateLog(t *testing.T) {
	entry, err := NewCreateLog("POST", "/api/v1/users", "201", 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"method":   "POST",
		"endpoint": "/api/v1/users",
		"status":   "201",
		"user_id":  int64(3),
	}, entry.Attributes())

	_, err = NewCreateLog("POST", "/"+strings.Repeat("x", 255), "201", 3)
	assert.EqualError(t, err, "Endpoint must be at most 255 characters.")
}
