// Package service holds the business rules between the HTTP boundary and the
// repositories: user management, login/logout, and audit-log writes.
package service

import (
	"context"

	"userhub/api/internal/models"
	"userhub/api/internal/schemas"
)

// UserStore is what the services need from the users table. Satisfied by
// repository.UserRepository.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByPhone(ctx context.Context, phone string) (models.User, error)
	GetFiltered(ctx context.Context, params schemas.UserFilterParams) ([]models.User, int64, error)
	Create(ctx context.Context, attrs map[string]any) (models.User, error)
	Update(ctx context.Context, id int64, attrs map[string]any) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// LogStore is what the audit service needs from the logs table. Satisfied by
// repository.LogRepository.
type LogStore interface {
	Create(ctx context.Context, attrs map[string]any) (models.LogEntry, error)
}

// Slot is one client's session state as seen by the auth service. Satisfied
// by session.Slot.
type Slot interface {
	Set(userID int64) error
	Clear()
}
