package schemas

import (
	"userhub/api/internal/apperr"
	"userhub/api/internal/models"
)

const (
	maxMethodLen   = 10
	maxEndpointLen = 255
	maxStatusLen   = 10
)

// CreateLog is a validated audit-log write request.
type CreateLog struct {
	method   string
	endpoint string
	status   string
	userID   int64
}

func NewCreateLog(method, endpoint, status string, userID int64) (CreateLog, error) {
	if len(method) > maxMethodLen {
		return CreateLog{}, apperr.BadRequest("Method must be at most 10 characters.")
	}
	if len(endpoint) > maxEndpointLen {
		return CreateLog{}, apperr.BadRequest("Endpoint must be at most 255 characters.")
	}
	if len(status) > maxStatusLen {
		return CreateLog{}, apperr.BadRequest("Status must be at most 10 characters.")
	}
	return CreateLog{method: method, endpoint: endpoint, status: status, userID: userID}, nil
}

// Attributes returns the column values for the repository create call.
func (l CreateLog) Attributes() map[string]any {
	return map[string]any{
		"method":   l.method,
		"endpoint": l.endpoint,
		"status":   l.status,
		"user_id":  l.userID,
	}
}

type LogResponse struct {
	ID       int64   `json:"id"`
	Method   *string `json:"method"`
	Endpoint *string `json:"endpoint"`
	Status   *string `json:"status"`
	UserID   *int64  `json:"user_id"`
}

func NewLogResponse(entry models.LogEntry) LogResponse {
	return LogResponse{
		ID:       entry.ID,
		Method:   entry.Method,
		Endpoint: entry.Endpoint,
		Status:   entry.Status,
		UserID:   entry.UserID,
	}
}
