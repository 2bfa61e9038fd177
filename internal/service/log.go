package service

import (
	"context"

	"userhub/api/internal/schemas"
)

// LogService persists audit entries for authenticated calls.
type LogService struct {
	logs LogStore
}

func NewLogService(logs LogStore) *LogService {
	return &LogService{logs: logs}
}

func (s *LogService) Record(ctx context.Context, entry schemas.CreateLog) (schemas.LogResponse, error) {
	created, err := s.logs.Create(ctx, entry.Attributes())
	if err != nil {
		return schemas.LogResponse{}, err
	}
	return schemas.NewLogResponse(created), nil
}
