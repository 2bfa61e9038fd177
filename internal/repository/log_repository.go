package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"userhub/api/internal/models"
)

// LogRepository is the logs-table view over the generic repository. Audit
// entries are append-only.
type LogRepository struct {
	*Repository[models.LogEntry]
}

func NewLogRepository(pool *pgxpool.Pool) *LogRepository {
	return &LogRepository{Repository: New[models.LogEntry](pool, "logs")}
}

func (r *LogRepository) Create(ctx context.Context, attrs map[string]any) (models.LogEntry, error) {
	return r.Repository.Create(ctx, withCreated(attrs))
}
